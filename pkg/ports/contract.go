package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/detent/pkg/domain"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a
// SnapshotStore implementation adheres to the defined interface contract.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	machineID := "contract-test-machine-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		payload := []byte(`{"state":"stored","ready_count":3}`)

		err := store.Save(ctx, machineID, payload)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, machineID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, payload, loaded)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, machineID, []byte("v1")))
		require.NoError(t, store.Save(ctx, machineID, []byte("v2")))

		loaded, err := store.Load(ctx, machineID)
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), loaded)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+machineID)
		assert.ErrorIs(t, err, domain.ErrMachineNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, machineID, []byte("doomed")))

		err := store.Delete(ctx, machineID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, machineID)
		assert.ErrorIs(t, err, domain.ErrMachineNotFound, "Load after Delete should return ErrMachineNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := machineID + "-1"
		id2 := machineID + "-2"
		require.NoError(t, store.Save(ctx, id1, []byte("a")))
		require.NoError(t, store.Save(ctx, id2, []byte("b")))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
