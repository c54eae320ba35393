package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/detent/pkg/adapters/redis"
	"github.com/veldt-labs/detent/pkg/domain"
	"github.com/veldt-labs/detent/pkg/ports"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newTestClient(t)
	store := redis.NewFromClient(client)
	ports.RunSnapshotStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newTestClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	machineID := "machine-ttl"

	err := store.Save(ctx, machineID, []byte(`{"state":"ready","ready_count":1}`))
	require.NoError(t, err)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, machineID)

	// Let miniredis expire the key.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, machineID)
	assert.ErrorIs(t, err, domain.ErrMachineNotFound)

	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, machineID, "expired machines must be pruned from the index")
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newTestClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:"))
	require.NoError(t, store.Save(context.Background(), "m1", []byte("x")))

	assert.True(t, mr.Exists("custom:m1"))
}
