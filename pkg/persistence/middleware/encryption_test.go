package middleware_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/detent/pkg/adapters/memory"
	"github.com/veldt-labs/detent/pkg/persistence/middleware"
	"github.com/veldt-labs/detent/pkg/ports"
)

func key(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func TestEncryption_Roundtrip(t *testing.T) {
	inner := memory.NewStore()
	store := middleware.Chain(inner, middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: key(0x01),
	}))
	ctx := context.Background()

	payload := []byte(`{"state":"ready","ready_count":4}`)
	require.NoError(t, store.Save(ctx, "m1", payload))

	// The inner store must only ever see ciphertext.
	raw, err := inner.Load(ctx, "m1")
	require.NoError(t, err)
	assert.NotEqual(t, payload, raw)
	assert.NotContains(t, string(raw), "ready_count")

	loaded, err := store.Load(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)
}

func TestEncryption_WrongKeyFails(t *testing.T) {
	inner := memory.NewStore()
	ctx := context.Background()

	writer := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key(0x01)})(inner)
	require.NoError(t, writer.Save(ctx, "m1", []byte("secret")))

	reader := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key(0x02)})(inner)
	_, err := reader.Load(ctx, "m1")
	assert.Error(t, err)
}

func TestEncryption_KeyRotation(t *testing.T) {
	inner := memory.NewStore()
	ctx := context.Background()

	oldStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key(0x01)})(inner)
	require.NoError(t, oldStore.Save(ctx, "m1", []byte("carried over")))

	// New active key, old key demoted to fallback.
	rotated := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    key(0x02),
		FallbackKeys: [][]byte{key(0x01)},
	})(inner)

	loaded, err := rotated.Load(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, []byte("carried over"), loaded)
}

func TestEncryption_Contract(t *testing.T) {
	store := middleware.Chain(memory.NewStore(), middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: key(0x07),
	}))
	ports.RunSnapshotStoreContract(t, store)
}

func TestEncryption_BadKeyLengthPanics(t *testing.T) {
	assert.Panics(t, func() {
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short")})
	})
}
