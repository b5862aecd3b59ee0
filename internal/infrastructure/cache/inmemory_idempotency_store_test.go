package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("first reservation succeeds", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		fresh, err := store.Reserve(ctx, "key-1", time.Minute)
		require.NoError(t, err)
		assert.True(t, fresh)
	})

	t.Run("repeat within window is rejected", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		_, err := store.Reserve(ctx, "key-1", time.Minute)
		require.NoError(t, err)

		fresh, err := store.Reserve(ctx, "key-1", time.Minute)
		require.NoError(t, err)
		assert.False(t, fresh)
	})

	t.Run("expired key can be reserved again", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		_, err := store.Reserve(ctx, "key-1", 10*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		fresh, err := store.Reserve(ctx, "key-1", time.Minute)
		require.NoError(t, err)
		assert.True(t, fresh)
	})

	t.Run("distinct keys do not collide", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		fresh1, err := store.Reserve(ctx, "key-1", time.Minute)
		require.NoError(t, err)
		fresh2, err := store.Reserve(ctx, "key-2", time.Minute)
		require.NoError(t, err)

		assert.True(t, fresh1)
		assert.True(t, fresh2)
	})
}
