package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyKeysStoreAndExpire(t *testing.T) {
	store := NewIdempotencyKeys()

	store.Set("k1", "order-1", time.Minute)

	got, ok := store.Get("k1")
	require.True(t, ok)
	assert.Equal(t, "order-1", got)

	_, ok = store.Get("missing")
	assert.False(t, ok)

	store.Set("k2", "order-2", -time.Second)
	_, ok = store.Get("k2")
	assert.False(t, ok)
}

func TestIdempotencyKeysOverwrite(t *testing.T) {
	store := NewIdempotencyKeys()

	store.Set("k", 1, time.Minute)
	store.Set("k", 2, time.Minute)

	got, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}
