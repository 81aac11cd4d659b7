package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, found, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", "v1"))
	val, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v1", val)

	require.NoError(t, c.Set(ctx, "k", "v2"))
	val, _, _ = c.Get(ctx, "k")
	assert.Equal(t, "v2", val)

	require.NoError(t, c.Del(ctx, "k"))
	_, found, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found, "deleted key reads as absent, not empty")
}

func TestMemoryCache_DelMissingKey(t *testing.T) {
	c := NewMemoryCache()
	assert.NoError(t, c.Del(context.Background(), "never-set"))
}

func TestMemoryCache_EmptyValueIsStillStored(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", ""))
	val, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, val)
}
