//go:build integration
// +build integration

package cache_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"linkedlist-backend/internal/cache"
	"linkedlist-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	UserID string `json:"userId"`
}

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewRedisCache(ctx, testutils.SetupRedis(t), "test:")
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Ping(ctx))

	_, err = c.Get(ctx, "missing")
	assert.True(t, errors.Is(err, cache.ErrCacheMiss))

	require.NoError(t, c.SetJSON(ctx, "s1", entry{UserID: "user-1"}, time.Minute))
	exists, err := c.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, exists)

	var got entry
	require.NoError(t, c.GetJSON(ctx, "s1", &got))
	assert.Equal(t, "user-1", got.UserID)

	require.NoError(t, c.Delete(ctx, "s1"))
	exists, err = c.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedisCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewRedisCache(ctx, testutils.SetupRedis(t), "test:")
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Set(ctx, "short", "v", 50*time.Millisecond))
	time.Sleep(150 * time.Millisecond)

	_, err = c.Get(ctx, "short")
	assert.True(t, errors.Is(err, cache.ErrCacheMiss))
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := cache.NewRedisCache(ctx, "redis://127.0.0.1:1/0", "")
	assert.Error(t, err)
}
