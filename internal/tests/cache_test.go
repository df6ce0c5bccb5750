package tests

import (
	"context"
	"testing"
	"time"

	"xoi-ngoc-web/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestCache(t *testing.T) *storage.RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return storage.NewRedisCache(client, time.Minute)
}

func TestRedisCache_QRRoundtrip(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	png, err := cache.GetQR(ctx)
	assert.NoError(t, err)
	assert.Nil(t, png, "empty cache must read as absence, not an error")

	stored := []byte{0x89, 'P', 'N', 'G'}
	assert.NoError(t, cache.StoreQR(ctx, stored))

	png, err = cache.GetQR(ctx)
	assert.NoError(t, err)
	assert.Equal(t, stored, png)
}

func TestRedisCache_CountView(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	count, err := cache.CountView(ctx, "2025-12-06")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = cache.CountView(ctx, "2025-12-06")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = cache.CountView(ctx, "2025-12-07")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count, "days are counted independently")
}
