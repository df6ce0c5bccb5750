package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const qrKey = "menu:qr:site"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// GetQR returns the cached QR PNG, or nil when none is cached yet.
func (c *RedisCache) GetQR(ctx context.Context) ([]byte, error) {
	png, err := c.Client.Get(ctx, qrKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return png, err
}

func (c *RedisCache) StoreQR(ctx context.Context, png []byte) error {
	return c.Client.Set(ctx, qrKey, png, c.TTL).Err()
}

// CountView increments the daily page-view counter, keyed per calendar day
// like "views:daily:2025-12-06".
func (c *RedisCache) CountView(ctx context.Context, day string) (int64, error) {
	return c.Client.Incr(ctx, "views:daily:"+day).Result()
}
