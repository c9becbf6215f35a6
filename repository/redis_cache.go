package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs ResultCache with a Redis instance. Entries expire after
// ttl so the cache does not accumulate every loan ever quoted.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	ctx    context.Context
}

func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ttl:    ttl,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, r.ttl).Err()
}

// Ping reports whether the Redis instance is reachable.
func (r *RedisCache) Ping() error {
	return r.client.Ping(r.ctx).Err()
}
