package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKV stores session keys as plain Redis strings.
type RedisKV struct {
	client redis.Cmdable
}

// NewRedisKV wraps a go-redis client.
func NewRedisKV(client redis.Cmdable) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetMany issues one MSET, which Redis applies atomically.
func (r *RedisKV) SetMany(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}
	pairs := make([]interface{}, 0, len(entries)*2)
	for k, v := range entries {
		pairs = append(pairs, k, v)
	}
	return r.client.MSet(ctx, pairs...).Err()
}
