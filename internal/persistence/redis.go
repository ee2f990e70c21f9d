package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/account-console/internal/config"
	"github.com/spec-kit/account-console/internal/session"
)

// Redis holds the per-session token sets. Every session key lives under
// KeyPrefix.
type Redis struct {
	Client    *redis.Client
	KeyPrefix string
}

// NewRedis connects to Redis using the provided configuration. An unreachable
// server is logged, not fatal; readiness reports it.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	r := &Redis{Client: client, KeyPrefix: cfg.KeyPrefix}

	fields := []zap.Field{
		zap.String("addr", cfg.Addr),
		zap.Int("db", cfg.DB),
		zap.String("key_prefix", cfg.KeyPrefix),
	}
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", append(fields, zap.Error(err))...)
	} else {
		logger.Info("connected to redis", fields...)
	}
	return r
}

// SessionKV exposes the client as the token store backend.
func (r *Redis) SessionKV() session.KV {
	return session.NewRedisKV(r.Client)
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping checks that the session keyspace is writable. A read-only replica
// answers PING but would fail every token switch.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	if err := r.Client.Set(ctx, r.healthKey(), time.Now().UTC().Format(time.RFC3339), time.Minute).Err(); err != nil {
		return fmt.Errorf("write %s: %w", r.healthKey(), err)
	}
	return nil
}

func (r *Redis) healthKey() string {
	if r.KeyPrefix == "" {
		return "health"
	}
	return r.KeyPrefix + ":health"
}
