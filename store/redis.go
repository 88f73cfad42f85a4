// SPDX-License-Identifier: EPL-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ossrs/go-oryx-lib/logger"
)

// redisClient is the subset of *redis.Client used by Redis
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Redis stores each asset under one key, "<prefix>:<name>".
type Redis struct {
	rdb    redisClient
	prefix string
}

// RedisOptions configures NewRedis.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedis connects to the server and verifies it answers PING.
func NewRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("%w: redis address", ErrMissingSetting)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis %v: %w", opts.Addr, err)
	}

	logger.Tf(ctx, "redis store ok, addr=%v, db=%v, prefix=%v", opts.Addr, opts.DB, opts.Prefix)
	return &Redis{rdb: rdb, prefix: opts.Prefix}, nil
}

func (r *Redis) key(name string) string {
	if r.prefix == "" {
		return name
	}
	return r.prefix + ":" + name
}

func (r *Redis) Load(ctx context.Context, name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	key := r.key(name)
	data, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %v: %w", key, err)
	}

	logger.Tf(ctx, "redis load key=%v, size=%vB", key, len(data))
	return data, nil
}

func (r *Redis) Save(ctx context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}

	key := r.key(name)
	if err := r.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %v: %w", key, err)
	}

	logger.Tf(ctx, "redis save key=%v, size=%vB", key, len(data))
	return nil
}

var _ Store = (*Redis)(nil)
