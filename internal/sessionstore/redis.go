package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis stores sessions as plain keys with a native expiry, so no pruning is needed.
type Redis struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

var _ Store = (*Redis)(nil)

func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{rdb: rdb, prefix: "sess:", ttl: ttl}
}

func (r *Redis) key(id string) string {
	return r.prefix + id
}

func (r *Redis) Get(ctx context.Context, id string) ([]byte, bool, error) {
	blob, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		logger.Error().Err(err).Msgf("Error getting session %s from redis", id)
		return nil, false, fmt.Errorf("get session: %w", err)
	}
	return blob, true, nil
}

func (r *Redis) Set(ctx context.Context, id string, blob []byte, ttl time.Duration) error {
	if id == "" {
		return fmt.Errorf("session id is required")
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	if err := r.rdb.Set(ctx, r.key(id), blob, ttl).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error setting session %s in redis", id)
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (r *Redis) Destroy(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
