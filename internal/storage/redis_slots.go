package storage

import (
	"context"

	"github.com/fhuszti/medias-catalog-go/internal/logger"
	"github.com/fhuszti/medias-catalog-go/internal/port"
	"github.com/redis/go-redis/v9"
)

type RedisSlots struct {
	client *redis.Client
}

// compile-time check: *RedisSlots must satisfy port.SlotStore
var _ port.SlotStore = (*RedisSlots)(nil)

func NewRedisSlots(addr, password string, db int) *RedisSlots {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisSlots{client: rdb}
}

func (s *RedisSlots) Read(ctx context.Context, key string) ([]byte, error) {
	logger.Debugf(ctx, "reading slot %q from redis...", key)

	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, mapRedisErr(err)
	}
	return val, nil
}

// Write stores data under key without expiry.
func (s *RedisSlots) Write(ctx context.Context, key string, data []byte) error {
	logger.Debugf(ctx, "writing %d bytes to slot %q in redis...", len(data), key)

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return mapRedisErr(err)
	}
	return nil
}

func (s *RedisSlots) Ping(ctx context.Context) error {
	return mapRedisErr(s.client.Ping(ctx).Err())
}

func (s *RedisSlots) Close() error {
	return s.client.Close()
}
