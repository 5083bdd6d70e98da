// Package cache keeps storage slots in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	redisdb "localnotes/pkg/db/redis"
	"localnotes/pkg/logger"
)

const (
	LogMethodGet = "get"
	LogMethodSet = "set"

	ErrorFailedToGet = "failed to get value from redis"
	ErrorFailedToSet = "failed to set value in redis"
)

// SlotStore Redis implementation of storage.SlotStore. Slots never expire.
type SlotStore struct {
	client *redisdb.Client
	prefix string
}

// NewSlotStore prefixes every key with prefix (may be empty).
func NewSlotStore(client *redisdb.Client, prefix string) *SlotStore {
	return &SlotStore{client: client, prefix: prefix}
}

func (s *SlotStore) key(k string) string {
	return s.prefix + k
}

func (s *SlotStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Raw().Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToGet,
			zap.String("method", LogMethodGet), zap.String("key", s.key(key)), zap.Error(err))
		return "", false, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}
	return value, true, nil
}

func (s *SlotStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Raw().Set(ctx, s.key(key), value, 0).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToSet,
			zap.String("method", LogMethodSet), zap.String("key", s.key(key)), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}
	return nil
}

func (s *SlotStore) Close() error {
	return s.client.Close(context.Background())
}
