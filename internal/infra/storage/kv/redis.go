package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore key-value хранилище поверх Redis.
// Ближайший серверный аналог localStorage из исходного виджета:
// плоское пространство строковых ключей без TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore создает новый экземпляр хранилища поверх Redis
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get читает значение по ключу. Отсутствующий ключ - не ошибка.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - redis get: %v", ErrExecQuery, err)
	}
	return value, true, nil
}

// Set записывает значение по ключу без TTL
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis set: %v", ErrExecQuery, err)
	}
	return nil
}
