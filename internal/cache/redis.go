package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avc/payment-risk-gateway/internal/domain"
)

// RedisCache реализует domain.KeyValueCache поверх Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache создает новый RedisCache поверх готового клиента
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get читает значение по ключу. Отсутствие ключа возвращается как
// domain.ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrCacheMiss
		}
		return "", fmt.Errorf("cache: failed to get key %q: %w", key, err)
	}
	return value, nil
}

// Set записывает значение с заданным TTL
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to set key %q: %w", key, err)
	}
	return nil
}

// Noop реализует domain.KeyValueCache, когда Redis не сконфигурирован:
// каждый Get промахивается, каждый Set успешно ничего не делает
type Noop struct{}

// Get всегда возвращает промах
func (Noop) Get(context.Context, string) (string, error) {
	return "", domain.ErrCacheMiss
}

// Set всегда успешен
func (Noop) Set(context.Context, string, string, time.Duration) error {
	return nil
}
