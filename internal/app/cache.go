package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/avc/payment-risk-gateway/internal/cache"
	"github.com/avc/payment-risk-gateway/internal/domain"
)

// initCache подключается к Redis, если адрес задан. Кеш необязателен:
// при недоступном Redis сервис продолжает работу без кеширования оценок
func initCache(ctx context.Context, redisAddr string, logger *zap.Logger) domain.KeyValueCache {
	if redisAddr == "" {
		logger.Info("redis address not configured, risk cache disabled")
		return cache.Noop{}
	}

	client := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("failed to ping redis, continuing without cache",
			zap.String("addr", redisAddr),
			zap.Error(err))
		return cache.Noop{}
	}

	logger.Info("connected to redis", zap.String("addr", redisAddr))
	return cache.NewRedisCache(client)
}
