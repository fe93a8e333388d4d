package resilience

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// RetryConfig содержит параметры повторных попыток
type RetryConfig struct {
	MaxAttempts    int           // Максимальное число попыток, включая первую
	BaseDelay      time.Duration // Базовая задержка перед повтором
	MaxDelay       time.Duration // Верхняя граница задержки
	Multiplier     float64       // Множитель экспоненциального backoff
	Jitter         bool          // Случайное масштабирование задержки в [0.5, 1.0)
	RetryPermanent bool          // Повторять ли ошибки, помеченные как permanent
}

// DefaultRetryConfig возвращает конфигурацию повторов по умолчанию
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
		Multiplier:  2,
		Jitter:      true,
	}
}

// permanentError помечает ошибку как неповторяемую
type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}

// Permanent помечает ошибку как неповторяемую: Retry не будет делать
// повторных попыток и сразу вернет ее вызывающему
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent проверяет, помечена ли ошибка как неповторяемая
func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}

// Retry выполняет операцию с повторами и экспоненциальным backoff.
// После исчерпания попыток возвращается последняя ошибка операции как есть,
// без оборачивания. Результаты между попытками не кешируются.
func Retry[T any](ctx context.Context, cfg RetryConfig, logger *zap.Logger, name string, op func(context.Context) (T, error)) (T, error) {
	var zero T

	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			if attempt > 1 {
				logger.Info("operation succeeded after retry",
					zap.String("operation", name),
					zap.Int("attempt", attempt),
				)
			}
			return result, nil
		}
		lastErr = err

		if IsPermanent(err) && !cfg.RetryPermanent {
			logger.Warn("operation failed with permanent error, not retrying",
				zap.String("operation", name),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return zero, lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		delay := backoffDelay(cfg, attempt)
		logger.Warn("operation failed, retrying",
			zap.String("operation", name),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", cfg.MaxAttempts),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	logger.Error("operation failed, retry attempts exhausted",
		zap.String("operation", name),
		zap.Int("attempts", cfg.MaxAttempts),
		zap.Error(lastErr),
	)
	return zero, lastErr
}

// backoffDelay вычисляет задержку перед попыткой attempt+1.
// Незаданный множитель (<1) не вырождает расписание в нулевые задержки
func backoffDelay(cfg RetryConfig, attempt int) time.Duration {
	multiplier := cfg.Multiplier
	if multiplier < 1 {
		multiplier = DefaultRetryConfig().Multiplier
	}
	delay := float64(cfg.BaseDelay) * math.Pow(multiplier, float64(attempt-1))
	if maxDelay := float64(cfg.MaxDelay); cfg.MaxDelay > 0 && delay > maxDelay {
		delay = maxDelay
	}
	if cfg.Jitter {
		delay *= 0.5 + rand.Float64()*0.5
	}
	return time.Duration(delay)
}
