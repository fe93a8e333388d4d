package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/avc/payment-risk-gateway/internal/domain"
	"github.com/avc/payment-risk-gateway/internal/resilience"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "risk:"

// ScorerConfig содержит параметры конвейера оценки риска
type ScorerConfig struct {
	CacheTTL time.Duration
	Retry    resilience.RetryConfig
	Breaker  resilience.BreakerConfig
}

// Scorer реализует domain.RiskScorer: кеш -> circuit breaker -> retry ->
// удаленный вызов, с детерминированным fallback при любом невосстановимом
// отказе. Assess никогда не возвращает ошибку наружу.
type Scorer struct {
	remote   domain.RemoteRiskScorer
	cache    domain.KeyValueCache
	sink     domain.EventSink
	breaker  *resilience.Breaker[*domain.RiskAssessment]
	retryCfg resilience.RetryConfig
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewScorer создает конвейер оценки риска. Breaker создается здесь и
// разделяется всеми конкурентными обработчиками: одна машина состояний
// на логическую зависимость.
func NewScorer(remote domain.RemoteRiskScorer, cache domain.KeyValueCache, sink domain.EventSink, cfg ScorerConfig, logger *zap.Logger) *Scorer {
	s := &Scorer{
		remote:   remote,
		cache:    cache,
		sink:     sink,
		retryCfg: cfg.Retry,
		cacheTTL: cfg.CacheTTL,
		logger:   logger,
	}

	// Fallback у breaker не задан: деградацию до fallback-оценки делает
	// сам Assess, которому для этого нужна транзакция
	s.breaker = resilience.NewBreaker[*domain.RiskAssessment]("risk-scorer", cfg.Breaker, nil, logger)
	s.breaker.OnStateChange(func(from, to resilience.BreakerState) {
		s.sink.Publish(context.Background(), "breaker.state_changed", map[string]any{
			"breaker": "risk-scorer",
			"from":    from.String(),
			"to":      to.String(),
		})
	})

	return s
}

// BreakerStats возвращает снимок состояния breaker для диагностики
func (s *Scorer) BreakerStats() resilience.BreakerStats {
	return s.breaker.Stats()
}

// Assess возвращает оценку риска транзакции. Порядок: кеш, затем
// модельный вызов под breaker и retry, затем fallback. Ошибка кеша
// эквивалентна промаху и никогда не прерывает обработку.
func (s *Scorer) Assess(ctx context.Context, tx *domain.Transaction) *domain.RiskAssessment {
	key := cacheKeyPrefix + tx.ID

	if cached := s.fromCache(ctx, key); cached != nil {
		return cached
	}

	assessment, err := s.breaker.Execute(ctx, func(ctx context.Context) (*domain.RiskAssessment, error) {
		return resilience.Retry(ctx, s.retryCfg, s.logger, "risk-scorer", func(ctx context.Context) (*domain.RiskAssessment, error) {
			return s.remote.Score(ctx, tx)
		})
	})

	fallback := err != nil
	if fallback {
		s.logger.Warn("risk scoring failed, using fallback assessment",
			zap.String("transaction_id", tx.ID),
			zap.Error(err),
		)
		assessment = FallbackAssessment(tx)
	} else {
		// Fallback-оценки не кешируются: после восстановления зависимости
		// транзакция должна получить настоящую оценку
		s.toCache(ctx, key, assessment)
	}

	s.sink.Publish(ctx, "risk.assessed", map[string]any{
		"transaction_id": tx.ID,
		"risk_score":     assessment.RiskScore,
		"risk_level":     string(assessment.RiskLevel),
		"fallback":       fallback,
	})

	return assessment
}

func (s *Scorer) fromCache(ctx context.Context, key string) *domain.RiskAssessment {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("cache get failed, treating as miss", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	assessment := &domain.RiskAssessment{}
	if err := json.Unmarshal([]byte(raw), assessment); err != nil {
		s.logger.Warn("failed to unmarshal cached assessment, treating as miss",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil
	}

	s.logger.Debug("risk assessment cache hit", zap.String("key", key))
	return assessment
}

func (s *Scorer) toCache(ctx context.Context, key string, assessment *domain.RiskAssessment) {
	data, err := json.Marshal(assessment)
	if err != nil {
		s.logger.Warn("failed to marshal assessment for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// FallbackAssessment возвращает фиксированную консервативную оценку,
// подставляемую, когда настоящий вызов оценки не удалось завершить
func FallbackAssessment(tx *domain.Transaction) *domain.RiskAssessment {
	return &domain.RiskAssessment{
		TransactionID:   tx.ID,
		RiskScore:       0.5,
		RiskLevel:       domain.RiskLevelMedium,
		Explanation:     "risk scoring service unavailable, conservative fallback assessment applied",
		Recommendations: []string{"manual review recommended"},
		AssessedAt:      time.Now(),
	}
}
