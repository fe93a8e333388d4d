package app

import (
	"context"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/avc/payment-risk-gateway/internal/config"
	"github.com/avc/payment-risk-gateway/internal/domain"
	"github.com/avc/payment-risk-gateway/internal/events"
	"github.com/avc/payment-risk-gateway/internal/handlers"
	"github.com/avc/payment-risk-gateway/internal/repository/postgres"
	"github.com/avc/payment-risk-gateway/internal/resilience"
	"github.com/avc/payment-risk-gateway/internal/rules"
	"github.com/avc/payment-risk-gateway/internal/scoring"
	"github.com/avc/payment-risk-gateway/internal/service"
	"github.com/avc/payment-risk-gateway/internal/utils/jwt"
	"github.com/avc/payment-risk-gateway/internal/utils/password"
	"github.com/avc/payment-risk-gateway/internal/worker"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user        domain.UserRepository
	transaction domain.TransactionRepository
}

// services содержит все сервисы приложения
type services struct {
	auth      domain.AuthService
	payments  domain.PaymentService
	processor domain.TransactionProcessor
	scorer    *scoring.Scorer
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth     *handlers.AuthHandler
	payments *handlers.PaymentsHandler
	risk     *handlers.RiskHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos       *repositories
	services    *services
	handlers    *handlerSet
	jwtManager  *jwt.Manager
	rulesEngine *rules.Engine
	eventSink   domain.EventSink
	workerPool  *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		user:        postgres.NewUserRepository(dbPool),
		transaction: postgres.NewTransactionRepository(dbPool),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Шина событий: Kafka при заданных брокерах, иначе лог
	var eventSink domain.EventSink
	if len(cfg.KafkaBrokers) > 0 {
		eventSink = events.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		logger.Info("kafka event sink enabled",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaTopic))
	} else {
		eventSink = events.NewLogSink(logger)
	}

	// Правила антифрода и выбор провайдера
	rulesEngine := rules.NewEngine(cfg.RulesConfigPath, logger)

	// Конвейер оценки риска: кеш -> breaker -> retry -> модель
	riskCache := initCache(ctx, cfg.RedisAddr, logger)
	modelClient := scoring.NewModelClient(scoring.ClientConfig{
		Endpoint: cfg.ScorerEndpoint,
		APIKey:   cfg.ScorerAPIKey,
		Model:    cfg.ScorerModel,
		Timeout:  cfg.ScorerTimeout,
	}, logger)
	retryCfg := resilience.DefaultRetryConfig()
	retryCfg.MaxAttempts = cfg.RetryMaxAttempts
	retryCfg.BaseDelay = cfg.RetryBaseDelay
	retryCfg.RetryPermanent = cfg.RetryMalformed
	scorer := scoring.NewScorer(modelClient, riskCache, eventSink, scoring.ScorerConfig{
		CacheTTL: cfg.ScorerCacheTTL,
		Retry:    retryCfg,
		Breaker: resilience.BreakerConfig{
			FailureThreshold: cfg.BreakerFailureThreshold,
			ResetTimeout:     cfg.BreakerResetTimeout,
		},
	}, logger)

	// Создание сервисов
	processor := service.NewProcessor(rulesEngine, scorer, eventSink, logger)
	svcs := &services{
		auth:      service.NewAuthService(repos.user, passwordHasher, jwtManager, cfg.MinPasswordLength),
		payments:  service.NewPaymentsService(repos.transaction, processor, eventSink, logger),
		processor: processor,
		scorer:    scorer,
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:     handlers.NewAuthHandler(svcs.auth, logger),
		payments: handlers.NewPaymentsHandler(svcs.payments, logger),
		risk:     handlers.NewRiskHandler(rulesEngine, scorer.BreakerStats, logger),
		health:   handlers.NewHealthHandler(dbPool, logger),
	}

	// Создание worker pool для повторной обработки зависших транзакций
	workerPoolConfig := worker.PoolConfig{
		Workers:      cfg.WorkerPoolSize,
		QueueSize:    cfg.WorkerQueueSize,
		ScanInterval: cfg.WorkerScanInterval,
		RetryAge:     cfg.WorkerRetryAge,
	}
	workerPool := worker.NewPool(workerPoolConfig, repos.transaction, processor, logger)

	return &dependencies{
		repos:       repos,
		services:    svcs,
		handlers:    hdlrs,
		jwtManager:  jwtManager,
		rulesEngine: rulesEngine,
		eventSink:   eventSink,
		workerPool:  workerPool,
	}
}

// closeEventSink закрывает шину событий, если она это поддерживает
func closeEventSink(sink domain.EventSink, logger *zap.Logger) {
	if closer, ok := sink.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close event sink", zap.Error(err))
		}
	}
}
