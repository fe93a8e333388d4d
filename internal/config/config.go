package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress      string        // Адрес и порт запуска сервиса
	DatabaseURI     string        // URI подключения к БД
	ScorerEndpoint  string        // Адрес HTTP API модельной оценки риска
	ScorerAPIKey    string        // Ключ авторизации модельного API
	ScorerModel     string        // Имя модели оценки риска
	ScorerTimeout   time.Duration // Таймаут одного вызова модели
	ScorerCacheTTL  time.Duration // TTL кешированных оценок
	RulesConfigPath string        // Путь к YAML с правилами и провайдерами
	RedisAddr       string        // Адрес Redis, пусто = кеш выключен
	KafkaBrokers    []string      // Брокеры Kafka, пусто = события в лог
	KafkaTopic      string        // Топик событий
	JWTSecret       string        // Секретный ключ для JWT
	JWTTokenTTL     time.Duration // Время жизни JWT токена
	LogLevel        string        // Уровень логирования

	// Отказоустойчивость вызова модели
	BreakerFailureThreshold int           // Ошибок подряд до размыкания цепи
	BreakerResetTimeout     time.Duration // Пауза перед пробным вызовом
	RetryMaxAttempts        int           // Попыток вызова модели
	RetryBaseDelay          time.Duration // Базовая задержка между попытками
	RetryMalformed          bool          // Повторять ли нечитаемые ответы модели

	// Worker Pool конфигурация
	WorkerPoolSize     int           // Количество воркеров
	WorkerQueueSize    int           // Размер очереди транзакций
	WorkerScanInterval time.Duration // Интервал сканирования необработанных транзакций
	WorkerRetryAge     time.Duration // Возраст транзакции до повторной обработки

	// Валидация
	MinPasswordLength int // Минимальная длина пароля
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		ScorerModel:             "risk-v1",
		ScorerTimeout:           10 * time.Second,
		ScorerCacheTTL:          5 * time.Minute,
		KafkaTopic:              "payment-events",
		JWTTokenTTL:             24 * time.Hour,
		LogLevel:                "info",
		BreakerFailureThreshold: 5,
		BreakerResetTimeout:     30 * time.Second,
		RetryMaxAttempts:        3,
		RetryBaseDelay:          time.Second,
		WorkerPoolSize:          3,
		WorkerQueueSize:         100,
		WorkerScanInterval:      10 * time.Second,
		WorkerRetryAge:          time.Minute,
		MinPasswordLength:       8,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.ScorerEndpoint, "s", "", "risk scorer endpoint")
	flag.StringVar(&cfg.RulesConfigPath, "r", "", "fraud rules config path")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envScorer, ok := os.LookupEnv("SCORER_ENDPOINT"); ok {
		cfg.ScorerEndpoint = envScorer
	}

	if envRules, ok := os.LookupEnv("RULES_CONFIG_PATH"); ok {
		cfg.RulesConfigPath = envRules
	}

	if envRedis, ok := os.LookupEnv("REDIS_ADDR"); ok {
		cfg.RedisAddr = envRedis
	}

	if envBrokers, ok := os.LookupEnv("KAFKA_BROKERS"); ok && envBrokers != "" {
		cfg.KafkaBrokers = strings.Split(envBrokers, ",")
	}

	if envTopic, ok := os.LookupEnv("KAFKA_TOPIC"); ok {
		cfg.KafkaTopic = envTopic
	}

	if envAPIKey, ok := os.LookupEnv("SCORER_API_KEY"); ok {
		cfg.ScorerAPIKey = envAPIKey
	}

	if envModel, ok := os.LookupEnv("SCORER_MODEL"); ok {
		cfg.ScorerModel = envModel
	}

	if envTimeout, ok := os.LookupEnv("SCORER_TIMEOUT"); ok {
		if timeout, err := time.ParseDuration(envTimeout); err == nil && timeout > 0 {
			cfg.ScorerTimeout = timeout
		}
	}

	if envTTL, ok := os.LookupEnv("SCORER_CACHE_TTL"); ok {
		if ttl, err := time.ParseDuration(envTTL); err == nil && ttl > 0 {
			cfg.ScorerCacheTTL = ttl
		}
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Отказоустойчивость из env
	if envThreshold, ok := os.LookupEnv("BREAKER_FAILURE_THRESHOLD"); ok {
		if threshold, err := strconv.Atoi(envThreshold); err == nil && threshold > 0 {
			cfg.BreakerFailureThreshold = threshold
		}
	}

	if envReset, ok := os.LookupEnv("BREAKER_RESET_TIMEOUT"); ok {
		if reset, err := time.ParseDuration(envReset); err == nil && reset > 0 {
			cfg.BreakerResetTimeout = reset
		}
	}

	if envAttempts, ok := os.LookupEnv("RETRY_MAX_ATTEMPTS"); ok {
		if attempts, err := strconv.Atoi(envAttempts); err == nil && attempts > 0 {
			cfg.RetryMaxAttempts = attempts
		}
	}

	if envDelay, ok := os.LookupEnv("RETRY_BASE_DELAY"); ok {
		if delay, err := time.ParseDuration(envDelay); err == nil && delay > 0 {
			cfg.RetryBaseDelay = delay
		}
	}

	if envRetryMalformed, ok := os.LookupEnv("SCORER_RETRY_MALFORMED"); ok {
		if retryMalformed, err := strconv.ParseBool(envRetryMalformed); err == nil {
			cfg.RetryMalformed = retryMalformed
		}
	}

	// Worker Pool конфигурация из env
	if envWorkerPoolSize, ok := os.LookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerPoolSize); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}

	if envWorkerQueueSize, ok := os.LookupEnv("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerQueueSize); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}

	if envScanInterval, ok := os.LookupEnv("WORKER_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envScanInterval); err == nil && interval > 0 {
			cfg.WorkerScanInterval = interval
		}
	}

	if envRetryAge, ok := os.LookupEnv("WORKER_RETRY_AGE"); ok {
		if age, err := time.ParseDuration(envRetryAge); err == nil && age > 0 {
			cfg.WorkerRetryAge = age
		}
	}

	if envMinPass, ok := os.LookupEnv("MIN_PASSWORD_LENGTH"); ok {
		if length, err := strconv.Atoi(envMinPass); err == nil && length > 0 {
			cfg.MinPasswordLength = length
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.ScorerEndpoint == "" {
		return nil, fmt.Errorf("risk scorer endpoint is required (use -s flag or SCORER_ENDPOINT env)")
	}

	return cfg, nil
}
