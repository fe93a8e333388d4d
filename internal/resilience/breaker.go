package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrCircuitOpen возвращается при разомкнутой цепи, если fallback не задан
var ErrCircuitOpen = errors.New("circuit breaker is open: service unavailable")

// BreakerState представляет состояние circuit breaker
type BreakerState int32

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig содержит параметры circuit breaker
type BreakerConfig struct {
	FailureThreshold int           // Число подряд идущих ошибок до размыкания
	ResetTimeout     time.Duration // Сколько цепь остается разомкнутой до пробного вызова
}

// BreakerStats представляет снимок состояния для диагностики
type BreakerStats struct {
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Failures    int       `json:"failures"`
	Successes   int64     `json:"successes"`
	LastFailure time.Time `json:"last_failure"`
}

// Breaker защищает удаленный вызов: считает подряд идущие ошибки,
// размыкается по порогу, после reset timeout пропускает пробный вызов
// и замыкается на успехе. Один экземпляр на логическую зависимость,
// разделяется всеми конкурентными обработчиками запросов.
type Breaker[T any] struct {
	name          string
	cfg           BreakerConfig
	fallback      func(context.Context) (T, error)
	onStateChange func(from, to BreakerState)
	logger        *zap.Logger

	mu          sync.Mutex
	state       BreakerState
	failures    int
	successes   int64
	lastFailure time.Time
	nextRetry   time.Time
}

// NewBreaker создает новый circuit breaker. Fallback может быть nil:
// тогда при разомкнутой цепи Execute возвращает ErrCircuitOpen.
func NewBreaker[T any](name string, cfg BreakerConfig, fallback func(context.Context) (T, error), logger *zap.Logger) *Breaker[T] {
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = 1
	}
	return &Breaker[T]{
		name:     name,
		cfg:      cfg,
		fallback: fallback,
		logger:   logger,
	}
}

// OnStateChange регистрирует hook на смену состояния.
// Hook вызывается вне критической секции и не должен блокировать надолго.
func (b *Breaker[T]) OnStateChange(fn func(from, to BreakerState)) {
	b.onStateChange = fn
}

// Execute выполняет операцию под защитой circuit breaker.
// Ошибка операции распространяется вызывающему; fallback используется
// только при коротком замыкании разомкнутой цепи.
func (b *Breaker[T]) Execute(ctx context.Context, op func(context.Context) (T, error)) (T, error) {
	var zero T

	b.mu.Lock()
	if b.state == StateOpen {
		if time.Now().Before(b.nextRetry) {
			b.mu.Unlock()
			if b.fallback != nil {
				return b.fallback(ctx)
			}
			return zero, ErrCircuitOpen
		}
		// Reset timeout истек: пропускаем пробный вызов
		b.transition(StateHalfOpen)
	}
	b.mu.Unlock()

	// Мьютекс не держится на время операции: удаленный вызов
	// не должен блокировать другие обработчики
	result, err := op(ctx)

	if err != nil {
		b.recordFailure()
		return zero, err
	}

	b.recordSuccess()
	return result, nil
}

// State возвращает текущее состояние
func (b *Breaker[T]) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Stats возвращает снимок счетчиков для диагностики
func (b *Breaker[T]) Stats() BreakerStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return BreakerStats{
		Name:        b.name,
		State:       b.state.String(),
		Failures:    b.failures,
		Successes:   b.successes,
		LastFailure: b.lastFailure,
	}
}

func (b *Breaker[T]) recordFailure() {
	b.mu.Lock()
	b.failures++
	b.lastFailure = time.Now()
	// Ошибка в HALF_OPEN сразу размыкает цепь снова: счетчик ошибок
	// уже на пороге или выше с момента предыдущего размыкания
	if b.failures >= b.cfg.FailureThreshold {
		b.transition(StateOpen)
		b.nextRetry = time.Now().Add(b.cfg.ResetTimeout)
	}
	b.mu.Unlock()
}

func (b *Breaker[T]) recordSuccess() {
	b.mu.Lock()
	b.failures = 0
	b.successes++
	if b.state == StateHalfOpen {
		b.transition(StateClosed)
	}
	b.mu.Unlock()
}

// transition меняет состояние; вызывается под мьютексом.
// Hook откладывается в горутину, чтобы не вызывать чужой код под локом.
func (b *Breaker[T]) transition(to BreakerState) {
	from := b.state
	if from == to {
		return
	}
	b.state = to

	b.logger.Warn("circuit breaker state changed",
		zap.String("breaker", b.name),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Int("failures", b.failures),
	)

	if b.onStateChange != nil {
		go b.onStateChange(from, to)
	}
}
