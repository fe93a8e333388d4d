package resilience

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errRemote = errors.New("remote call failed")

func failingOp(calls *int) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		*calls++
		return "", errRemote
	}
}

func TestBreaker_TripAfterThreshold(t *testing.T) {
	logger := zap.NewNop()
	b := NewBreaker[string]("scorer", BreakerConfig{FailureThreshold: 3, ResetTimeout: time.Minute}, nil, logger)
	ctx := context.Background()

	calls := 0
	for i := 0; i < 3; i++ {
		_, err := b.Execute(ctx, failingOp(&calls))
		assert.ErrorIs(t, err, errRemote)
	}

	assert.Equal(t, StateOpen, b.State())
	assert.Equal(t, 3, calls)

	// Разомкнутая цепь: операция не вызывается, без fallback возвращается ошибка
	_, err := b.Execute(ctx, failingOp(&calls))
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 3, calls)
}

func TestBreaker_FallbackWhenOpen(t *testing.T) {
	logger := zap.NewNop()
	fallback := func(ctx context.Context) (string, error) {
		return "fallback result", nil
	}
	b := NewBreaker[string]("scorer", BreakerConfig{FailureThreshold: 2, ResetTimeout: time.Minute}, fallback, logger)
	ctx := context.Background()

	calls := 0
	for i := 0; i < 2; i++ {
		_, _ = b.Execute(ctx, failingOp(&calls))
	}
	require.Equal(t, StateOpen, b.State())

	result, err := b.Execute(ctx, failingOp(&calls))
	require.NoError(t, err)
	assert.Equal(t, "fallback result", result)
	// Операция не вызывалась при коротком замыкании
	assert.Equal(t, 2, calls)
}

func TestBreaker_HalfOpenProbeAfterTimeout(t *testing.T) {
	logger := zap.NewNop()
	b := NewBreaker[string]("scorer", BreakerConfig{FailureThreshold: 2, ResetTimeout: 20 * time.Millisecond}, nil, logger)
	ctx := context.Background()

	calls := 0
	for i := 0; i < 2; i++ {
		_, _ = b.Execute(ctx, failingOp(&calls))
	}
	require.Equal(t, StateOpen, b.State())

	time.Sleep(30 * time.Millisecond)

	// После reset timeout пробный вызов проходит и успех замыкает цепь
	result, err := b.Execute(ctx, func(ctx context.Context) (string, error) {
		calls++
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
	assert.Equal(t, 3, calls)
	assert.Equal(t, StateClosed, b.State())

	// Успех сбросил счетчик ошибок
	stats := b.Stats()
	assert.Equal(t, 0, stats.Failures)
	assert.Equal(t, int64(1), stats.Successes)
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	logger := zap.NewNop()
	b := NewBreaker[string]("scorer", BreakerConfig{FailureThreshold: 2, ResetTimeout: 20 * time.Millisecond}, nil, logger)
	ctx := context.Background()

	calls := 0
	for i := 0; i < 2; i++ {
		_, _ = b.Execute(ctx, failingOp(&calls))
	}
	require.Equal(t, StateOpen, b.State())

	time.Sleep(30 * time.Millisecond)

	// Одна ошибка в HALF_OPEN сразу размыкает цепь снова
	_, err := b.Execute(ctx, failingOp(&calls))
	assert.ErrorIs(t, err, errRemote)
	assert.Equal(t, 3, calls)
	assert.Equal(t, StateOpen, b.State())

	// И цепь снова короткозамкнута до следующего таймаута
	_, err = b.Execute(ctx, failingOp(&calls))
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 3, calls)
}

func TestBreaker_SuccessResetsFailureCounter(t *testing.T) {
	logger := zap.NewNop()
	b := NewBreaker[string]("scorer", BreakerConfig{FailureThreshold: 3, ResetTimeout: time.Minute}, nil, logger)
	ctx := context.Background()

	calls := 0
	_, _ = b.Execute(ctx, failingOp(&calls))
	_, _ = b.Execute(ctx, failingOp(&calls))

	_, err := b.Execute(ctx, func(ctx context.Context) (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)

	// Счетчик сброшен: еще две ошибки не размыкают цепь
	_, _ = b.Execute(ctx, failingOp(&calls))
	_, _ = b.Execute(ctx, failingOp(&calls))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_OnStateChange(t *testing.T) {
	logger := zap.NewNop()
	b := NewBreaker[string]("scorer", BreakerConfig{FailureThreshold: 1, ResetTimeout: time.Minute}, nil, logger)

	var mu sync.Mutex
	var transitions []string
	done := make(chan struct{})
	b.OnStateChange(func(from, to BreakerState) {
		mu.Lock()
		transitions = append(transitions, from.String()+"->"+to.String())
		mu.Unlock()
		close(done)
	})

	calls := 0
	_, _ = b.Execute(context.Background(), failingOp(&calls))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("state change hook was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"closed->open"}, transitions)
}

func TestBreaker_ConcurrentCallers(t *testing.T) {
	logger := zap.NewNop()
	b := NewBreaker[int]("scorer", BreakerConfig{FailureThreshold: 5, ResetTimeout: time.Minute}, nil, logger)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = b.Execute(context.Background(), func(ctx context.Context) (int, error) {
				return 1, nil
			})
		}()
	}
	wg.Wait()

	stats := b.Stats()
	assert.Equal(t, "closed", stats.State)
	assert.Equal(t, int64(50), stats.Successes)
}

func TestBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", BreakerState(99).String())
}
