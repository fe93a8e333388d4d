package events

import (
	"context"

	"go.uber.org/zap"
)

// LogSink реализует domain.EventSink через структурированный лог.
// Используется, когда Kafka не сконфигурирована.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink создает новый LogSink
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Publish пишет событие в лог
func (s *LogSink) Publish(_ context.Context, event string, payload map[string]any) {
	s.logger.Info("event published",
		zap.String("event", event),
		zap.Any("payload", payload),
	)
}
