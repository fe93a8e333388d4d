package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// envelope описывает формат события в топике
type envelope struct {
	Event     string         `json:"event"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

// KafkaSink реализует domain.EventSink поверх Kafka. Публикация
// асинхронная и fire-and-forget: отказ брокера логируется и никогда
// не влияет на обработку транзакций.
type KafkaSink struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewKafkaSink создает новый KafkaSink
func NewKafkaSink(brokers []string, topic string, logger *zap.Logger) *KafkaSink {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
		Async:    true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warn("failed to deliver events", zap.Int("count", len(messages)), zap.Error(err))
			}
		},
	}

	return &KafkaSink{
		writer: writer,
		logger: logger,
	}
}

// Publish отправляет событие в топик. Ошибки сериализации и записи
// проглатываются с записью в лог.
func (s *KafkaSink) Publish(ctx context.Context, event string, payload map[string]any) {
	value, err := json.Marshal(envelope{
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now(),
	})
	if err != nil {
		s.logger.Warn("failed to marshal event", zap.String("event", event), zap.Error(err))
		return
	}

	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event),
		Value: value,
	})
	if err != nil {
		s.logger.Warn("failed to publish event", zap.String("event", event), zap.Error(err))
	}
}

// Close останавливает writer и дожидается отправки буферизованных сообщений
func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
