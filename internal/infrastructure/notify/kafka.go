package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/oceanbook/booking-system/internal/core/domain"
)

// KafkaNotifier publishes lifecycle events to a Kafka topic. Messages are
// keyed by the booking reference so all events of one booking land on the
// same partition and keep their order.
type KafkaNotifier struct {
	writer *kafka.Writer
	log    zerolog.Logger
}

// Config captures the Kafka settings the notifier needs.
type Config struct {
	Brokers []string
	Topic   string
}

func NewKafkaNotifier(cfg Config, log zerolog.Logger) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error().Msgf("kafka: "+msg, args...)
		}),
	}
	return &KafkaNotifier{writer: writer, log: log}
}

// Notify publishes one lifecycle event. The caller treats a failure as fatal
// to its operation, so no retry happens here beyond the writer's own
// attempts.
func (n *KafkaNotifier) Notify(ctx context.Context, event domain.LifecycleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("notify: marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Reference),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(event.ID)},
			{Key: "document-type", Value: []byte(event.DocumentType)},
		},
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("notify: publish event %s: %w", event.ID, err)
	}

	n.log.Debug().
		Str("event_id", event.ID).
		Str("reference", event.Reference).
		Str("status", string(event.Status)).
		Msg("lifecycle event published")
	return nil
}

// Close flushes and closes the underlying writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
