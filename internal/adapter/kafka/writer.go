package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudbread0714/tayo-taxi-user/internal/config"
	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// HandoffWriter publishes handoff payloads to the pickup-flow topic.
// It implements domain.PickupFlow.
type HandoffWriter struct {
	writer  *kafkago.Writer
	brokers []string
	logger  *slog.Logger
}

// NewHandoffWriter creates a Kafka producer for the configured handoff topic.
func NewHandoffWriter(cfg *config.Config, logger *slog.Logger) *HandoffWriter {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaHandoffTopic,
		Balancer:               &kafkago.Hash{},
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &HandoffWriter{writer: w, brokers: cfg.KafkaBrokers, logger: logger}
}

// StartPickup publishes one payload, keyed by its handoff ID.
func (w *HandoffWriter) StartPickup(ctx context.Context, payload domain.HandoffPayload) error {
	msg, err := serializeToMessage(payload)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish handoff %s: %w", payload.ID, err)
	}
	w.logger.Debug("handoff published", "handoff_id", payload.ID, "topic", w.writer.Topic)
	return nil
}

// CheckReadiness dials the first reachable broker.
func (w *HandoffWriter) CheckReadiness(ctx context.Context) error {
	var lastErr error
	for _, broker := range w.brokers {
		conn, err := kafkago.DialContext(ctx, "tcp", broker)
		if err != nil {
			lastErr = err
			continue
		}
		return conn.Close()
	}
	if lastErr == nil {
		return fmt.Errorf("no kafka brokers configured")
	}
	return fmt.Errorf("kafka unreachable: %w", lastErr)
}

func (w *HandoffWriter) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a HandoffPayload into a Kafka message.
func serializeToMessage(payload domain.HandoffPayload) (kafkago.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize handoff: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(payload.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "handoff_id", Value: []byte(payload.ID)},
			{Key: "created_at", Value: []byte(payload.CreatedAt.Format(time.RFC3339))},
		},
	}, nil
}
