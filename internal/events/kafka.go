// Package events публикует события платежей для downstream-потребителей.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"payments-service/internal/config"
)

const (
	SourceItem          = "item"
	SourceOrder         = "order"
	SourcePaymentIntent = "payment_intent"
)

// SessionCreated отправляется после успешного создания
// checkout-сессии или payment intent'а.
type SessionCreated struct {
	SessionID string    `json:"session_id"`
	Source    string    `json:"source"`
	SubjectID string    `json:"subject_id"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

type KafkaPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *KafkaPublisher {
	return &KafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// SessionCreated пишет событие в топик. Ретраи делает сама библиотека.
func (p *KafkaPublisher) SessionCreated(ctx context.Context, e SessionCreated) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.SessionID),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("session event published", slog.String("session_id", e.SessionID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
