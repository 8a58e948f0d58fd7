package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"payments-service/internal/checkout"
	"payments-service/internal/entities"
	"payments-service/internal/events"
)

type PaymentRepo interface {
	GetItemByID(ctx context.Context, itemID uuid.UUID) (entities.Item, error)
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
}

type Processor interface {
	CreateSession(ctx context.Context, req checkout.SessionRequest) (string, error)
	CreatePaymentIntent(ctx context.Context, req checkout.IntentRequest) (string, error)
	PublishableKey() string
}

type Publisher interface {
	SessionCreated(ctx context.Context, e events.SessionCreated) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type paymentService struct {
	logger    *slog.Logger
	repo      PaymentRepo
	processor Processor
	publisher Publisher
	cache     Cache
	urls      checkout.ReturnURLs
}

func NewPaymentService(
	logger *slog.Logger,
	repo PaymentRepo,
	processor Processor,
	publisher Publisher,
	cache Cache,
	urls checkout.ReturnURLs,
) *paymentService {
	return &paymentService{
		logger:    logger.With(slog.String("service", "payment")),
		repo:      repo,
		processor: processor,
		publisher: publisher,
		cache:     cache,
		urls:      urls,
	}
}

// BuyItem создает checkout-сессию для покупки одного товара.
func (s *paymentService) BuyItem(ctx context.Context, itemID uuid.UUID) (string, error) {
	item, err := s.item(ctx, itemID)
	if err != nil {
		return "", err
	}

	sessionID, err := s.processor.CreateSession(ctx, checkout.ItemSession(item, s.urls))
	if err != nil {
		sessionsFailed.WithLabelValues(events.SourceItem).Inc()
		return "", err
	}
	sessionsCreated.WithLabelValues(events.SourceItem).Inc()

	s.publish(ctx, events.SessionCreated{
		SessionID: sessionID,
		Source:    events.SourceItem,
		SubjectID: item.ID.String(),
		Amount:    checkout.MinorUnits(item.Price),
		Currency:  string(item.Currency),
		CreatedAt: time.Now(),
	})

	s.logger.Debug("checkout session created",
		slog.String("session_id", sessionID), slog.String("item_id", itemID.String()))
	return sessionID, nil
}

// BuyOrder создает checkout-сессию для оплаты заказа целиком.
func (s *paymentService) BuyOrder(ctx context.Context, orderID uuid.UUID) (string, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	sessionID, err := s.processor.CreateSession(ctx, checkout.OrderSession(order, s.urls))
	if err != nil {
		sessionsFailed.WithLabelValues(events.SourceOrder).Inc()
		return "", err
	}
	sessionsCreated.WithLabelValues(events.SourceOrder).Inc()

	total, currency := checkout.OrderTotal(order)
	s.publish(ctx, events.SessionCreated{
		SessionID: sessionID,
		Source:    events.SourceOrder,
		SubjectID: order.ID.String(),
		Amount:    checkout.MinorUnits(total),
		Currency:  string(currency),
		CreatedAt: time.Now(),
	})

	s.logger.Debug("checkout session created",
		slog.String("session_id", sessionID), slog.String("order_id", orderID.String()))
	return sessionID, nil
}

// CreatePaymentIntent — упрощенный сценарий оплаты товара без сессии.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, itemID uuid.UUID) (entities.PaymentIntent, error) {
	item, err := s.item(ctx, itemID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	clientSecret, err := s.processor.CreatePaymentIntent(ctx, checkout.ItemIntent(item))
	if err != nil {
		sessionsFailed.WithLabelValues(events.SourcePaymentIntent).Inc()
		return entities.PaymentIntent{}, err
	}
	sessionsCreated.WithLabelValues(events.SourcePaymentIntent).Inc()

	// client secret в события не публикуем
	return entities.PaymentIntent{
		ClientSecret:   clientSecret,
		PublishableKey: s.processor.PublishableKey(),
	}, nil
}

// item читает товар через кэш: горячий путь оплаты.
func (s *paymentService) item(ctx context.Context, itemID uuid.UUID) (entities.Item, error) {
	key := itemID.String()

	if data, ok := s.cache.Get(key); ok {
		var item entities.Item
		if err := item.Unmarshal(data); err == nil {
			return item, nil
		}
		s.logger.Warn("failed to unmarshal cached item", slog.String("item_id", key))
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return entities.Item{}, err
	}

	if data, err := item.Marshal(); err == nil {
		s.cache.Set(key, data)
	}
	return item, nil
}

// Публикация события не влияет на результат оплаты.
func (s *paymentService) publish(ctx context.Context, e events.SessionCreated) {
	if err := s.publisher.SessionCreated(ctx, e); err != nil {
		publishErrors.Inc()
		s.logger.Error("failed to publish session event",
			slog.Any("error", err), slog.String("session_id", e.SessionID))
	}
}
