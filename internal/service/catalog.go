package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"payments-service/internal/entities"
	"payments-service/pkg/trm"
)

type CatalogRepo interface {
	SaveItem(ctx context.Context, it entities.Item) error
	UpdateItem(ctx context.Context, it entities.Item) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	GetItemByID(ctx context.Context, itemID uuid.UUID) (entities.Item, error)
	GetItemsByIDs(ctx context.Context, itemIDs []uuid.UUID) ([]entities.Item, error)
	ListItems(ctx context.Context) ([]entities.Item, error)

	SaveDiscount(ctx context.Context, d entities.Discount) error
	GetDiscountByID(ctx context.Context, discountID uuid.UUID) (entities.Discount, error)
	ListDiscounts(ctx context.Context) ([]entities.Discount, error)
	DeleteDiscount(ctx context.Context, discountID uuid.UUID) error

	SaveTax(ctx context.Context, t entities.Tax) error
	GetTaxByID(ctx context.Context, taxID uuid.UUID) (entities.Tax, error)
	ListTaxes(ctx context.Context) ([]entities.Tax, error)
	DeleteTax(ctx context.Context, taxID uuid.UUID) error

	SaveOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}

// Invalidator чистит кэш при изменении товаров.
type Invalidator interface {
	Del(key string)
}

type catalogService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	repo        CatalogRepo
	invalidator Invalidator
}

func NewCatalogService(logger *slog.Logger, txManager trm.Manager, repo CatalogRepo, invalidator Invalidator) *catalogService {
	return &catalogService{
		logger:      logger.With(slog.String("service", "catalog")),
		txManager:   txManager,
		repo:        repo,
		invalidator: invalidator,
	}
}

func (s *catalogService) CreateItem(ctx context.Context, it entities.Item) (entities.Item, error) {
	if it.Price.IsNegative() {
		return entities.Item{}, entities.ErrInvalidItem
	}
	if it.Currency == "" {
		it.Currency = entities.CurrencyUSD
	}
	it.ID = uuid.New()

	if err := s.repo.SaveItem(ctx, it); err != nil {
		return entities.Item{}, err
	}
	s.logger.Debug("item created", slog.String("item_id", it.ID.String()))
	return it, nil
}

func (s *catalogService) UpdateItem(ctx context.Context, it entities.Item) error {
	if it.Price.IsNegative() {
		return entities.ErrInvalidItem
	}
	if it.Currency == "" {
		it.Currency = entities.CurrencyUSD
	}

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return err
	}
	s.invalidator.Del(it.ID.String())
	return nil
}

func (s *catalogService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return err
	}
	s.invalidator.Del(itemID.String())
	return nil
}

func (s *catalogService) GetItem(ctx context.Context, itemID uuid.UUID) (entities.Item, error) {
	return s.repo.GetItemByID(ctx, itemID)
}

func (s *catalogService) ListItems(ctx context.Context) ([]entities.Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *catalogService) CreateDiscount(ctx context.Context, d entities.Discount) (entities.Discount, error) {
	d.ID = uuid.New()
	if err := s.repo.SaveDiscount(ctx, d); err != nil {
		return entities.Discount{}, err
	}
	return d, nil
}

func (s *catalogService) ListDiscounts(ctx context.Context) ([]entities.Discount, error) {
	return s.repo.ListDiscounts(ctx)
}

func (s *catalogService) DeleteDiscount(ctx context.Context, discountID uuid.UUID) error {
	return s.repo.DeleteDiscount(ctx, discountID)
}

func (s *catalogService) CreateTax(ctx context.Context, t entities.Tax) (entities.Tax, error) {
	t.ID = uuid.New()
	if err := s.repo.SaveTax(ctx, t); err != nil {
		return entities.Tax{}, err
	}
	return t, nil
}

func (s *catalogService) ListTaxes(ctx context.Context) ([]entities.Tax, error) {
	return s.repo.ListTaxes(ctx)
}

func (s *catalogService) DeleteTax(ctx context.Context, taxID uuid.UUID) error {
	return s.repo.DeleteTax(ctx, taxID)
}

// CreateOrder резолвит все ссылки и сохраняет заказ одной транзакцией.
// Дубликаты item id допустимы и попадают в заказ отдельными позициями.
func (s *catalogService) CreateOrder(ctx context.Context, itemIDs []uuid.UUID, discountID, taxID *uuid.UUID) (entities.Order, error) {
	order := entities.Order{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		items, err := s.repo.GetItemsByIDs(ctx, itemIDs)
		if err != nil {
			return fmt.Errorf("failed to resolve order items: %w", err)
		}
		order.Items = items

		if discountID != nil {
			discount, err := s.repo.GetDiscountByID(ctx, *discountID)
			if err != nil {
				return fmt.Errorf("failed to resolve discount: %w", err)
			}
			order.Discount = &discount
		}

		if taxID != nil {
			tax, err := s.repo.GetTaxByID(ctx, *taxID)
			if err != nil {
				return fmt.Errorf("failed to resolve tax: %w", err)
			}
			order.Tax = &tax
		}

		return s.repo.SaveOrder(ctx, order)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order created",
		slog.String("order_id", order.ID.String()), slog.Int("items", len(order.Items)))
	return order, nil
}

func (s *catalogService) GetOrder(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	return s.repo.GetOrderByID(ctx, orderID)
}

func (s *catalogService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *catalogService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	return s.repo.DeleteOrder(ctx, orderID)
}
