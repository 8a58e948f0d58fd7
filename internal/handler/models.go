package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"payments-service/internal/checkout"
	"payments-service/internal/entities"
)

// Item представляет товар каталога
type Item struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
}

// Discount представляет скидку
type Discount struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	PercentOff     decimal.Decimal `json:"percent_off"`
	StripeCouponID string          `json:"stripe_coupon_id,omitempty"`
}

// Tax представляет налог
type Tax struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Percentage      decimal.Decimal `json:"percentage"`
	StripeTaxRateID string          `json:"stripe_tax_rate_id,omitempty"`
}

// Order представляет заказ с рассчитанной стоимостью
type Order struct {
	ID         uuid.UUID       `json:"id"`
	Items      []Item          `json:"items"`
	Discount   *Discount       `json:"discount,omitempty"`
	Tax        *Tax            `json:"tax,omitempty"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Currency   string          `json:"currency"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SessionResponse — результат создания checkout-сессии
type SessionResponse struct {
	ID string `json:"id"`
}

// IntentResponse — результат создания payment intent
type IntentResponse struct {
	ClientSecret   string `json:"client_secret"`
	PublishableKey string `json:"publishable_key"`
}

type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency" validate:"omitempty,oneof=usd eur"`
}

type CreateDiscountRequest struct {
	Name           string          `json:"name" validate:"required"`
	PercentOff     decimal.Decimal `json:"percent_off"`
	StripeCouponID string          `json:"stripe_coupon_id"`
}

type CreateTaxRequest struct {
	Name            string          `json:"name" validate:"required"`
	Percentage      decimal.Decimal `json:"percentage"`
	StripeTaxRateID string          `json:"stripe_tax_rate_id"`
}

type CreateOrderRequest struct {
	ItemIDs    []uuid.UUID `json:"item_ids"`
	DiscountID *uuid.UUID  `json:"discount_id"`
	TaxID      *uuid.UUID  `json:"tax_id"`
}

func ItemEntityToJSON(i entities.Item) Item {
	return Item{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Currency:    string(i.Currency),
	}
}

func DiscountEntityToJSON(d entities.Discount) Discount {
	return Discount{
		ID:             d.ID,
		Name:           d.Name,
		PercentOff:     d.PercentOff,
		StripeCouponID: d.StripeCouponID,
	}
}

func TaxEntityToJSON(t entities.Tax) Tax {
	return Tax{
		ID:              t.ID,
		Name:            t.Name,
		Percentage:      t.Percentage,
		StripeTaxRateID: t.StripeTaxRateID,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	total, currency := checkout.OrderTotal(o)

	order := Order{
		ID:         o.ID,
		Items:      items,
		TotalPrice: total,
		Currency:   string(currency),
		CreatedAt:  o.CreatedAt,
	}
	if o.Discount != nil {
		discount := DiscountEntityToJSON(*o.Discount)
		order.Discount = &discount
	}
	if o.Tax != nil {
		tax := TaxEntityToJSON(*o.Tax)
		order.Tax = &tax
	}
	return order
}

func CreateItemRequestToEntity(req CreateItemRequest) entities.Item {
	return entities.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    entities.Currency(req.Currency),
	}
}

func CreateDiscountRequestToEntity(req CreateDiscountRequest) entities.Discount {
	return entities.Discount{
		Name:           req.Name,
		PercentOff:     req.PercentOff,
		StripeCouponID: req.StripeCouponID,
	}
}

func CreateTaxRequestToEntity(req CreateTaxRequest) entities.Tax {
	return entities.Tax{
		Name:            req.Name,
		Percentage:      req.Percentage,
		StripeTaxRateID: req.StripeTaxRateID,
	}
}
