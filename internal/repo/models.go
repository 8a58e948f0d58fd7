package repo

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"payments-service/internal/entities"
)

type Item struct {
	ItemID      uuid.UUID       `db:"item_id"`
	Name        string          `db:"name"`
	Description sql.NullString  `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Currency    string          `db:"currency"`
}

type Discount struct {
	DiscountID     uuid.UUID       `db:"discount_id"`
	Name           string          `db:"name"`
	PercentOff     decimal.Decimal `db:"percent_off"`
	StripeCouponID sql.NullString  `db:"stripe_coupon_id"`
}

type Tax struct {
	TaxID           uuid.UUID       `db:"tax_id"`
	Name            string          `db:"name"`
	Percentage      decimal.Decimal `db:"percentage"`
	StripeTaxRateID sql.NullString  `db:"stripe_tax_rate_id"`
}

type Order struct {
	OrderID    uuid.UUID     `db:"order_id"`
	DiscountID uuid.NullUUID `db:"discount_id"`
	TaxID      uuid.NullUUID `db:"tax_id"`
	CreatedAt  time.Time     `db:"created_at"`
}

// orderItem — строка таблицы связи вместе с самим товаром,
// id сохраняет порядок добавления позиций в заказ.
type orderItem struct {
	ID      int64     `db:"id"`
	OrderID uuid.UUID `db:"order_id"`
	Item
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ID:          i.ItemID,
		Name:        i.Name,
		Description: nullStringToString(i.Description),
		Price:       i.Price,
		Currency:    entities.Currency(i.Currency),
	}
}

func DiscountToEntity(d Discount) entities.Discount {
	return entities.Discount{
		ID:             d.DiscountID,
		Name:           d.Name,
		PercentOff:     d.PercentOff,
		StripeCouponID: nullStringToString(d.StripeCouponID),
	}
}

func TaxToEntity(t Tax) entities.Tax {
	return entities.Tax{
		ID:              t.TaxID,
		Name:            t.Name,
		Percentage:      t.Percentage,
		StripeTaxRateID: nullStringToString(t.StripeTaxRateID),
	}
}

func OrderToEntity(o Order, items []entities.Item, discount *entities.Discount, tax *entities.Tax) entities.Order {
	return entities.Order{
		ID:        o.OrderID,
		CreatedAt: o.CreatedAt,
		Items:     items,
		Discount:  discount,
		Tax:       tax,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
