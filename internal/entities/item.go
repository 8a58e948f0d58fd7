package entities

import (
	"bytes"
	"encoding/gob"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyUSD Currency = "usd"
	CurrencyEUR Currency = "eur"
)

type Item struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    Currency
}

// Discount снижает стоимость заказа на процент.
// StripeCouponID пустой, если купон на стороне Stripe не заведен.
type Discount struct {
	ID             uuid.UUID
	Name           string
	PercentOff     decimal.Decimal
	StripeCouponID string
}

// Tax начисляется поверх стоимости заказа.
// StripeTaxRateID пустой, если ставка на стороне Stripe не заведена.
type Tax struct {
	ID              uuid.UUID
	Name            string
	Percentage      decimal.Decimal
	StripeTaxRateID string
}

func (i *Item) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(i); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (i *Item) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(i)
}

func init() {
	gob.Register(Item{})
}
