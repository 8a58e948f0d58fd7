// Package checkout строит платежные запросы к Stripe из сущностей каталога.
// Никаких побочных эффектов: только расчет стоимости и сборка payload'ов.
package checkout

import (
	"github.com/shopspring/decimal"

	"payments-service/internal/entities"
)

// ModePayment — разовый платеж (Stripe checkout mode).
const ModePayment = "payment"

var minorUnitsPerMajor = decimal.NewFromInt(100)

type ReturnURLs struct {
	Success string
	Cancel  string
}

type LineItem struct {
	Currency    entities.Currency
	Name        string
	Description string
	UnitAmount  int64
	Quantity    int64
	TaxRates    []string
}

type SessionDiscount struct {
	Coupon string
}

type SessionRequest struct {
	Mode       string
	LineItems  []LineItem
	Discounts  []SessionDiscount
	SuccessURL string
	CancelURL  string
}

type IntentRequest struct {
	Amount   int64
	Currency entities.Currency
	Metadata map[string]string
}

func ItemPrice(it entities.Item) (decimal.Decimal, entities.Currency) {
	return it.Price, it.Currency
}

// OrderTotal возвращает точную сумму цен товаров заказа и его валюту.
// Валюта берется из первого товара, для пустого заказа — usd.
func OrderTotal(o entities.Order) (decimal.Decimal, entities.Currency) {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Price)
	}

	currency := entities.CurrencyUSD
	if len(o.Items) > 0 {
		currency = o.Items[0].Currency
	}
	return total, currency
}

// MinorUnits переводит цену в минимальные единицы валюты.
// Усечение, а не округление: 19.995 -> 1999.
func MinorUnits(price decimal.Decimal) int64 {
	return price.Mul(minorUnitsPerMajor).IntPart()
}

func NewLineItem(it entities.Item) LineItem {
	return LineItem{
		Currency:    it.Currency,
		Name:        it.Name,
		Description: it.Description,
		UnitAmount:  MinorUnits(it.Price),
		Quantity:    1,
	}
}

// ItemSession собирает checkout-сессию для покупки одного товара.
// Скидки и налоги к одиночному товару не применяются.
func ItemSession(it entities.Item, urls ReturnURLs) SessionRequest {
	return SessionRequest{
		Mode:       ModePayment,
		LineItems:  []LineItem{NewLineItem(it)},
		SuccessURL: urls.Success,
		CancelURL:  urls.Cancel,
	}
}

// OrderSession собирает checkout-сессию для оплаты заказа.
// Купон добавляется только если у скидки есть stripe coupon id,
// налоговая ставка проставляется на каждую позицию.
func OrderSession(o entities.Order, urls ReturnURLs) SessionRequest {
	lineItems := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		lineItems = append(lineItems, NewLineItem(it))
	}

	req := SessionRequest{
		Mode:       ModePayment,
		LineItems:  lineItems,
		SuccessURL: urls.Success,
		CancelURL:  urls.Cancel,
	}

	if o.Discount != nil && o.Discount.StripeCouponID != "" {
		req.Discounts = []SessionDiscount{{Coupon: o.Discount.StripeCouponID}}
	}

	if o.Tax != nil && o.Tax.StripeTaxRateID != "" {
		for i := range req.LineItems {
			req.LineItems[i].TaxRates = []string{o.Tax.StripeTaxRateID}
		}
	}

	return req
}

// ItemIntent собирает упрощенный payment intent для товара.
// Купоны и налоги здесь не поддерживаются.
func ItemIntent(it entities.Item) IntentRequest {
	return IntentRequest{
		Amount:   MinorUnits(it.Price),
		Currency: it.Currency,
		Metadata: map[string]string{"item_id": it.ID.String()},
	}
}
