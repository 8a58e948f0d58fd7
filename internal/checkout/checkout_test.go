package checkout_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-service/internal/checkout"
	"payments-service/internal/entities"
)

func item(name, price string, currency entities.Currency) entities.Item {
	return entities.Item{
		ID:       uuid.New(),
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Currency: currency,
	}
}

func TestOrderTotal(t *testing.T) {
	testCases := []struct {
		name         string
		order        entities.Order
		wantTotal    string
		wantCurrency entities.Currency
	}{
		{
			name: "sums item prices exactly",
			order: entities.Order{Items: []entities.Item{
				item("a", "0.10", entities.CurrencyUSD),
				item("b", "0.20", entities.CurrencyUSD),
				item("c", "0.30", entities.CurrencyUSD),
			}},
			wantTotal:    "0.6",
			wantCurrency: entities.CurrencyUSD,
		},
		{
			name:         "empty order is zero usd",
			order:        entities.Order{},
			wantTotal:    "0",
			wantCurrency: entities.CurrencyUSD,
		},
		{
			name: "currency of the first item wins",
			order: entities.Order{Items: []entities.Item{
				item("a", "5.00", entities.CurrencyEUR),
				item("b", "7.50", entities.CurrencyUSD),
			}},
			wantTotal:    "12.5",
			wantCurrency: entities.CurrencyEUR,
		},
		{
			name: "duplicate items counted twice",
			order: entities.Order{Items: []entities.Item{
				item("a", "9.99", entities.CurrencyUSD),
				item("a", "9.99", entities.CurrencyUSD),
			}},
			wantTotal:    "19.98",
			wantCurrency: entities.CurrencyUSD,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total, currency := checkout.OrderTotal(tc.order)
			assert.True(t, total.Equal(decimal.RequireFromString(tc.wantTotal)),
				"got total %s", total)
			assert.Equal(t, tc.wantCurrency, currency)
		})
	}
}

func TestMinorUnits(t *testing.T) {
	testCases := []struct {
		price string
		want  int64
	}{
		{"19.99", 1999},
		{"19.995", 1999}, // усечение, не округление
		{"0.00", 0},
		{"0.009", 0},
		{"10", 1000},
		{"5.50", 550},
	}

	for _, tc := range testCases {
		t.Run(tc.price, func(t *testing.T) {
			got := checkout.MinorUnits(decimal.RequireFromString(tc.price))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestItemSession(t *testing.T) {
	it := item("Mug", "19.99", entities.CurrencyEUR)
	it.Description = "A mug"

	urls := checkout.ReturnURLs{Success: "https://shop.test/success/", Cancel: "https://shop.test/cancel/"}
	req := checkout.ItemSession(it, urls)

	assert.Equal(t, checkout.ModePayment, req.Mode)
	assert.Equal(t, urls.Success, req.SuccessURL)
	assert.Equal(t, urls.Cancel, req.CancelURL)

	require.Len(t, req.LineItems, 1)
	li := req.LineItems[0]
	assert.Equal(t, entities.CurrencyEUR, li.Currency)
	assert.Equal(t, "Mug", li.Name)
	assert.Equal(t, "A mug", li.Description)
	assert.Equal(t, int64(1999), li.UnitAmount)
	assert.Equal(t, int64(1), li.Quantity)

	// одиночная покупка никогда не несет скидок и налогов
	assert.Empty(t, req.Discounts)
	assert.Empty(t, li.TaxRates)
}

func TestItemSession_ZeroPrice(t *testing.T) {
	req := checkout.ItemSession(item("Free", "0.00", entities.CurrencyUSD), checkout.ReturnURLs{})

	require.Len(t, req.LineItems, 1)
	assert.Equal(t, int64(0), req.LineItems[0].UnitAmount)
}

func TestOrderSession(t *testing.T) {
	items := []entities.Item{
		item("a", "10.00", entities.CurrencyUSD),
		item("b", "5.50", entities.CurrencyUSD),
	}
	urls := checkout.ReturnURLs{Success: "https://shop.test/success/", Cancel: "https://shop.test/cancel/"}

	t.Run("discount and tax attached", func(t *testing.T) {
		order := entities.Order{
			Items:    items,
			Discount: &entities.Discount{Name: "10%", StripeCouponID: "SAVE10"},
			Tax:      &entities.Tax{Name: "VAT", StripeTaxRateID: "TAX1"},
		}

		req := checkout.OrderSession(order, urls)

		assert.Equal(t, checkout.ModePayment, req.Mode)
		require.Len(t, req.LineItems, 2)
		assert.Equal(t, int64(1000), req.LineItems[0].UnitAmount)
		assert.Equal(t, int64(550), req.LineItems[1].UnitAmount)

		// ставка налога проставляется на каждую позицию
		for _, li := range req.LineItems {
			assert.Equal(t, entities.CurrencyUSD, li.Currency)
			assert.Equal(t, []string{"TAX1"}, li.TaxRates)
		}

		require.Len(t, req.Discounts, 1)
		assert.Equal(t, "SAVE10", req.Discounts[0].Coupon)
	})

	t.Run("discount without coupon id is a no-op", func(t *testing.T) {
		order := entities.Order{
			Items:    items,
			Discount: &entities.Discount{Name: "local only", PercentOff: decimal.NewFromInt(15)},
		}

		req := checkout.OrderSession(order, urls)
		assert.Empty(t, req.Discounts)
	})

	t.Run("tax without rate id is a no-op", func(t *testing.T) {
		order := entities.Order{
			Items: items,
			Tax:   &entities.Tax{Name: "local only", Percentage: decimal.NewFromInt(20)},
		}

		req := checkout.OrderSession(order, urls)
		for _, li := range req.LineItems {
			assert.Empty(t, li.TaxRates)
		}
	})

	t.Run("no discount no tax", func(t *testing.T) {
		req := checkout.OrderSession(entities.Order{Items: items}, urls)
		assert.Empty(t, req.Discounts)
		require.Len(t, req.LineItems, 2)
	})

	t.Run("line items follow membership order", func(t *testing.T) {
		req := checkout.OrderSession(entities.Order{Items: items}, urls)
		assert.Equal(t, "a", req.LineItems[0].Name)
		assert.Equal(t, "b", req.LineItems[1].Name)
	})
}

func TestItemIntent(t *testing.T) {
	it := item("Mug", "19.99", entities.CurrencyEUR)

	req := checkout.ItemIntent(it)

	assert.Equal(t, int64(1999), req.Amount)
	assert.Equal(t, entities.CurrencyEUR, req.Currency)
	assert.Equal(t, map[string]string{"item_id": it.ID.String()}, req.Metadata)
}
