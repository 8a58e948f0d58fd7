// Package stripe переводит собранные checkout-запросы в вызовы Stripe API.
// Секретный ключ внедряется при создании клиента, не через глобальное состояние.
package stripe

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"payments-service/internal/checkout"
	"payments-service/internal/config"
)

type Client struct {
	api            *client.API
	secretKey      string
	publishableKey string
}

func NewClient(cfg config.Stripe) *Client {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &Client{
		api:            api,
		secretKey:      cfg.SecretKey,
		publishableKey: cfg.PublishableKey,
	}
}

func (c *Client) PublishableKey() string {
	return c.publishableKey
}

// CreateSession создает Stripe Checkout Session и возвращает ее id.
func (c *Client) CreateSession(ctx context.Context, req checkout.SessionRequest) (string, error) {
	if c.secretKey == "" {
		return "", errNotConfigured
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(string(li.Currency)),
			UnitAmount: stripe.Int64(li.UnitAmount),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(li.Name),
			},
		}
		if li.Description != "" {
			priceData.ProductData.Description = stripe.String(li.Description)
		}

		params := &stripe.CheckoutSessionLineItemParams{
			PriceData: priceData,
			Quantity:  stripe.Int64(li.Quantity),
		}
		if len(li.TaxRates) > 0 {
			params.TaxRates = stripe.StringSlice(li.TaxRates)
		}
		lineItems = append(lineItems, params)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(req.Mode),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	for _, d := range req.Discounts {
		params.Discounts = append(params.Discounts, &stripe.CheckoutSessionDiscountParams{
			Coupon: stripe.String(d.Coupon),
		})
	}
	params.Context = ctx

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", wrapErr(err)
	}
	return session.ID, nil
}

// CreatePaymentIntent создает Stripe Payment Intent и возвращает client secret.
func (c *Client) CreatePaymentIntent(ctx context.Context, req checkout.IntentRequest) (string, error) {
	if c.secretKey == "" {
		return "", errNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(string(req.Currency)),
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", wrapErr(err)
	}
	return intent.ClientSecret, nil
}
