package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payments-service/internal/entities"
	"payments-service/internal/handler"
	mocks "payments-service/internal/handler/mocks"
	"payments-service/internal/stripe"
)

func TestPaymentHandler_BuyItem(t *testing.T) {
	itemID := uuid.New()

	testCases := []struct {
		name         string
		itemID       string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			itemID: itemID.String(),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					BuyItem(mock.Anything, itemID).
					Return("cs_test_123", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"cs_test_123"`,
		},
		{
			name:         "invalid id",
			itemID:       "not-a-uuid",
			mockBehavior: func(svc *mocks.MockPaymentService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid item id"`,
		},
		{
			name:   "not found",
			itemID: itemID.String(),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					BuyItem(mock.Anything, itemID).
					Return("", entities.ErrItemNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"item not found"`,
		},
		{
			name:   "processor error exposes its message",
			itemID: itemID.String(),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					BuyItem(mock.Anything, itemID).
					Return("", &stripe.Error{Kind: stripe.KindConfig, Message: "Stripe API key not configured"}).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"Stripe API key not configured"`,
		},
		{
			name:   "internal error",
			itemID: itemID.String(),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					BuyItem(mock.Anything, itemID).
					Return("", errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewPaymentHandler(logger, svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/buy/item/"+tc.itemID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestPaymentHandler_BuyOrder(t *testing.T) {
	orderID := uuid.New()

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: orderID.String(),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					BuyOrder(mock.Anything, orderID).
					Return("cs_test_order", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"cs_test_order"`,
		},
		{
			name:    "not found",
			orderID: orderID.String(),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					BuyOrder(mock.Anything, orderID).
					Return("", entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewPaymentHandler(logger, svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/buy/order/"+tc.orderID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestPaymentHandler_CreatePaymentIntent(t *testing.T) {
	itemID := uuid.New()

	testCases := []struct {
		name         string
		itemID       string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			itemID: itemID.String(),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CreatePaymentIntent(mock.Anything, itemID).
					Return(entities.PaymentIntent{
						ClientSecret:   "pi_secret_123",
						PublishableKey: "pk_test_123",
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"client_secret":"pi_secret_123"`,
		},
		{
			name:   "not found",
			itemID: itemID.String(),
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CreatePaymentIntent(mock.Anything, itemID).
					Return(entities.PaymentIntent{}, entities.ErrItemNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"item not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			tc.mockBehavior(svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewPaymentHandler(logger, svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/payment-intent/"+tc.itemID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}
