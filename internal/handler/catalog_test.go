package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payments-service/internal/entities"
	"payments-service/internal/handler"
	mocks "payments-service/internal/handler/mocks"
)

func newCatalogRouter(t *testing.T) (*mocks.MockCatalogService, chi.Router) {
	t.Helper()
	svc := mocks.NewMockCatalogService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewCatalogHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return svc, r
}

func TestCatalogHandler_GetItem(t *testing.T) {
	itemID := uuid.New()
	validItem := entities.Item{
		ID:       itemID,
		Name:     "Coffee",
		Price:    decimal.RequireFromString("4.50"),
		Currency: entities.CurrencyUSD,
	}

	testCases := []struct {
		name         string
		itemID       string
		mockBehavior func(svc *mocks.MockCatalogService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			itemID: itemID.String(),
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().GetItem(mock.Anything, itemID).Return(validItem, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Coffee"`,
		},
		{
			name:         "invalid id",
			itemID:       "not-a-uuid",
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid item id"`,
		},
		{
			name:   "not found",
			itemID: itemID.String(),
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().
					GetItem(mock.Anything, itemID).
					Return(entities.Item{}, entities.ErrItemNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"item not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newCatalogRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/items/"+tc.itemID, nil)
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

func TestCatalogHandler_CreateItem(t *testing.T) {
	created := entities.Item{
		ID:       uuid.New(),
		Name:     "Coffee",
		Price:    decimal.RequireFromString("4.50"),
		Currency: entities.CurrencyUSD,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCatalogService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"name":"Coffee","price":"4.50","currency":"usd"}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().CreateItem(mock.Anything, mock.Anything).Return(created, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"name":"Coffee"`,
		},
		{
			name:         "missing name",
			body:         `{"price":"4.50"}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "unsupported currency",
			body:         `{"name":"Coffee","price":"4.50","currency":"gbp"}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "negative price",
			body:         `{"name":"Coffee","price":"-4.50"}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"price must be non-negative"`,
		},
		{
			name:         "broken body",
			body:         `{"name":`,
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newCatalogRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/admin/items", bytes.NewBufferString(tc.body))
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

func TestCatalogHandler_CreateOrder(t *testing.T) {
	itemA := entities.Item{ID: uuid.New(), Name: "Coffee", Price: decimal.RequireFromString("4.50"), Currency: entities.CurrencyUSD}
	itemB := entities.Item{ID: uuid.New(), Name: "Bagel", Price: decimal.RequireFromString("2.25"), Currency: entities.CurrencyUSD}
	order := entities.Order{
		ID:    uuid.New(),
		Items: []entities.Item{itemA, itemB},
	}

	t.Run("success reports computed total", func(t *testing.T) {
		svc, r := newCatalogRouter(t)
		svc.EXPECT().
			CreateOrder(mock.Anything, []uuid.UUID{itemA.ID, itemB.ID}, (*uuid.UUID)(nil), (*uuid.UUID)(nil)).
			Return(order, nil).Once()

		reqBody, err := json.Marshal(map[string]any{
			"item_ids": []uuid.UUID{itemA.ID, itemB.ID},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin/orders", bytes.NewBuffer(reqBody))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		res := rr.Result()
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, res.StatusCode)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, "6.75", resp["total_price"])
		assert.Equal(t, "usd", resp["currency"])
	})

	t.Run("unknown item", func(t *testing.T) {
		svc, r := newCatalogRouter(t)
		svc.EXPECT().
			CreateOrder(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(entities.Order{}, entities.ErrItemNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/admin/orders",
			bytes.NewBufferString(`{"item_ids":["`+itemA.ID.String()+`"]}`))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		res := rr.Result()
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, string(body), `"item not found"`)
	})
}

func TestCatalogHandler_DeleteDiscount(t *testing.T) {
	discountID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, r := newCatalogRouter(t)
		svc.EXPECT().DeleteDiscount(mock.Anything, discountID).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/admin/discounts/"+discountID.String(), nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc, r := newCatalogRouter(t)
		svc.EXPECT().
			DeleteDiscount(mock.Anything, discountID).
			Return(entities.ErrDiscountNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/admin/discounts/"+discountID.String(), nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
