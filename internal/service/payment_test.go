package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payments-service/internal/checkout"
	"payments-service/internal/entities"
	"payments-service/internal/service"
	mocks "payments-service/internal/service/mocks"
)

var testURLs = checkout.ReturnURLs{
	Success: "http://localhost:8080/success/",
	Cancel:  "http://localhost:8080/cancel/",
}

func TestPaymentService_BuyItem(t *testing.T) {
	itemID := uuid.New()
	validItem := entities.Item{
		ID:       itemID,
		Name:     "Coffee",
		Price:    decimal.RequireFromString("4.50"),
		Currency: entities.CurrencyUSD,
	}
	validData, err := validItem.Marshal()
	require.NoError(t, err)

	procError := errors.New("stripe is down")

	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockPaymentRepo, proc *mocks.MockProcessor, pub *mocks.MockPublisher, cache *mocks.MockCache)
		want         string
		wantErr      error
	}{
		{
			name: "success from cache",
			mockBehavior: func(_ *mocks.MockPaymentRepo, proc *mocks.MockProcessor, pub *mocks.MockPublisher, cache *mocks.MockCache) {
				cache.EXPECT().Get(itemID.String()).Return(validData, true).Once()
				proc.EXPECT().
					CreateSession(mock.Anything, checkout.ItemSession(validItem, testURLs)).
					Return("cs_test_123", nil).Once()
				pub.EXPECT().SessionCreated(mock.Anything, mock.Anything).Return(nil).Once()
			},
			want: "cs_test_123",
		},
		{
			name: "success from repo and set to cache",
			mockBehavior: func(repo *mocks.MockPaymentRepo, proc *mocks.MockProcessor, pub *mocks.MockPublisher, cache *mocks.MockCache) {
				cache.EXPECT().Get(itemID.String()).Return(nil, false).Once()
				repo.EXPECT().GetItemByID(mock.Anything, itemID).Return(validItem, nil).Once()
				cache.EXPECT().Set(itemID.String(), mock.Anything).Return().Once()
				proc.EXPECT().
					CreateSession(mock.Anything, mock.Anything).
					Return("cs_test_123", nil).Once()
				pub.EXPECT().SessionCreated(mock.Anything, mock.Anything).Return(nil).Once()
			},
			want: "cs_test_123",
		},
		{
			name: "item not found",
			mockBehavior: func(repo *mocks.MockPaymentRepo, _ *mocks.MockProcessor, _ *mocks.MockPublisher, cache *mocks.MockCache) {
				cache.EXPECT().Get(itemID.String()).Return(nil, false).Once()
				repo.EXPECT().
					GetItemByID(mock.Anything, itemID).
					Return(entities.Item{}, entities.ErrItemNotFound).Once()
			},
			wantErr: entities.ErrItemNotFound,
		},
		{
			name: "processor fails",
			mockBehavior: func(_ *mocks.MockPaymentRepo, proc *mocks.MockProcessor, _ *mocks.MockPublisher, cache *mocks.MockCache) {
				cache.EXPECT().Get(itemID.String()).Return(validData, true).Once()
				proc.EXPECT().
					CreateSession(mock.Anything, mock.Anything).
					Return("", procError).Once()
			},
			wantErr: procError,
		},
		{
			name: "publish failure does not fail the purchase",
			mockBehavior: func(_ *mocks.MockPaymentRepo, proc *mocks.MockProcessor, pub *mocks.MockPublisher, cache *mocks.MockCache) {
				cache.EXPECT().Get(itemID.String()).Return(validData, true).Once()
				proc.EXPECT().
					CreateSession(mock.Anything, mock.Anything).
					Return("cs_test_123", nil).Once()
				pub.EXPECT().
					SessionCreated(mock.Anything, mock.Anything).
					Return(errors.New("kafka unavailable")).Once()
			},
			want: "cs_test_123",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockPaymentRepo(t)
			proc := mocks.NewMockProcessor(t)
			pub := mocks.NewMockPublisher(t)
			cache := mocks.NewMockCache(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, proc, pub, cache)

			svc := service.NewPaymentService(logger, repo, proc, pub, cache, testURLs)

			got, err := svc.BuyItem(context.Background(), itemID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPaymentService_BuyOrder(t *testing.T) {
	orderID := uuid.New()
	validOrder := entities.Order{
		ID: orderID,
		Items: []entities.Item{
			{ID: uuid.New(), Name: "Coffee", Price: decimal.RequireFromString("4.50"), Currency: entities.CurrencyUSD},
			{ID: uuid.New(), Name: "Bagel", Price: decimal.RequireFromString("2.25"), Currency: entities.CurrencyUSD},
		},
	}

	procError := errors.New("stripe is down")

	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockPaymentRepo, proc *mocks.MockProcessor, pub *mocks.MockPublisher)
		want         string
		wantErr      error
	}{
		{
			name: "success",
			mockBehavior: func(repo *mocks.MockPaymentRepo, proc *mocks.MockProcessor, pub *mocks.MockPublisher) {
				repo.EXPECT().GetOrderByID(mock.Anything, orderID).Return(validOrder, nil).Once()
				proc.EXPECT().
					CreateSession(mock.Anything, checkout.OrderSession(validOrder, testURLs)).
					Return("cs_test_order", nil).Once()
				pub.EXPECT().
					SessionCreated(mock.Anything, mock.Anything).
					Return(nil).Once()
			},
			want: "cs_test_order",
		},
		{
			name: "order not found",
			mockBehavior: func(repo *mocks.MockPaymentRepo, _ *mocks.MockProcessor, _ *mocks.MockPublisher) {
				repo.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "processor fails",
			mockBehavior: func(repo *mocks.MockPaymentRepo, proc *mocks.MockProcessor, _ *mocks.MockPublisher) {
				repo.EXPECT().GetOrderByID(mock.Anything, orderID).Return(validOrder, nil).Once()
				proc.EXPECT().
					CreateSession(mock.Anything, mock.Anything).
					Return("", procError).Once()
			},
			wantErr: procError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockPaymentRepo(t)
			proc := mocks.NewMockProcessor(t)
			pub := mocks.NewMockPublisher(t)
			cache := mocks.NewMockCache(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, proc, pub)

			svc := service.NewPaymentService(logger, repo, proc, pub, cache, testURLs)

			got, err := svc.BuyOrder(context.Background(), orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPaymentService_CreatePaymentIntent(t *testing.T) {
	itemID := uuid.New()
	validItem := entities.Item{
		ID:       itemID,
		Name:     "Coffee",
		Price:    decimal.RequireFromString("4.50"),
		Currency: entities.CurrencyUSD,
	}
	validData, err := validItem.Marshal()
	require.NoError(t, err)

	procError := errors.New("stripe is down")

	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockPaymentRepo, proc *mocks.MockProcessor, cache *mocks.MockCache)
		want         entities.PaymentIntent
		wantErr      error
	}{
		{
			name: "success",
			mockBehavior: func(_ *mocks.MockPaymentRepo, proc *mocks.MockProcessor, cache *mocks.MockCache) {
				cache.EXPECT().Get(itemID.String()).Return(validData, true).Once()
				proc.EXPECT().
					CreatePaymentIntent(mock.Anything, checkout.ItemIntent(validItem)).
					Return("pi_secret_123", nil).Once()
				proc.EXPECT().PublishableKey().Return("pk_test_123").Once()
			},
			want: entities.PaymentIntent{
				ClientSecret:   "pi_secret_123",
				PublishableKey: "pk_test_123",
			},
		},
		{
			name: "item not found",
			mockBehavior: func(repo *mocks.MockPaymentRepo, _ *mocks.MockProcessor, cache *mocks.MockCache) {
				cache.EXPECT().Get(itemID.String()).Return(nil, false).Once()
				repo.EXPECT().
					GetItemByID(mock.Anything, itemID).
					Return(entities.Item{}, entities.ErrItemNotFound).Once()
			},
			wantErr: entities.ErrItemNotFound,
		},
		{
			name: "processor fails",
			mockBehavior: func(_ *mocks.MockPaymentRepo, proc *mocks.MockProcessor, cache *mocks.MockCache) {
				cache.EXPECT().Get(itemID.String()).Return(validData, true).Once()
				proc.EXPECT().
					CreatePaymentIntent(mock.Anything, mock.Anything).
					Return("", procError).Once()
			},
			wantErr: procError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockPaymentRepo(t)
			proc := mocks.NewMockProcessor(t)
			pub := mocks.NewMockPublisher(t)
			cache := mocks.NewMockCache(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, proc, cache)

			svc := service.NewPaymentService(logger, repo, proc, pub, cache, testURLs)

			got, err := svc.CreatePaymentIntent(context.Background(), itemID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
