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

	"payments-service/internal/entities"
	"payments-service/internal/service"
	mocks "payments-service/internal/service/mocks"
	txMocks "payments-service/pkg/trm/mocks"
)

func TestCatalogService_CreateItem(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		item         entities.Item
		mockBehavior func(repo *mocks.MockCatalogRepo)
		wantCurrency entities.Currency
		wantErr      error
	}{
		{
			name: "OK",
			item: entities.Item{Name: "Coffee", Price: decimal.RequireFromString("4.50"), Currency: entities.CurrencyEUR},
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().SaveItem(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantCurrency: entities.CurrencyEUR,
		},
		{
			name: "defaults to usd",
			item: entities.Item{Name: "Coffee", Price: decimal.RequireFromString("4.50")},
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().SaveItem(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantCurrency: entities.CurrencyUSD,
		},
		{
			name:         "negative price",
			item:         entities.Item{Name: "Coffee", Price: decimal.RequireFromString("-1")},
			mockBehavior: func(repo *mocks.MockCatalogRepo) {},
			wantErr:      entities.ErrInvalidItem,
		},
		{
			name: "repo fails",
			item: entities.Item{Name: "Coffee", Price: decimal.RequireFromString("4.50")},
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().SaveItem(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepo(t)
			invalidator := mocks.NewMockInvalidator(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo)

			svc := service.NewCatalogService(logger, tx, repo, invalidator)

			got, err := svc.CreateItem(context.Background(), tc.item)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, tc.wantCurrency, got.Currency)
		})
	}
}

func TestCatalogService_UpdateItem(t *testing.T) {
	itemID := uuid.New()
	item := entities.Item{ID: itemID, Name: "Coffee", Price: decimal.RequireFromString("4.50"), Currency: entities.CurrencyUSD}

	t.Run("invalidates cache on success", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		invalidator := mocks.NewMockInvalidator(t)
		tx := txMocks.NewMockManager(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		repo.EXPECT().UpdateItem(mock.Anything, item).Return(nil).Once()
		invalidator.EXPECT().Del(itemID.String()).Return().Once()

		svc := service.NewCatalogService(logger, tx, repo, invalidator)

		err := svc.UpdateItem(context.Background(), item)
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		invalidator := mocks.NewMockInvalidator(t)
		tx := txMocks.NewMockManager(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		repo.EXPECT().UpdateItem(mock.Anything, item).Return(entities.ErrItemNotFound).Once()

		svc := service.NewCatalogService(logger, tx, repo, invalidator)

		err := svc.UpdateItem(context.Background(), item)
		assert.ErrorIs(t, err, entities.ErrItemNotFound)
	})
}

func TestCatalogService_CreateOrder(t *testing.T) {
	itemA := entities.Item{ID: uuid.New(), Name: "Coffee", Price: decimal.RequireFromString("4.50"), Currency: entities.CurrencyUSD}
	itemB := entities.Item{ID: uuid.New(), Name: "Bagel", Price: decimal.RequireFromString("2.25"), Currency: entities.CurrencyUSD}
	discount := entities.Discount{ID: uuid.New(), Name: "SAVE10", PercentOff: decimal.RequireFromString("10")}
	tax := entities.Tax{ID: uuid.New(), Name: "VAT", Percentage: decimal.RequireFromString("20")}

	testCases := []struct {
		name         string
		itemIDs      []uuid.UUID
		discountID   *uuid.UUID
		taxID        *uuid.UUID
		mockBehavior func(repo *mocks.MockCatalogRepo)
		wantItems    []entities.Item
		wantErr      error
	}{
		{
			name:       "full order with discount and tax",
			itemIDs:    []uuid.UUID{itemA.ID, itemB.ID},
			discountID: &discount.ID,
			taxID:      &tax.ID,
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().
					GetItemsByIDs(mock.Anything, []uuid.UUID{itemA.ID, itemB.ID}).
					Return([]entities.Item{itemA, itemB}, nil).Once()
				repo.EXPECT().GetDiscountByID(mock.Anything, discount.ID).Return(discount, nil).Once()
				repo.EXPECT().GetTaxByID(mock.Anything, tax.ID).Return(tax, nil).Once()
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantItems: []entities.Item{itemA, itemB},
		},
		{
			name:    "duplicate items kept as separate positions",
			itemIDs: []uuid.UUID{itemA.ID, itemA.ID},
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().
					GetItemsByIDs(mock.Anything, []uuid.UUID{itemA.ID, itemA.ID}).
					Return([]entities.Item{itemA, itemA}, nil).Once()
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantItems: []entities.Item{itemA, itemA},
		},
		{
			name:    "unknown item",
			itemIDs: []uuid.UUID{itemA.ID},
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().
					GetItemsByIDs(mock.Anything, []uuid.UUID{itemA.ID}).
					Return(nil, entities.ErrItemNotFound).Once()
			},
			wantErr: entities.ErrItemNotFound,
		},
		{
			name:       "unknown discount",
			itemIDs:    []uuid.UUID{itemA.ID},
			discountID: &discount.ID,
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().
					GetItemsByIDs(mock.Anything, []uuid.UUID{itemA.ID}).
					Return([]entities.Item{itemA}, nil).Once()
				repo.EXPECT().
					GetDiscountByID(mock.Anything, discount.ID).
					Return(entities.Discount{}, entities.ErrDiscountNotFound).Once()
			},
			wantErr: entities.ErrDiscountNotFound,
		},
		{
			name:    "unknown tax",
			itemIDs: []uuid.UUID{itemA.ID},
			taxID:   &tax.ID,
			mockBehavior: func(repo *mocks.MockCatalogRepo) {
				repo.EXPECT().
					GetItemsByIDs(mock.Anything, []uuid.UUID{itemA.ID}).
					Return([]entities.Item{itemA}, nil).Once()
				repo.EXPECT().
					GetTaxByID(mock.Anything, tax.ID).
					Return(entities.Tax{}, entities.ErrTaxNotFound).Once()
			},
			wantErr: entities.ErrTaxNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepo(t)
			invalidator := mocks.NewMockInvalidator(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			tc.mockBehavior(repo)

			svc := service.NewCatalogService(logger, tx, repo, invalidator)

			got, err := svc.CreateOrder(context.Background(), tc.itemIDs, tc.discountID, tc.taxID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, tc.wantItems, got.Items)
			if tc.discountID != nil {
				require.NotNil(t, got.Discount)
				assert.Equal(t, discount, *got.Discount)
			}
			if tc.taxID != nil {
				require.NotNil(t, got.Tax)
				assert.Equal(t, tax, *got.Tax)
			}
		})
	}
}
