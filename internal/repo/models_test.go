package repo

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemToEntity(t *testing.T) {
	id := uuid.New()

	t.Run("with description", func(t *testing.T) {
		row := Item{
			ItemID:      id,
			Name:        "Coffee",
			Description: sql.NullString{String: "hot", Valid: true},
			Price:       decimal.RequireFromString("4.50"),
			Currency:    "usd",
		}

		got := ItemToEntity(row)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "hot", got.Description)
		assert.Equal(t, "usd", string(got.Currency))
	})

	t.Run("null description becomes empty string", func(t *testing.T) {
		row := Item{ItemID: id, Name: "Coffee", Price: decimal.RequireFromString("4.50"), Currency: "usd"}

		got := ItemToEntity(row)
		assert.Equal(t, "", got.Description)
	})
}

func TestDiscountToEntity(t *testing.T) {
	id := uuid.New()

	t.Run("null coupon id becomes empty string", func(t *testing.T) {
		row := Discount{DiscountID: id, Name: "SAVE10", PercentOff: decimal.RequireFromString("10")}

		got := DiscountToEntity(row)
		assert.Equal(t, "", got.StripeCouponID)
	})

	t.Run("coupon id is kept", func(t *testing.T) {
		row := Discount{
			DiscountID:     id,
			Name:           "SAVE10",
			PercentOff:     decimal.RequireFromString("10"),
			StripeCouponID: sql.NullString{String: "SAVE10", Valid: true},
		}

		got := DiscountToEntity(row)
		assert.Equal(t, "SAVE10", got.StripeCouponID)
	})
}

func TestNullHelpers(t *testing.T) {
	assert.Equal(t, sql.NullString{}, nullString(""))
	assert.Equal(t, sql.NullString{String: "x", Valid: true}, nullString("x"))

	assert.Equal(t, uuid.NullUUID{}, nullUUID(nil))

	id := uuid.New()
	assert.Equal(t, uuid.NullUUID{UUID: id, Valid: true}, nullUUID(&id))
}
