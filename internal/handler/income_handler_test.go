package handler

import (
	"testing"
	"time"

	"shorelux/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUnifiedIncome(t *testing.T) {
	date := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	bookings := []models.Booking{
		{
			ID:           1,
			GuestName:    "Asha",
			RoomNo:       "101",
			BookingType:  "Regular",
			BookingDate:  date(5),
			BookingPrice: decimal.RequireFromString("10000"),
			PaidAmount:   decimal.RequireFromString("3000"),
		},
	}
	sales := []models.SalesIncome{
		{ID: 2, Date: date(10), Category: "Restaurant", Amount: decimal.RequireFromString("2500")},
	}
	other := []models.OtherIncome{
		{ID: 3, Date: date(1), Category: "Parking", Amount: decimal.RequireFromString("400")},
	}

	items, total := buildUnifiedIncome(bookings, sales, other)

	require.Len(t, items, 3)
	// Most recent first, across all three sources.
	assert.Equal(t, "Sales Income", items[0].Type)
	assert.Equal(t, "Booking", items[1].Type)
	assert.Equal(t, "Other Income", items[2].Type)

	// Bookings contribute booking_price, not paid_amount.
	assert.True(t, total.Equal(decimal.RequireFromString("12900")))
	assert.Equal(t, "Guest: Asha, Room: 101, Type: Regular", items[1].Description)
	paid, ok := items[1].Details["paid_amount"].(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, paid.Equal(decimal.RequireFromString("3000")))
}

func TestBuildUnifiedIncomeEmpty(t *testing.T) {
	items, total := buildUnifiedIncome(nil, nil, nil)
	assert.Empty(t, items)
	assert.True(t, total.IsZero())
}
