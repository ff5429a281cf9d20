package ledger_test

import (
	"errors"
	"testing"
	"time"

	"shorelux/internal/domain"
	"shorelux/internal/ledger"
	"shorelux/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSourceSavedIsIdempotent(t *testing.T) {
	store := newMemStore()
	proj := ledger.NewProjector(store)

	income := &models.SalesIncome{
		ID:     7,
		Date:   day(2026, time.March, 10),
		Amount: dec("1500"),
	}
	require.NoError(t, proj.SourceSaved(income))
	require.NoError(t, proj.SourceSaved(income))

	entries, err := store.ListByAccount(domain.SourceSalesIncome)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Credit.Equal(dec("1500")))
	assert.Equal(t, uint(7), entries[0].SourceID)
}

func TestSourceSavedReplacesOnEdit(t *testing.T) {
	store := newMemStore()
	proj := ledger.NewProjector(store)

	expense := &models.Expense{
		ID:       3,
		Date:     day(2026, time.March, 12),
		Category: domain.ExpenseLaundry,
		Amount:   dec("800"),
	}
	require.NoError(t, proj.SourceSaved(expense))

	expense.Amount = dec("950")
	require.NoError(t, proj.SourceSaved(expense))

	entries, err := store.ListByAccount("laundryexpense")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Debit.Equal(dec("950")))
}

func TestSourceSavedRejectsUnsavedRecord(t *testing.T) {
	store := newMemStore()
	proj := ledger.NewProjector(store)

	err := proj.SourceSaved(&models.SalesIncome{Date: day(2026, time.March, 1), Amount: dec("10")})
	assert.Error(t, err)
	assert.Empty(t, store.entries)
}

func TestSourceDeletedRemovesEntries(t *testing.T) {
	store := newMemStore()
	proj := ledger.NewProjector(store)

	income := &models.OtherIncome{ID: 4, Date: day(2026, time.April, 2), Amount: dec("300")}
	require.NoError(t, proj.SourceSaved(income))
	require.NoError(t, proj.SourceDeleted(income))

	entries, err := store.ListByAccount(domain.SourceOtherIncome)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBookingPaymentsAppend(t *testing.T) {
	store := newMemStore()
	proj := ledger.NewProjector(store)

	b := &models.Booking{
		ID:            1,
		GuestName:     "Asha",
		BookingDate:   day(2026, time.May, 1),
		BookingPrice:  dec("10000"),
		PaidAmount:    dec("3000"),
		PendingAmount: dec("7000"),
	}
	require.NoError(t, proj.BookingSaved(b, decimal.Zero, true))

	entries, err := store.ListByAccount(domain.SourceBooking)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Credit.Equal(dec("3000")))

	// Guest pays another 2000.
	previous := b.PaidAmount
	b.PaidAmount = dec("5000")
	require.NoError(t, proj.BookingSaved(b, previous, false))

	entries, err = store.ListByAccount(domain.SourceBooking)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Credit.Equal(dec("3000")), "earlier rows must stay untouched")
	assert.True(t, entries[1].Credit.Equal(dec("2000")))
	assert.True(t, b.PendingAmount.Equal(dec("5000")))
	assert.True(t, store.pending[b.ID].Equal(dec("5000")))
}

func TestBookingPaymentDecreasePostsNothing(t *testing.T) {
	store := newMemStore()
	proj := ledger.NewProjector(store)

	b := &models.Booking{
		ID:           2,
		GuestName:    "Ravi",
		BookingDate:  day(2026, time.May, 3),
		BookingPrice: dec("10000"),
		PaidAmount:   dec("5000"),
	}
	require.NoError(t, proj.BookingSaved(b, decimal.Zero, true))

	// Correction: the 5000 was a typo, only 4000 was received.
	previous := b.PaidAmount
	b.PaidAmount = dec("4000")
	require.NoError(t, proj.BookingSaved(b, previous, false))

	entries, err := store.ListByAccount(domain.SourceBooking)
	require.NoError(t, err)
	require.Len(t, entries, 1, "a decrease must not post a ledger row")
	assert.True(t, entries[0].Credit.Equal(dec("5000")))
	assert.True(t, b.PendingAmount.Equal(dec("6000")), "pending must still be recomputed")
}

func TestBookingUnchangedPaidPostsNothing(t *testing.T) {
	store := newMemStore()
	proj := ledger.NewProjector(store)

	b := &models.Booking{
		ID:            3,
		GuestName:     "Meera",
		BookingDate:   day(2026, time.May, 4),
		BookingPrice:  dec("8000"),
		PaidAmount:    dec("8000"),
		PendingAmount: dec("0"),
	}
	require.NoError(t, proj.BookingSaved(b, decimal.Zero, true))
	require.NoError(t, proj.BookingSaved(b, b.PaidAmount, false))

	entries, err := store.ListByAccount(domain.SourceBooking)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBookingDeletedRemovesAllRows(t *testing.T) {
	store := newMemStore()
	proj := ledger.NewProjector(store)

	b := &models.Booking{
		ID:           9,
		GuestName:    "Noor",
		BookingDate:  day(2026, time.June, 1),
		BookingPrice: dec("6000"),
		PaidAmount:   dec("2000"),
	}
	require.NoError(t, proj.BookingSaved(b, decimal.Zero, true))
	previous := b.PaidAmount
	b.PaidAmount = dec("6000")
	require.NoError(t, proj.BookingSaved(b, previous, false))

	require.NoError(t, proj.BookingDeleted(b))
	entries, err := store.ListByAccount(domain.SourceBooking)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBookingSaveRollsBackAsOneUnit(t *testing.T) {
	store := newMemStore()
	proj := ledger.NewProjector(store)

	b := &models.Booking{
		ID:           1,
		GuestName:    "Asha",
		BookingDate:  day(2026, time.May, 1),
		BookingPrice: dec("10000"),
		PaidAmount:   dec("3000"),
	}
	store.appendErr = errors.New("ledger store unavailable")

	err := proj.BookingSaved(b, decimal.Zero, true)
	require.Error(t, err)

	// The pending correction and the credit entry commit together or not at
	// all: the failed entry write must take the correction down with it.
	assert.Empty(t, store.entries)
	_, corrected := store.pending[b.ID]
	assert.False(t, corrected, "pending correction must not survive the rollback")
	assert.True(t, b.PendingAmount.IsZero(), "in-memory booking must keep matching the stored row")

	// The same save succeeds once the store recovers.
	store.appendErr = nil
	require.NoError(t, proj.BookingSaved(b, decimal.Zero, true))
	entries, err := store.ListByAccount(domain.SourceBooking)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, store.pending[b.ID].Equal(dec("7000")))
	assert.True(t, b.PendingAmount.Equal(dec("7000")))
}

func TestBookingLedgerDateFallsBackToCheckin(t *testing.T) {
	store := newMemStore()
	proj := ledger.NewProjector(store)

	checkin := day(2026, time.July, 15)
	b := &models.Booking{
		ID:           5,
		GuestName:    "Dev",
		CheckinDate:  checkin,
		BookingPrice: dec("4000"),
		PaidAmount:   dec("4000"),
	}
	require.NoError(t, proj.BookingSaved(b, decimal.Zero, true))

	entries, err := store.ListByAccount(domain.SourceBooking)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Date.Equal(checkin))
}
