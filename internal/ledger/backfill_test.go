package ledger_test

import (
	"testing"
	"time"

	"shorelux/internal/domain"
	"shorelux/internal/ledger"
	"shorelux/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memIterator struct {
	sources  []ledger.Source
	bookings []*models.Booking
}

func (it *memIterator) EachSource(fn func(ledger.Source) error) error {
	for _, s := range it.sources {
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}

func (it *memIterator) EachBooking(fn func(*models.Booking) error) error {
	for _, b := range it.bookings {
		if err := fn(b); err != nil {
			return err
		}
	}
	return nil
}

func TestBackfillRebuildsFromSources(t *testing.T) {
	store := newMemStore()
	proj := ledger.NewProjector(store)

	// Stale rows that a correct rebuild must discard.
	require.NoError(t, store.Append(&models.LedgerEntry{
		Date: day(2026, time.January, 1), SourceType: "salesincome", SourceID: 99, Credit: dec("12345"),
	}))

	it := &memIterator{
		sources: []ledger.Source{
			&models.SalesIncome{ID: 1, Date: day(2026, time.March, 1), Amount: dec("700")},
			&models.Expense{ID: 2, Date: day(2026, time.March, 2), Category: domain.ExpenseMess, Amount: dec("150")},
		},
	}
	bf := ledger.NewBackfiller(store, proj, it)

	count, err := bf.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	sales, err := store.ListByAccount(domain.SourceSalesIncome)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, uint(1), sales[0].SourceID)

	mess, err := store.ListByAccount("messexpense")
	require.NoError(t, err)
	assert.Len(t, mess, 1)
}

func TestBackfillCollapsesBookingPayments(t *testing.T) {
	store := newMemStore()
	proj := ledger.NewProjector(store)

	b := &models.Booking{
		ID:           1,
		GuestName:    "Asha",
		BookingDate:  day(2026, time.May, 1),
		BookingPrice: dec("10000"),
		PaidAmount:   dec("3000"),
	}
	require.NoError(t, proj.BookingSaved(b, decimal.Zero, true))
	previous := b.PaidAmount
	b.PaidAmount = dec("5000")
	require.NoError(t, proj.BookingSaved(b, previous, false))

	// Two incremental rows before the rebuild.
	entries, err := store.ListByAccount(domain.SourceBooking)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	it := &memIterator{bookings: []*models.Booking{b}}
	bf := ledger.NewBackfiller(store, proj, it)
	count, err := bf.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The per-payment history is gone; one row carries the current total.
	entries, err = store.ListByAccount(domain.SourceBooking)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Credit.Equal(dec("5000")))
}
