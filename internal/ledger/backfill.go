package ledger

import (
	"github.com/shopspring/decimal"

	"shorelux/internal/models"
)

// SourceIterator walks every persisted source record. Implemented by the
// repository layer for backfill.
type SourceIterator interface {
	// EachSource visits every income and expense record.
	EachSource(fn func(Source) error) error
	// EachBooking visits every booking.
	EachBooking(fn func(*models.Booking) error) error
}

// Backfiller wipes the ledger and regenerates it from current source
// records.
//
// Known limitation: bookings are replayed through the create path, so each
// collapses to at most one credit entry equal to its current paid_amount.
// The incremental payment history cannot be reconstructed because only the
// running total is stored, not the individual payments.
type Backfiller struct {
	store   Store
	proj    *Projector
	sources SourceIterator
}

func NewBackfiller(store Store, proj *Projector, sources SourceIterator) *Backfiller {
	return &Backfiller{store: store, proj: proj, sources: sources}
}

// Run deletes every ledger entry and re-projects all source records,
// returning how many records were processed. A mid-run failure leaves a
// partial ledger; running again completes it, since every projection is
// idempotent per source record.
func (bf *Backfiller) Run() (int, error) {
	if err := bf.store.DeleteAll(); err != nil {
		return 0, err
	}
	count := 0
	err := bf.sources.EachSource(func(s Source) error {
		if err := bf.proj.SourceSaved(s); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}
	err = bf.sources.EachBooking(func(b *models.Booking) error {
		if err := bf.proj.BookingSaved(b, decimal.Zero, true); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}
