package ledger

import (
	"fmt"

	"shorelux/internal/domain"
	"shorelux/internal/models"

	"github.com/shopspring/decimal"
)

// Projector keeps ledger_entries consistent with source record mutations.
//
// Non-booking records are idempotent: every save deletes and recreates the
// single row for their (source_type, source_id). Bookings are append-only:
// each save that increases paid_amount adds a new credit row for the delta,
// and existing booking rows are never touched by an update.
//
// Callers (the repositories) invoke these hooks after the source record's own
// save has completed. A projection failure is theirs to log, not to surface:
// the ledger is auxiliary bookkeeping, never a precondition for the primary
// write.
type Projector struct {
	store Store
}

func NewProjector(store Store) *Projector {
	return &Projector{store: store}
}

// SourceSaved replaces the ledger row for a saved income or expense record.
// Safe to call on create as well; the delete is a no-op then.
func (p *Projector) SourceSaved(s Source) error {
	sourceType, sourceID := s.LedgerSource()
	if sourceType == "" || sourceID == 0 {
		return fmt.Errorf("ledger: unsaved or untagged source %q/%d", sourceType, sourceID)
	}
	entry := s.LedgerEntry()
	entry.SourceType = sourceType
	entry.SourceID = sourceID
	return p.store.Transact(func(st Store) error {
		if err := st.DeleteBySource(sourceType, sourceID); err != nil {
			return err
		}
		return st.Append(&entry)
	})
}

// SourceDeleted removes all ledger rows for a deleted income or expense.
func (p *Projector) SourceDeleted(s Source) error {
	sourceType, sourceID := s.LedgerSource()
	return p.store.DeleteBySource(sourceType, sourceID)
}

// BookingSaved corrects the booking's pending_amount and posts the positive
// payment delta as a credit, both in one transaction. previousPaid is the
// paid_amount persisted before this save was applied (zero for a new
// booking). A decrease in paid_amount posts nothing: only money received is
// recorded, corrections just fix pending_amount.
func (p *Projector) BookingSaved(b *models.Booking, previousPaid decimal.Decimal, isNew bool) error {
	pending := b.BookingPrice.Sub(b.PaidAmount)

	delta := b.PaidAmount.Sub(previousPaid)
	if isNew {
		delta = b.PaidAmount
	}

	err := p.store.Transact(func(st Store) error {
		if !b.PendingAmount.Equal(pending) {
			if err := st.UpdateBookingPending(b.ID, pending); err != nil {
				return err
			}
		}
		if delta.IsPositive() {
			return st.Append(&models.LedgerEntry{
				Date:        b.LedgerDate(),
				SourceType:  domain.SourceBooking,
				SourceID:    b.ID,
				Description: fmt.Sprintf("Booking payment received (%s)", b.GuestName),
				Credit:      delta,
				Debit:       decimal.Zero,
			})
		}
		return nil
	})
	if err != nil {
		return err
	}
	// Applied only after commit, so the in-memory booking keeps mirroring the
	// stored row when the transaction rolls back.
	b.PendingAmount = pending
	return nil
}

// BookingDeleted removes every ledger row the booking ever produced.
func (p *Projector) BookingDeleted(b *models.Booking) error {
	return p.store.DeleteBySource(domain.SourceBooking, b.ID)
}
