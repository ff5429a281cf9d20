package ledger

import (
	"time"

	"shorelux/internal/models"

	"github.com/shopspring/decimal"
)

// Store is the persistence surface the projection engine and query layer
// need. The production implementation wraps GORM; tests use an in-memory one.
type Store interface {
	// Transact runs fn against a store bound to a single transaction.
	// Everything fn writes commits or rolls back together.
	Transact(fn func(Store) error) error

	Append(e *models.LedgerEntry) error
	DeleteBySource(sourceType string, sourceID uint) error
	DeleteAll() error

	// UpdateBookingPending writes the corrected pending_amount on a booking
	// row. It lives here so the correction can share a transaction with the
	// ledger rows it accompanies.
	UpdateBookingPending(bookingID uint, pending decimal.Decimal) error

	// ListByAccount returns all entries for one source_type ordered by
	// (date, id) ascending.
	ListByAccount(sourceType string) ([]models.LedgerEntry, error)
	// ListByDate returns all entries on the given day ordered by id.
	ListByDate(day time.Time) ([]models.LedgerEntry, error)
	// MonthlyTotals sums credit and debit per (year, month), chronologically.
	// Empty sourceType or zero year means no filter.
	MonthlyTotals(sourceType string, year int) ([]MonthlyTotal, error)
}

// MonthlyTotal is one (year, month) aggregation row.
type MonthlyTotal struct {
	Year   int
	Month  int
	Credit decimal.Decimal
	Debit  decimal.Decimal
}

// Source is implemented by any record whose current state projects to a
// single ledger entry (incomes and expenses). Bookings are handled
// separately because their ledger trace is append-only.
type Source interface {
	// LedgerSource identifies the record as a (source_type, source_id) pair.
	LedgerSource() (sourceType string, sourceID uint)
	// LedgerEntry projects the record's current state. SourceType and
	// SourceID are filled in by the projector.
	LedgerEntry() models.LedgerEntry
}
