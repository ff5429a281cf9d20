package repository

import (
	"time"

	"shorelux/internal/ledger"
	"shorelux/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerRepository is the GORM-backed ledger.Store. It is the only writer of
// ledger_entries; everything else goes through the projection engine.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) Transact(fn func(ledger.Store) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&LedgerRepository{db: tx})
	})
}

func (r *LedgerRepository) Append(e *models.LedgerEntry) error {
	return r.db.Create(e).Error
}

func (r *LedgerRepository) DeleteBySource(sourceType string, sourceID uint) error {
	return r.db.Where("source_type = ? AND source_id = ?", sourceType, sourceID).
		Delete(&models.LedgerEntry{}).Error
}

func (r *LedgerRepository) DeleteAll() error {
	return r.db.Exec("DELETE FROM ledger_entries").Error
}

func (r *LedgerRepository) UpdateBookingPending(bookingID uint, pending decimal.Decimal) error {
	return r.db.Model(&models.Booking{}).Where("id = ?", bookingID).
		Update("pending_amount", pending).Error
}

func (r *LedgerRepository) ListByAccount(sourceType string) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.Where("source_type = ?", sourceType).
		Order("date, id").Find(&entries).Error
	return entries, err
}

func (r *LedgerRepository) ListByDate(day time.Time) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.Where("date = ?", day.Format("2006-01-02")).
		Order("id").Find(&entries).Error
	return entries, err
}

func (r *LedgerRepository) MonthlyTotals(sourceType string, year int) ([]ledger.MonthlyTotal, error) {
	q := r.db.Model(&models.LedgerEntry{}).
		Select("YEAR(date) AS year, MONTH(date) AS month, SUM(credit) AS credit, SUM(debit) AS debit")
	if sourceType != "" {
		q = q.Where("source_type = ?", sourceType)
	}
	if year != 0 {
		q = q.Where("YEAR(date) = ?", year)
	}
	var totals []ledger.MonthlyTotal
	err := q.Group("YEAR(date), MONTH(date)").Order("year, month").Scan(&totals).Error
	return totals, err
}

// EachSource feeds every income and expense row to fn, for backfill.
func (r *LedgerRepository) EachSource(fn func(ledger.Source) error) error {
	var sales []models.SalesIncome
	if err := r.db.Find(&sales).Error; err != nil {
		return err
	}
	for i := range sales {
		if err := fn(&sales[i]); err != nil {
			return err
		}
	}
	var other []models.OtherIncome
	if err := r.db.Find(&other).Error; err != nil {
		return err
	}
	for i := range other {
		if err := fn(&other[i]); err != nil {
			return err
		}
	}
	var expenses []models.Expense
	if err := r.db.Find(&expenses).Error; err != nil {
		return err
	}
	for i := range expenses {
		if err := fn(&expenses[i]); err != nil {
			return err
		}
	}
	return nil
}

// EachBooking feeds every booking to fn, for backfill.
func (r *LedgerRepository) EachBooking(fn func(*models.Booking) error) error {
	var bookings []models.Booking
	if err := r.db.Find(&bookings).Error; err != nil {
		return err
	}
	for i := range bookings {
		if err := fn(&bookings[i]); err != nil {
			return err
		}
	}
	return nil
}
