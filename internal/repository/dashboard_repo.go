package repository

import (
	"time"

	"shorelux/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardRepository aggregates source records directly (not the ledger)
// for the summary cards and trend charts.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

type sumRow struct {
	Total decimal.Decimal
}

func (r *DashboardRepository) BookingCount(start, end time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&models.Booking{}).
		Where("booking_date BETWEEN ? AND ?", dateStr(start), dateStr(end)).
		Count(&n).Error
	return n, err
}

func (r *DashboardRepository) BookingRevenue(start, end time.Time) (decimal.Decimal, error) {
	var row sumRow
	err := r.db.Model(&models.Booking{}).
		Select("COALESCE(SUM(booking_price), 0) AS total").
		Where("booking_date BETWEEN ? AND ?", dateStr(start), dateStr(end)).
		Scan(&row).Error
	return row.Total, err
}

func (r *DashboardRepository) SalesIncomeTotal(start, end time.Time) (decimal.Decimal, error) {
	return r.sumAmount(&models.SalesIncome{}, start, end)
}

func (r *DashboardRepository) OtherIncomeTotal(start, end time.Time) (decimal.Decimal, error) {
	return r.sumAmount(&models.OtherIncome{}, start, end)
}

func (r *DashboardRepository) ExpenseTotal(start, end time.Time) (decimal.Decimal, error) {
	return r.sumAmount(&models.Expense{}, start, end)
}

func (r *DashboardRepository) sumAmount(model interface{}, start, end time.Time) (decimal.Decimal, error) {
	var row sumRow
	err := r.db.Model(model).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("date BETWEEN ? AND ?", dateStr(start), dateStr(end)).
		Scan(&row).Error
	return row.Total, err
}

func dateStr(t time.Time) string {
	return t.Format("2006-01-02")
}
