package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the unified projection record. Every income, expense and
// booking payment derives one or more rows here, keyed by
// (source_type, source_id). Rows are only ever written by the projection
// engine; everything else reads.
type LedgerEntry struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	SourceType  string          `gorm:"size:100;not null;index:idx_ledger_source" json:"source_type"`
	SourceID    uint            `gorm:"not null;index:idx_ledger_source" json:"source_id"`
	Description string          `gorm:"type:text" json:"description"`
	Debit       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"debit"`
	Credit      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"credit"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
