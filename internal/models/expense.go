package models

import (
	"fmt"
	"time"

	"shorelux/internal/domain"

	"github.com/shopspring/decimal"
)

// Expense covers all ten expense categories as one record tagged with
// Category; each category still gets its own ledger account via SourceTag.
type Expense struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Date           time.Time       `gorm:"type:date;not null" json:"date"`
	Category       string          `gorm:"size:50;not null;index" json:"category"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description    string          `gorm:"type:text" json:"description"`
	VoucherNo      string          `gorm:"size:50" json:"voucher_no"`
	BillFileURL    string          `gorm:"size:512" json:"bill_file_url"`
	VoucherFileURL string          `gorm:"size:512" json:"voucher_file_url"`
	StaffCode      string          `gorm:"size:50" json:"staff_code"` // salary expenses only
	CreatedAt      time.Time       `json:"created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

// SourceTag returns the ledger source_type tag for this expense's category.
func (e *Expense) SourceTag() string {
	return domain.ExpenseSourceTags[e.Category]
}

func (e *Expense) LedgerSource() (string, uint) {
	return e.SourceTag(), e.ID
}

func (e *Expense) LedgerEntry() LedgerEntry {
	desc := e.Description
	if desc == "" {
		desc = fmt.Sprintf("%s expense", e.SourceTag())
	}
	return LedgerEntry{
		Date:        e.Date,
		Description: desc,
		Debit:       e.Amount,
		Credit:      decimal.Zero,
	}
}
