package models

import (
	"fmt"
	"time"

	"shorelux/internal/domain"

	"github.com/shopspring/decimal"
)

type SalesIncome struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Date        time.Time       `gorm:"type:date;not null" json:"date"`
	Category    string          `gorm:"size:200" json:"category"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (SalesIncome) TableName() string {
	return "sales_incomes"
}

func (s *SalesIncome) LedgerSource() (string, uint) {
	return domain.SourceSalesIncome, s.ID
}

func (s *SalesIncome) LedgerEntry() LedgerEntry {
	desc := s.Description
	if desc == "" {
		desc = fmt.Sprintf("Sales Income (%s)", s.Category)
	}
	return LedgerEntry{
		Date:        s.Date,
		Description: desc,
		Credit:      s.Amount,
		Debit:       decimal.Zero,
	}
}

type OtherIncome struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Date        time.Time       `gorm:"type:date;not null" json:"date"`
	Category    string          `gorm:"size:200" json:"category"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (OtherIncome) TableName() string {
	return "other_incomes"
}

func (o *OtherIncome) LedgerSource() (string, uint) {
	return domain.SourceOtherIncome, o.ID
}

func (o *OtherIncome) LedgerEntry() LedgerEntry {
	desc := o.Description
	if desc == "" {
		desc = fmt.Sprintf("Other Income (%s)", o.Category)
	}
	return LedgerEntry{
		Date:        o.Date,
		Description: desc,
		Credit:      o.Amount,
		Debit:       decimal.Zero,
	}
}
