package models_test

import (
	"testing"
	"time"

	"shorelux/internal/domain"
	"shorelux/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExpenseSourceTagPerCategory(t *testing.T) {
	e := &models.Expense{ID: 1, Category: domain.ExpenseCafeteria}
	tag, id := e.LedgerSource()
	assert.Equal(t, "cafeteriaexpense", tag)
	assert.Equal(t, uint(1), id)

	e.Category = domain.ExpenseOther
	tag, _ = e.LedgerSource()
	assert.Equal(t, "otherexpense", tag)
}

func TestExpenseLedgerEntryDefaults(t *testing.T) {
	e := &models.Expense{
		ID:       2,
		Date:     time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		Category: domain.ExpenseSalary,
		Amount:   decimal.RequireFromString("12000"),
	}
	entry := e.LedgerEntry()
	assert.Equal(t, "salaryexpense expense", entry.Description)
	assert.True(t, entry.Debit.Equal(decimal.RequireFromString("12000")))
	assert.True(t, entry.Credit.IsZero())

	e.Description = "March salaries"
	assert.Equal(t, "March salaries", e.LedgerEntry().Description)
}

func TestIncomeLedgerEntryDefaults(t *testing.T) {
	s := &models.SalesIncome{
		ID:       3,
		Date:     time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC),
		Category: "Restaurant",
		Amount:   decimal.RequireFromString("2500"),
	}
	entry := s.LedgerEntry()
	assert.Equal(t, "Sales Income (Restaurant)", entry.Description)
	assert.True(t, entry.Credit.Equal(decimal.RequireFromString("2500")))
	assert.True(t, entry.Debit.IsZero())
}

func TestBookingLedgerDate(t *testing.T) {
	booked := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	checkin := time.Date(2026, time.May, 3, 14, 0, 0, 0, time.UTC)

	b := &models.Booking{BookingDate: booked, CheckinDate: checkin}
	assert.True(t, b.LedgerDate().Equal(booked))

	b.BookingDate = time.Time{}
	assert.True(t, b.LedgerDate().Equal(checkin))
}
