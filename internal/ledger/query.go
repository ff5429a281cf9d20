package ledger

import (
	"time"

	"shorelux/internal/models"

	"github.com/shopspring/decimal"
)

// AccountEntry is a ledger row plus the balance after applying it.
type AccountEntry struct {
	models.LedgerEntry
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// AccountLedger returns all entries for one account (source_type) in
// (date, id) order with a running credit-minus-debit balance: receipts and
// incomes push the balance up, expenses pull it down.
func AccountLedger(store Store, account string) ([]AccountEntry, error) {
	entries, err := store.ListByAccount(account)
	if err != nil {
		return nil, err
	}
	out := make([]AccountEntry, 0, len(entries))
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.Credit).Sub(e.Debit)
		out = append(out, AccountEntry{LedgerEntry: e, RunningBalance: balance})
	}
	return out, nil
}

// Daybook lists every entry on one day in insertion order. No balance is
// computed; it is a plain filtered listing.
func Daybook(store Store, day time.Time) ([]models.LedgerEntry, error) {
	return store.ListByDate(day)
}

// MonthSummary is one month's credit/debit totals with the month spelled out.
type MonthSummary struct {
	Year   int             `json:"year"`
	Month  string          `json:"month"`
	Credit decimal.Decimal `json:"credit"`
	Debit  decimal.Decimal `json:"debit"`
}

// MonthlySummary groups entries by calendar month, optionally filtered by
// account and year, ordered chronologically.
func MonthlySummary(store Store, account string, year int) ([]MonthSummary, error) {
	totals, err := store.MonthlyTotals(account, year)
	if err != nil {
		return nil, err
	}
	out := make([]MonthSummary, 0, len(totals))
	for _, t := range totals {
		out = append(out, MonthSummary{
			Year:   t.Year,
			Month:  time.Month(t.Month).String(),
			Credit: t.Credit,
			Debit:  t.Debit,
		})
	}
	return out, nil
}
