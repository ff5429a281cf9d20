package ledger_test

import (
	"testing"
	"time"

	"shorelux/internal/ledger"
	"shorelux/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountLedgerRunningBalance(t *testing.T) {
	store := newMemStore()
	seed := []models.LedgerEntry{
		{Date: day(2026, time.March, 1), SourceType: "cafeteriaexpense", SourceID: 1, Credit: dec("100"), Debit: decimal.Zero},
		{Date: day(2026, time.March, 2), SourceType: "cafeteriaexpense", SourceID: 2, Credit: decimal.Zero, Debit: dec("40")},
		{Date: day(2026, time.March, 3), SourceType: "cafeteriaexpense", SourceID: 3, Credit: dec("10"), Debit: decimal.Zero},
	}
	for i := range seed {
		require.NoError(t, store.Append(&seed[i]))
	}

	entries, err := ledger.AccountLedger(store, "cafeteriaexpense")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].RunningBalance.Equal(dec("100")))
	assert.True(t, entries[1].RunningBalance.Equal(dec("60")))
	assert.True(t, entries[2].RunningBalance.Equal(dec("70")))
}

func TestAccountLedgerIgnoresOtherAccounts(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Append(&models.LedgerEntry{
		Date: day(2026, time.March, 1), SourceType: "salesincome", SourceID: 1, Credit: dec("500"),
	}))
	require.NoError(t, store.Append(&models.LedgerEntry{
		Date: day(2026, time.March, 1), SourceType: "laundryexpense", SourceID: 1, Debit: dec("200"),
	}))

	entries, err := ledger.AccountLedger(store, "salesincome")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Credit.Equal(dec("500")))
}

func TestDaybookFiltersByDay(t *testing.T) {
	store := newMemStore()
	target := day(2026, time.April, 10)
	require.NoError(t, store.Append(&models.LedgerEntry{Date: target, SourceType: "salesincome", SourceID: 1, Credit: dec("250")}))
	require.NoError(t, store.Append(&models.LedgerEntry{Date: target, SourceType: "messexpense", SourceID: 2, Debit: dec("90")}))
	require.NoError(t, store.Append(&models.LedgerEntry{Date: day(2026, time.April, 11), SourceType: "salesincome", SourceID: 3, Credit: dec("777")}))

	entries, err := ledger.Daybook(store, target)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestMonthlySummary(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Append(&models.LedgerEntry{Date: day(2026, time.January, 5), SourceType: "booking", SourceID: 1, Credit: dec("3000")}))
	require.NoError(t, store.Append(&models.LedgerEntry{Date: day(2026, time.January, 20), SourceType: "salaryexpense", SourceID: 1, Debit: dec("1200")}))
	require.NoError(t, store.Append(&models.LedgerEntry{Date: day(2026, time.February, 2), SourceType: "booking", SourceID: 2, Credit: dec("4500")}))

	summary, err := ledger.MonthlySummary(store, "", 2026)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "January", summary[0].Month)
	assert.True(t, summary[0].Credit.Equal(dec("3000")))
	assert.True(t, summary[0].Debit.Equal(dec("1200")))
	assert.Equal(t, "February", summary[1].Month)
	assert.True(t, summary[1].Credit.Equal(dec("4500")))
}

func TestMonthlySummaryFilteredByAccount(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Append(&models.LedgerEntry{Date: day(2026, time.January, 5), SourceType: "booking", SourceID: 1, Credit: dec("3000")}))
	require.NoError(t, store.Append(&models.LedgerEntry{Date: day(2026, time.January, 8), SourceType: "salesincome", SourceID: 1, Credit: dec("800")}))

	summary, err := ledger.MonthlySummary(store, "salesincome", 2026)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.True(t, summary[0].Credit.Equal(dec("800")))
}
