package ledger_test

import (
	"sort"
	"time"

	"shorelux/internal/ledger"
	"shorelux/internal/models"

	"github.com/shopspring/decimal"
)

// memStore is an in-memory ledger.Store for exercising the projection engine
// without a database. appendErr, when set, makes every Append fail so tests
// can drive the rollback path.
type memStore struct {
	entries   []models.LedgerEntry
	pending   map[uint]decimal.Decimal // bookingID -> corrected pending_amount
	nextID    uint
	appendErr error
}

func newMemStore() *memStore {
	return &memStore{pending: map[uint]decimal.Decimal{}, nextID: 1}
}

// Transact mirrors a database transaction: everything fn wrote, ledger rows
// and pending corrections alike, is restored when fn fails.
func (m *memStore) Transact(fn func(ledger.Store) error) error {
	entriesSnap := make([]models.LedgerEntry, len(m.entries))
	copy(entriesSnap, m.entries)
	pendingSnap := make(map[uint]decimal.Decimal, len(m.pending))
	for id, p := range m.pending {
		pendingSnap[id] = p
	}
	idSnap := m.nextID
	if err := fn(m); err != nil {
		m.entries = entriesSnap
		m.pending = pendingSnap
		m.nextID = idSnap
		return err
	}
	return nil
}

func (m *memStore) Append(e *models.LedgerEntry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	e.ID = m.nextID
	m.nextID++
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memStore) DeleteBySource(sourceType string, sourceID uint) error {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.SourceType != sourceType || e.SourceID != sourceID {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return nil
}

func (m *memStore) DeleteAll() error {
	m.entries = nil
	return nil
}

func (m *memStore) UpdateBookingPending(bookingID uint, pending decimal.Decimal) error {
	m.pending[bookingID] = pending
	return nil
}

func (m *memStore) ListByAccount(sourceType string) ([]models.LedgerEntry, error) {
	var out []models.LedgerEntry
	for _, e := range m.entries {
		if e.SourceType == sourceType {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) ListByDate(day time.Time) ([]models.LedgerEntry, error) {
	var out []models.LedgerEntry
	for _, e := range m.entries {
		y1, m1, d1 := e.Date.Date()
		y2, m2, d2 := day.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) MonthlyTotals(sourceType string, year int) ([]ledger.MonthlyTotal, error) {
	type key struct{ y, mo int }
	totals := map[key]*ledger.MonthlyTotal{}
	for _, e := range m.entries {
		if sourceType != "" && e.SourceType != sourceType {
			continue
		}
		if year != 0 && e.Date.Year() != year {
			continue
		}
		k := key{e.Date.Year(), int(e.Date.Month())}
		t, ok := totals[k]
		if !ok {
			t = &ledger.MonthlyTotal{Year: k.y, Month: k.mo, Credit: decimal.Zero, Debit: decimal.Zero}
			totals[k] = t
		}
		t.Credit = t.Credit.Add(e.Credit)
		t.Debit = t.Debit.Add(e.Debit)
	}
	var out []ledger.MonthlyTotal
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}
