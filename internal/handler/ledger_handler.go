package handler

import (
	"log"
	"net/http"
	"strconv"

	"shorelux/internal/ledger"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	store      ledger.Store
	backfiller *ledger.Backfiller
}

func NewLedgerHandler(store ledger.Store, backfiller *ledger.Backfiller) *LedgerHandler {
	return &LedgerHandler{store: store, backfiller: backfiller}
}

// Account returns one account's entries with running balances.
func (h *LedgerHandler) Account(c *gin.Context) {
	account := c.Param("account")
	entries, err := ledger.AccountLedger(h.store, account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read ledger"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account, "data": entries})
}

// Daybook lists every entry on a single day. The date query param is
// mandatory; there is no implicit "today".
func (h *LedgerHandler) Daybook(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	day, err := parseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
		return
	}
	entries, err := ledger.Daybook(h.store, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read ledger"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": raw, "data": entries})
}

// MonthlySummary groups credits and debits per calendar month, optionally
// filtered by account and year.
func (h *LedgerHandler) MonthlySummary(c *gin.Context) {
	account := c.Query("account")
	year := 0
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = y
	}
	summary, err := ledger.MonthlySummary(h.store, account, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read ledger"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// Backfill wipes the ledger and rebuilds it from current source records.
// Admin-only; a destructive repair tool, not a routine endpoint.
func (h *LedgerHandler) Backfill(c *gin.Context) {
	count, err := h.backfiller.Run()
	if err != nil {
		log.Printf("[ledger] backfill aborted after %d records: %v", count, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "backfill failed, run again to complete",
			"processed": count,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ledger rebuilt", "processed": count})
}
