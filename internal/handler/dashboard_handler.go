package handler

import (
	"net/http"
	"strconv"
	"time"

	"shorelux/config"
	"shorelux/internal/ledger"
	"shorelux/internal/repository"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	cfg         *config.Config
	repo        *repository.DashboardRepository
	bookingRepo *repository.BookingRepository
	store       ledger.Store
}

func NewDashboardHandler(cfg *config.Config, repo *repository.DashboardRepository, bookingRepo *repository.BookingRepository, store ledger.Store) *DashboardHandler {
	return &DashboardHandler{cfg: cfg, repo: repo, bookingRepo: bookingRepo, store: store}
}

// Summary returns the headline cards for a weekly or monthly window ending
// today.
func (h *DashboardHandler) Summary(c *gin.Context) {
	end := time.Now()
	var start time.Time
	switch c.DefaultQuery("range", "monthly") {
	case "weekly":
		start = end.AddDate(0, 0, -7)
	case "monthly":
		start = end.AddDate(0, -1, 0)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "range must be weekly or monthly"})
		return
	}

	bookings, err := h.repo.BookingCount(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
		return
	}
	revenue, err := h.repo.BookingRevenue(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
		return
	}
	sales, err := h.repo.SalesIncomeTotal(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
		return
	}
	other, err := h.repo.OtherIncomeTotal(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
		return
	}
	expenses, err := h.repo.ExpenseTotal(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
		return
	}

	income := revenue.Add(sales).Add(other)
	c.JSON(http.StatusOK, gin.H{
		"start":           start.Format(dateLayout),
		"end":             end.Format(dateLayout),
		"booking_count":   bookings,
		"booking_revenue": revenue,
		"sales_income":    sales,
		"other_income":    other,
		"total_income":    income,
		"total_expense":   expenses,
		"net":             income.Sub(expenses),
	})
}

// MonthlyTrend returns per-month credit/debit totals across the whole
// ledger, for the trend chart.
func (h *DashboardHandler) MonthlyTrend(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = y
	}
	summary, err := ledger.MonthlySummary(h.store, "", year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build trend"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// BookingProgress reports today's occupancy against the room count.
func (h *DashboardHandler) BookingProgress(c *gin.Context) {
	today := time.Now().Format(dateLayout)
	active, err := h.bookingRepo.ActiveCount(today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count active bookings"})
		return
	}
	total := h.cfg.Hotel.TotalRooms
	occupancy := 0.0
	if total > 0 {
		occupancy = float64(active) / float64(total) * 100
	}
	c.JSON(http.StatusOK, gin.H{
		"date":              today,
		"active_bookings":   active,
		"total_rooms":       total,
		"occupancy_percent": occupancy,
	})
}
