package handler

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"shorelux/internal/domain"
	"shorelux/internal/middleware"
	"shorelux/internal/models"
	"shorelux/internal/repository"
	"shorelux/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IncomeHandler struct {
	repo        *repository.IncomeRepository
	bookingRepo *repository.BookingRepository
	otp         *service.OTPService
}

func NewIncomeHandler(repo *repository.IncomeRepository, bookingRepo *repository.BookingRepository, otp *service.OTPService) *IncomeHandler {
	return &IncomeHandler{repo: repo, bookingRepo: bookingRepo, otp: otp}
}

type IncomeRequest struct {
	Date        string `json:"date" binding:"required"`
	Category    string `json:"category"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}

type UpdateIncomeRequest struct {
	Date        *string `json:"date"`
	Category    *string `json:"category"`
	Amount      *string `json:"amount"`
	Description *string `json:"description"`
}

func (h *IncomeHandler) CreateSales(c *gin.Context) {
	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	income := &models.SalesIncome{
		Date:        date,
		Category:    req.Category,
		Amount:      amount,
		Description: req.Description,
	}
	if err := h.repo.SaveSales(income); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create sales income"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sales income added", "data": income})
}

func (h *IncomeHandler) ListSales(c *gin.Context) {
	incomes, err := h.repo.ListSales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list sales incomes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": incomes})
}

func (h *IncomeHandler) UpdateSales(c *gin.Context) {
	if !h.requireOTP(c, domain.OTPSalesIncomeEdit) {
		return
	}
	income, ok := h.lookupSales(c)
	if !ok {
		return
	}
	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !applyIncomeUpdate(c, &req, &income.Date, &income.Category, &income.Amount, &income.Description) {
		return
	}
	if err := h.repo.SaveSales(income); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update sales income"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sales income updated", "data": income})
}

func (h *IncomeHandler) DeleteSales(c *gin.Context) {
	income, ok := h.lookupSales(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteSales(income.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete sales income"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sales income deleted"})
}

func (h *IncomeHandler) CreateOther(c *gin.Context) {
	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	income := &models.OtherIncome{
		Date:        date,
		Category:    req.Category,
		Amount:      amount,
		Description: req.Description,
	}
	if err := h.repo.SaveOther(income); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create other income"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Other income added", "data": income})
}

func (h *IncomeHandler) ListOther(c *gin.Context) {
	incomes, err := h.repo.ListOther()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list other incomes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": incomes})
}

func (h *IncomeHandler) UpdateOther(c *gin.Context) {
	if !h.requireOTP(c, domain.OTPOtherIncomeEdit) {
		return
	}
	income, ok := h.lookupOther(c)
	if !ok {
		return
	}
	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !applyIncomeUpdate(c, &req, &income.Date, &income.Category, &income.Amount, &income.Description) {
		return
	}
	if err := h.repo.SaveOther(income); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update other income"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Other income updated", "data": income})
}

func (h *IncomeHandler) DeleteOther(c *gin.Context) {
	income, ok := h.lookupOther(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteOther(income.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete other income"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Other income deleted"})
}

// incomeItem is one row of the unified income listing, covering bookings and
// both income kinds under a shared shape.
type incomeItem struct {
	ID          uint            `json:"id"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Details     gin.H           `json:"details"`
}

// ListAll merges bookings, sales incomes and other incomes into one list
// sorted most recent first, with the summed total.
func (h *IncomeHandler) ListAll(c *gin.Context) {
	bookings, err := h.bookingRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list incomes"})
		return
	}
	sales, err := h.repo.ListSales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list incomes"})
		return
	}
	other, err := h.repo.ListOther()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list incomes"})
		return
	}
	items, total := buildUnifiedIncome(bookings, sales, other)
	c.JSON(http.StatusOK, gin.H{
		"data":         items,
		"total_income": total,
		"count":        len(items),
	})
}

func buildUnifiedIncome(bookings []models.Booking, sales []models.SalesIncome, other []models.OtherIncome) ([]incomeItem, decimal.Decimal) {
	items := make([]incomeItem, 0, len(bookings)+len(sales)+len(other))
	total := decimal.Zero
	for _, b := range bookings {
		items = append(items, incomeItem{
			ID:     b.ID,
			Type:   "Booking",
			Date:   b.BookingDate,
			Amount: b.BookingPrice,
			Description: fmt.Sprintf("Guest: %s, Room: %s, Type: %s",
				b.GuestName, b.RoomNo, b.BookingType),
			Details: gin.H{
				"guest_name":     b.GuestName,
				"room_no":        b.RoomNo,
				"phone_number":   b.PhoneNumber,
				"booking_type":   b.BookingType,
				"checkin_date":   b.CheckinDate,
				"checkout_date":  b.CheckoutDate,
				"paid_amount":    b.PaidAmount,
				"pending_amount": b.PendingAmount,
			},
		})
		total = total.Add(b.BookingPrice)
	}
	for _, s := range sales {
		items = append(items, incomeItem{
			ID:          s.ID,
			Type:        "Sales Income",
			Date:        s.Date,
			Amount:      s.Amount,
			Description: s.Description,
			Details:     gin.H{"category": s.Category},
		})
		total = total.Add(s.Amount)
	}
	for _, o := range other {
		items = append(items, incomeItem{
			ID:          o.ID,
			Type:        "Other Income",
			Date:        o.Date,
			Amount:      o.Amount,
			Description: o.Description,
			Details:     gin.H{"category": o.Category},
		})
		total = total.Add(o.Amount)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, total
}

func (h *IncomeHandler) requireOTP(c *gin.Context, purpose string) bool {
	staffID := middleware.GetStaffID(c)
	if err := h.otp.CheckVerified(staffID, purpose); err != nil {
		switch err {
		case service.ErrOTPNotVerified, service.ErrVerificationOld:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "verification check failed"})
		}
		return false
	}
	return true
}

func (h *IncomeHandler) lookupSales(c *gin.Context) (*models.SalesIncome, bool) {
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}
	income, err := h.repo.GetSales(id)
	if err != nil {
		respondLookupErr(c, err, "Sales income not found")
		return nil, false
	}
	return income, true
}

func (h *IncomeHandler) lookupOther(c *gin.Context) (*models.OtherIncome, bool) {
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}
	income, err := h.repo.GetOther(id)
	if err != nil {
		respondLookupErr(c, err, "Other income not found")
		return nil, false
	}
	return income, true
}

// applyIncomeUpdate patches the shared income fields in place. It writes the
// 400 response itself and returns false when a value fails to parse.
func applyIncomeUpdate(c *gin.Context, req *UpdateIncomeRequest, date *time.Time, category *string, amount *decimal.Decimal, description *string) bool {
	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
			return false
		}
		*date = d
	}
	if req.Category != nil {
		*category = *req.Category
	}
	if req.Amount != nil {
		a, err := parseAmount(*req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
			return false
		}
		*amount = a
	}
	if req.Description != nil {
		*description = *req.Description
	}
	return true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func respondLookupErr(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
	}
}
