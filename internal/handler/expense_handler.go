package handler

import (
	"net/http"

	"shorelux/internal/domain"
	"shorelux/internal/middleware"
	"shorelux/internal/models"
	"shorelux/internal/repository"
	"shorelux/internal/service"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	repo *repository.ExpenseRepository
	otp  *service.OTPService
}

func NewExpenseHandler(repo *repository.ExpenseRepository, otp *service.OTPService) *ExpenseHandler {
	return &ExpenseHandler{repo: repo, otp: otp}
}

type CreateExpenseRequest struct {
	Date           string `json:"date" binding:"required"`
	Category       string `json:"category" binding:"required"`
	Amount         string `json:"amount" binding:"required"`
	Description    string `json:"description"`
	VoucherNo      string `json:"voucher_no"`
	BillFileURL    string `json:"bill_file_url"`
	VoucherFileURL string `json:"voucher_file_url"`
	StaffCode      string `json:"staff_code"`
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.IsExpenseCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown expense category"})
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
	expense := &models.Expense{
		Date:           date,
		Category:       req.Category,
		Amount:         amount,
		Description:    req.Description,
		VoucherNo:      req.VoucherNo,
		BillFileURL:    req.BillFileURL,
		VoucherFileURL: req.VoucherFileURL,
		StaffCode:      req.StaffCode,
	}
	if err := h.repo.Save(expense); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create expense"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Expense added", "data": expense})
}

func (h *ExpenseHandler) List(c *gin.Context) {
	category := c.Query("category")
	var (
		expenses []models.Expense
		err      error
	)
	if category != "" {
		if !domain.IsExpenseCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown expense category"})
			return
		}
		expenses, err = h.repo.ListByCategory(category)
	} else {
		expenses, err = h.repo.List()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list expenses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": expenses})
}

type UpdateExpenseRequest struct {
	Date           *string `json:"date"`
	Amount         *string `json:"amount"`
	Description    *string `json:"description"`
	VoucherNo      *string `json:"voucher_no"`
	BillFileURL    *string `json:"bill_file_url"`
	VoucherFileURL *string `json:"voucher_file_url"`
	StaffCode      *string `json:"staff_code"`
}

// Update patches an expense after an OTP check. The category is fixed at
// creation since it decides which ledger account the entry lives in.
func (h *ExpenseHandler) Update(c *gin.Context) {
	staffID := middleware.GetStaffID(c)
	if err := h.otp.CheckVerified(staffID, domain.OTPExpenseEdit); err != nil {
		switch err {
		case service.ErrOTPNotVerified, service.ErrVerificationOld:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "verification check failed"})
		}
		return
	}
	expense, ok := h.lookup(c)
	if !ok {
		return
	}
	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
			return
		}
		expense.Date = d
	}
	if req.Amount != nil {
		a, err := parseAmount(*req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
			return
		}
		expense.Amount = a
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.VoucherNo != nil {
		expense.VoucherNo = *req.VoucherNo
	}
	if req.BillFileURL != nil {
		expense.BillFileURL = *req.BillFileURL
	}
	if req.VoucherFileURL != nil {
		expense.VoucherFileURL = *req.VoucherFileURL
	}
	if req.StaffCode != nil {
		expense.StaffCode = *req.StaffCode
	}
	if err := h.repo.Save(expense); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update expense"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense updated", "data": expense})
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	expense, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(expense.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete expense"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

func (h *ExpenseHandler) lookup(c *gin.Context) (*models.Expense, bool) {
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}
	expense, err := h.repo.GetByID(id)
	if err != nil {
		respondLookupErr(c, err, "Expense not found")
		return nil, false
	}
	return expense, true
}
