package handler

import (
	"net/http"

	"shorelux/internal/domain"
	"shorelux/internal/models"
	"shorelux/internal/repository"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	repo *repository.VoucherRepository
}

func NewVoucherHandler(repo *repository.VoucherRepository) *VoucherHandler {
	return &VoucherHandler{repo: repo}
}

type CreateVoucherRequest struct {
	Date                  string `json:"date" binding:"required"`
	PaidTo                string `json:"paid_to" binding:"required"`
	Amount                string `json:"amount" binding:"required"`
	Being                 string `json:"being"`
	PaidBy                string `json:"paid_by" binding:"required,oneof=Cash Cheque Online"`
	BankDetails           string `json:"bank_details"`
	OnlinePaymentMode     string `json:"online_payment_mode"`
	AuthorizedBy          string `json:"authorized_by" binding:"required"`
	ReceiverSignatureName string `json:"receiver_signature_name"`
	ReceiverSignature     string `json:"receiver_signature"`
}

func (h *VoucherHandler) Create(c *gin.Context) {
	var req CreateVoucherRequest
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
	if req.PaidBy == domain.PaidByCheque && req.BankDetails == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bank_details required for cheque payments"})
		return
	}
	if req.PaidBy == domain.PaidByOnline && req.OnlinePaymentMode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "online_payment_mode required for online payments"})
		return
	}
	v := &models.PaymentVoucher{
		Date:                  date,
		PaidTo:                req.PaidTo,
		Amount:                amount,
		Being:                 req.Being,
		PaidBy:                req.PaidBy,
		BankDetails:           req.BankDetails,
		OnlinePaymentMode:     req.OnlinePaymentMode,
		AuthorizedBy:          req.AuthorizedBy,
		ReceiverSignatureName: req.ReceiverSignatureName,
		ReceiverSignature:     req.ReceiverSignature,
	}
	if err := h.repo.Create(v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create voucher"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Payment voucher created", "data": v})
}

func (h *VoucherHandler) List(c *gin.Context) {
	vouchers, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list vouchers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vouchers})
}

// NextVoucherNo previews the number the next voucher will get.
func (h *VoucherHandler) NextVoucherNo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"next_voucher_no": h.repo.NextVoucherNo()})
}
