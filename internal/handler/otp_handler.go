package handler

import (
	"net/http"

	"shorelux/internal/middleware"
	"shorelux/internal/service"

	"github.com/gin-gonic/gin"
)

type OTPHandler struct {
	svc *service.OTPService
}

func NewOTPHandler(svc *service.OTPService) *OTPHandler {
	return &OTPHandler{svc: svc}
}

type RequestOTPRequest struct {
	VerificationType string `json:"verification_type" binding:"required"`
}

func (h *OTPHandler) Request(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	staffID := middleware.GetStaffID(c)
	if err := h.svc.Request(staffID, req.VerificationType); err != nil {
		if err == service.ErrUnknownPurpose {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send OTP"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

type VerifyOTPRequest struct {
	VerificationType string `json:"verification_type" binding:"required"`
	OTP              string `json:"otp" binding:"required,len=6"`
}

func (h *OTPHandler) Verify(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	staffID := middleware.GetStaffID(c)
	err := h.svc.Verify(staffID, req.VerificationType, req.OTP)
	if err != nil {
		switch err {
		case service.ErrUnknownPurpose, service.ErrOTPNotFound, service.ErrOTPMismatch, service.ErrOTPExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP verified"})
}
