package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shorelux/internal/domain"
	"shorelux/internal/models"
	"shorelux/internal/repository"
	"shorelux/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StaffHandler struct {
	svc       *service.AuthService
	staffRepo *repository.StaffRepository
}

func NewStaffHandler(svc *service.AuthService, staffRepo *repository.StaffRepository) *StaffHandler {
	return &StaffHandler{svc: svc, staffRepo: staffRepo}
}

type CreateStaffRequest struct {
	Username      string `json:"username" binding:"required,min=3,max=64"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password"`
	Role          string `json:"role" binding:"omitempty,oneof=ADMIN STAFF"`
	PhoneNumber   string `json:"phone_number"`
	AadhaarNumber string `json:"aadhaar_number"`
	Age           *int   `json:"age"`
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role := req.Role
	if role == "" {
		role = domain.RoleStaff
	}
	staff := &models.Staff{
		Username:         req.Username,
		Email:            req.Email,
		Role:             role,
		PhoneNumber:      req.PhoneNumber,
		Age:              req.Age,
		IsActiveEmployee: true,
	}
	if req.AadhaarNumber != "" {
		staff.AadhaarNumber = &req.AadhaarNumber
	}
	if err := h.svc.CreateStaff(staff, req.Password); err != nil {
		switch err {
		case service.ErrUsernameTaken, service.ErrEmailTaken:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create staff"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Staff created successfully", "data": staff})
}

func (h *StaffHandler) List(c *gin.Context) {
	staff, err := h.staffRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list staff"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": staff})
}

type UpdateStaffRequest struct {
	Email            *string `json:"email" binding:"omitempty,email"`
	PhoneNumber      *string `json:"phone_number"`
	Age              *int    `json:"age"`
	AadhaarCardURL   *string `json:"aadhaar_card_url"`
	ProfileImageURL  *string `json:"profile_image_url"`
	IsActiveEmployee *bool   `json:"is_active_employee"`
}

func (h *StaffHandler) Update(c *gin.Context) {
	staff, ok := h.lookup(c)
	if !ok {
		return
	}
	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		staff.PhoneNumber = *req.PhoneNumber
	}
	if req.Age != nil {
		staff.Age = req.Age
	}
	if req.AadhaarCardURL != nil {
		staff.AadhaarCardURL = *req.AadhaarCardURL
	}
	if req.ProfileImageURL != nil {
		staff.ProfileImageURL = *req.ProfileImageURL
	}
	if req.IsActiveEmployee != nil {
		staff.IsActiveEmployee = *req.IsActiveEmployee
	}
	if err := h.staffRepo.Update(staff); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update staff"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff updated successfully", "data": staff})
}

func (h *StaffHandler) Delete(c *gin.Context) {
	staff, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := h.staffRepo.Delete(staff.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete staff"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff deleted successfully"})
}

type EnableLoginRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

func (h *StaffHandler) EnableLogin(c *gin.Context) {
	staff, ok := h.lookup(c)
	if !ok {
		return
	}
	var req EnableLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.EnableLogin(staff.ID, req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not enable login"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login enabled for staff"})
}

func (h *StaffHandler) DisableLogin(c *gin.Context) {
	staff, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := h.svc.DisableLogin(staff.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not disable login"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login disabled for staff"})
}

func (h *StaffHandler) lookup(c *gin.Context) (*models.Staff, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}
	staff, err := h.staffRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		}
		return nil, false
	}
	return staff, true
}
