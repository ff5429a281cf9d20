package handler

import (
	"errors"
	"net/http"
	"strconv"

	"shorelux/internal/models"
	"shorelux/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookingTypeHandler struct {
	repo *repository.BookingTypeRepository
}

func NewBookingTypeHandler(repo *repository.BookingTypeRepository) *BookingTypeHandler {
	return &BookingTypeHandler{repo: repo}
}

type BookingTypeRequest struct {
	Name          string `json:"name" binding:"required"`
	DefaultPrice  string `json:"default_price" binding:"required"`
	GSTPercentage string `json:"gst_percentage"`
}

func (h *BookingTypeHandler) Create(c *gin.Context) {
	var req BookingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	price, err := parseAmount(req.DefaultPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid default_price"})
		return
	}
	bt := &models.BookingType{Name: req.Name, DefaultPrice: price}
	if req.GSTPercentage != "" {
		gst, err := parseAmount(req.GSTPercentage)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gst_percentage"})
			return
		}
		bt.GSTPercentage = gst
	}
	if err := h.repo.Create(bt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create booking type"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking type added", "data": bt})
}

func (h *BookingTypeHandler) List(c *gin.Context) {
	types, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list booking types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": types})
}

func (h *BookingTypeHandler) Update(c *gin.Context) {
	bt, ok := h.lookup(c)
	if !ok {
		return
	}
	var req BookingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	price, err := parseAmount(req.DefaultPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid default_price"})
		return
	}
	bt.Name = req.Name
	bt.DefaultPrice = price
	if req.GSTPercentage != "" {
		gst, err := parseAmount(req.GSTPercentage)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gst_percentage"})
			return
		}
		bt.GSTPercentage = gst
	}
	if err := h.repo.Update(bt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update booking type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking type updated", "data": bt})
}

func (h *BookingTypeHandler) Delete(c *gin.Context) {
	bt, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(bt.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete booking type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking type deleted"})
}

func (h *BookingTypeHandler) lookup(c *gin.Context) (*models.BookingType, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}
	bt, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking type not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		}
		return nil, false
	}
	return bt, true
}
