package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shorelux/internal/models"
	"shorelux/internal/repository"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	repo *repository.StockRepository
}

func NewStockHandler(repo *repository.StockRepository) *StockHandler {
	return &StockHandler{repo: repo}
}

type StockCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *StockHandler) CreateCategory(c *gin.Context) {
	var req StockCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat := &models.StockCategory{Name: req.Name}
	if err := h.repo.CreateCategory(cat); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category added", "data": cat})
}

func (h *StockHandler) ListCategories(c *gin.Context) {
	cats, err := h.repo.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cats})
}

func (h *StockHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteCategory(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

type StockItemRequest struct {
	Date        string `json:"date" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	ItemName    string `json:"item_name" binding:"required"`
	Quantity    int    `json:"quantity" binding:"min=0"`
	Description string `json:"description"`
}

func (h *StockHandler) CreateItem(c *gin.Context) {
	var req StockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
		return
	}
	item := &models.StockItem{
		Date:        date,
		CategoryID:  req.CategoryID,
		ItemName:    req.ItemName,
		Quantity:    req.Quantity,
		Description: req.Description,
	}
	if err := h.repo.CreateItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create stock item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Stock item added", "data": item})
}

func (h *StockHandler) ListItems(c *gin.Context) {
	items, err := h.repo.ListItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list stock items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *StockHandler) ListItemsByCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	items, err := h.repo.ListItemsByCategory(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list stock items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// UpdateItem only adjusts quantity; other fields are fixed at intake.
func (h *StockHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.repo.GetItem(id); err != nil {
		respondLookupErr(c, err, "Stock item not found")
		return
	}
	if err := h.repo.UpdateItemQuantity(id, *req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update stock item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock quantity updated"})
}

func (h *StockHandler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.repo.GetItem(id); err != nil {
		respondLookupErr(c, err, "Stock item not found")
		return
	}
	if err := h.repo.DeleteItem(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete stock item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock item deleted"})
}

type CleaningLogRequest struct {
	RoomNumber   string              `json:"room_number" binding:"required"`
	StartTime    string              `json:"start_time" binding:"required"`
	EndTime      string              `json:"end_time"`
	ProductsUsed []models.ProductUse `json:"products_used"`
	Remarks      string              `json:"remarks"`
}

// CreateCleaningLog records a cleaning pass and deducts the stock it used.
func (h *StockHandler) CreateCleaningLog(c *gin.Context) {
	var req CleaningLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := parseDateTime(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_time"})
		return
	}
	var end *time.Time
	if req.EndTime != "" {
		t, err := parseDateTime(req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_time"})
			return
		}
		end = &t
	}
	raw, err := json.Marshal(req.ProductsUsed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid products_used"})
		return
	}
	username, _ := c.Get("username")
	name, _ := username.(string)
	logEntry := &models.RoomCleaning{
		RoomNumber:   req.RoomNumber,
		StartTime:    start,
		EndTime:      end,
		Username:     name,
		ProductsUsed: string(raw),
		Remarks:      req.Remarks,
	}
	if err := h.repo.CreateCleaningLog(logEntry, req.ProductsUsed); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create cleaning log"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Cleaning log added", "data": logEntry})
}

func (h *StockHandler) ListCleaningLogs(c *gin.Context) {
	logs, err := h.repo.ListCleaningLogs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list cleaning logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": logs})
}

type LaundryLogRequest struct {
	Date         string              `json:"date" binding:"required"`
	CompanyName  string              `json:"company_name" binding:"required"`
	ProductsUsed []models.ProductUse `json:"products_used"`
	Description  string              `json:"description"`
}

func (h *StockHandler) CreateLaundryLog(c *gin.Context) {
	var req LaundryLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
		return
	}
	raw, err := json.Marshal(req.ProductsUsed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid products_used"})
		return
	}
	logEntry := &models.LaundryLog{
		Date:         date,
		CompanyName:  req.CompanyName,
		ProductsUsed: string(raw),
		Description:  req.Description,
	}
	if err := h.repo.CreateLaundryLog(logEntry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create laundry log"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Laundry log added", "data": logEntry})
}

func (h *StockHandler) ListLaundryLogs(c *gin.Context) {
	logs, err := h.repo.ListLaundryLogs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list laundry logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": logs})
}

type LaundryReceivedRequest struct {
	ReceivedDate     string `json:"received_date" binding:"required"`
	ReceivedQuantity int    `json:"received_quantity" binding:"min=0"`
}

// UpdateLaundryReceived marks a laundry batch as returned.
func (h *StockHandler) UpdateLaundryReceived(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	logEntry, err := h.repo.GetLaundryLog(id)
	if err != nil {
		respondLookupErr(c, err, "Laundry log not found")
		return
	}
	var req LaundryReceivedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	received, err := parseDate(req.ReceivedDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid received_date format (use YYYY-MM-DD)"})
		return
	}
	logEntry.ReceivedDate = &received
	logEntry.ReceivedQuantity = req.ReceivedQuantity
	if err := h.repo.UpdateLaundryLog(logEntry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update laundry log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Laundry log updated", "data": logEntry})
}
