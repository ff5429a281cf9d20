package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"shorelux/config"
	"shorelux/internal/domain"
	"shorelux/internal/models"
	"shorelux/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookingHandler struct {
	cfg  *config.Config
	repo *repository.BookingRepository
}

func NewBookingHandler(cfg *config.Config, repo *repository.BookingRepository) *BookingHandler {
	return &BookingHandler{cfg: cfg, repo: repo}
}

type CreateBookingRequest struct {
	BookingDate   string `json:"booking_date" binding:"required"`
	GuestName     string `json:"guest_name" binding:"required"`
	RoomNo        string `json:"room_no"`
	PhoneNumber   string `json:"phone_number"`
	BookingType   string `json:"booking_type"`
	CheckinDate   string `json:"checkin_date" binding:"required"`
	CheckoutDate  string `json:"checkout_date" binding:"required"`
	BookingPrice  string `json:"booking_price" binding:"required"`
	PaidAmount    string `json:"paid_amount" binding:"required"`
	WebsiteItemID string `json:"website_item_id"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	h.create(c, domain.BookingSourceStaff)
}

// WebsiteCreate accepts bookings pushed by the public website, authorized by
// a shared API key rather than a staff token.
func (h *BookingHandler) WebsiteCreate(c *gin.Context) {
	if h.cfg.Website.APIKey == "" || c.GetHeader("X-API-KEY") != h.cfg.Website.APIKey {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized access"})
		return
	}
	h.create(c, domain.BookingSourceWebsite)
}

func (h *BookingHandler) create(c *gin.Context, source int) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Website pushes may be retried; the same item must not book twice.
	if source == domain.BookingSourceWebsite && req.WebsiteItemID != "" {
		if existing, err := h.repo.GetByWebsiteItemID(req.WebsiteItemID); err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Booking already recorded", "data": existing})
			return
		}
	}
	bookingDate, err := parseDate(req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking_date format (use YYYY-MM-DD)"})
		return
	}
	checkin, err := parseDateTime(req.CheckinDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkin_date"})
		return
	}
	checkout, err := parseDateTime(req.CheckoutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout_date"})
		return
	}
	price, err := parseAmount(req.BookingPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking_price"})
		return
	}
	paid, err := parseAmount(req.PaidAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paid_amount"})
		return
	}
	b := &models.Booking{
		BookingDate:   bookingDate,
		GuestName:     req.GuestName,
		RoomNo:        req.RoomNo,
		PhoneNumber:   req.PhoneNumber,
		BookingType:   req.BookingType,
		CheckinDate:   checkin,
		CheckoutDate:  checkout,
		BookingPrice:  price,
		PaidAmount:    paid,
		PendingAmount: price.Sub(paid),
		Source:        source,
	}
	if req.WebsiteItemID != "" {
		b.WebsiteItemID = &req.WebsiteItemID
	}
	if err := h.repo.Create(b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create booking"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking added", "data": b})
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bookings})
}

func (h *BookingHandler) WebsiteList(c *gin.Context) {
	bookings, err := h.repo.ListBySource(domain.BookingSourceWebsite)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"source": "website", "count": len(bookings), "data": bookings})
}

// UpdateBookingRequest carries the editable fields. booking_type and
// booking_price are locked after creation and silently ignored if sent.
type UpdateBookingRequest struct {
	BookingDate  *string `json:"booking_date"`
	GuestName    *string `json:"guest_name"`
	RoomNo       *string `json:"room_no"`
	PhoneNumber  *string `json:"phone_number"`
	CheckinDate  *string `json:"checkin_date"`
	CheckoutDate *string `json:"checkout_date"`
	PaidAmount   *string `json:"paid_amount"`
}

func (h *BookingHandler) Update(c *gin.Context) {
	b, ok := h.lookup(c)
	if !ok {
		return
	}
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.BookingDate != nil {
		d, err := parseDate(*req.BookingDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking_date format (use YYYY-MM-DD)"})
			return
		}
		b.BookingDate = d
	}
	if req.GuestName != nil {
		b.GuestName = *req.GuestName
	}
	if req.RoomNo != nil {
		b.RoomNo = *req.RoomNo
	}
	if req.PhoneNumber != nil {
		b.PhoneNumber = *req.PhoneNumber
	}
	if req.CheckinDate != nil {
		d, err := parseDateTime(*req.CheckinDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkin_date"})
			return
		}
		b.CheckinDate = d
	}
	if req.CheckoutDate != nil {
		d, err := parseDateTime(*req.CheckoutDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout_date"})
			return
		}
		b.CheckoutDate = d
	}
	if req.PaidAmount != nil {
		// A malformed amount must not corrupt the ledger: keep the stored
		// value so the payment delta is zero, and log the skip.
		if paid, err := parseAmount(*req.PaidAmount); err == nil {
			b.PaidAmount = paid
		} else {
			log.Printf("[booking] unparsable paid_amount %q for booking %d, ignoring", *req.PaidAmount, b.ID)
		}
	}
	if err := h.repo.Update(b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully", "data": b})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	b, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(b.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// NextInvoiceNo previews the invoice number for the frontend without saving.
func (h *BookingHandler) NextInvoiceNo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"next_invoice_no": h.repo.NextInvoiceNo()})
}

func (h *BookingHandler) lookup(c *gin.Context) (*models.Booking, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}
	b, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		}
		return nil, false
	}
	return b, true
}

func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, s)
}
