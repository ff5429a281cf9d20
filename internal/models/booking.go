package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingType struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"uniqueIndex;size:100;not null" json:"name"` // Corporate / Regular / VIP
	DefaultPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"default_price"`
	GSTPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"gst_percentage"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (BookingType) TableName() string {
	return "booking_types"
}

// InvoicePrefix is the prefix for generated booking invoice numbers.
const InvoicePrefix = "SHLINV"

type Booking struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	InvoiceNo     string          `gorm:"uniqueIndex;size:20" json:"invoice_no"`
	BookingDate   time.Time       `gorm:"type:date;not null" json:"booking_date"`
	GuestName     string          `gorm:"size:200;not null" json:"guest_name"`
	RoomNo        string          `gorm:"size:50" json:"room_no"`
	PhoneNumber   string          `gorm:"size:20" json:"phone_number"`
	BookingType   string          `gorm:"size:50" json:"booking_type"`
	CheckinDate   time.Time       `json:"checkin_date"`
	CheckoutDate  time.Time       `json:"checkout_date"`
	BookingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"booking_price"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"paid_amount"`
	PendingAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"pending_amount"` // derived: booking_price - paid_amount
	Source        int             `gorm:"not null;default:0;index" json:"source"`            // 0 STAFF, 1 WEBSITE
	WebsiteItemID *string         `gorm:"uniqueIndex;size:50" json:"website_item_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

// LedgerDate is the accounting date used for ledger rows derived from this
// booking. Falls back to checkin when booking_date is missing.
func (b *Booking) LedgerDate() time.Time {
	if !b.BookingDate.IsZero() {
		return b.BookingDate
	}
	return b.CheckinDate
}
