package repository

import (
	"log"

	"shorelux/internal/ledger"
	"shorelux/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db        *gorm.DB
	projector *ledger.Projector
}

func NewBookingRepository(db *gorm.DB, projector *ledger.Projector) *BookingRepository {
	return &BookingRepository{db: db, projector: projector}
}

func (r *BookingRepository) Create(b *models.Booking) error {
	if b.InvoiceNo == "" {
		b.InvoiceNo = r.NextInvoiceNo()
	}
	if err := r.db.Create(b).Error; err != nil {
		return err
	}
	if err := r.projector.BookingSaved(b, decimal.Zero, true); err != nil {
		log.Printf("[ledger] projection failed for new booking %d: %v", b.ID, err)
	}
	return nil
}

// Update persists the booking and posts any positive payment delta. The
// previously persisted paid_amount is read before the save so the delta
// reflects exactly what this update added.
func (r *BookingRepository) Update(b *models.Booking) error {
	previousPaid, err := r.paidAmount(b.ID)
	if err != nil {
		return err
	}
	if err := r.db.Save(b).Error; err != nil {
		return err
	}
	if err := r.projector.BookingSaved(b, previousPaid, false); err != nil {
		log.Printf("[ledger] projection failed for booking %d: %v", b.ID, err)
	}
	return nil
}

func (r *BookingRepository) Delete(id uint) error {
	b, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(&models.Booking{}, id).Error; err != nil {
		return err
	}
	if err := r.projector.BookingDeleted(b); err != nil {
		log.Printf("[ledger] cleanup failed for deleted booking %d: %v", id, err)
	}
	return nil
}

func (r *BookingRepository) GetByID(id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) List() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Order("id DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListBySource(source int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("source = ?", source).Order("id DESC").Find(&bookings).Error
	return bookings, err
}

// NextInvoiceNo previews the invoice number the next booking will get.
func (r *BookingRepository) NextInvoiceNo() string {
	var last models.Booking
	err := r.db.Order("id DESC").First(&last).Error
	if err != nil {
		return models.NextSequenceNo(models.InvoicePrefix, "")
	}
	return models.NextSequenceNo(models.InvoicePrefix, last.InvoiceNo)
}

func (r *BookingRepository) GetByWebsiteItemID(itemID string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.Where("website_item_id = ?", itemID).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) paidAmount(id uint) (decimal.Decimal, error) {
	var prev models.Booking
	err := r.db.Select("paid_amount").First(&prev, id).Error
	if err != nil {
		return decimal.Zero, err
	}
	return prev.PaidAmount, nil
}

// ActiveCount counts bookings whose stay spans the given day.
func (r *BookingRepository) ActiveCount(day string) (int64, error) {
	var n int64
	err := r.db.Model(&models.Booking{}).
		Where("checkin_date <= ? AND checkout_date >= ?", day, day).
		Count(&n).Error
	return n, err
}
