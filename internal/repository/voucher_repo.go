package repository

import (
	"shorelux/internal/models"

	"gorm.io/gorm"
)

type VoucherRepository struct {
	db *gorm.DB
}

func NewVoucherRepository(db *gorm.DB) *VoucherRepository {
	return &VoucherRepository{db: db}
}

func (r *VoucherRepository) Create(v *models.PaymentVoucher) error {
	if v.VoucherNo == "" {
		v.VoucherNo = r.NextVoucherNo()
	}
	return r.db.Create(v).Error
}

func (r *VoucherRepository) List() ([]models.PaymentVoucher, error) {
	var vouchers []models.PaymentVoucher
	err := r.db.Order("id DESC").Find(&vouchers).Error
	return vouchers, err
}

// NextVoucherNo previews the number the next voucher will be assigned.
func (r *VoucherRepository) NextVoucherNo() string {
	var last models.PaymentVoucher
	err := r.db.Order("id DESC").First(&last).Error
	if err != nil {
		return models.NextSequenceNo(models.VoucherPrefix, "")
	}
	return models.NextSequenceNo(models.VoucherPrefix, last.VoucherNo)
}
