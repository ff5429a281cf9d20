package repository

import (
	"shorelux/internal/models"

	"gorm.io/gorm"
)

type OTPRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

func (r *OTPRepository) Create(o *models.OTPVerification) error {
	return r.db.Create(o).Error
}

// LatestUnverified returns the newest unverified OTP for a staff member and
// purpose.
func (r *OTPRepository) LatestUnverified(staffID uint, purpose string) (*models.OTPVerification, error) {
	var o models.OTPVerification
	err := r.db.Where("staff_id = ? AND verification_type = ? AND is_verified = ?", staffID, purpose, false).
		Order("created_at DESC").First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// LatestVerified returns the newest verified OTP for a staff member and
// purpose.
func (r *OTPRepository) LatestVerified(staffID uint, purpose string) (*models.OTPVerification, error) {
	var o models.OTPVerification
	err := r.db.Where("staff_id = ? AND verification_type = ? AND is_verified = ?", staffID, purpose, true).
		Order("created_at DESC").First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OTPRepository) MarkVerified(o *models.OTPVerification) error {
	return r.db.Model(o).Update("is_verified", true).Error
}
