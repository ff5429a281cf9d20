package models

import (
	"time"
)

// OTPVerification records a one-time code issued to a staff member before a
// gated edit (booking/expense/income updates). Delivery happens outside this
// process; we only track issuance and verification state.
type OTPVerification struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	StaffID          uint      `gorm:"not null;index" json:"staff_id"`
	OTP              string    `gorm:"size:6;not null" json:"-"`
	VerificationType string    `gorm:"size:50;not null;index" json:"verification_type"`
	IsVerified       bool      `gorm:"default:false" json:"is_verified"`
	CreatedAt        time.Time `json:"created_at"`

	Staff Staff `gorm:"foreignKey:StaffID" json:"-"`
}

func (OTPVerification) TableName() string {
	return "otp_verifications"
}

// FreshWithin reports whether the record was created within the given window.
func (o *OTPVerification) FreshWithin(window time.Duration, now time.Time) bool {
	return now.Sub(o.CreatedAt) <= window
}
