package models

import (
	"time"

	"shorelux/internal/domain"

	"gorm.io/gorm"
)

type Staff struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Username         string         `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email            string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash     string         `gorm:"size:255" json:"-"`
	Role             string         `gorm:"size:20;not null;index" json:"role"` // ADMIN | STAFF
	PhoneNumber      string         `gorm:"size:15" json:"phone_number"`
	AadhaarNumber    *string        `gorm:"uniqueIndex;size:12" json:"aadhaar_number"` // nil until provided (avoids '' collisions on unique index)
	AadhaarCardURL   string         `gorm:"size:512" json:"aadhaar_card_url"`
	ProfileImageURL  string         `gorm:"size:512" json:"profile_image_url"`
	Age              *int           `json:"age"`
	StaffUniqueID    string         `gorm:"uniqueIndex;size:30" json:"staff_unique_id"`
	CanLogin         bool           `gorm:"default:false" json:"can_login"`
	IsActiveEmployee bool           `gorm:"default:true" json:"is_active_employee"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Staff) TableName() string {
	return "staff"
}

func (s *Staff) IsAdmin() bool { return s.Role == domain.RoleAdmin }

// StaffIDPrefix is the prefix for generated staff unique IDs (SHORELUXSTAFF001, ...).
const StaffIDPrefix = "SHORELUXSTAFF"
