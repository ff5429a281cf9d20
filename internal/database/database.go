package database

import (
	"errors"
	"log"

	"shorelux/config"
	"shorelux/internal/domain"
	"shorelux/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Staff{},
		&models.OTPVerification{},
		&models.BookingType{},
		&models.Booking{},
		&models.SalesIncome{},
		&models.OtherIncome{},
		&models.Expense{},
		&models.PaymentVoucher{},
		&models.StockCategory{},
		&models.StockItem{},
		&models.RoomCleaning{},
		&models.LaundryLog{},
		&models.LedgerEntry{},
	)
}

// SeedAdmin creates the initial admin account when none exists.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) {
	var existing models.Staff
	err := db.Where("role = ?", domain.RoleAdmin).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[db] admin lookup failed: %v", err)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[db] admin seed failed: %v", err)
		return
	}
	admin := models.Staff{
		Username:         cfg.Username,
		Email:            cfg.Email,
		PasswordHash:     string(hash),
		Role:             domain.RoleAdmin,
		CanLogin:         true,
		IsActiveEmployee: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[db] admin seed failed: %v", err)
		return
	}
	log.Printf("[db] seeded admin account %q", cfg.Username)
}
