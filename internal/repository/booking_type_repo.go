package repository

import (
	"shorelux/internal/models"

	"gorm.io/gorm"
)

type BookingTypeRepository struct {
	db *gorm.DB
}

func NewBookingTypeRepository(db *gorm.DB) *BookingTypeRepository {
	return &BookingTypeRepository{db: db}
}

func (r *BookingTypeRepository) Create(bt *models.BookingType) error {
	return r.db.Create(bt).Error
}

func (r *BookingTypeRepository) GetByID(id uint) (*models.BookingType, error) {
	var bt models.BookingType
	if err := r.db.First(&bt, id).Error; err != nil {
		return nil, err
	}
	return &bt, nil
}

func (r *BookingTypeRepository) List() ([]models.BookingType, error) {
	var types []models.BookingType
	err := r.db.Find(&types).Error
	return types, err
}

func (r *BookingTypeRepository) Update(bt *models.BookingType) error {
	return r.db.Save(bt).Error
}

func (r *BookingTypeRepository) Delete(id uint) error {
	return r.db.Delete(&models.BookingType{}, id).Error
}
