package repository

import (
	"shorelux/internal/domain"
	"shorelux/internal/models"

	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(s *models.Staff) error {
	if s.Role == domain.RoleStaff && s.StaffUniqueID == "" {
		s.StaffUniqueID = r.nextStaffID()
	}
	return r.db.Create(s).Error
}

func (r *StaffRepository) GetByID(id uint) (*models.Staff, error) {
	var s models.Staff
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) GetByUsername(username string) (*models.Staff, error) {
	var s models.Staff
	if err := r.db.Where("username = ?", username).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) GetByEmail(email string) (*models.Staff, error) {
	var s models.Staff
	if err := r.db.Where("email = ?", email).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) List() ([]models.Staff, error) {
	var staff []models.Staff
	err := r.db.Order("id DESC").Find(&staff).Error
	return staff, err
}

func (r *StaffRepository) Update(s *models.Staff) error {
	return r.db.Save(s).Error
}

func (r *StaffRepository) Delete(id uint) error {
	return r.db.Delete(&models.Staff{}, id).Error
}

func (r *StaffRepository) nextStaffID() string {
	var last models.Staff
	err := r.db.Where("staff_unique_id LIKE ?", models.StaffIDPrefix+"%").
		Order("id DESC").First(&last).Error
	if err != nil {
		return models.NextSequenceNo(models.StaffIDPrefix, "")
	}
	return models.NextSequenceNo(models.StaffIDPrefix, last.StaffUniqueID)
}
