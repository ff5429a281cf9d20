package repository

import (
	"log"

	"shorelux/internal/ledger"
	"shorelux/internal/models"

	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db        *gorm.DB
	projector *ledger.Projector
}

func NewExpenseRepository(db *gorm.DB, projector *ledger.Projector) *ExpenseRepository {
	return &ExpenseRepository{db: db, projector: projector}
}

func (r *ExpenseRepository) Save(e *models.Expense) error {
	if err := r.db.Save(e).Error; err != nil {
		return err
	}
	if err := r.projector.SourceSaved(e); err != nil {
		log.Printf("[ledger] projection failed for %s %d: %v", e.SourceTag(), e.ID, err)
	}
	return nil
}

func (r *ExpenseRepository) GetByID(id uint) (*models.Expense, error) {
	var e models.Expense
	if err := r.db.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) List() ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Order("id DESC").Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) ListByCategory(category string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.Where("category = ?", category).Order("id DESC").Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) Delete(id uint) error {
	e, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(&models.Expense{}, id).Error; err != nil {
		return err
	}
	if err := r.projector.SourceDeleted(e); err != nil {
		log.Printf("[ledger] cleanup failed for deleted %s %d: %v", e.SourceTag(), id, err)
	}
	return nil
}
