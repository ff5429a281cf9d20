package repository

import (
	"log"

	"shorelux/internal/ledger"
	"shorelux/internal/models"

	"gorm.io/gorm"
)

// IncomeRepository covers both income kinds. Every save re-projects the
// record's ledger row; every delete removes it.
type IncomeRepository struct {
	db        *gorm.DB
	projector *ledger.Projector
}

func NewIncomeRepository(db *gorm.DB, projector *ledger.Projector) *IncomeRepository {
	return &IncomeRepository{db: db, projector: projector}
}

func (r *IncomeRepository) SaveSales(s *models.SalesIncome) error {
	if err := r.db.Save(s).Error; err != nil {
		return err
	}
	r.project(s)
	return nil
}

func (r *IncomeRepository) GetSales(id uint) (*models.SalesIncome, error) {
	var s models.SalesIncome
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *IncomeRepository) ListSales() ([]models.SalesIncome, error) {
	var incomes []models.SalesIncome
	err := r.db.Order("id DESC").Find(&incomes).Error
	return incomes, err
}

func (r *IncomeRepository) DeleteSales(id uint) error {
	s, err := r.GetSales(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(&models.SalesIncome{}, id).Error; err != nil {
		return err
	}
	r.unproject(s)
	return nil
}

func (r *IncomeRepository) SaveOther(o *models.OtherIncome) error {
	if err := r.db.Save(o).Error; err != nil {
		return err
	}
	r.project(o)
	return nil
}

func (r *IncomeRepository) GetOther(id uint) (*models.OtherIncome, error) {
	var o models.OtherIncome
	if err := r.db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *IncomeRepository) ListOther() ([]models.OtherIncome, error) {
	var incomes []models.OtherIncome
	err := r.db.Order("id DESC").Find(&incomes).Error
	return incomes, err
}

func (r *IncomeRepository) DeleteOther(id uint) error {
	o, err := r.GetOther(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(&models.OtherIncome{}, id).Error; err != nil {
		return err
	}
	r.unproject(o)
	return nil
}

func (r *IncomeRepository) project(s ledger.Source) {
	if err := r.projector.SourceSaved(s); err != nil {
		t, id := s.LedgerSource()
		log.Printf("[ledger] projection failed for %s %d: %v", t, id, err)
	}
}

func (r *IncomeRepository) unproject(s ledger.Source) {
	if err := r.projector.SourceDeleted(s); err != nil {
		t, id := s.LedgerSource()
		log.Printf("[ledger] cleanup failed for deleted %s %d: %v", t, id, err)
	}
}
