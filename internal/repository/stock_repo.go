package repository

import (
	"errors"
	"fmt"

	"shorelux/internal/models"

	"gorm.io/gorm"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

func (r *StockRepository) CreateCategory(c *models.StockCategory) error {
	return r.db.Create(c).Error
}

func (r *StockRepository) GetCategoryByName(name string) (*models.StockCategory, error) {
	var c models.StockCategory
	if err := r.db.Where("name = ?", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *StockRepository) ListCategories() ([]models.StockCategory, error) {
	var cats []models.StockCategory
	err := r.db.Find(&cats).Error
	return cats, err
}

func (r *StockRepository) DeleteCategory(id uint) error {
	return r.db.Delete(&models.StockCategory{}, id).Error
}

func (r *StockRepository) CreateItem(i *models.StockItem) error {
	return r.db.Create(i).Error
}

func (r *StockRepository) GetItem(id uint) (*models.StockItem, error) {
	var i models.StockItem
	if err := r.db.Preload("Category").First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *StockRepository) ListItems() ([]models.StockItem, error) {
	var items []models.StockItem
	err := r.db.Preload("Category").Find(&items).Error
	return items, err
}

func (r *StockRepository) ListItemsByCategory(categoryID uint) ([]models.StockItem, error) {
	var items []models.StockItem
	err := r.db.Where("category_id = ?", categoryID).Find(&items).Error
	return items, err
}

func (r *StockRepository) UpdateItemQuantity(id uint, quantity int) error {
	return r.db.Model(&models.StockItem{}).Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *StockRepository) DeleteItem(id uint) error {
	return r.db.Delete(&models.StockItem{}, id).Error
}

// CreateCleaningLog validates stock for every product used, saves the log
// and deducts the quantities, all in one transaction.
func (r *StockRepository) CreateCleaningLog(c *models.RoomCleaning, used []models.ProductUse) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, u := range used {
			var item models.StockItem
			if err := tx.First(&item, u.ItemID).Error; err != nil {
				return fmt.Errorf("stock item %d: %w", u.ItemID, err)
			}
			if item.Quantity < u.Quantity {
				return fmt.Errorf("%w for %s: have %d, need %d",
					ErrInsufficientStock, item.ItemName, item.Quantity, u.Quantity)
			}
		}
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		for _, u := range used {
			err := tx.Model(&models.StockItem{}).Where("id = ?", u.ItemID).
				Update("quantity", gorm.Expr("quantity - ?", u.Quantity)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *StockRepository) ListCleaningLogs() ([]models.RoomCleaning, error) {
	var logs []models.RoomCleaning
	err := r.db.Order("id DESC").Find(&logs).Error
	return logs, err
}

func (r *StockRepository) CreateLaundryLog(l *models.LaundryLog) error {
	return r.db.Create(l).Error
}

func (r *StockRepository) GetLaundryLog(id uint) (*models.LaundryLog, error) {
	var l models.LaundryLog
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *StockRepository) ListLaundryLogs() ([]models.LaundryLog, error) {
	var logs []models.LaundryLog
	err := r.db.Order("id DESC").Find(&logs).Error
	return logs, err
}

func (r *StockRepository) UpdateLaundryLog(l *models.LaundryLog) error {
	return r.db.Save(l).Error
}
