package models

import (
	"time"
)

type StockCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (StockCategory) TableName() string {
	return "stock_categories"
}

type StockItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	ItemName    string    `gorm:"size:100;not null" json:"item_name"`
	Quantity    int       `gorm:"not null;default:0" json:"quantity"`
	Description string    `gorm:"type:text" json:"description"`

	Category StockCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (StockItem) TableName() string {
	return "stock_items"
}

// RoomCleaning logs one cleaning pass. ProductsUsed holds JSON like
// [{"item_id":1,"item_name":"Floor Cleaner","quantity":2}].
type RoomCleaning struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RoomNumber   string     `gorm:"size:10;not null" json:"room_number"`
	StartTime    time.Time  `gorm:"not null" json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Username     string     `gorm:"size:150" json:"username"`
	ProductsUsed string     `gorm:"type:text" json:"products_used"` // JSON
	Remarks      string     `gorm:"type:text" json:"remarks"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (RoomCleaning) TableName() string {
	return "room_cleanings"
}

type LaundryLog struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Date             time.Time  `gorm:"type:date;not null" json:"date"`
	CompanyName      string     `gorm:"size:255;not null" json:"company_name"`
	ProductsUsed     string     `gorm:"type:text" json:"products_used"` // JSON
	Description      string     `gorm:"type:text" json:"description"`
	ReceivedDate     *time.Time `gorm:"type:date" json:"received_date"`
	ReceivedQuantity int        `gorm:"not null;default:0" json:"received_quantity"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (LaundryLog) TableName() string {
	return "laundry_logs"
}

// ProductUse is one line of a ProductsUsed JSON payload.
type ProductUse struct {
	ItemID           uint   `json:"item_id"`
	ItemName         string `json:"item_name"`
	Quantity         int    `json:"quantity"`
	ReceivedQuantity *int   `json:"received_quantity,omitempty"`
	ReceivedDate     string `json:"received_date,omitempty"`
}
