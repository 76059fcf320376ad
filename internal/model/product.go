package model

import "github.com/google/uuid"

type Category string

const (
	CategoryFood         Category = "FOOD"
	CategoryBeverages    Category = "BEVERAGES"
	CategoryElectronics  Category = "ELECTRONICS"
	CategoryClothing     Category = "CLOTHING"
	CategoryCleaning     Category = "CLEANING"
	CategoryConstruction Category = "CONSTRUCTION"
	CategoryOther        Category = "OTHER"
)

// Product is a stocked item owned by exactly one account.
// Price is in whole Kwanzas (AOA has no circulating subunit).
type Product struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id" validate:"uuid_required"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category  Category  `gorm:"type:varchar(20);not null" json:"category" validate:"required,oneof=FOOD BEVERAGES ELECTRONICS CLOTHING CLEANING CONSTRUCTION OTHER"`
	Price     int64     `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Stock     int       `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
	MinStock  int       `gorm:"not null;default:0" json:"min_stock" validate:"gte=0"`

	// Relasi
	Transactions []Transaction `json:"transactions,omitempty"`
}

// IsLow reports whether the product is at or below its minimum threshold.
func (p *Product) IsLow() bool {
	return p.Stock <= p.MinStock
}
