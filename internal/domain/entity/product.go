package entity

import (
	"errors"
	"time"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

var (
	ErrInsufficientStock    = errors.New("insufficient available stock")
	ErrInvalidInventoryType = errors.New("invalid inventory type")
)

// Product is the catalog entry. Stock counters are only ever mutated through
// ApplyMovement; product updates leave them untouched.
type Product struct {
	ID              int          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string       `gorm:"type:varchar(50);not null" json:"name"`
	Description     string       `gorm:"type:varchar(255)" json:"description"`
	MetaTitle       string       `gorm:"type:varchar(50)" json:"meta_title"`
	MetaDescription string       `gorm:"type:varchar(255)" json:"meta_description"`
	Slug            string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"slug"`
	Price           int          `gorm:"not null;default:0" json:"price"`
	PayablePrice    int          `gorm:"not null;default:0" json:"payable_price"`
	DiscountType    DiscountType `gorm:"type:varchar(20);not null;default:percentage" json:"discount_type"`
	DiscountAmount  int          `gorm:"not null;default:0" json:"discount_amount"`
	TotalStock      int          `gorm:"not null;default:0" json:"total_stock"`
	AvailableStock  int          `gorm:"not null;default:0" json:"available_stock"`
	QuantitySold    int          `gorm:"not null;default:0" json:"quantity_sold"`
	IsActive        *bool        `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Inventories []Inventory `gorm:"foreignKey:ProductID" json:"inventories,omitempty"`
}

func (Product) TableName() string {
	return "product"
}

// ApplyMovement applies the stock effect of one inventory movement to the
// product counters. A sale that would drive available stock negative is
// rejected before any counter changes, so callers can persist the product
// as-is on error.
func (p *Product) ApplyMovement(movementType InventoryType, quantity int) error {
	switch movementType {
	case InventoryPurchase:
		p.TotalStock += quantity
		p.AvailableStock += quantity
	case InventorySale:
		if p.AvailableStock < quantity {
			return ErrInsufficientStock
		}
		p.AvailableStock -= quantity
		p.QuantitySold += quantity
	default:
		return ErrInvalidInventoryType
	}
	return nil
}
