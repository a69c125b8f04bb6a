package entity

import "time"

type InventoryType string

const (
	InventoryPurchase InventoryType = "purchase"
	InventorySale     InventoryType = "sale"
)

// Inventory is a single stock movement (a purchase into stock or a sale out
// of it) against one product. TotalQuantity and Quantity carry the same
// value; the duplicated column is kept for schema compatibility.
type Inventory struct {
	ID            int           `gorm:"primaryKey;autoIncrement" json:"id"`
	UnitPrice     int           `gorm:"not null;default:0" json:"unit_price"`
	TotalQuantity int           `gorm:"not null;default:0" json:"total_quantity"`
	TotalPrice    int           `gorm:"not null;default:0" json:"total_price"`
	InventoryType InventoryType `gorm:"type:varchar(20);not null;default:purchase" json:"inventory_type"`
	Notes         string        `gorm:"type:varchar(255)" json:"notes"`
	IsActive      *bool         `gorm:"not null;default:true" json:"is_active"`
	Quantity      int           `gorm:"not null;default:0" json:"quantity"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	ProductID int `gorm:"not null;index" json:"product_id"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (Inventory) TableName() string {
	return "inventory"
}
