package repository

import (
	"go-inventory-service/internal/domain/entity"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(db *gorm.DB, inventory *entity.Inventory) error
	FindByID(db *gorm.DB, id int) (*entity.Inventory, error)
	FindAll(db *gorm.DB, productID *int, limit, offset int) ([]entity.Inventory, int64, error)
	Update(db *gorm.DB, inventory *entity.Inventory) error
	Delete(db *gorm.DB, id int) (int64, error)
}
