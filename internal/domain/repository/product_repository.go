package repository

import (
	"go-inventory-service/internal/domain/entity"

	"gorm.io/gorm"
)

// ProductRepository takes the *gorm.DB explicitly so the same method works
// on the root handle and inside a transaction.
type ProductRepository interface {
	Create(db *gorm.DB, product *entity.Product) error
	FindByID(db *gorm.DB, id int) (*entity.Product, error)
	FindAll(db *gorm.DB, filter *entity.ProductFilter, limit, offset int) ([]entity.Product, int64, error)
	SlugExists(db *gorm.DB, slug string) (bool, error)
	Update(db *gorm.DB, product *entity.Product) error
}
