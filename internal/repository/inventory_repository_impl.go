package repository

import (
	"errors"

	"go-inventory-service/internal/domain/entity"
	domainRepo "go-inventory-service/internal/domain/repository"

	"gorm.io/gorm"
)

type inventoryRepository struct{}

func NewInventoryRepository() domainRepo.InventoryRepository {
	return &inventoryRepository{}
}

func (r *inventoryRepository) Create(db *gorm.DB, inventory *entity.Inventory) error {
	return db.Omit("Product").Create(inventory).Error
}

func (r *inventoryRepository) FindByID(db *gorm.DB, id int) (*entity.Inventory, error) {
	var inventory entity.Inventory
	err := db.Where("id = ?", id).First(&inventory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inventory, nil
}

func (r *inventoryRepository) FindAll(db *gorm.DB, productID *int, limit, offset int) ([]entity.Inventory, int64, error) {
	var inventories []entity.Inventory
	var total int64

	query := db.Model(&entity.Inventory{})
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = db
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	if err := query.Limit(limit).Offset(offset).Order("id ASC").Find(&inventories).Error; err != nil {
		return nil, 0, err
	}

	return inventories, total, nil
}

func (r *inventoryRepository) Update(db *gorm.DB, inventory *entity.Inventory) error {
	return db.Omit("Product").Save(inventory).Error
}

func (r *inventoryRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Inventory{})
	return affected.RowsAffected, affected.Error
}
