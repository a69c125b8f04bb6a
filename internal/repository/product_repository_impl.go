package repository

import (
	"errors"

	"go-inventory-service/internal/domain/entity"
	domainRepo "go-inventory-service/internal/domain/repository"

	"gorm.io/gorm"
)

type productRepository struct{}

func NewProductRepository() domainRepo.ProductRepository {
	return &productRepository{}
}

func (r *productRepository) Create(db *gorm.DB, product *entity.Product) error {
	return db.Create(product).Error
}

func (r *productRepository) FindByID(db *gorm.DB, id int) (*entity.Product, error) {
	var product entity.Product
	err := db.Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindAll(db *gorm.DB, filter *entity.ProductFilter, limit, offset int) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := applyProductFilter(db.Model(&entity.Product{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyProductFilter(db, filter)
	if err := query.Limit(limit).Offset(offset).Order("id ASC").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) SlugExists(db *gorm.DB, slug string) (bool, error) {
	var count int64
	err := db.Model(&entity.Product{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepository) Update(db *gorm.DB, product *entity.Product) error {
	return db.Omit("Inventories").Save(product).Error
}

func applyProductFilter(query *gorm.DB, filter *entity.ProductFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Description != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Description+"%")
	}
	if filter.MetaTitle != "" {
		query = query.Where("meta_title ILIKE ?", "%"+filter.MetaTitle+"%")
	}
	if filter.MetaDescription != "" {
		query = query.Where("meta_description ILIKE ?", "%"+filter.MetaDescription+"%")
	}
	if filter.DiscountType != "" {
		query = query.Where("discount_type = ?", filter.DiscountType)
	}
	return query
}
