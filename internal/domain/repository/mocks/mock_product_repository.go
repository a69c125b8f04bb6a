package mocks

import (
	"go-inventory-service/internal/domain/entity"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(db *gorm.DB, product *entity.Product) error {
	args := m.Called(db, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(db *gorm.DB, id int) (*entity.Product, error) {
	args := m.Called(db, id)
	if res := args.Get(0); res != nil {
		return res.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) FindAll(db *gorm.DB, filter *entity.ProductFilter, limit, offset int) ([]entity.Product, int64, error) {
	args := m.Called(db, filter, limit, offset)
	if res := args.Get(0); res != nil {
		return res.([]entity.Product), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) SlugExists(db *gorm.DB, slug string) (bool, error) {
	args := m.Called(db, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Update(db *gorm.DB, product *entity.Product) error {
	args := m.Called(db, product)
	return args.Error(0)
}
