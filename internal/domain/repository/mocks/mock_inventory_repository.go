package mocks

import (
	"go-inventory-service/internal/domain/entity"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Create(db *gorm.DB, inventory *entity.Inventory) error {
	args := m.Called(db, inventory)
	return args.Error(0)
}

func (m *MockInventoryRepository) FindByID(db *gorm.DB, id int) (*entity.Inventory, error) {
	args := m.Called(db, id)
	if res := args.Get(0); res != nil {
		return res.(*entity.Inventory), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryRepository) FindAll(db *gorm.DB, productID *int, limit, offset int) ([]entity.Inventory, int64, error) {
	args := m.Called(db, productID, limit, offset)
	if res := args.Get(0); res != nil {
		return res.([]entity.Inventory), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockInventoryRepository) Update(db *gorm.DB, inventory *entity.Inventory) error {
	args := m.Called(db, inventory)
	return args.Error(0)
}

func (m *MockInventoryRepository) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}
