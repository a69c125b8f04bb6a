package mocks

import (
	"context"

	"go-inventory-service/internal/delivery/dto"

	"github.com/stretchr/testify/mock"
)

type MockInventoryUsecase struct {
	mock.Mock
}

func (m *MockInventoryUsecase) Create(ctx context.Context, req *dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*dto.InventoryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryUsecase) Get(ctx context.Context, id int) (*dto.InventoryResponse, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*dto.InventoryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryUsecase) List(ctx context.Context, query *dto.ListInventoryQuery) (*dto.InventoryListResponse, error) {
	args := m.Called(ctx, query)
	if res := args.Get(0); res != nil {
		return res.(*dto.InventoryListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryUsecase) Update(ctx context.Context, id int, req *dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	args := m.Called(ctx, id, req)
	if res := args.Get(0); res != nil {
		return res.(*dto.InventoryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryUsecase) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
