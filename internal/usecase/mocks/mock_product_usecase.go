package mocks

import (
	"context"

	"go-inventory-service/internal/delivery/dto"

	"github.com/stretchr/testify/mock"
)

type MockProductUsecase struct {
	mock.Mock
}

func (m *MockProductUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*dto.ProductResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductUsecase) Get(ctx context.Context, id int) (*dto.ProductResponse, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*dto.ProductResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductUsecase) List(ctx context.Context, query *dto.ListProductQuery) (*dto.ProductListResponse, error) {
	args := m.Called(ctx, query)
	if res := args.Get(0); res != nil {
		return res.(*dto.ProductListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductUsecase) Update(ctx context.Context, id int, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	args := m.Called(ctx, id, req)
	if res := args.Get(0); res != nil {
		return res.(*dto.ProductResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
