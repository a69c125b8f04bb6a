package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-inventory-service/internal/delivery/dto"
	"go-inventory-service/internal/domain/entity"
	"go-inventory-service/internal/usecase"
	"go-inventory-service/internal/usecase/mocks"
	"go-inventory-service/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newInventoryRouter(u usecase.InventoryUsecase) *mux.Router {
	h := NewInventoryHandler(u, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/api/inventory", h.ListInventories).Methods(http.MethodGet)
	r.HandleFunc("/api/inventory", h.CreateInventory).Methods(http.MethodPost)
	r.HandleFunc("/api/inventory/{id}", h.GetInventory).Methods(http.MethodGet)
	r.HandleFunc("/api/inventory/{id}", h.UpdateInventory).Methods(http.MethodPut)
	r.HandleFunc("/api/inventory/{id}", h.DeleteInventory).Methods(http.MethodDelete)
	return r
}

func TestInventoryHandler_CreateInventory(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mockUsecase := new(mocks.MockInventoryUsecase)
		mockUsecase.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateInventoryRequest) bool {
			return req.ProductID == 3 && req.TotalQuantity == 5 && req.InventoryType == "purchase"
		})).Return(&dto.InventoryResponse{ID: 1, ProductID: 3, TotalQuantity: 5, TotalPrice: 50, InventoryType: "purchase"}, nil).Once()

		body := `{"unit_price": 10, "total_quantity": 5, "inventory_type": "purchase", "product_id": 3}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/inventory", strings.NewReader(body))
		newInventoryRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_price":50`)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		mockUsecase := new(mocks.MockInventoryUsecase)
		mockUsecase.On("Create", mock.Anything, mock.Anything).
			Return(nil, entity.ErrInsufficientStock).Once()

		body := `{"unit_price": 10, "total_quantity": 50, "inventory_type": "sale", "product_id": 3}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/inventory", strings.NewReader(body))
		newInventoryRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail": "Insufficient available stock"}`, rec.Body.String())
	})

	t.Run("unknown product", func(t *testing.T) {
		mockUsecase := new(mocks.MockInventoryUsecase)
		mockUsecase.On("Create", mock.Anything, mock.Anything).
			Return(nil, usecase.ErrProductNotFound).Once()

		body := `{"unit_price": 10, "total_quantity": 5, "inventory_type": "purchase", "product_id": 999}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/inventory", strings.NewReader(body))
		newInventoryRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail": "Product not found"}`, rec.Body.String())
	})

	t.Run("invalid movement type rejected by validation", func(t *testing.T) {
		mockUsecase := new(mocks.MockInventoryUsecase)

		body := `{"unit_price": 10, "total_quantity": 5, "inventory_type": "transfer", "product_id": 3}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/inventory", strings.NewReader(body))
		newInventoryRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "Create")
	})
}

func TestInventoryHandler_ListInventories(t *testing.T) {
	mockUsecase := new(mocks.MockInventoryUsecase)
	mockUsecase.On("List", mock.Anything, mock.MatchedBy(func(q *dto.ListInventoryQuery) bool {
		return q.Page == 1 && q.ProductID != nil && *q.ProductID == 3
	})).Return(&dto.InventoryListResponse{Data: []dto.InventoryResponse{}}, nil).Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/inventory?product_id=3", nil)
	newInventoryRouter(mockUsecase).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockUsecase.AssertExpectations(t)
}

func TestInventoryHandler_DeleteInventory(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mockUsecase := new(mocks.MockInventoryUsecase)
		mockUsecase.On("Delete", mock.Anything, 5).Return(nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/inventory/5", nil)
		newInventoryRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Inventory deleted successfully")
	})

	t.Run("not found", func(t *testing.T) {
		mockUsecase := new(mocks.MockInventoryUsecase)
		mockUsecase.On("Delete", mock.Anything, 5).Return(usecase.ErrInventoryNotFound).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/inventory/5", nil)
		newInventoryRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail": "Inventory not found"}`, rec.Body.String())
	})
}
