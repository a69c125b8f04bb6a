package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-inventory-service/internal/delivery/dto"
	"go-inventory-service/internal/usecase"
	"go-inventory-service/internal/usecase/mocks"
	"go-inventory-service/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductRouter(u usecase.ProductUsecase) *mux.Router {
	h := NewProductHandler(u, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/api/product", h.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/product", h.CreateProduct).Methods(http.MethodPost)
	r.HandleFunc("/api/product/{id}", h.GetProduct).Methods(http.MethodGet)
	r.HandleFunc("/api/product/{id}", h.UpdateProduct).Methods(http.MethodPut)
	return r
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockUsecase := new(mocks.MockProductUsecase)
		mockUsecase.On("Get", mock.Anything, 7).
			Return(&dto.ProductResponse{ID: 7, Name: "Widget", Slug: "widget"}, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/product/7", nil)
		newProductRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slug":"widget"`)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockUsecase := new(mocks.MockProductUsecase)
		mockUsecase.On("Get", mock.Anything, 99).
			Return(nil, usecase.ErrProductNotFound).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/product/99", nil)
		newProductRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail": "Product not found"}`, rec.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		mockUsecase := new(mocks.MockProductUsecase)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/product/abc", nil)
		newProductRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "Get")
	})
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mockUsecase := new(mocks.MockProductUsecase)
		mockUsecase.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateProductRequest) bool {
			return req.Name == "Widget" && req.Price == 100
		})).Return(&dto.ProductResponse{ID: 1, Name: "Widget", Slug: "widget", Price: 100, PayablePrice: 90}, nil).Once()

		body := `{"name": "Widget", "price": 100, "discount_type": "percentage", "discount_amount": 10}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/product", strings.NewReader(body))
		newProductRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"payable_price":90`)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		mockUsecase := new(mocks.MockProductUsecase)

		body := `{"price": 100}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/product", strings.NewReader(body))
		newProductRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Name is required")
		mockUsecase.AssertNotCalled(t, "Create")
	})

	t.Run("bad discount type rejected", func(t *testing.T) {
		mockUsecase := new(mocks.MockProductUsecase)

		body := `{"name": "Widget", "price": 100, "discount_type": "loyalty"}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/product", strings.NewReader(body))
		newProductRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "Create")
	})
}

func TestProductHandler_ListProducts(t *testing.T) {
	mockUsecase := new(mocks.MockProductUsecase)
	mockUsecase.On("List", mock.Anything, mock.MatchedBy(func(q *dto.ListProductQuery) bool {
		return q.Page == 2 && q.Limit == 10 && q.Name == "widget" &&
			q.IsActive != nil && *q.IsActive && q.DiscountType == "fixed"
	})).Return(&dto.ProductListResponse{Data: []dto.ProductResponse{}}, nil).Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/product?page=2&limit=10&name=widget&is_active=true&discount_type=fixed", nil)
	newProductRouter(mockUsecase).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockUsecase.AssertExpectations(t)
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockUsecase := new(mocks.MockProductUsecase)
		mockUsecase.On("Update", mock.Anything, 4, mock.Anything).
			Return(nil, usecase.ErrProductNotFound).Once()

		body := `{"name": "Widget", "price": 100}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/product/4", strings.NewReader(body))
		newProductRouter(mockUsecase).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
