package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-inventory-service/internal/delivery/dto"
	"go-inventory-service/internal/usecase"
	"go-inventory-service/pkg/response"
	"go-inventory-service/pkg/validator"

	"github.com/gorilla/mux"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
	}
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	product, err := h.productUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrProductNotFound {
			response.NotFound(w, "Product not found")
			return
		}
		response.InternalServerError(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := parseListProductQuery(r)

	result, err := h.productUsecase.List(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.Update(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrProductNotFound {
			response.NotFound(w, "Product not found")
			return
		}
		response.InternalServerError(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, product)
}

func parseListProductQuery(r *http.Request) *dto.ListProductQuery {
	q := r.URL.Query()
	query := &dto.ListProductQuery{
		Page:            1,
		Name:            q.Get("name"),
		Description:     q.Get("description"),
		MetaTitle:       q.Get("meta_title"),
		MetaDescription: q.Get("meta_description"),
		DiscountType:    q.Get("discount_type"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		query.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		query.Limit = limit
	}
	if isActive, err := strconv.ParseBool(q.Get("is_active")); err == nil {
		query.IsActive = &isActive
	}
	return query
}
