package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-inventory-service/internal/delivery/dto"
	"go-inventory-service/internal/domain/entity"
	"go-inventory-service/internal/usecase"
	"go-inventory-service/pkg/response"
	"go-inventory-service/pkg/validator"

	"github.com/gorilla/mux"
)

type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUsecase
	validator        *validator.CustomValidator
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUsecase, validator *validator.CustomValidator) *InventoryHandler {
	return &InventoryHandler{
		inventoryUsecase: inventoryUsecase,
		validator:        validator,
	}
}

func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	inventory, err := h.inventoryUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeInventoryError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, inventory)
}

func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid inventory ID")
		return
	}

	inventory, err := h.inventoryUsecase.Get(r.Context(), id)
	if err != nil {
		h.writeInventoryError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, inventory)
}

func (h *InventoryHandler) ListInventories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &dto.ListInventoryQuery{Page: 1}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		query.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		query.Limit = limit
	}
	if productID, err := strconv.Atoi(q.Get("product_id")); err == nil {
		query.ProductID = &productID
	}

	result, err := h.inventoryUsecase.List(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid inventory ID")
		return
	}

	var req dto.UpdateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	inventory, err := h.inventoryUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeInventoryError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, inventory)
}

func (h *InventoryHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid inventory ID")
		return
	}

	if err := h.inventoryUsecase.Delete(r.Context(), id); err != nil {
		h.writeInventoryError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Inventory deleted successfully"})
}

// writeInventoryError maps usecase errors onto the status codes of the API:
// missing records are 404, rejected movements 400, everything else 500.
func (h *InventoryHandler) writeInventoryError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrInventoryNotFound:
		response.NotFound(w, "Inventory not found")
	case usecase.ErrProductNotFound:
		response.NotFound(w, "Product not found")
	case entity.ErrInsufficientStock:
		response.BadRequest(w, "Insufficient available stock")
	case entity.ErrInvalidInventoryType:
		response.BadRequest(w, "Invalid inventory type")
	default:
		response.InternalServerError(w, err.Error())
	}
}
