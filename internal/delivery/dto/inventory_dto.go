package dto

import (
	"time"

	"go-inventory-service/pkg/response"
)

// Request DTOs

type CreateInventoryRequest struct {
	UnitPrice     float64 `json:"unit_price" validate:"gte=0"`
	TotalQuantity int     `json:"total_quantity" validate:"required,gt=0"`
	InventoryType string  `json:"inventory_type" validate:"required,oneof=purchase sale"`
	Notes         string  `json:"notes" validate:"max=255"`
	IsActive      *bool   `json:"is_active"`
	ProductID     int     `json:"product_id" validate:"required,gt=0"`
}

type UpdateInventoryRequest struct {
	UnitPrice     float64 `json:"unit_price" validate:"gte=0"`
	TotalQuantity int     `json:"total_quantity" validate:"required,gt=0"`
	InventoryType string  `json:"inventory_type" validate:"required,oneof=purchase sale"`
	Notes         string  `json:"notes" validate:"max=255"`
	IsActive      *bool   `json:"is_active"`
	ProductID     int     `json:"product_id" validate:"required,gt=0"`
}

// ListInventoryQuery holds the parsed query string of the inventory list endpoint.
type ListInventoryQuery struct {
	Page      int
	Limit     int
	ProductID *int
}

// Response DTOs

type InventoryResponse struct {
	ID            int       `json:"id"`
	UnitPrice     int       `json:"unit_price"`
	TotalQuantity int       `json:"total_quantity"`
	TotalPrice    int       `json:"total_price"`
	InventoryType string    `json:"inventory_type"`
	Notes         string    `json:"notes"`
	IsActive      *bool     `json:"is_active"`
	Quantity      int       `json:"quantity"`
	ProductID     int       `json:"product_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type InventoryListResponse struct {
	Data []InventoryResponse `json:"data"`
	Meta response.Meta       `json:"meta"`
}
