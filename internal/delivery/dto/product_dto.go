package dto

import (
	"time"

	"go-inventory-service/pkg/response"
)

// Request DTOs

type CreateProductRequest struct {
	Name            string  `json:"name" validate:"required,max=50"`
	Description     string  `json:"description" validate:"max=255"`
	MetaTitle       string  `json:"meta_title" validate:"max=50"`
	MetaDescription string  `json:"meta_description" validate:"max=255"`
	Price           float64 `json:"price" validate:"gte=0"`
	DiscountType    string  `json:"discount_type" validate:"omitempty,oneof=percentage fixed"`
	DiscountAmount  float64 `json:"discount_amount" validate:"gte=0"`
	IsActive        *bool   `json:"is_active"`
}

type UpdateProductRequest struct {
	Name            string  `json:"name" validate:"required,max=50"`
	Description     string  `json:"description" validate:"max=255"`
	MetaTitle       string  `json:"meta_title" validate:"max=50"`
	MetaDescription string  `json:"meta_description" validate:"max=255"`
	Price           float64 `json:"price" validate:"gte=0"`
	DiscountType    string  `json:"discount_type" validate:"omitempty,oneof=percentage fixed"`
	DiscountAmount  float64 `json:"discount_amount" validate:"gte=0"`
	IsActive        *bool   `json:"is_active"`
}

// ListProductQuery holds the parsed query string of the product list endpoint.
type ListProductQuery struct {
	Page            int
	Limit           int
	IsActive        *bool
	Name            string
	Description     string
	MetaTitle       string
	MetaDescription string
	DiscountType    string
}

// Response DTOs

type ProductResponse struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	Slug            string    `json:"slug"`
	Price           int       `json:"price"`
	PayablePrice    int       `json:"payable_price"`
	DiscountType    string    `json:"discount_type"`
	DiscountAmount  int       `json:"discount_amount"`
	TotalStock      int       `json:"total_stock"`
	AvailableStock  int       `json:"available_stock"`
	QuantitySold    int       `json:"quantity_sold"`
	IsActive        *bool     `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ProductListResponse struct {
	Data []ProductResponse `json:"data"`
	Meta response.Meta     `json:"meta"`
}
