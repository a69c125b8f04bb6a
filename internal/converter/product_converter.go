package converter

import (
	"go-inventory-service/internal/delivery/dto"
	"go-inventory-service/internal/domain/entity"
)

// ProductToResponse converts a Product entity to ProductResponse DTO
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		MetaTitle:       product.MetaTitle,
		MetaDescription: product.MetaDescription,
		Slug:            product.Slug,
		Price:           product.Price,
		PayablePrice:    product.PayablePrice,
		DiscountType:    string(product.DiscountType),
		DiscountAmount:  product.DiscountAmount,
		TotalStock:      product.TotalStock,
		AvailableStock:  product.AvailableStock,
		QuantitySold:    product.QuantitySold,
		IsActive:        product.IsActive,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
}

// ProductsToResponses converts a slice of Product entities to ProductResponse DTOs
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i := range products {
		responses[i] = *ProductToResponse(&products[i])
	}
	return responses
}
