package converter

import (
	"go-inventory-service/internal/delivery/dto"
	"go-inventory-service/internal/domain/entity"
)

// InventoryToResponse converts an Inventory entity to InventoryResponse DTO
func InventoryToResponse(inventory *entity.Inventory) *dto.InventoryResponse {
	if inventory == nil {
		return nil
	}

	return &dto.InventoryResponse{
		ID:            inventory.ID,
		UnitPrice:     inventory.UnitPrice,
		TotalQuantity: inventory.TotalQuantity,
		TotalPrice:    inventory.TotalPrice,
		InventoryType: string(inventory.InventoryType),
		Notes:         inventory.Notes,
		IsActive:      inventory.IsActive,
		Quantity:      inventory.Quantity,
		ProductID:     inventory.ProductID,
		CreatedAt:     inventory.CreatedAt,
		UpdatedAt:     inventory.UpdatedAt,
	}
}

// InventoriesToResponses converts a slice of Inventory entities to InventoryResponse DTOs
func InventoriesToResponses(inventories []entity.Inventory) []dto.InventoryResponse {
	responses := make([]dto.InventoryResponse, len(inventories))
	for i := range inventories {
		responses[i] = *InventoryToResponse(&inventories[i])
	}
	return responses
}
