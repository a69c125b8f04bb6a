package usecase

import (
	"context"
	"errors"
	"time"

	"go-inventory-service/internal/converter"
	"go-inventory-service/internal/delivery/dto"
	"go-inventory-service/internal/domain/entity"
	"go-inventory-service/internal/domain/repository"
	"go-inventory-service/internal/service"
	"go-inventory-service/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInventoryNotFound = errors.New("inventory not found")
)

const inventoryDefaultLimit = 20

type InventoryUsecase interface {
	Create(ctx context.Context, req *dto.CreateInventoryRequest) (*dto.InventoryResponse, error)
	Get(ctx context.Context, id int) (*dto.InventoryResponse, error)
	List(ctx context.Context, query *dto.ListInventoryQuery) (*dto.InventoryListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateInventoryRequest) (*dto.InventoryResponse, error)
	Delete(ctx context.Context, id int) error
}

type inventoryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	stockCache    *service.StockCacheService
}

func NewInventoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	stockCache *service.StockCacheService,
) InventoryUsecase {
	return &inventoryUsecase{
		db:            db,
		log:           log,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		stockCache:    stockCache,
	}
}

// Create records a stock movement and applies its effect to the product
// counters. The inventory row and the counter update commit in one
// transaction; if the movement is rejected, neither write survives.
func (u *inventoryUsecase) Create(ctx context.Context, req *dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	quantity := req.TotalQuantity
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	inventory := &entity.Inventory{
		UnitPrice:     int(req.UnitPrice),
		TotalQuantity: quantity,
		TotalPrice:    int(req.UnitPrice * float64(quantity)),
		InventoryType: entity.InventoryType(req.InventoryType),
		Notes:         req.Notes,
		IsActive:      &isActive,
		Quantity:      quantity,
		ProductID:     req.ProductID,
	}

	var product *entity.Product
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		product, err = u.productRepo.FindByID(tx, req.ProductID)
		if err != nil {
			u.log.Warnf("Failed to find product %d: %+v", req.ProductID, err)
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		if err := u.inventoryRepo.Create(tx, inventory); err != nil {
			u.log.Warnf("Failed to create inventory for product %d: %+v", req.ProductID, err)
			return err
		}

		if err := product.ApplyMovement(inventory.InventoryType, quantity); err != nil {
			return err
		}

		if err := u.productRepo.Update(tx, product); err != nil {
			u.log.Warnf("Failed to update stock for product %d: %+v", req.ProductID, err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.syncStockCache(product)

	u.log.Infof("Inventory created: id=%d, product=%d, type=%s, quantity=%d",
		inventory.ID, product.ID, inventory.InventoryType, quantity)
	return converter.InventoryToResponse(inventory), nil
}

func (u *inventoryUsecase) Get(ctx context.Context, id int) (*dto.InventoryResponse, error) {
	inventory, err := u.inventoryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find inventory %d: %+v", id, err)
		return nil, err
	}
	if inventory == nil {
		return nil, ErrInventoryNotFound
	}

	return converter.InventoryToResponse(inventory), nil
}

func (u *inventoryUsecase) List(ctx context.Context, query *dto.ListInventoryQuery) (*dto.InventoryListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = inventoryDefaultLimit
	}
	offset := (page - 1) * limit

	inventories, total, err := u.inventoryRepo.FindAll(u.db.WithContext(ctx), query.ProductID, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list inventories: %+v", err)
		return nil, err
	}

	return &dto.InventoryListResponse{
		Data: converter.InventoriesToResponses(inventories),
		Meta: response.NewMeta(total, page, limit),
	}, nil
}

// Update overwrites the movement fields and applies the NEW movement to the
// referenced product's counters. The previous effect of this record is not
// reversed; stock counters are append-only projections here. Recomputing
// them from the full movement log would need an audit trail this system does
// not keep.
func (u *inventoryUsecase) Update(ctx context.Context, id int, req *dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	quantity := req.TotalQuantity

	var inventory *entity.Inventory
	var product *entity.Product
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		inventory, err = u.inventoryRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find inventory %d: %+v", id, err)
			return err
		}
		if inventory == nil {
			return ErrInventoryNotFound
		}

		product, err = u.productRepo.FindByID(tx, req.ProductID)
		if err != nil {
			u.log.Warnf("Failed to find product %d: %+v", req.ProductID, err)
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		inventory.UnitPrice = int(req.UnitPrice)
		inventory.TotalQuantity = quantity
		inventory.TotalPrice = int(req.UnitPrice * float64(quantity))
		inventory.InventoryType = entity.InventoryType(req.InventoryType)
		inventory.Notes = req.Notes
		inventory.Quantity = quantity
		inventory.ProductID = req.ProductID

		if err := product.ApplyMovement(inventory.InventoryType, quantity); err != nil {
			return err
		}

		if err := u.inventoryRepo.Update(tx, inventory); err != nil {
			u.log.Warnf("Failed to update inventory %d: %+v", id, err)
			return err
		}
		if err := u.productRepo.Update(tx, product); err != nil {
			u.log.Warnf("Failed to update stock for product %d: %+v", req.ProductID, err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.syncStockCache(product)

	return converter.InventoryToResponse(inventory), nil
}

// Delete removes the movement record only. Its past effect on the product
// counters stays in place.
func (u *inventoryUsecase) Delete(ctx context.Context, id int) error {
	db := u.db.WithContext(ctx)

	inventory, err := u.inventoryRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find inventory %d: %+v", id, err)
		return err
	}
	if inventory == nil {
		return ErrInventoryNotFound
	}

	if _, err := u.inventoryRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete inventory %d: %+v", id, err)
		return err
	}

	u.log.Infof("Inventory deleted: id=%d, product=%d", id, inventory.ProductID)
	return nil
}

func (u *inventoryUsecase) syncStockCache(product *entity.Product) {
	syncCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := u.stockCache.SyncProduct(syncCtx, product); err != nil {
		u.log.Warnf("Failed to mirror stock for product %d (non-fatal): %+v", product.ID, err)
	}
}
