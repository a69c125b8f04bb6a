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
	"go-inventory-service/pkg/slug"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// productDefaultLimit is the page size when the client sends none.
const productDefaultLimit = 30

type ProductUsecase interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id int) (*dto.ProductResponse, error)
	List(ctx context.Context, query *dto.ListProductQuery) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
}

type productUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	productRepo repository.ProductRepository
	stockCache  *service.StockCacheService
}

func NewProductUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	stockCache *service.StockCacheService,
) ProductUsecase {
	return &productUsecase{
		db:          db,
		log:         log,
		productRepo: productRepo,
		stockCache:  stockCache,
	}
}

// Create persists a new product with a unique slug, a computed payable
// price, and all stock counters at zero.
func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	db := u.db.WithContext(ctx)

	productSlug, err := slug.MakeUnique(req.Name, func(candidate string) (bool, error) {
		return u.productRepo.SlugExists(db, candidate)
	})
	if err != nil {
		u.log.Warnf("Failed to generate slug for %q: %+v", req.Name, err)
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &entity.Product{
		Name:            req.Name,
		Description:     req.Description,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Slug:            productSlug,
		Price:           int(req.Price),
		PayablePrice:    entity.CalcPayablePrice(req.Price, entity.DiscountType(req.DiscountType), req.DiscountAmount),
		DiscountType:    discountTypeOrDefault(req.DiscountType),
		DiscountAmount:  int(req.DiscountAmount),
		IsActive:        &isActive,
	}

	if err := u.productRepo.Create(db, product); err != nil {
		u.log.Warnf("Failed to create product %q: %+v", req.Name, err)
		return nil, err
	}

	u.syncStockCache(product)

	u.log.Infof("Product created: id=%d, slug=%s", product.ID, product.Slug)
	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Get(ctx context.Context, id int) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find product %d: %+v", id, err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) List(ctx context.Context, query *dto.ListProductQuery) (*dto.ProductListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = productDefaultLimit
	}
	offset := (page - 1) * limit

	filter := &entity.ProductFilter{
		IsActive:        query.IsActive,
		Name:            query.Name,
		Description:     query.Description,
		MetaTitle:       query.MetaTitle,
		MetaDescription: query.MetaDescription,
		DiscountType:    query.DiscountType,
	}

	products, total, err := u.productRepo.FindAll(u.db.WithContext(ctx), filter, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list products: %+v", err)
		return nil, err
	}

	return &dto.ProductListResponse{
		Data: converter.ProductsToResponses(products),
		Meta: response.NewMeta(total, page, limit),
	}, nil
}

// Update overwrites the mutable product fields. The slug is regenerated only
// when the name changed; stock counters are never touched here.
func (u *productUsecase) Update(ctx context.Context, id int, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	db := u.db.WithContext(ctx)

	product, err := u.productRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find product %d: %+v", id, err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if product.Name != req.Name {
		newSlug, err := slug.MakeUnique(req.Name, func(candidate string) (bool, error) {
			return u.productRepo.SlugExists(db, candidate)
		})
		if err != nil {
			u.log.Warnf("Failed to regenerate slug for %q: %+v", req.Name, err)
			return nil, err
		}
		product.Slug = newSlug
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product.Name = req.Name
	product.Description = req.Description
	product.MetaTitle = req.MetaTitle
	product.MetaDescription = req.MetaDescription
	product.Price = int(req.Price)
	product.PayablePrice = entity.CalcPayablePrice(req.Price, entity.DiscountType(req.DiscountType), req.DiscountAmount)
	product.DiscountType = discountTypeOrDefault(req.DiscountType)
	product.DiscountAmount = int(req.DiscountAmount)
	product.IsActive = &isActive

	if err := u.productRepo.Update(db, product); err != nil {
		u.log.Warnf("Failed to update product %d: %+v", id, err)
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

// syncStockCache mirrors the counters to Redis, best effort.
func (u *productUsecase) syncStockCache(product *entity.Product) {
	syncCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := u.stockCache.SyncProduct(syncCtx, product); err != nil {
		u.log.Warnf("Failed to mirror stock for product %d (non-fatal): %+v", product.ID, err)
	}
}

// discountTypeOrDefault maps an absent discount type to the column default.
// The payable price is always computed from the raw request value, so an
// absent type still means "no discount" there.
func discountTypeOrDefault(t string) entity.DiscountType {
	if t == "" {
		return entity.DiscountPercentage
	}
	return entity.DiscountType(t)
}
