package service

import (
	"context"
	"fmt"
	"time"

	"go-inventory-service/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Redis key prefix for mirrored stock counters
	stockKeyPrefix = "product:stock:"

	// Batch size for the startup sync - process 500 products at a time,
	// pipeline created and executed inside the batch loop
	syncBatchSize = 500
)

// StockCacheService mirrors product stock counters into Redis hashes so
// dashboards and other read paths can poll stock levels without touching
// PostgreSQL. The database stays the source of truth: every mirror write is
// best-effort and a failure must never fail the request that triggered it.
type StockCacheService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
}

// stockRow holds counter columns scanned during the startup sync
type stockRow struct {
	ID             int
	TotalStock     int
	AvailableStock int
	QuantitySold   int
}

func NewStockCacheService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *StockCacheService {
	return &StockCacheService{
		db:          db,
		redisClient: redisClient,
		log:         log,
	}
}

// SyncOnStartup mirrors the stock counters of every product into Redis in
// batches, so a restarted process comes back with a warm mirror. Should be
// called before accepting traffic.
func (s *StockCacheService) SyncOnStartup(ctx context.Context) error {
	s.log.Info("Starting stock mirror re-sync from database...")
	startTime := time.Now()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.Warnf("Redis is not available, skipping stock sync: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	offset := 0
	totalSynced := 0

	for {
		var rows []stockRow

		err := s.db.WithContext(ctx).Model(&entity.Product{}).
			Select("id, total_stock, available_stock, quantity_sold").
			Order("id").
			Limit(syncBatchSize).
			Offset(offset).
			Scan(&rows).Error
		if err != nil {
			s.log.Errorf("Failed to query products at offset %d: %+v", offset, err)
			return fmt.Errorf("query products at offset %d: %w", offset, err)
		}

		if len(rows) == 0 {
			if offset == 0 {
				s.log.Info("No products found for stock sync")
			}
			break
		}

		// New pipeline per batch to keep memory flat
		pipe := s.redisClient.TxPipeline()
		for _, row := range rows {
			pipe.HSet(ctx, stockKey(row.ID),
				"total_stock", row.TotalStock,
				"available_stock", row.AvailableStock,
				"quantity_sold", row.QuantitySold,
			)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			s.log.Errorf("Failed to execute pipeline for batch at offset %d: %+v", offset, err)
			return fmt.Errorf("pipeline exec at offset %d: %w", offset, err)
		}

		totalSynced += len(rows)
		if len(rows) < syncBatchSize {
			break
		}
		offset += syncBatchSize

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	s.log.Infof("Stock mirror re-sync completed: %d products in %v", totalSynced, time.Since(startTime))
	return nil
}

// SyncProduct mirrors a single product's counters after a committed write.
//
// Called by: product create, inventory create/update usecases.
func (s *StockCacheService) SyncProduct(ctx context.Context, product *entity.Product) error {
	err := s.redisClient.HSet(ctx, stockKey(product.ID),
		"total_stock", product.TotalStock,
		"available_stock", product.AvailableStock,
		"quantity_sold", product.QuantitySold,
	).Err()
	if err != nil {
		return fmt.Errorf("mirror stock for product %d: %w", product.ID, err)
	}

	s.log.Debugf("Mirrored stock for product %d: total=%d, available=%d, sold=%d",
		product.ID, product.TotalStock, product.AvailableStock, product.QuantitySold)
	return nil
}

func stockKey(productID int) string {
	return fmt.Sprintf("%s%d", stockKeyPrefix, productID)
}
