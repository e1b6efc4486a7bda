package postgres

import (
	"context"

	"comanda/internal/domain/repository"
	"comanda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inventoryRepository implements repository.InventoryRepository using GORM.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

// CountByProduct returns how many inventory rows reference the product.
// Errors propagate untouched; the integrity guard treats them as a blocked
// check, never as permission.
func (repo *inventoryRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count inventory rows by product")
	}

	return count, nil
}

// orderLineRepository implements repository.OrderLineRepository using GORM.
type orderLineRepository struct {
	db *gorm.DB
}

// NewOrderLineRepository is the constructor for orderLineRepository.
func NewOrderLineRepository(db *gorm.DB) repository.OrderLineRepository {
	return &orderLineRepository{
		db: db,
	}
}

// CountByProduct returns how many order lines reference the product.
func (repo *orderLineRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderLineModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count order lines by product")
	}

	return count, nil
}
