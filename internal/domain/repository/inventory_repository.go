package repository

import (
	"context"

	"github.com/google/uuid"
)

// InventoryRepository exposes the inventory relation. The integrity guard
// only needs the dependent count; stock mutation itself happens elsewhere.
type InventoryRepository interface {
	// CountByProduct returns how many inventory rows reference the product.
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}

// OrderLineRepository exposes the order-line relation to the integrity guard.
type OrderLineRepository interface {
	// CountByProduct returns how many order lines reference the product.
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
