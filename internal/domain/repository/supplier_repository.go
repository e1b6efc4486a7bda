package repository

import (
	"context"
	"errors"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSupplierNotFound is returned when an update or delete targets an unknown
// supplier.
var ErrSupplierNotFound = errors.New("supplier not found")

// SupplierRepository defines the operations for supplier persistence.
type SupplierRepository interface {
	// List retrieves all suppliers ordered by name.
	List(ctx context.Context) ([]*entity.Supplier, error)

	// Create persists a new supplier row.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// Update replaces an existing supplier row by ID.
	Update(ctx context.Context, supplier *entity.Supplier) error

	// Delete removes the supplier row by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
