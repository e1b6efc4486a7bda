// Package repository defines the record-store boundary. The usecase layer
// depends on these interfaces; the infrastructure layer provides the
// PostgreSQL implementations.
package repository

import (
	"context"
	"errors"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when an update or delete targets a product
// key absent from the store.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// List retrieves all products ordered by name.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product. A name collision surfaces as the
	// domain conflict error, not as a raw store error.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces an existing product row by ID.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product row by ID. Referential checks are the
	// caller's responsibility; the integrity guard runs before this.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository exposes the fixed category lookup list.
type CategoryRepository interface {
	// List retrieves all categories ordered by ID.
	List(ctx context.Context) ([]*entity.Category, error)
}
