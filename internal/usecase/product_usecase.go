package usecase

import (
	"context"
	"time"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput is the operator-submitted product form.
type ProductInput struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ExpiryDate  *time.Time      `json:"expiry_date"`
	CategoryID  int64           `json:"category_id" validate:"required"`
}

// ProductUsecase manages the product catalog. Deletion is guarded: a product
// still referenced by inventory rows or order lines cannot be removed.
type ProductUsecase interface {
	// List retrieves all products.
	List(ctx context.Context) ([]*entity.Product, error)

	// ListCategories retrieves the category lookup list for the form.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// Create validates the input and persists a new product.
	Create(ctx context.Context, input ProductInput) (*entity.Product, error)

	// Update validates the input and replaces the product with the given ID.
	Update(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error)

	// CanDelete reports whether the product could be deleted right now and
	// how many rows block it. Used by the confirmation dialog.
	CanDelete(ctx context.Context, id uuid.UUID) (Decision, error)

	// Delete removes the product after re-running the integrity check inside
	// the same transaction as the delete itself.
	Delete(ctx context.Context, id uuid.UUID) error
}
