package usecase

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
)

// SupplierInput is the operator-submitted supplier form. ProductID optionally
// links the supplier to the product it provides.
type SupplierInput struct {
	Name      string     `json:"name" validate:"required"`
	Contact   string     `json:"contact"`
	ProductID *uuid.UUID `json:"product_id"`
}

// SupplierUsecase manages suppliers and the product lookup list their form needs.
type SupplierUsecase interface {
	// List retrieves all suppliers.
	List(ctx context.Context) ([]*entity.Supplier, error)

	// Create validates the input and persists a new supplier.
	Create(ctx context.Context, input SupplierInput) (*entity.Supplier, error)

	// Update validates the input and replaces the supplier with the given ID.
	Update(ctx context.Context, id uuid.UUID, input SupplierInput) (*entity.Supplier, error)

	// Delete removes the supplier with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
