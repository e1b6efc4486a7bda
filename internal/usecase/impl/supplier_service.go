package impl

import (
	"context"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// supplierService is a thin form-to-record service over the supplier relation.
type supplierService struct {
	supplierRepo repository.SupplierRepository
}

// SupplierServiceParams holds dependencies for SupplierService, injected by Fx.
type SupplierServiceParams struct {
	fx.In

	SupplierRepo repository.SupplierRepository
}

// NewSupplierService creates the supplier service.
func NewSupplierService(params SupplierServiceParams) usecase.SupplierUsecase {
	return &supplierService{
		supplierRepo: params.SupplierRepo,
	}
}

// List retrieves all suppliers.
func (s *supplierService) List(ctx context.Context) ([]*entity.Supplier, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	return suppliers, nil
}

// Create validates the input and persists a new supplier.
func (s *supplierService) Create(ctx context.Context, input usecase.SupplierInput) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		ID:        uuid.New(),
		Name:      input.Name,
		Contact:   input.Contact,
		ProductID: input.ProductID,
	}

	if err := supplier.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// Update validates the input and replaces the supplier row by ID.
func (s *supplierService) Update(ctx context.Context, id uuid.UUID, input usecase.SupplierInput) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		ID:        id,
		Name:      input.Name,
		Contact:   input.Contact,
		ProductID: input.ProductID,
	}

	if err := supplier.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}

		return nil, err
	}

	return supplier, nil
}

// Delete removes the supplier row. Suppliers are deletable unconditionally;
// the optional product link points outward and blocks nothing.
func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.supplierRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return domainerrors.ErrSupplierNotFound
		}

		return err
	}

	return nil
}
