package impl

import (
	"context"
	"time"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService manages the product catalog. Deletes re-run the integrity
// check inside the same transaction as the delete so the dependent counts
// cannot go stale between check and removal.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	guard        usecase.IntegrityUsecase
	txManager    repository.TransactionManager
	now          func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Guard        usecase.IntegrityUsecase
	TxManager    repository.TransactionManager
}

// NewProductService creates the product catalog service.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		guard:        params.Guard,
		txManager:    params.TxManager,
		now:          time.Now,
	}
}

// List retrieves all products.
func (s *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListCategories retrieves the category lookup list.
func (s *productService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Create validates the input and persists a new product. Name uniqueness is
// enforced by the store; the repository surfaces collisions as the domain
// conflict error.
func (s *productService) Create(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ExpiryDate:  input.ExpiryDate,
		CategoryID:  input.CategoryID,
	}

	if err := product.Validate(s.now()); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Update validates the input and replaces the product row by ID.
func (s *productService) Update(ctx context.Context, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ExpiryDate:  input.ExpiryDate,
		CategoryID:  input.CategoryID,
	}

	if err := product.Validate(s.now()); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return product, nil
}

// CanDelete reports the guard decision without mutating anything.
func (s *productService) CanDelete(ctx context.Context, id uuid.UUID) (usecase.Decision, error) {
	return s.guard.CanDelete(ctx, usecase.EntityKindProduct, id)
}

// Delete removes the product. Guard and delete share one transaction; a
// blocked delete rolls back and reports the dependent count.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		decision, err := s.guard.CanDeleteIn(ctx, txRepos, usecase.EntityKindProduct, id)
		if err != nil {
			return err
		}
		if !decision.Allowed {
			return domainerrors.NewIntegrityViolation(string(usecase.EntityKindProduct), id.String(), decision.BlockingCount)
		}

		return txRepos.NewProductRepository().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	return nil
}
