// Package impl contains the concrete application services behind the usecase
// contracts.
package impl

import (
	"context"

	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dependentRelation is one relation that can hold references to a guarded
// entity. count resolves the relation's repository from the factory and
// counts rows matching the key.
type dependentRelation struct {
	name  string
	count func(ctx context.Context, repos repository.RepositoryFactory, key uuid.UUID) (int64, error)
}

// integrityService is the referential integrity guard. The registry maps each
// guarded entity kind to its dependent relations, so adding a kind is pure
// configuration.
type integrityService struct {
	repos    repository.RepositoryFactory
	registry map[usecase.EntityKind][]dependentRelation
}

// IntegrityServiceParams holds dependencies for the integrity guard, injected by Fx.
type IntegrityServiceParams struct {
	fx.In

	Repos repository.RepositoryFactory
}

// NewIntegrityService creates the guard with the product registration:
// inventory rows and order lines both reference products by product_id.
func NewIntegrityService(params IntegrityServiceParams) usecase.IntegrityUsecase {
	registry := map[usecase.EntityKind][]dependentRelation{
		usecase.EntityKindProduct: {
			{
				name: "inventory",
				count: func(ctx context.Context, repos repository.RepositoryFactory, key uuid.UUID) (int64, error) {
					return repos.NewInventoryRepository().CountByProduct(ctx, key)
				},
			},
			{
				name: "order_lines",
				count: func(ctx context.Context, repos repository.RepositoryFactory, key uuid.UUID) (int64, error) {
					return repos.NewOrderLineRepository().CountByProduct(ctx, key)
				},
			},
		},
	}

	return &integrityService{
		repos:    params.Repos,
		registry: registry,
	}
}

// CanDelete checks the entity against the shared store connection.
func (s *integrityService) CanDelete(ctx context.Context, kind usecase.EntityKind, key uuid.UUID) (usecase.Decision, error) {
	return s.CanDeleteIn(ctx, s.repos, kind, key)
}

// CanDeleteIn sums dependent rows across every registered relation for the
// kind. A failed count propagates as-is: an unavailable store must never let
// a destructive delete through.
func (s *integrityService) CanDeleteIn(ctx context.Context, repos repository.RepositoryFactory, kind usecase.EntityKind, key uuid.UUID) (usecase.Decision, error) {
	relations, ok := s.registry[kind]
	if !ok {
		return usecase.Decision{}, domainerrors.ErrUnknownEntityKind.WithDetails(string(kind))
	}

	var total int64
	for _, relation := range relations {
		count, err := relation.count(ctx, repos, key)
		if err != nil {
			return usecase.Decision{}, errors.Wrapf(err, "failed to count %s dependents", relation.name)
		}
		total += count
	}

	return usecase.Decision{
		Allowed:       total == 0,
		BlockingCount: total,
	}, nil
}
