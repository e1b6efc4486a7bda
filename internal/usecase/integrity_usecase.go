package usecase

import (
	"context"

	"comanda/internal/domain/repository"

	"github.com/google/uuid"
)

// EntityKind names an entity type the integrity guard knows how to check.
type EntityKind string

// EntityKindProduct is currently the only guarded kind; new kinds are added
// by registering their dependent relations, not by changing the algorithm.
const EntityKindProduct EntityKind = "product"

// Decision is the outcome of an integrity check. Allowed is true exactly when
// no dependent rows reference the entity; BlockingCount is the summed number
// of referencing rows across all dependent relations.
type Decision struct {
	Allowed       bool  `json:"allowed"`
	BlockingCount int64 `json:"blocking_count"`
}

// IntegrityUsecase prevents orphaned foreign-key references: before any
// destructive delete of a referenced entity, it counts dependents across all
// registered relations and blocks the delete when any remain. A failed count
// query always propagates; the guard never defaults to "allowed".
type IntegrityUsecase interface {
	// CanDelete checks the entity against the shared store connection.
	CanDelete(ctx context.Context, kind EntityKind, key uuid.UUID) (Decision, error)

	// CanDeleteIn runs the same check against repositories from the given
	// factory, so callers can keep the check and the delete inside one
	// transaction.
	CanDeleteIn(ctx context.Context, repos repository.RepositoryFactory, kind EntityKind, key uuid.UUID) (Decision, error)
}
