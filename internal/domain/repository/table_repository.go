package repository

import (
	"context"
	"errors"

	"comanda/internal/domain/entity"
)

// ErrTableNotFound is returned when an update or delete targets an unknown
// table number.
var ErrTableNotFound = errors.New("table not found")

// TableRepository defines the operations for dining-table persistence.
// Tables are keyed by their natural number, not by a surrogate ID.
type TableRepository interface {
	// List retrieves all tables ordered by number.
	List(ctx context.Context) ([]*entity.Table, error)

	// FindByNumber retrieves a single table by its number.
	FindByNumber(ctx context.Context, number int) (*entity.Table, error)

	// Create persists a new table row.
	Create(ctx context.Context, table *entity.Table) error

	// Update replaces the mutable fields of a table row by number.
	Update(ctx context.Context, table *entity.Table) error

	// UpdateStatus writes only the occupancy status of a table. This is the
	// single-field update both the admin editor and the waiter board use.
	UpdateStatus(ctx context.Context, number int, status entity.TableStatus) error

	// Delete removes the table row by number.
	Delete(ctx context.Context, number int) error
}
