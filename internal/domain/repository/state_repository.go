package repository

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantStateRepository is the volatile, process-lifetime store for the
// three site-wide aggregates: restaurant info, the menu sequence and opening
// hours. It is deliberately not backed by the database; a restart reverts the
// aggregates to their defaults. All reads return snapshots and every mutation
// is immediately visible to all consumers of the one shared instance.
type RestaurantStateRepository interface {
	// Info returns the current restaurant info snapshot.
	Info(ctx context.Context) (entity.RestaurantInfo, error)

	// Menu returns a copy of the menu sequence in insertion order.
	Menu(ctx context.Context) ([]entity.MenuItem, error)

	// Hours returns the current opening-hours snapshot.
	Hours(ctx context.Context) (entity.Hours, error)

	// ReplaceInfo replaces the whole info aggregate; no field-level merge.
	ReplaceInfo(ctx context.Context, info entity.RestaurantInfo) error

	// AppendMenuItem appends the item to the end of the menu sequence.
	AppendMenuItem(ctx context.Context, item entity.MenuItem) error

	// ReplaceMenuItem replaces the full record whose ID matches. Unknown IDs
	// are a silent no-op.
	ReplaceMenuItem(ctx context.Context, id uuid.UUID, item entity.MenuItem) error

	// RemoveMenuItem removes the first record whose ID matches. Unknown IDs
	// are a silent no-op.
	RemoveMenuItem(ctx context.Context, id uuid.UUID) error

	// ReplaceHours replaces the whole hours aggregate.
	ReplaceHours(ctx context.Context, hours entity.Hours) error
}
