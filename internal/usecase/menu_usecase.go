// Package usecase declares the application-layer contracts consumed by the
// delivery layer. Concrete services live in usecase/impl.
package usecase

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemInput is the operator-submitted form for creating or replacing a
// menu item. IDs are generated internally; callers never supply one.
type MenuItemInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Available   bool            `json:"available"`
}

// MenuUsecase manages the site-wide aggregates held by the restaurant state
// container: the menu card, restaurant info and opening hours.
type MenuUsecase interface {
	// PublicMenu returns the menu entries shown to diners: available items
	// only, in card order.
	PublicMenu(ctx context.Context) ([]entity.MenuItem, error)

	// AdminMenu returns the full menu sequence, including unavailable items.
	AdminMenu(ctx context.Context) ([]entity.MenuItem, error)

	// Info returns the current restaurant info.
	Info(ctx context.Context) (entity.RestaurantInfo, error)

	// Hours returns the current opening hours.
	Hours(ctx context.Context) (entity.Hours, error)

	// AddMenuItem validates the input, assigns a fresh ID and appends the
	// item to the menu.
	AddMenuItem(ctx context.Context, input MenuItemInput) (entity.MenuItem, error)

	// UpdateMenuItem validates the input and replaces the item with the
	// given ID. Unknown IDs are a silent no-op, mirroring the container.
	UpdateMenuItem(ctx context.Context, id uuid.UUID, input MenuItemInput) (entity.MenuItem, error)

	// DeleteMenuItem removes the item with the given ID; unknown IDs are a
	// silent no-op.
	DeleteMenuItem(ctx context.Context, id uuid.UUID) error

	// UpdateInfo replaces the whole restaurant info aggregate.
	UpdateInfo(ctx context.Context, info entity.RestaurantInfo) error

	// UpdateHours replaces the whole opening-hours aggregate.
	UpdateHours(ctx context.Context, hours entity.Hours) error
}
