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

// menuService manages the site-wide aggregates through the restaurant state
// container. Container mutations never fail on their own; the only error
// paths here are validation and using the container outside its lifetime.
type menuService struct {
	state repository.RestaurantStateRepository
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	State repository.RestaurantStateRepository
}

// NewMenuService creates the menu/info/hours service.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		state: params.State,
	}
}

// PublicMenu returns available items only, preserving card order.
func (s *menuService) PublicMenu(ctx context.Context) ([]entity.MenuItem, error) {
	menu, err := s.state.Menu(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read menu")
	}

	visible := make([]entity.MenuItem, 0, len(menu))
	for _, item := range menu {
		if item.Available {
			visible = append(visible, item)
		}
	}

	return visible, nil
}

// AdminMenu returns the full menu sequence.
func (s *menuService) AdminMenu(ctx context.Context) ([]entity.MenuItem, error) {
	menu, err := s.state.Menu(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read menu")
	}

	return menu, nil
}

// Info returns the current restaurant info.
func (s *menuService) Info(ctx context.Context) (entity.RestaurantInfo, error) {
	return s.state.Info(ctx)
}

// Hours returns the current opening hours.
func (s *menuService) Hours(ctx context.Context) (entity.Hours, error) {
	return s.state.Hours(ctx)
}

// AddMenuItem validates the input, assigns a fresh UUID and appends the item.
// Generating the ID here closes the id-collision hole of caller-supplied ids.
func (s *menuService) AddMenuItem(ctx context.Context, input usecase.MenuItemInput) (entity.MenuItem, error) {
	item, err := menuItemFromInput(uuid.New(), input)
	if err != nil {
		return entity.MenuItem{}, err
	}

	if err := s.state.AppendMenuItem(ctx, item); err != nil {
		return entity.MenuItem{}, errors.Wrap(err, "failed to append menu item")
	}

	return item, nil
}

// UpdateMenuItem validates the input and replaces the full record. Unknown
// IDs are a silent no-op, matching the container semantics.
func (s *menuService) UpdateMenuItem(ctx context.Context, id uuid.UUID, input usecase.MenuItemInput) (entity.MenuItem, error) {
	item, err := menuItemFromInput(id, input)
	if err != nil {
		return entity.MenuItem{}, err
	}

	if err := s.state.ReplaceMenuItem(ctx, id, item); err != nil {
		return entity.MenuItem{}, errors.Wrap(err, "failed to replace menu item")
	}

	return item, nil
}

// DeleteMenuItem removes the item; unknown IDs are a silent no-op.
func (s *menuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	if err := s.state.RemoveMenuItem(ctx, id); err != nil {
		return errors.Wrap(err, "failed to remove menu item")
	}

	return nil
}

// UpdateInfo replaces the whole info aggregate.
func (s *menuService) UpdateInfo(ctx context.Context, info entity.RestaurantInfo) error {
	if err := s.state.ReplaceInfo(ctx, info); err != nil {
		return errors.Wrap(err, "failed to replace restaurant info")
	}

	return nil
}

// UpdateHours replaces the whole hours aggregate.
func (s *menuService) UpdateHours(ctx context.Context, hours entity.Hours) error {
	if err := s.state.ReplaceHours(ctx, hours); err != nil {
		return errors.Wrap(err, "failed to replace hours")
	}

	return nil
}

// menuItemFromInput applies the menu item field rules and builds the entity.
func menuItemFromInput(id uuid.UUID, input usecase.MenuItemInput) (entity.MenuItem, error) {
	category := entity.MenuCategory(input.Category)
	if !category.Valid() {
		return entity.MenuItem{}, domainerrors.ErrValidationFailed.WithDetails("categoría de menú desconocida")
	}
	if err := entity.ValidatePrice(input.Price); err != nil {
		return entity.MenuItem{}, domainerrors.ErrValidationFailed.WithDetails("el precio debe ser mayor a 0 y no superar 999999.99")
	}

	return entity.MenuItem{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    category,
		Available:   input.Available,
	}, nil
}
