// Package state holds the volatile site-wide aggregates: restaurant info,
// the menu card and opening hours. The container is constructed once by Fx at
// process start with fixed defaults and shared by every consumer; a restart
// reverts it. An RWMutex serializes mutations so "last write wins, fully
// visible to all readers" survives concurrent request handling.
package state

import (
	"context"
	"sync"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Container implements repository.RestaurantStateRepository in memory.
// The zero value is unusable; every operation on it reports the container
// as not initialized. Always construct through NewContainer.
type Container struct {
	mu          sync.RWMutex
	initialized bool
	info        entity.RestaurantInfo
	menu        []entity.MenuItem
	hours       entity.Hours
}

// NewContainer builds the process-lifetime container seeded with the default
// info, hours and six-item menu.
func NewContainer() repository.RestaurantStateRepository {
	return &Container{
		initialized: true,
		info:        defaultInfo(),
		menu:        defaultMenu(),
		hours:       defaultHours(),
	}
}

// Info returns the current restaurant info snapshot.
func (c *Container) Info(_ context.Context) (entity.RestaurantInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.initialized {
		return entity.RestaurantInfo{}, domainerrors.ErrContainerNotInitialized
	}

	return c.info, nil
}

// Menu returns a copy of the menu sequence in insertion order. Copying keeps
// callers from mutating the shared slice behind the lock.
func (c *Container) Menu(_ context.Context) ([]entity.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.initialized {
		return nil, domainerrors.ErrContainerNotInitialized
	}

	menu := make([]entity.MenuItem, len(c.menu))
	copy(menu, c.menu)

	return menu, nil
}

// Hours returns the current opening-hours snapshot.
func (c *Container) Hours(_ context.Context) (entity.Hours, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.initialized {
		return entity.Hours{}, domainerrors.ErrContainerNotInitialized
	}

	return c.hours, nil
}

// ReplaceInfo replaces the whole info aggregate.
func (c *Container) ReplaceInfo(_ context.Context, info entity.RestaurantInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return domainerrors.ErrContainerNotInitialized
	}

	c.info = info

	return nil
}

// AppendMenuItem appends the item to the end of the menu sequence. The
// container trusts the caller's ID; the usecase layer generates them.
func (c *Container) AppendMenuItem(_ context.Context, item entity.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return domainerrors.ErrContainerNotInitialized
	}

	c.menu = append(c.menu, item)

	return nil
}

// ReplaceMenuItem replaces the full record whose ID matches; a silent no-op
// when the ID is unknown.
func (c *Container) ReplaceMenuItem(_ context.Context, id uuid.UUID, item entity.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return domainerrors.ErrContainerNotInitialized
	}

	for i := range c.menu {
		if c.menu[i].ID == id {
			c.menu[i] = item

			break
		}
	}

	return nil
}

// RemoveMenuItem removes the first record whose ID matches; a silent no-op
// when the ID is unknown.
func (c *Container) RemoveMenuItem(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return domainerrors.ErrContainerNotInitialized
	}

	for i := range c.menu {
		if c.menu[i].ID == id {
			c.menu = append(c.menu[:i], c.menu[i+1:]...)

			break
		}
	}

	return nil
}

// ReplaceHours replaces the whole hours aggregate.
func (c *Container) ReplaceHours(_ context.Context, hours entity.Hours) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return domainerrors.ErrContainerNotInitialized
	}

	c.hours = hours

	return nil
}

func defaultInfo() entity.RestaurantInfo {
	return entity.RestaurantInfo{
		Name:        "El Rincón Criollo",
		Description: "Cocina criolla tradicional preparada al momento",
		Email:       "contacto@rinconcriollo.pe",
		Phone:       "+51 1 555 0134",
		Address:     "Av. Grau 742, Lima",
	}
}

func defaultHours() entity.Hours {
	return entity.Hours{
		MondayFriday: "12:00 - 23:00",
		Saturday:     "12:00 - 00:00",
		Sunday:       "12:00 - 17:00",
	}
}

// defaultMenu is the six-item card the site starts with on every boot.
func defaultMenu() []entity.MenuItem {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return []entity.MenuItem{
		{
			ID:          uuid.New(),
			Name:        "Ceviche Clásico",
			Description: "Pescado del día, leche de tigre, camote y choclo",
			Price:       price("38.00"),
			Category:    entity.MenuCategoryEntrada,
			Available:   true,
		},
		{
			ID:          uuid.New(),
			Name:        "Causa Limeña",
			Description: "Papa amarilla prensada rellena de pollo",
			Price:       price("24.00"),
			Category:    entity.MenuCategoryEntrada,
			Available:   true,
		},
		{
			ID:          uuid.New(),
			Name:        "Lomo Saltado",
			Description: "Lomo fino salteado con cebolla, tomate y papas",
			Price:       price("45.00"),
			Category:    entity.MenuCategoryPrincipal,
			Available:   true,
		},
		{
			ID:          uuid.New(),
			Name:        "Ají de Gallina",
			Description: "Gallina deshilachada en crema de ají amarillo",
			Price:       price("36.00"),
			Category:    entity.MenuCategoryPrincipal,
			Available:   true,
		},
		{
			ID:          uuid.New(),
			Name:        "Suspiro a la Limeña",
			Description: "Manjar blanco con merengue al oporto",
			Price:       price("16.00"),
			Category:    entity.MenuCategoryPostre,
			Available:   true,
		},
		{
			ID:          uuid.New(),
			Name:        "Chicha Morada",
			Description: "Jarra de maíz morado con piña y canela",
			Price:       price("14.00"),
			Category:    entity.MenuCategoryBebida,
			Available:   true,
		},
	}
}
