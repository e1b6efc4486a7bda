package state

import (
	"context"
	"testing"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_Defaults(t *testing.T) {
	ctx := context.Background()
	c := NewContainer()

	menu, err := c.Menu(ctx)
	require.NoError(t, err)
	assert.Len(t, menu, 6)

	// Every default item is available and carries a distinct ID.
	seen := make(map[uuid.UUID]bool, len(menu))
	for _, item := range menu {
		assert.True(t, item.Available)
		assert.True(t, item.Category.Valid())
		assert.False(t, seen[item.ID])
		seen[item.ID] = true
	}

	info, err := c.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, "El Rincón Criollo", info.Name)

	hours, err := c.Hours(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, hours.MondayFriday)
}

func TestContainer_AppendMenuItem(t *testing.T) {
	ctx := context.Background()
	c := NewContainer()

	flan := entity.MenuItem{
		ID:        uuid.New(),
		Name:      "Flan",
		Price:     decimal.RequireFromString("12.00"),
		Category:  entity.MenuCategoryPostre,
		Available: true,
	}
	require.NoError(t, c.AppendMenuItem(ctx, flan))

	menu, err := c.Menu(ctx)
	require.NoError(t, err)
	require.Len(t, menu, 7)

	// New items land at the end of the card.
	assert.Equal(t, flan.ID, menu[6].ID)
	assert.Equal(t, "Flan", menu[6].Name)
}

func TestContainer_ReplaceMenuItem(t *testing.T) {
	ctx := context.Background()
	c := NewContainer()

	menu, err := c.Menu(ctx)
	require.NoError(t, err)
	target := menu[2]

	updated := target
	updated.Price = decimal.RequireFromString("48.00")
	updated.Available = false
	require.NoError(t, c.ReplaceMenuItem(ctx, target.ID, updated))

	menu, err = c.Menu(ctx)
	require.NoError(t, err)
	assert.Len(t, menu, 6)
	assert.True(t, menu[2].Price.Equal(decimal.RequireFromString("48.00")))
	assert.False(t, menu[2].Available)

	// Replacing twice with the same record is idempotent.
	require.NoError(t, c.ReplaceMenuItem(ctx, target.ID, updated))
	again, err := c.Menu(ctx)
	require.NoError(t, err)
	assert.Equal(t, menu, again)

	// Unknown IDs are a silent no-op.
	require.NoError(t, c.ReplaceMenuItem(ctx, uuid.New(), updated))
	after, err := c.Menu(ctx)
	require.NoError(t, err)
	assert.Equal(t, menu, after)
}

func TestContainer_RemoveMenuItem(t *testing.T) {
	ctx := context.Background()
	c := NewContainer()

	added := entity.MenuItem{
		ID:       uuid.New(),
		Name:     "Picarones",
		Price:    decimal.RequireFromString("15.00"),
		Category: entity.MenuCategoryPostre,
	}
	require.NoError(t, c.AppendMenuItem(ctx, added))
	require.NoError(t, c.RemoveMenuItem(ctx, added.ID))

	// Add followed by remove restores the original card.
	menu, err := c.Menu(ctx)
	require.NoError(t, err)
	assert.Len(t, menu, 6)
	for _, item := range menu {
		assert.NotEqual(t, added.ID, item.ID)
	}

	// Removing an unknown ID changes nothing.
	require.NoError(t, c.RemoveMenuItem(ctx, uuid.New()))
	after, err := c.Menu(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 6)
}

func TestContainer_ReplaceInfoAndHours(t *testing.T) {
	ctx := context.Background()
	c := NewContainer()

	newInfo := entity.RestaurantInfo{
		Name:    "La Mar",
		Email:   "hola@lamar.pe",
		Phone:   "+51 1 555 0000",
		Address: "Av. La Mar 770",
	}
	require.NoError(t, c.ReplaceInfo(ctx, newInfo))

	info, err := c.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, newInfo, info)

	newHours := entity.Hours{MondayFriday: "11:00 - 22:00", Saturday: "11:00 - 23:00", Sunday: "cerrado"}
	require.NoError(t, c.ReplaceHours(ctx, newHours))

	hours, err := c.Hours(ctx)
	require.NoError(t, err)
	assert.Equal(t, newHours, hours)
}

func TestContainer_MenuReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c := NewContainer()

	menu, err := c.Menu(ctx)
	require.NoError(t, err)

	// Mutating the returned slice must not leak into the container.
	menu[0].Name = "hacked"

	fresh, err := c.Menu(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "hacked", fresh[0].Name)
}

func TestContainer_ZeroValueNotInitialized(t *testing.T) {
	ctx := context.Background()
	var c Container

	_, err := c.Menu(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrContainerNotInitialized)

	_, err = c.Info(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrContainerNotInitialized)

	_, err = c.Hours(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrContainerNotInitialized)

	err = c.AppendMenuItem(ctx, entity.MenuItem{})
	assert.ErrorIs(t, err, domainerrors.ErrContainerNotInitialized)

	err = c.ReplaceHours(ctx, entity.Hours{})
	assert.ErrorIs(t, err, domainerrors.ErrContainerNotInitialized)
}
