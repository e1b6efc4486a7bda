package impl

import (
	"context"
	"testing"

	"comanda/internal/infra/state"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMenuService(t *testing.T) usecase.MenuUsecase {
	t.Helper()

	return NewMenuService(MenuServiceParams{State: state.NewContainer()})
}

func validMenuItemInput() usecase.MenuItemInput {
	return usecase.MenuItemInput{
		Name:      "Arroz con Pato",
		Price:     decimal.RequireFromString("42.00"),
		Category:  "Plato Principal",
		Available: true,
	}
}

func TestMenuService_PublicMenuHidesUnavailable(t *testing.T) {
	service := createTestMenuService(t)
	ctx := context.Background()

	input := validMenuItemInput()
	input.Available = false
	hidden, err := service.AddMenuItem(ctx, input)
	require.NoError(t, err)

	public, err := service.PublicMenu(ctx)
	require.NoError(t, err)
	for _, item := range public {
		assert.NotEqual(t, hidden.ID, item.ID)
	}

	admin, err := service.AdminMenu(ctx)
	require.NoError(t, err)
	assert.Len(t, admin, len(public)+1)
}

func TestMenuService_AddMenuItem_GeneratesID(t *testing.T) {
	service := createTestMenuService(t)
	ctx := context.Background()

	first, err := service.AddMenuItem(ctx, validMenuItemInput())
	require.NoError(t, err)
	second, err := service.AddMenuItem(ctx, validMenuItemInput())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMenuService_AddMenuItem_UnknownCategory(t *testing.T) {
	service := createTestMenuService(t)

	input := validMenuItemInput()
	input.Category = "Merienda"

	_, err := service.AddMenuItem(context.Background(), input)
	assert.Error(t, err)
}

func TestMenuService_AddMenuItem_PriceBounds(t *testing.T) {
	service := createTestMenuService(t)
	ctx := context.Background()

	input := validMenuItemInput()
	input.Price = decimal.RequireFromString("0.01")
	_, err := service.AddMenuItem(ctx, input)
	assert.NoError(t, err)

	input.Price = decimal.Zero
	_, err = service.AddMenuItem(ctx, input)
	assert.Error(t, err)

	input.Price = decimal.RequireFromString("1000000.00")
	_, err = service.AddMenuItem(ctx, input)
	assert.Error(t, err)
}

func TestMenuService_UpdateMenuItem(t *testing.T) {
	service := createTestMenuService(t)
	ctx := context.Background()

	added, err := service.AddMenuItem(ctx, validMenuItemInput())
	require.NoError(t, err)

	update := validMenuItemInput()
	update.Name = "Arroz con Pato Norteño"
	update.Available = false

	updated, err := service.UpdateMenuItem(ctx, added.ID, update)
	require.NoError(t, err)
	assert.Equal(t, added.ID, updated.ID)
	assert.Equal(t, "Arroz con Pato Norteño", updated.Name)

	menu, err := service.AdminMenu(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Arroz con Pato Norteño", menu[len(menu)-1].Name)
}

func TestMenuService_DeleteMenuItem(t *testing.T) {
	service := createTestMenuService(t)
	ctx := context.Background()

	added, err := service.AddMenuItem(ctx, validMenuItemInput())
	require.NoError(t, err)

	before, err := service.AdminMenu(ctx)
	require.NoError(t, err)

	require.NoError(t, service.DeleteMenuItem(ctx, added.ID))

	after, err := service.AdminMenu(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)

	// Deleting an unknown ID is a silent no-op.
	assert.NoError(t, service.DeleteMenuItem(ctx, uuid.New()))
}

func TestMenuService_UpdateInfoVisibleToPublicReads(t *testing.T) {
	service := createTestMenuService(t)
	ctx := context.Background()

	info, err := service.Info(ctx)
	require.NoError(t, err)
	info.Phone = "+51 1 555 9999"

	require.NoError(t, service.UpdateInfo(ctx, info))

	got, err := service.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+51 1 555 9999", got.Phone)
}
