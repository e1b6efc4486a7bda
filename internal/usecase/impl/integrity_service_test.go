package impl

import (
	"context"
	"testing"

	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/mocks"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type integrityFixture struct {
	factory *mocks.FakeRepositoryFactory
	service usecase.IntegrityUsecase
}

func createTestIntegrityService(t *testing.T) *integrityFixture {
	t.Helper()

	factory := &mocks.FakeRepositoryFactory{
		ProductRepo:   &mocks.MockProductRepository{},
		InventoryRepo: &mocks.MockInventoryRepository{},
		OrderLineRepo: &mocks.MockOrderLineRepository{},
	}

	return &integrityFixture{
		factory: factory,
		service: NewIntegrityService(IntegrityServiceParams{Repos: factory}),
	}
}

func TestIntegrityService_CanDelete_NoDependents(t *testing.T) {
	fx := createTestIntegrityService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.factory.InventoryRepo.On("CountByProduct", ctx, productID).Return(int64(0), nil)
	fx.factory.OrderLineRepo.On("CountByProduct", ctx, productID).Return(int64(0), nil)

	decision, err := fx.service.CanDelete(ctx, usecase.EntityKindProduct, productID)
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, int64(0), decision.BlockingCount)
}

func TestIntegrityService_CanDelete_SingleDependentBlocks(t *testing.T) {
	fx := createTestIntegrityService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.factory.InventoryRepo.On("CountByProduct", ctx, productID).Return(int64(1), nil)
	fx.factory.OrderLineRepo.On("CountByProduct", ctx, productID).Return(int64(0), nil)

	decision, err := fx.service.CanDelete(ctx, usecase.EntityKindProduct, productID)
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(1), decision.BlockingCount)
}

func TestIntegrityService_CanDelete_SumsAcrossRelations(t *testing.T) {
	fx := createTestIntegrityService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.factory.InventoryRepo.On("CountByProduct", ctx, productID).Return(int64(2), nil)
	fx.factory.OrderLineRepo.On("CountByProduct", ctx, productID).Return(int64(3), nil)

	decision, err := fx.service.CanDelete(ctx, usecase.EntityKindProduct, productID)
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(5), decision.BlockingCount)
}

func TestIntegrityService_CanDelete_CountErrorPropagates(t *testing.T) {
	fx := createTestIntegrityService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.factory.InventoryRepo.On("CountByProduct", ctx, productID).Return(int64(0), errors.New("store down"))

	// A failed count must never come back as permission to delete.
	decision, err := fx.service.CanDelete(ctx, usecase.EntityKindProduct, productID)
	assert.Error(t, err)
	assert.False(t, decision.Allowed)
	assert.Contains(t, err.Error(), "inventory")
}

func TestIntegrityService_CanDelete_UnknownKind(t *testing.T) {
	fx := createTestIntegrityService(t)

	ctx := context.Background()

	decision, err := fx.service.CanDelete(ctx, usecase.EntityKind("mesa"), uuid.New())
	assert.Error(t, err)
	assert.False(t, decision.Allowed)

	var appErr domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNKNOWN_ENTITY_KIND", appErr.ErrorCode())
}
