package impl

import (
	"context"
	"testing"
	"time"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/mocks"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	productRepo  *mocks.MockProductRepository
	categoryRepo *mocks.MockCategoryRepository
	factory      *mocks.FakeRepositoryFactory
	service      usecase.ProductUsecase
}

func createTestProductService(t *testing.T) *productFixture {
	t.Helper()

	factory := &mocks.FakeRepositoryFactory{
		ProductRepo:   &mocks.MockProductRepository{},
		InventoryRepo: &mocks.MockInventoryRepository{},
		OrderLineRepo: &mocks.MockOrderLineRepository{},
	}
	productRepo := &mocks.MockProductRepository{}
	categoryRepo := &mocks.MockCategoryRepository{}

	service := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Guard:        NewIntegrityService(IntegrityServiceParams{Repos: factory}),
		TxManager:    &mocks.FakeTransactionManager{Factory: factory},
	})

	return &productFixture{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		factory:      factory,
		service:      service,
	}
}

func validProductInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:       "Harina de trigo",
		Price:      decimal.RequireFromString("8.90"),
		CategoryID: 1,
	}
}

func TestProductService_Create(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	fx.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.Create(ctx, validProductInput())
	require.NoError(t, err)
	assert.Equal(t, "Harina de trigo", product.Name)
	assert.NotEqual(t, uuid.Nil, product.ID)
	fx.productRepo.AssertExpectations(t)
}

func TestProductService_Create_InvalidPrice(t *testing.T) {
	fx := createTestProductService(t)

	input := validProductInput()
	input.Price = decimal.Zero

	product, err := fx.service.Create(context.Background(), input)
	assert.Error(t, err)
	assert.Nil(t, product)

	var appErr domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	// Nothing reaches the store on a validation failure.
	fx.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_Create_ExpiryInPast(t *testing.T) {
	fx := createTestProductService(t)

	yesterday := time.Now().AddDate(0, 0, -1)
	input := validProductInput()
	input.ExpiryDate = &yesterday

	product, err := fx.service.Create(context.Background(), input)
	assert.Error(t, err)
	assert.Nil(t, product)
}

func TestProductService_Update_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	fx.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(repository.ErrProductNotFound)

	product, err := fx.service.Update(ctx, uuid.New(), validProductInput())
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_CanDelete_Referenced(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.factory.InventoryRepo.On("CountByProduct", ctx, productID).Return(int64(4), nil)
	fx.factory.OrderLineRepo.On("CountByProduct", ctx, productID).Return(int64(0), nil)

	decision, err := fx.service.CanDelete(ctx, productID)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(4), decision.BlockingCount)
}

func TestProductService_Delete_BlockedByReferences(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.factory.InventoryRepo.On("CountByProduct", ctx, productID).Return(int64(1), nil)
	fx.factory.OrderLineRepo.On("CountByProduct", ctx, productID).Return(int64(2), nil)

	err := fx.service.Delete(ctx, productID)
	assert.Error(t, err)

	var violation *domainerrors.IntegrityViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, int64(3), violation.BlockingCount())

	// The blocked transaction never reaches the delete statement.
	fx.factory.ProductRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductService_Delete_Allowed(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.factory.InventoryRepo.On("CountByProduct", ctx, productID).Return(int64(0), nil)
	fx.factory.OrderLineRepo.On("CountByProduct", ctx, productID).Return(int64(0), nil)
	fx.factory.ProductRepo.On("Delete", ctx, productID).Return(nil)

	err := fx.service.Delete(ctx, productID)
	assert.NoError(t, err)
	fx.factory.ProductRepo.AssertExpectations(t)
}

func TestProductService_Delete_GuardErrorFailsClosed(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.factory.InventoryRepo.On("CountByProduct", ctx, productID).Return(int64(0), assert.AnError)

	err := fx.service.Delete(ctx, productID)
	assert.Error(t, err)
	fx.factory.ProductRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductService_ListCategories(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	fx.categoryRepo.On("List", ctx).Return([]*entity.Category{{ID: 1, Name: "Abarrotes"}}, nil)

	categories, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
