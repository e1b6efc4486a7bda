// Package mocks provides testify-based test doubles for the repository and
// service boundaries used by the usecase tests.
package mocks

import (
	"context"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockCategoryRepository mocks repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Category), args.Error(1)
}

// MockInventoryRepository mocks repository.InventoryRepository.
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)

	return args.Get(0).(int64), args.Error(1)
}

// MockOrderLineRepository mocks repository.OrderLineRepository.
type MockOrderLineRepository struct {
	mock.Mock
}

func (m *MockOrderLineRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)

	return args.Get(0).(int64), args.Error(1)
}

// MockTableRepository mocks repository.TableRepository.
type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) List(ctx context.Context) ([]*entity.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Table), args.Error(1)
}

func (m *MockTableRepository) FindByNumber(ctx context.Context, number int) (*entity.Table, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Table), args.Error(1)
}

func (m *MockTableRepository) Create(ctx context.Context, table *entity.Table) error {
	args := m.Called(ctx, table)

	return args.Error(0)
}

func (m *MockTableRepository) Update(ctx context.Context, table *entity.Table) error {
	args := m.Called(ctx, table)

	return args.Error(0)
}

func (m *MockTableRepository) UpdateStatus(ctx context.Context, number int, status entity.TableStatus) error {
	args := m.Called(ctx, number, status)

	return args.Error(0)
}

func (m *MockTableRepository) Delete(ctx context.Context, number int) error {
	args := m.Called(ctx, number)

	return args.Error(0)
}

// MockQRCodeService mocks service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func (m *MockQRCodeService) TableMenuQR(tableNumber int) ([]byte, error) {
	args := m.Called(tableNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// FakeRepositoryFactory hands out the fixed mocks above, standing in for a
// connection-bound factory.
type FakeRepositoryFactory struct {
	ProductRepo   *MockProductRepository
	InventoryRepo *MockInventoryRepository
	OrderLineRepo *MockOrderLineRepository
}

func (f *FakeRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.ProductRepo
}

func (f *FakeRepositoryFactory) NewInventoryRepository() repository.InventoryRepository {
	return f.InventoryRepo
}

func (f *FakeRepositoryFactory) NewOrderLineRepository() repository.OrderLineRepository {
	return f.OrderLineRepo
}

// FakeTransactionManager runs the callback synchronously against the fake
// factory, with no real transaction underneath.
type FakeTransactionManager struct {
	Factory *FakeRepositoryFactory
}

func (f *FakeTransactionManager) Execute(ctx context.Context, fn func(txRepos repository.RepositoryFactory) error) error {
	return fn(f.Factory)
}
