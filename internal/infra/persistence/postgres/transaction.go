package postgres

import (
	"context"
	"fmt"

	"comanda/internal/domain/repository"

	"gorm.io/gorm"
)

// gormRepositoryFactory implements repository.RepositoryFactory over one GORM
// handle. The handle may be the shared connection or a transaction; in GORM a
// transaction object is also a *gorm.DB.
type gormRepositoryFactory struct {
	db *gorm.DB
}

// NewRepositoryFactory returns a factory bound to the shared connection. The
// integrity guard uses it for standalone checks outside a transaction.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{db: db}
}

// NewProductRepository creates a product repository on this connection.
func (f *gormRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.db)
}

// NewInventoryRepository creates an inventory repository on this connection.
func (f *gormRepositoryFactory) NewInventoryRepository() repository.InventoryRepository {
	return NewInventoryRepository(f.db)
}

// NewOrderLineRepository creates an order-line repository on this connection.
func (f *gormRepositoryFactory) NewOrderLineRepository() repository.OrderLineRepository {
	return NewOrderLineRepository(f.db)
}

// gormTransactionManager implements repository.TransactionManager using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction. The guarded product
// delete depends on this: the dependent counts and the delete see the same
// snapshot, so the check cannot go stale.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(txRepos repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back on panic so a handler crash never leaks an open transaction.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{db: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
