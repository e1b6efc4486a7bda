package repository

import "context"

// TransactionManager runs store operations inside a single database
// transaction without exposing the driver to the usecase layer. The guarded
// product delete relies on this so the dependent counts cannot go stale
// between the check and the delete.
type TransactionManager interface {
	// Execute runs fn inside one transaction. A returned error rolls the
	// transaction back; nil commits it.
	Execute(ctx context.Context, fn func(txRepos RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to one store
// connection, transactional or not.
type RepositoryFactory interface {
	// NewProductRepository returns a ProductRepository on this connection.
	NewProductRepository() ProductRepository

	// NewInventoryRepository returns an InventoryRepository on this connection.
	NewInventoryRepository() InventoryRepository

	// NewOrderLineRepository returns an OrderLineRepository on this connection.
	NewOrderLineRepository() OrderLineRepository
}
