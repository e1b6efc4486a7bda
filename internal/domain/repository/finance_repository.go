package repository

import (
	"context"
	"errors"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
)

// Finance sentinels.
var (
	ErrSaleNotFound    = errors.New("sale not found")
	ErrExpenseNotFound = errors.New("expense not found")
	ErrSalaryNotFound  = errors.New("salary not found")
)

// SaleRepository defines the operations for sale persistence.
type SaleRepository interface {
	// List retrieves all sales, most recent first.
	List(ctx context.Context) ([]*entity.Sale, error)

	// Create persists a new sale row.
	Create(ctx context.Context, sale *entity.Sale) error

	// Delete removes the sale row by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseRepository defines the operations for expense persistence.
type ExpenseRepository interface {
	// List retrieves all expenses, most recent first.
	List(ctx context.Context) ([]*entity.Expense, error)

	// Create persists a new expense row.
	Create(ctx context.Context, expense *entity.Expense) error

	// Update replaces an existing expense row by ID.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes the expense row by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SalaryRepository defines the operations for salary persistence.
type SalaryRepository interface {
	// List retrieves all salary payments, most recent first.
	List(ctx context.Context) ([]*entity.Salary, error)

	// Create persists a new salary row.
	Create(ctx context.Context, salary *entity.Salary) error

	// Delete removes the salary row by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
