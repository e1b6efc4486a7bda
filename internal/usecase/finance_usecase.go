package usecase

import (
	"context"
	"time"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleInput records a closed sale total.
type SaleInput struct {
	Total  decimal.Decimal `json:"total" validate:"required"`
	SoldAt time.Time       `json:"sold_at"`
}

// ExpenseInput records an outgoing payment.
type ExpenseInput struct {
	Concept string          `json:"concept" validate:"required"`
	Amount  decimal.Decimal `json:"amount" validate:"required"`
	SpentAt time.Time       `json:"spent_at"`
}

// SalaryInput records a payroll payment.
type SalaryInput struct {
	Employee string          `json:"employee" validate:"required"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	PaidAt   time.Time       `json:"paid_at"`
}

// FinanceUsecase manages the flat money ledgers: sales, expenses and salaries.
// These are plain form-to-record lists; amounts share the product price bounds.
type FinanceUsecase interface {
	// ListSales retrieves all sales, most recent first.
	ListSales(ctx context.Context) ([]*entity.Sale, error)

	// CreateSale validates and persists a sale row.
	CreateSale(ctx context.Context, input SaleInput) (*entity.Sale, error)

	// DeleteSale removes the sale with the given ID.
	DeleteSale(ctx context.Context, id uuid.UUID) error

	// ListExpenses retrieves all expenses, most recent first.
	ListExpenses(ctx context.Context) ([]*entity.Expense, error)

	// CreateExpense validates and persists an expense row.
	CreateExpense(ctx context.Context, input ExpenseInput) (*entity.Expense, error)

	// UpdateExpense validates and replaces the expense with the given ID.
	UpdateExpense(ctx context.Context, id uuid.UUID, input ExpenseInput) (*entity.Expense, error)

	// DeleteExpense removes the expense with the given ID.
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	// ListSalaries retrieves all salary payments, most recent first.
	ListSalaries(ctx context.Context) ([]*entity.Salary, error)

	// CreateSalary validates and persists a salary row.
	CreateSalary(ctx context.Context, input SalaryInput) (*entity.Salary, error)

	// DeleteSalary removes the salary with the given ID.
	DeleteSalary(ctx context.Context, id uuid.UUID) error
}
