package impl

import (
	"context"
	"time"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// financeService manages the flat money ledgers. Amounts share the product
// price bounds; an omitted timestamp defaults to now.
type financeService struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	salaryRepo  repository.SalaryRepository
	now         func() time.Time
}

// FinanceServiceParams holds dependencies for FinanceService, injected by Fx.
type FinanceServiceParams struct {
	fx.In

	SaleRepo    repository.SaleRepository
	ExpenseRepo repository.ExpenseRepository
	SalaryRepo  repository.SalaryRepository
}

// NewFinanceService creates the sales/expenses/salaries service.
func NewFinanceService(params FinanceServiceParams) usecase.FinanceUsecase {
	return &financeService{
		saleRepo:    params.SaleRepo,
		expenseRepo: params.ExpenseRepo,
		salaryRepo:  params.SalaryRepo,
		now:         time.Now,
	}
}

// ListSales retrieves all sales.
func (s *financeService) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	return sales, nil
}

// CreateSale validates and persists a sale row.
func (s *financeService) CreateSale(ctx context.Context, input usecase.SaleInput) (*entity.Sale, error) {
	if err := entity.ValidatePrice(input.Total); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	sale := &entity.Sale{
		ID:     uuid.New(),
		Total:  input.Total,
		SoldAt: input.SoldAt,
	}
	if sale.SoldAt.IsZero() {
		sale.SoldAt = s.now()
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

// DeleteSale removes the sale row.
func (s *financeService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	if err := s.saleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}

// ListExpenses retrieves all expenses.
func (s *financeService) ListExpenses(ctx context.Context) ([]*entity.Expense, error) {
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	return expenses, nil
}

// CreateExpense validates and persists an expense row.
func (s *financeService) CreateExpense(ctx context.Context, input usecase.ExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseFromInput(uuid.New(), input)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// UpdateExpense validates and replaces the expense row by ID.
func (s *financeService) UpdateExpense(ctx context.Context, id uuid.UUID, input usecase.ExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseFromInput(id, input)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	return expense, nil
}

// DeleteExpense removes the expense row.
func (s *financeService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}

// ListSalaries retrieves all salary payments.
func (s *financeService) ListSalaries(ctx context.Context) ([]*entity.Salary, error) {
	salaries, err := s.salaryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list salaries")
	}

	return salaries, nil
}

// CreateSalary validates and persists a salary row.
func (s *financeService) CreateSalary(ctx context.Context, input usecase.SalaryInput) (*entity.Salary, error) {
	if err := entity.ValidatePrice(input.Amount); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	salary := &entity.Salary{
		ID:       uuid.New(),
		Employee: input.Employee,
		Amount:   input.Amount,
		PaidAt:   input.PaidAt,
	}
	if salary.PaidAt.IsZero() {
		salary.PaidAt = s.now()
	}

	if err := s.salaryRepo.Create(ctx, salary); err != nil {
		return nil, err
	}

	return salary, nil
}

// DeleteSalary removes the salary row.
func (s *financeService) DeleteSalary(ctx context.Context, id uuid.UUID) error {
	if err := s.salaryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSalaryNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}

// expenseFromInput applies the expense field rules and builds the entity.
func (s *financeService) expenseFromInput(id uuid.UUID, input usecase.ExpenseInput) (*entity.Expense, error) {
	if err := entity.ValidatePrice(input.Amount); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	expense := &entity.Expense{
		ID:      id,
		Concept: input.Concept,
		Amount:  input.Amount,
		SpentAt: input.SpentAt,
	}
	if expense.SpentAt.IsZero() {
		expense.SpentAt = s.now()
	}

	return expense, nil
}
