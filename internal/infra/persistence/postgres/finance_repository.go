package postgres

import (
	"context"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// saleRepository implements repository.SaleRepository using GORM.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// List retrieves all sales, most recent first.
func (repo *saleRepository) List(ctx context.Context) ([]*entity.Sale, error) {
	var saleModels []*model.SaleModel

	if err := repo.db.WithContext(ctx).
		Order("sold_at DESC").
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, &entity.Sale{
			ID:     saleM.ID,
			Total:  saleM.Total,
			SoldAt: saleM.SoldAt,
		})
	}

	return sales, nil
}

// Create persists a new sale row.
func (repo *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleM := &model.SaleModel{
		ID:     sale.ID,
		Total:  sale.Total,
		SoldAt: sale.SoldAt,
	}

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	return nil
}

// Delete removes the sale row by ID.
func (repo *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SaleModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete sale")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSaleNotFound
	}

	return nil
}

// expenseRepository implements repository.ExpenseRepository using GORM.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository is the constructor for expenseRepository.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// List retrieves all expenses, most recent first.
func (repo *expenseRepository) List(ctx context.Context) ([]*entity.Expense, error) {
	var expenseModels []*model.ExpenseModel

	if err := repo.db.WithContext(ctx).
		Order("spent_at DESC").
		Find(&expenseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for _, expenseM := range expenseModels {
		expenses = append(expenses, &entity.Expense{
			ID:      expenseM.ID,
			Concept: expenseM.Concept,
			Amount:  expenseM.Amount,
			SpentAt: expenseM.SpentAt,
		})
	}

	return expenses, nil
}

// Create persists a new expense row.
func (repo *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseM := &model.ExpenseModel{
		ID:      expense.ID,
		Concept: expense.Concept,
		Amount:  expense.Amount,
		SpentAt: expense.SpentAt,
	}

	if err := repo.db.WithContext(ctx).Create(expenseM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create expense")
	}

	return nil
}

// Update replaces an existing expense row by ID.
func (repo *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ?", expense.ID).
		Select("concept", "amount", "spent_at").
		Updates(&model.ExpenseModel{
			Concept: expense.Concept,
			Amount:  expense.Amount,
			SpentAt: expense.SpentAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update expense")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

// Delete removes the expense row by ID.
func (repo *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expense")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

// salaryRepository implements repository.SalaryRepository using GORM.
type salaryRepository struct {
	db *gorm.DB
}

// NewSalaryRepository is the constructor for salaryRepository.
func NewSalaryRepository(db *gorm.DB) repository.SalaryRepository {
	return &salaryRepository{
		db: db,
	}
}

// List retrieves all salary payments, most recent first.
func (repo *salaryRepository) List(ctx context.Context) ([]*entity.Salary, error) {
	var salaryModels []*model.SalaryModel

	if err := repo.db.WithContext(ctx).
		Order("paid_at DESC").
		Find(&salaryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list salaries")
	}

	salaries := make([]*entity.Salary, 0, len(salaryModels))
	for _, salaryM := range salaryModels {
		salaries = append(salaries, &entity.Salary{
			ID:       salaryM.ID,
			Employee: salaryM.Employee,
			Amount:   salaryM.Amount,
			PaidAt:   salaryM.PaidAt,
		})
	}

	return salaries, nil
}

// Create persists a new salary row.
func (repo *salaryRepository) Create(ctx context.Context, salary *entity.Salary) error {
	salaryM := &model.SalaryModel{
		ID:       salary.ID,
		Employee: salary.Employee,
		Amount:   salary.Amount,
		PaidAt:   salary.PaidAt,
	}

	if err := repo.db.WithContext(ctx).Create(salaryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create salary")
	}

	return nil
}

// Delete removes the salary row by ID.
func (repo *salaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SalaryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete salary")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSalaryNotFound
	}

	return nil
}
