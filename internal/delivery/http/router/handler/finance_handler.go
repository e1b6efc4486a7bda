package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/delivery/http/response"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FinanceHandlerParams holds dependencies for FinanceHandler, injected by Fx.
type FinanceHandlerParams struct {
	fx.In

	FinanceUC usecase.FinanceUsecase
	Logger    *slog.Logger
}

// FinanceHandler serves the three flat money ledgers: sales, expenses and
// salaries.
type FinanceHandler struct {
	financeUC usecase.FinanceUsecase
	logger    *slog.Logger
}

// NewFinanceHandler is the constructor for FinanceHandler
func NewFinanceHandler(params FinanceHandlerParams) *FinanceHandler {
	return &FinanceHandler{
		financeUC: params.FinanceUC,
		logger:    params.Logger,
	}
}

// ListSales handles retrieving all sales.
func (h *FinanceHandler) ListSales(c echo.Context) error {
	sales, err := h.financeUC.ListSales(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sales, "Sales retrieved successfully")
}

// CreateSale handles recording a closed sale.
func (h *FinanceHandler) CreateSale(c echo.Context) error {
	var req usecase.SaleInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	sale, err := h.financeUC.CreateSale(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sale, "Sale recorded successfully")
}

// DeleteSale handles removing a sale row.
func (h *FinanceHandler) DeleteSale(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sale ID")
	}

	if err := h.financeUC.DeleteSale(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Sale deleted"}, "Sale deleted successfully")
}

// ListExpenses handles retrieving all expenses.
func (h *FinanceHandler) ListExpenses(c echo.Context) error {
	expenses, err := h.financeUC.ListExpenses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, expenses, "Expenses retrieved successfully")
}

// CreateExpense handles recording an outgoing payment.
func (h *FinanceHandler) CreateExpense(c echo.Context) error {
	var req usecase.ExpenseInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	expense, err := h.financeUC.CreateExpense(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, expense, "Expense recorded successfully")
}

// UpdateExpense handles replacing an expense row.
func (h *FinanceHandler) UpdateExpense(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid expense ID")
	}

	var req usecase.ExpenseInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	expense, err := h.financeUC.UpdateExpense(c.Request().Context(), id, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, expense, "Expense updated successfully")
}

// DeleteExpense handles removing an expense row.
func (h *FinanceHandler) DeleteExpense(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid expense ID")
	}

	if err := h.financeUC.DeleteExpense(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Expense deleted"}, "Expense deleted successfully")
}

// ListSalaries handles retrieving all salary payments.
func (h *FinanceHandler) ListSalaries(c echo.Context) error {
	salaries, err := h.financeUC.ListSalaries(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, salaries, "Salaries retrieved successfully")
}

// CreateSalary handles recording a payroll payment.
func (h *FinanceHandler) CreateSalary(c echo.Context) error {
	var req usecase.SalaryInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid salary input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	salary, err := h.financeUC.CreateSalary(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, salary, "Salary recorded successfully")
}

// DeleteSalary handles removing a salary row.
func (h *FinanceHandler) DeleteSalary(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid salary ID")
	}

	if err := h.financeUC.DeleteSalary(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Salary deleted"}, "Salary deleted successfully")
}
