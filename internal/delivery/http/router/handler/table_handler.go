package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"comanda/internal/delivery/http/response"
	"comanda/internal/domain/entity"
	"comanda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TableHandlerParams holds dependencies for TableHandler, injected by Fx.
type TableHandlerParams struct {
	fx.In

	TableUC usecase.TableUsecase
	Logger  *slog.Logger
}

// TableHandler serves both the admin table editor and the waiter board. The
// waiter board only exposes the two quick actions; arbitrary status writes
// stay behind the admin routes.
type TableHandler struct {
	tableUC usecase.TableUsecase
	logger  *slog.Logger
}

// NewTableHandler is the constructor for TableHandler
func NewTableHandler(params TableHandlerParams) *TableHandler {
	return &TableHandler{
		tableUC: params.TableUC,
		logger:  params.Logger,
	}
}

// SetStatusRequest represents the admin status override body
type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListTables handles retrieving all tables for the board and the editor.
func (h *TableHandler) ListTables(c echo.Context) error {
	tables, err := h.tableUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tables, "Tables retrieved successfully")
}

// CreateTable handles registering a new table.
func (h *TableHandler) CreateTable(c echo.Context) error {
	var req usecase.TableInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid table input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	table, err := h.tableUC.Create(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, table, "Table created successfully")
}

// UpdateTable handles replacing an existing table.
func (h *TableHandler) UpdateTable(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NUMBER", "Invalid table number")
	}

	var req usecase.TableInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid table input")
	}

	// The path parameter names the target; the body need not repeat it.
	req.Number = number

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	table, err := h.tableUC.Update(c.Request().Context(), number, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, table, "Table updated successfully")
}

// SetTableStatus handles the admin status override: any valid status,
// regardless of the current one.
func (h *TableHandler) SetTableStatus(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NUMBER", "Invalid table number")
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.tableUC.SetStatus(c.Request().Context(), number, entity.TableStatus(req.Status)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status}, "Table status updated successfully")
}

// OccupyTable handles the waiter quick action "Ocupar": libre to ocupada only.
func (h *TableHandler) OccupyTable(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NUMBER", "Invalid table number")
	}

	table, err := h.tableUC.Occupy(c.Request().Context(), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, table, "Table occupied successfully")
}

// ReleaseTable handles the waiter quick action "Liberar": ocupada to libre only.
func (h *TableHandler) ReleaseTable(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NUMBER", "Invalid table number")
	}

	table, err := h.tableUC.Release(c.Request().Context(), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, table, "Table released successfully")
}

// DeleteTable handles removing a table.
func (h *TableHandler) DeleteTable(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NUMBER", "Invalid table number")
	}

	if err := h.tableUC.Delete(c.Request().Context(), number); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Table deleted"}, "Table deleted successfully")
}

// GetTableMenuQR handles generating the printable QR code that links the
// table to the public menu.
func (h *TableHandler) GetTableMenuQR(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NUMBER", "Invalid table number")
	}

	qrCode, err := h.tableUC.MenuQR(c.Request().Context(), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Type", "image/png")
	c.Response().Header().Set("Content-Disposition", "inline; filename=table-menu-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
