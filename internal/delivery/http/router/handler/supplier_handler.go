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

// SupplierHandlerParams holds dependencies for SupplierHandler, injected by Fx.
type SupplierHandlerParams struct {
	fx.In

	SupplierUC usecase.SupplierUsecase
	Logger     *slog.Logger
}

// SupplierHandler holds dependencies for supplier handlers
type SupplierHandler struct {
	supplierUC usecase.SupplierUsecase
	logger     *slog.Logger
}

// NewSupplierHandler is the constructor for SupplierHandler
func NewSupplierHandler(params SupplierHandlerParams) *SupplierHandler {
	return &SupplierHandler{
		supplierUC: params.SupplierUC,
		logger:     params.Logger,
	}
}

// ListSuppliers handles retrieving all suppliers.
func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	suppliers, err := h.supplierUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suppliers, "Suppliers retrieved successfully")
}

// CreateSupplier handles registering a new supplier.
func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	var req usecase.SupplierInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	supplier, err := h.supplierUC.Create(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, supplier, "Supplier created successfully")
}

// UpdateSupplier handles replacing an existing supplier.
func (h *SupplierHandler) UpdateSupplier(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid supplier ID")
	}

	var req usecase.SupplierInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	supplier, err := h.supplierUC.Update(c.Request().Context(), id, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, supplier, "Supplier updated successfully")
}

// DeleteSupplier handles removing a supplier.
func (h *SupplierHandler) DeleteSupplier(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid supplier ID")
	}

	if err := h.supplierUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Supplier deleted"}, "Supplier deleted successfully")
}
