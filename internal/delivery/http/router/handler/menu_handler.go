package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/delivery/http/response"
	"comanda/internal/domain/entity"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler serves the public site pages and the admin menu editor. Both
// read from the same in-memory state container, so an admin edit is visible
// to diners on the next fetch.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// GetPublicMenu handles the diner-facing menu: available items only.
func (h *MenuHandler) GetPublicMenu(c echo.Context) error {
	items, err := h.menuUC.PublicMenu(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Menu retrieved successfully")
}

// GetInfo handles the public restaurant info block.
func (h *MenuHandler) GetInfo(c echo.Context) error {
	info, err := h.menuUC.Info(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, info, "Restaurant info retrieved successfully")
}

// GetHours handles the public opening hours block.
func (h *MenuHandler) GetHours(c echo.Context) error {
	hours, err := h.menuUC.Hours(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hours, "Opening hours retrieved successfully")
}

// GetAdminMenu handles the editor view: the full menu including unavailable items.
func (h *MenuHandler) GetAdminMenu(c echo.Context) error {
	items, err := h.menuUC.AdminMenu(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Menu retrieved successfully")
}

// AddMenuItem handles appending a new item to the menu card.
func (h *MenuHandler) AddMenuItem(c echo.Context) error {
	var req usecase.MenuItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.menuUC.AddMenuItem(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item added successfully")
}

// UpdateMenuItem handles replacing an existing menu item.
func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid menu item ID")
	}

	var req usecase.MenuItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.menuUC.UpdateMenuItem(c.Request().Context(), id, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item updated successfully")
}

// DeleteMenuItem handles removing a menu item from the card.
func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid menu item ID")
	}

	if err := h.menuUC.DeleteMenuItem(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Menu item deleted"}, "Menu item deleted successfully")
}

// UpdateInfo handles replacing the restaurant info singleton.
func (h *MenuHandler) UpdateInfo(c echo.Context) error {
	var req entity.RestaurantInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant info input")
	}

	if err := h.menuUC.UpdateInfo(c.Request().Context(), req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, req, "Restaurant info updated successfully")
}

// UpdateHours handles replacing the opening hours singleton.
func (h *MenuHandler) UpdateHours(c echo.Context) error {
	var req entity.Hours
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid opening hours input")
	}

	if err := h.menuUC.UpdateHours(c.Request().Context(), req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, req, "Opening hours updated successfully")
}
