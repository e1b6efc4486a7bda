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

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	Logger   *slog.Logger
}

// RecipeHandler holds dependencies for recipe handlers
type RecipeHandler struct {
	recipeUC usecase.RecipeUsecase
	logger   *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC: params.RecipeUC,
		logger:   params.Logger,
	}
}

// ListRecipes handles retrieving all recipes.
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	recipes, err := h.recipeUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipes, "Recipes retrieved successfully")
}

// ListIngredients handles retrieving the ingredient lookup for the recipe form.
func (h *RecipeHandler) ListIngredients(c echo.Context) error {
	ingredients, err := h.recipeUC.ListIngredients(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredients, "Ingredients retrieved successfully")
}

// CreateRecipe handles registering a new recipe.
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	var req usecase.RecipeInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	recipe, err := h.recipeUC.Create(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, recipe, "Recipe created successfully")
}

// UpdateRecipe handles replacing an existing recipe.
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	var req usecase.RecipeInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	recipe, err := h.recipeUC.Update(c.Request().Context(), id, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe updated successfully")
}

// DeleteRecipe handles removing a recipe.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	if err := h.recipeUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Recipe deleted"}, "Recipe deleted successfully")
}
