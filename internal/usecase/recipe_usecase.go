package usecase

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipeInput is the operator-submitted recipe form.
type RecipeInput struct {
	Name         string `json:"name" validate:"required"`
	Details      string `json:"details"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
	IngredientID int64  `json:"ingredient_id" validate:"required"`
}

// RecipeUsecase manages recipes and the ingredient lookup list their form needs.
type RecipeUsecase interface {
	// List retrieves all recipes.
	List(ctx context.Context) ([]*entity.Recipe, error)

	// ListIngredients retrieves the ingredient lookup list.
	ListIngredients(ctx context.Context) ([]*entity.Ingredient, error)

	// Create validates the input and persists a new recipe.
	Create(ctx context.Context, input RecipeInput) (*entity.Recipe, error)

	// Update validates the input and replaces the recipe with the given ID.
	Update(ctx context.Context, id uuid.UUID, input RecipeInput) (*entity.Recipe, error)

	// Delete removes the recipe with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
