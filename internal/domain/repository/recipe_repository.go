package repository

import (
	"context"
	"errors"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is returned when an update or delete targets an unknown
// recipe.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the operations for recipe persistence.
type RecipeRepository interface {
	// List retrieves all recipes ordered by name.
	List(ctx context.Context) ([]*entity.Recipe, error)

	// Create persists a new recipe row.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update replaces an existing recipe row by ID.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// Delete removes the recipe row by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// IngredientRepository exposes the ingredient lookup list recipes reference.
type IngredientRepository interface {
	// List retrieves all ingredients ordered by name.
	List(ctx context.Context) ([]*entity.Ingredient, error)
}
