package impl

import (
	"context"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService is a thin form-to-record service over recipes plus the
// ingredient lookup their form needs.
type recipeService struct {
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo     repository.RecipeRepository
	IngredientRepo repository.IngredientRepository
}

// NewRecipeService creates the recipe service.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo:     params.RecipeRepo,
		ingredientRepo: params.IngredientRepo,
	}
}

// List retrieves all recipes.
func (s *recipeService) List(ctx context.Context) ([]*entity.Recipe, error) {
	recipes, err := s.recipeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// ListIngredients retrieves the ingredient lookup list.
func (s *recipeService) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	ingredients, err := s.ingredientRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	return ingredients, nil
}

// Create validates the input and persists a new recipe.
func (s *recipeService) Create(ctx context.Context, input usecase.RecipeInput) (*entity.Recipe, error) {
	recipe := &entity.Recipe{
		ID:           uuid.New(),
		Name:         input.Name,
		Details:      input.Details,
		Quantity:     input.Quantity,
		IngredientID: input.IngredientID,
	}

	if err := recipe.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// Update validates the input and replaces the recipe row by ID.
func (s *recipeService) Update(ctx context.Context, id uuid.UUID, input usecase.RecipeInput) (*entity.Recipe, error) {
	recipe := &entity.Recipe{
		ID:           id,
		Name:         input.Name,
		Details:      input.Details,
		Quantity:     input.Quantity,
		IngredientID: input.IngredientID,
	}

	if err := recipe.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, err
	}

	return recipe, nil
}

// Delete removes the recipe row.
func (s *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return domainerrors.ErrRecipeNotFound
		}

		return err
	}

	return nil
}
