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

// recipeRepository implements repository.RecipeRepository using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

// List retrieves all recipes ordered by name.
func (repo *recipeRepository) List(ctx context.Context) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// Create persists a new recipe row.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("el ingrediente seleccionado no existe")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	return nil
}

// Update replaces an existing recipe row by ID.
func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", recipe.ID).
		Select("name", "details", "quantity", "ingredient_id").
		Updates(fromRecipeDomain(recipe))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// Delete removes the recipe row by ID.
func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecipeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// ingredientRepository implements repository.IngredientRepository using GORM.
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{
		db: db,
	}
}

// List retrieves the ingredient lookup list ordered by name.
func (repo *ingredientRepository) List(ctx context.Context) ([]*entity.Ingredient, error) {
	var ingredientModels []*model.IngredientModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&ingredientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientModels))
	for _, ingredientM := range ingredientModels {
		ingredients = append(ingredients, &entity.Ingredient{
			ID:   ingredientM.ID,
			Name: ingredientM.Name,
			Unit: ingredientM.Unit,
		})
	}

	return ingredients, nil
}

// --- Mapper functions ---

func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:           data.ID,
		Name:         data.Name,
		Details:      data.Details,
		Quantity:     data.Quantity,
		IngredientID: data.IngredientID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:           data.ID,
		Name:         data.Name,
		Details:      data.Details,
		Quantity:     data.Quantity,
		IngredientID: data.IngredientID,
	}
}
