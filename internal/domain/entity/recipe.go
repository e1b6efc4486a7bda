package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recipe rule violations.
var (
	ErrRecipeNameRequired = errors.New("recipe name is required")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
)

// Recipe describes how a dish is prepared from one base ingredient.
type Recipe struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Details      string    `json:"details"`
	Quantity     int       `json:"quantity"`
	IngredientID int64     `json:"ingredient_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Ingredient is the lookup list recipes reference.
type Ingredient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// Validate checks the static field rules of a recipe row.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrRecipeNameRequired
	}
	if r.Quantity < 1 {
		return ErrInvalidQuantity
	}

	return nil
}
