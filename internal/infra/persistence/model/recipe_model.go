package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel is the GORM struct for the 'recipes' table.
type RecipeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Details      string
	Quantity     int   `gorm:"not null"`
	IngredientID int64 `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// IngredientModel is the GORM struct for the 'ingredients' lookup table.
type IngredientModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
	Unit string `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}
