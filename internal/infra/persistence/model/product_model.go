// Package model contains the GORM-specific structs for the PostgreSQL tables.
// They stay private to the persistence layer; repositories map them to and
// from the pure domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM struct for the 'products' table. The unique index
// on name is what surfaces duplicate-name submissions as conflict errors.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;uniqueIndex;not null"`
	Description *string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ExpiryDate  *time.Time
	CategoryID  int64 `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel is the GORM struct for the 'categories' lookup table.
type CategoryModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
	Type string `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
