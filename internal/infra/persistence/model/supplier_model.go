package model

import (
	"time"

	"github.com/google/uuid"
)

// SupplierModel is the GORM struct for the 'suppliers' table.
type SupplierModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Contact   string
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "suppliers"
}
