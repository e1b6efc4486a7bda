package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleModel is the GORM struct for the 'sales' table.
type SaleModel struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SoldAt time.Time       `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// ExpenseModel is the GORM struct for the 'expenses' table.
type ExpenseModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Concept string    `gorm:"not null"`
	Amount  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SpentAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// SalaryModel is the GORM struct for the 'salaries' table.
type SalaryModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Employee string    `gorm:"not null"`
	Amount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaidAt   time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (SalaryModel) TableName() string {
	return "salaries"
}
