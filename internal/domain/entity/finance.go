package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a closed, paid order total.
type Sale struct {
	ID     uuid.UUID       `json:"id"`
	Total  decimal.Decimal `json:"total"`
	SoldAt time.Time       `json:"sold_at"`
}

// Expense is an outgoing payment recorded by the back office.
type Expense struct {
	ID      uuid.UUID       `json:"id"`
	Concept string          `json:"concept"`
	Amount  decimal.Decimal `json:"amount"`
	SpentAt time.Time       `json:"spent_at"`
}

// Salary is a payroll payment to one employee.
type Salary struct {
	ID       uuid.UUID       `json:"id"`
	Employee string          `json:"employee"`
	Amount   decimal.Decimal `json:"amount"`
	PaidAt   time.Time       `json:"paid_at"`
}
