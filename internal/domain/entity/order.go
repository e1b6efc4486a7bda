package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a ticket opened against a table.
type Order struct {
	ID          uuid.UUID `json:"id"`
	TableNumber int       `json:"table_number"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderLine is one product position on an order. Lines keep the unit price at
// the moment of ordering, so they reference products and block their deletion.
type OrderLine struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// InventoryRow tracks on-hand stock for a product. Like order lines, a live
// inventory row blocks deletion of the product it references.
type InventoryRow struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}
