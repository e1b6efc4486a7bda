package usecase

import (
	"context"

	"comanda/internal/domain/entity"
)

// TableInput is the admin table-editor form. Status may be any of the three
// occupancy states; an empty status on create defaults to "libre".
type TableInput struct {
	Number   int    `json:"number" validate:"required,min=1"`
	Salon    int    `json:"salon" validate:"required,min=1,max=4"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
	Status   string `json:"status"`
}

// TableUsecase manages dining tables. The admin editor may set any status
// unconditionally; the waiter board only gets the two quick actions, which
// follow the occupancy state machine strictly. Status writes are never
// applied optimistically: on failure the error is returned and the caller
// re-reads the board instead of assuming the transition happened.
type TableUsecase interface {
	// List retrieves all tables for the board and the editor.
	List(ctx context.Context) ([]*entity.Table, error)

	// Create validates the input and persists a new table.
	Create(ctx context.Context, input TableInput) (*entity.Table, error)

	// Update validates the input and replaces the table with the given number.
	Update(ctx context.Context, number int, input TableInput) (*entity.Table, error)

	// SetStatus is the admin override: writes any valid status regardless of
	// the current one.
	SetStatus(ctx context.Context, number int, status entity.TableStatus) error

	// Occupy is the waiter quick action "Ocupar": libre to ocupada only.
	Occupy(ctx context.Context, number int) (*entity.Table, error)

	// Release is the waiter quick action "Liberar": ocupada to libre only.
	Release(ctx context.Context, number int) (*entity.Table, error)

	// Delete removes the table with the given number.
	Delete(ctx context.Context, number int) error

	// MenuQR renders the printable QR code linking the table to the public menu.
	MenuQR(ctx context.Context, number int) ([]byte, error)
}
