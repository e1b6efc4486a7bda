package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrSupplierNameRequired is returned when a supplier is submitted without a name.
var ErrSupplierNameRequired = errors.New("supplier name is required")

// Supplier is a goods provider. A supplier may optionally be linked to the
// product it supplies; that link is what makes a product "referenced" from the
// suppliers page.
type Supplier struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Contact   string     `json:"contact"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Validate checks the static field rules of a supplier row.
func (s *Supplier) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrSupplierNameRequired
	}

	return nil
}
