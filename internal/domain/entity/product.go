package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product field rule violations. The usecase layer maps these onto
// user-facing validation errors.
var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrProductNameTooLong  = errors.New("product name exceeds 100 characters")
	ErrPriceOutOfRange     = errors.New("price must be greater than 0 and at most 999999.99")
	ErrExpiryInPast        = errors.New("expiry date must not be in the past")
)

const maxProductNameLen = 100

// maxPrice is the inclusive upper bound for any money amount entered by an
// operator. The store column is numeric(10,2).
var maxPrice = decimal.RequireFromString("999999.99")

// Product is a stocked article managed from the back office. Name is unique
// among live products; the store surfaces violations as a conflict error.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ExpiryDate  *time.Time      `json:"expiry_date,omitempty"`
	CategoryID  int64           `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Category is a fixed lookup referenced by products.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ValidatePrice enforces the money bounds shared by products and menu items:
// strictly positive and at most 999999.99.
func ValidatePrice(price decimal.Decimal) error {
	if !price.IsPositive() || price.GreaterThan(maxPrice) {
		return ErrPriceOutOfRange
	}

	return nil
}

// Validate checks the field rules that do not need the store: required name,
// name length, price bounds and that a given expiry date is not already past.
// Uniqueness of the name is left to the store's constraint.
func (p *Product) Validate(now time.Time) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrProductNameRequired
	}
	if len([]rune(name)) > maxProductNameLen {
		return ErrProductNameTooLong
	}
	if err := ValidatePrice(p.Price); err != nil {
		return err
	}
	if p.ExpiryDate != nil {
		// Compare on calendar days so an expiry of "today" stays accepted
		// for the whole day the form was submitted.
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if p.ExpiryDate.Before(today) {
			return ErrExpiryInPast
		}
	}

	return nil
}
