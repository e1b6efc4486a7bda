// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuCategory classifies an item on the public menu card.
type MenuCategory string

// The four fixed menu sections, in the order they appear on the card.
const (
	MenuCategoryEntrada   MenuCategory = "Entrada"
	MenuCategoryPrincipal MenuCategory = "Plato Principal"
	MenuCategoryPostre    MenuCategory = "Postre"
	MenuCategoryBebida    MenuCategory = "Bebida"
)

// Valid reports whether the category is one of the fixed menu sections.
func (c MenuCategory) Valid() bool {
	switch c {
	case MenuCategoryEntrada, MenuCategoryPrincipal, MenuCategoryPostre, MenuCategoryBebida:
		return true
	}

	return false
}

// MenuItem is an entry on the public menu card. Menu items live only in the
// in-memory restaurant state container and are never persisted; a process
// restart reverts the menu to its defaults.
type MenuItem struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    MenuCategory    `json:"category"`
	Available   bool            `json:"available"`
}

// RestaurantInfo is the singleton block of contact data shown on the public
// site. Updates always replace the whole value; there is no field-level merge.
type RestaurantInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// Hours is the singleton set of opening ranges, kept as free text exactly as
// the operator typed them.
type Hours struct {
	MondayFriday string `json:"monday_friday"`
	Saturday     string `json:"saturday"`
	Sunday       string `json:"sunday"`
}
