package entity

import "errors"

// TableStatus is the occupancy state of a dining table.
type TableStatus string

// Occupancy states. There is no terminal state; tables cycle indefinitely.
const (
	TableStatusLibre     TableStatus = "libre"
	TableStatusOcupada   TableStatus = "ocupada"
	TableStatusReservada TableStatus = "reservada"
)

// Table rule violations.
var (
	ErrInvalidTableStatus = errors.New("invalid table status")
	ErrInvalidTransition  = errors.New("invalid table status transition")
	ErrInvalidSalon       = errors.New("salon must be between 1 and 4")
	ErrInvalidCapacity    = errors.New("capacity must be at least 1")
)

// Valid reports whether the status is one of the three occupancy states.
func (s TableStatus) Valid() bool {
	switch s {
	case TableStatusLibre, TableStatusOcupada, TableStatusReservada:
		return true
	}

	return false
}

// Occupy is the waiter quick action "Ocupar". Only a free table can be
// occupied; any other starting state is rejected. The admin editor bypasses
// this machine and may assign any status directly.
func (s TableStatus) Occupy() (TableStatus, error) {
	if s != TableStatusLibre {
		return s, ErrInvalidTransition
	}

	return TableStatusOcupada, nil
}

// Release is the waiter quick action "Liberar". Only an occupied table can be
// released; in particular there is no quick-action path out of "reservada".
func (s TableStatus) Release() (TableStatus, error) {
	if s != TableStatusOcupada {
		return s, ErrInvalidTransition
	}

	return TableStatusLibre, nil
}

// Table is a dining table. Number is the natural key used for every update.
type Table struct {
	Number   int         `json:"number"`
	Salon    int         `json:"salon"`
	Capacity int         `json:"capacity"`
	Status   TableStatus `json:"status"`
}

// Validate checks the static field rules of a table row.
func (t *Table) Validate() error {
	if t.Salon < 1 || t.Salon > 4 {
		return ErrInvalidSalon
	}
	if t.Capacity < 1 {
		return ErrInvalidCapacity
	}
	if !t.Status.Valid() {
		return ErrInvalidTableStatus
	}

	return nil
}
