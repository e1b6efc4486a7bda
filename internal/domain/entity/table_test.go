package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableStatus_Occupy(t *testing.T) {
	next, err := TableStatusLibre.Occupy()
	assert.NoError(t, err)
	assert.Equal(t, TableStatusOcupada, next)

	// Occupying an occupied or reserved table is rejected and the status
	// stays where it was.
	for _, status := range []TableStatus{TableStatusOcupada, TableStatusReservada} {
		next, err := status.Occupy()
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, status, next)
	}
}

func TestTableStatus_Release(t *testing.T) {
	next, err := TableStatusOcupada.Release()
	assert.NoError(t, err)
	assert.Equal(t, TableStatusLibre, next)

	// There is no quick-action path out of "reservada", and a free table
	// cannot be released.
	for _, status := range []TableStatus{TableStatusLibre, TableStatusReservada} {
		next, err := status.Release()
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, status, next)
	}
}

func TestTableStatus_Valid(t *testing.T) {
	assert.True(t, TableStatusLibre.Valid())
	assert.True(t, TableStatusOcupada.Valid())
	assert.True(t, TableStatusReservada.Valid())
	assert.False(t, TableStatus("cerrada").Valid())
	assert.False(t, TableStatus("").Valid())
}

func TestTableValidate(t *testing.T) {
	table := &Table{Number: 1, Salon: 1, Capacity: 4, Status: TableStatusLibre}
	assert.NoError(t, table.Validate())

	table.Salon = 0
	assert.ErrorIs(t, table.Validate(), ErrInvalidSalon)

	table.Salon = 5
	assert.ErrorIs(t, table.Validate(), ErrInvalidSalon)

	table.Salon = 4
	table.Capacity = 0
	assert.ErrorIs(t, table.Validate(), ErrInvalidCapacity)

	table.Capacity = 2
	table.Status = TableStatus("pintada")
	assert.ErrorIs(t, table.Validate(), ErrInvalidTableStatus)
}
