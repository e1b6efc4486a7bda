package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validProduct() *Product {
	return &Product{
		ID:         uuid.New(),
		Name:       "Aceite de oliva",
		Price:      decimal.RequireFromString("25.50"),
		CategoryID: 1,
	}
}

func TestValidatePrice_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		wantErr bool
	}{
		{name: "minimum accepted", price: "0.01", wantErr: false},
		{name: "maximum accepted", price: "999999.99", wantErr: false},
		{name: "zero rejected", price: "0", wantErr: true},
		{name: "negative rejected", price: "-1", wantErr: true},
		{name: "over maximum rejected", price: "1000000.00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrice(decimal.RequireFromString(tt.price))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPriceOutOfRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductValidate_Name(t *testing.T) {
	now := time.Now()

	p := validProduct()
	p.Name = "   "
	assert.ErrorIs(t, p.Validate(now), ErrProductNameRequired)

	p = validProduct()
	p.Name = strings.Repeat("a", 100)
	assert.NoError(t, p.Validate(now))

	p.Name = strings.Repeat("a", 101)
	assert.ErrorIs(t, p.Validate(now), ErrProductNameTooLong)
}

func TestProductValidate_Expiry(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	// No expiry is fine.
	p := validProduct()
	assert.NoError(t, p.Validate(now))

	// Expiring today stays valid all day.
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	p.ExpiryDate = &today
	assert.NoError(t, p.Validate(now))

	// Tomorrow is valid.
	tomorrow := today.AddDate(0, 0, 1)
	p.ExpiryDate = &tomorrow
	assert.NoError(t, p.Validate(now))

	// Yesterday is rejected.
	yesterday := today.AddDate(0, 0, -1)
	p.ExpiryDate = &yesterday
	assert.ErrorIs(t, p.Validate(now), ErrExpiryInPast)
}

func TestProductValidate_Price(t *testing.T) {
	p := validProduct()
	p.Price = decimal.Zero
	assert.ErrorIs(t, p.Validate(time.Now()), ErrPriceOutOfRange)
}
