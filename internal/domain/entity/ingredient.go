// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient represents a purchasable ingredient with its purchase price and pack size.
type Ingredient struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Name      string
	Quantity  float64 // Purchase quantity expressed in Unit
	Unit      string
	Price     float64 // Price paid for Quantity
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewIngredient creates a new Ingredient entity.
func NewIngredient(accountID uuid.UUID, name string, quantity float64, unit string, price float64) *Ingredient {
	now := time.Now().UTC()

	return &Ingredient{
		ID:        uuid.New(),
		AccountID: accountID,
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UnitPrice returns the price of one purchase unit.
// The second return value is false when the quantity cannot be divided by.
func (i *Ingredient) UnitPrice() (float64, bool) {
	if i.Quantity <= 0 {
		return 0, false
	}
	return i.Price / i.Quantity, true
}
