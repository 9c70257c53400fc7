// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem represents a dish sold on the restaurant's menu.
type MenuItem struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Name      string
	Category  string
	Price     float64
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMenuItem creates a new active MenuItem entity.
func NewMenuItem(accountID uuid.UUID, name, category string, price float64) *MenuItem {
	now := time.Now().UTC()

	return &MenuItem{
		ID:        uuid.New(),
		AccountID: accountID,
		Name:      name,
		Category:  category,
		Price:     price,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
