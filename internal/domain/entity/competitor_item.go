// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompetitorItem is a menu item observed at a competing restaurant.
type CompetitorItem struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	CompetitorName string
	ItemName       string
	Category       string
	Price          float64
	ObservedAt     time.Time
	CreatedAt      time.Time
}

// NewCompetitorItem creates a new CompetitorItem entity.
func NewCompetitorItem(accountID uuid.UUID, competitorName, itemName, category string, price float64, observedAt time.Time) *CompetitorItem {
	return &CompetitorItem{
		ID:             uuid.New(),
		AccountID:      accountID,
		CompetitorName: competitorName,
		ItemName:       itemName,
		Category:       category,
		Price:          price,
		ObservedAt:     observedAt,
		CreatedAt:      time.Now().UTC(),
	}
}
