// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// CompetitorItemModel represents the competitor_items table in the database.
type CompetitorItemModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CompetitorName string          `gorm:"type:varchar(100);not null"`
	ItemName       string          `gorm:"type:varchar(100);not null"`
	Category       string          `gorm:"type:varchar(50)"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ObservedAt     time.Time       `gorm:"type:timestamp;not null"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CompetitorItemModel.
func (CompetitorItemModel) TableName() string {
	return "competitor_items"
}

// ToEntity converts a CompetitorItemModel to a domain CompetitorItem entity.
func (m *CompetitorItemModel) ToEntity() *entity.CompetitorItem {
	return &entity.CompetitorItem{
		ID:             m.ID,
		AccountID:      m.AccountID,
		CompetitorName: m.CompetitorName,
		ItemName:       m.ItemName,
		Category:       m.Category,
		Price:          m.Price.InexactFloat64(),
		ObservedAt:     m.ObservedAt,
		CreatedAt:      m.CreatedAt,
	}
}

// CompetitorItemFromEntity creates a CompetitorItemModel from a domain CompetitorItem entity.
func CompetitorItemFromEntity(item *entity.CompetitorItem) *CompetitorItemModel {
	return &CompetitorItemModel{
		ID:             item.ID,
		AccountID:      item.AccountID,
		CompetitorName: item.CompetitorName,
		ItemName:       item.ItemName,
		Category:       item.Category,
		Price:          money(item.Price),
		ObservedAt:     item.ObservedAt.UTC(),
		CreatedAt:      item.CreatedAt,
	}
}
