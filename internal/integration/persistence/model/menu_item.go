// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// MenuItemModel represents the menu_items table in the database.
type MenuItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Category  string          `gorm:"type:varchar(50)"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MenuItemModel.
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// ToEntity converts a MenuItemModel to a domain MenuItem entity.
func (m *MenuItemModel) ToEntity() *entity.MenuItem {
	return &entity.MenuItem{
		ID:        m.ID,
		AccountID: m.AccountID,
		Name:      m.Name,
		Category:  m.Category,
		Price:     m.Price.InexactFloat64(),
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MenuItemFromEntity creates a MenuItemModel from a domain MenuItem entity.
func MenuItemFromEntity(item *entity.MenuItem) *MenuItemModel {
	return &MenuItemModel{
		ID:        item.ID,
		AccountID: item.AccountID,
		Name:      item.Name,
		Category:  item.Category,
		Price:     money(item.Price),
		Active:    item.Active,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
