// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// IngredientModel represents the ingredients table in the database.
type IngredientModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Quantity  float64         `gorm:"not null"`
	Unit      string          `gorm:"type:varchar(30);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IngredientModel.
func (IngredientModel) TableName() string {
	return "ingredients"
}

// ToEntity converts an IngredientModel to a domain Ingredient entity.
func (m *IngredientModel) ToEntity() *entity.Ingredient {
	return &entity.Ingredient{
		ID:        m.ID,
		AccountID: m.AccountID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		Unit:      m.Unit,
		Price:     m.Price.InexactFloat64(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// IngredientFromEntity creates an IngredientModel from a domain Ingredient entity.
func IngredientFromEntity(ingredient *entity.Ingredient) *IngredientModel {
	return &IngredientModel{
		ID:        ingredient.ID,
		AccountID: ingredient.AccountID,
		Name:      ingredient.Name,
		Quantity:  ingredient.Quantity,
		Unit:      ingredient.Unit,
		Price:     money(ingredient.Price),
		CreatedAt: ingredient.CreatedAt,
		UpdatedAt: ingredient.UpdatedAt,
	}
}

// money converts a domain amount to a two-decimal column value.
func money(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

// dateOnly pins a calendar date to midnight UTC for date columns.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
