// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// RecipeModel represents the recipes table in the database.
type RecipeModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AccountID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name       string     `gorm:"type:varchar(100);not null"`
	MenuItemID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null"`

	// Relationships
	Lines []RecipeIngredientModel `gorm:"foreignKey:RecipeID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the RecipeModel.
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeIngredientModel represents the recipe_ingredients table in the database.
type RecipeIngredientModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	RecipeID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Position     int       `gorm:"not null"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity     float64   `gorm:"not null"`
	Unit         string    `gorm:"type:varchar(30);not null"`
}

// TableName returns the table name for the RecipeIngredientModel.
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

// ToEntity converts a RecipeModel with its preloaded lines to a domain Recipe entity.
func (m *RecipeModel) ToEntity() *entity.Recipe {
	lines := make([]entity.RecipeIngredient, len(m.Lines))
	for i, line := range m.Lines {
		lines[i] = entity.RecipeIngredient{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		}
	}

	return &entity.Recipe{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Name:        m.Name,
		MenuItemID:  m.MenuItemID,
		Ingredients: lines,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// RecipeFromEntity creates a RecipeModel from a domain Recipe entity.
// Lines are returned separately so they can be replaced in one transaction.
func RecipeFromEntity(recipe *entity.Recipe) (*RecipeModel, []RecipeIngredientModel) {
	lines := make([]RecipeIngredientModel, len(recipe.Ingredients))
	for i, line := range recipe.Ingredients {
		lines[i] = RecipeIngredientModel{
			RecipeID:     recipe.ID,
			Position:     i,
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		}
	}

	return &RecipeModel{
		ID:         recipe.ID,
		AccountID:  recipe.AccountID,
		Name:       recipe.Name,
		MenuItemID: recipe.MenuItemID,
		CreatedAt:  recipe.CreatedAt,
		UpdatedAt:  recipe.UpdatedAt,
	}, lines
}
