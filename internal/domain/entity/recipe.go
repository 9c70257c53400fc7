// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecipeIngredient is a single ingredient line of a recipe.
type RecipeIngredient struct {
	IngredientID uuid.UUID
	Quantity     float64
	Unit         string
}

// Recipe represents a dish recipe built from ingredient lines.
type Recipe struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Name        string
	MenuItemID  *uuid.UUID
	Ingredients []RecipeIngredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRecipe creates a new Recipe entity.
func NewRecipe(accountID uuid.UUID, name string, menuItemID *uuid.UUID, ingredients []RecipeIngredient) *Recipe {
	now := time.Now().UTC()

	return &Recipe{
		ID:          uuid.New(),
		AccountID:   accountID,
		Name:        name,
		MenuItemID:  menuItemID,
		Ingredients: ingredients,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IngredientIDs returns the distinct ingredient IDs referenced by the recipe.
func (r *Recipe) IngredientIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(r.Ingredients))
	ids := make([]uuid.UUID, 0, len(r.Ingredients))
	for _, line := range r.Ingredients {
		if _, ok := seen[line.IngredientID]; ok {
			continue
		}
		seen[line.IngredientID] = struct{}{}
		ids = append(ids, line.IngredientID)
	}
	return ids
}
