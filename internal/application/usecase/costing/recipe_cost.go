// Package costing contains ingredient, recipe and recipe-cost use cases.
package costing

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	"github.com/menu-pricing/backend/internal/domain/valueobject"
)

// Skip reasons reported on recipe lines that contribute nothing.
const (
	SkipReasonIngredientNotFound = "ingredient_not_found"
	SkipReasonInvalidQuantity    = "invalid_purchase_quantity"
)

// LineCost is the cost contribution of one recipe line.
type LineCost struct {
	IngredientID     uuid.UUID
	IngredientName   string
	Quantity         float64
	Unit             string
	ConversionFactor float64
	UnitsCompatible  bool
	Cost             float64
	Skipped          bool
	SkipReason       string
}

// RecipeCost is the rolled-up cost of a recipe.
type RecipeCost struct {
	Total        float64
	TotalDisplay float64 // Rounded to 2 decimals
	Lines        []LineCost
	Warning      bool // Total is zero
}

// CostCalculator rolls up recipe costs from ingredient purchase prices.
type CostCalculator struct {
	metrics adapter.MetricsRecorder
}

// NewCostCalculator creates a new CostCalculator instance.
func NewCostCalculator(metrics adapter.MetricsRecorder) *CostCalculator {
	if metrics == nil {
		metrics = adapter.NoopMetrics{}
	}
	return &CostCalculator{
		metrics: metrics,
	}
}

// CalculateRecipeCost rolls up lines with a calculator that records no metrics.
func CalculateRecipeCost(lines []entity.RecipeIngredient, ingredients map[uuid.UUID]*entity.Ingredient) RecipeCost {
	return NewCostCalculator(nil).Calculate(lines, ingredients)
}

// Calculate sums every line as
//
//	(price / purchaseQuantity) × recipeQuantity / factor(purchaseUnit, recipeUnit)
//
// Lines whose ingredient is missing or has a non-positive purchase quantity
// contribute zero. Incompatible units use a factor of 1.
func (c *CostCalculator) Calculate(lines []entity.RecipeIngredient, ingredients map[uuid.UUID]*entity.Ingredient) RecipeCost {
	result := RecipeCost{
		Lines: make([]LineCost, 0, len(lines)),
	}

	for _, line := range lines {
		lc := LineCost{
			IngredientID:     line.IngredientID,
			Quantity:         line.Quantity,
			Unit:             line.Unit,
			ConversionFactor: 1,
		}

		ingredient, ok := ingredients[line.IngredientID]
		if !ok || ingredient == nil {
			lc.Skipped = true
			lc.SkipReason = SkipReasonIngredientNotFound
			slog.Debug("Skipping recipe line with unknown ingredient", "ingredientID", line.IngredientID.String())
			result.Lines = append(result.Lines, lc)
			continue
		}
		lc.IngredientName = ingredient.Name

		unitPrice, ok := ingredient.UnitPrice()
		if !ok {
			lc.Skipped = true
			lc.SkipReason = SkipReasonInvalidQuantity
			slog.Debug("Skipping recipe line with non-positive purchase quantity",
				"ingredientID", ingredient.ID.String(),
				"quantity", ingredient.Quantity,
			)
			result.Lines = append(result.Lines, lc)
			continue
		}

		conv := valueobject.ResolveConversion(ingredient.Unit, line.Unit)
		if !conv.Compatible {
			slog.Warn("Incompatible units, using raw quantities",
				"ingredient", ingredient.Name,
				"from", ingredient.Unit,
				"to", line.Unit,
			)
			c.metrics.UnitConversionFallback(conv.From, conv.To)
		}
		lc.ConversionFactor = conv.Factor
		lc.UnitsCompatible = conv.Compatible
		lc.Cost = unitPrice * line.Quantity / conv.Factor

		result.Total += lc.Cost
		result.Lines = append(result.Lines, lc)
	}

	if result.Total < 0 {
		result.Total = 0
	}
	result.TotalDisplay = valueobject.RoundTo2(result.Total)
	result.Warning = result.Total == 0

	return result
}

// indexIngredients builds an ID lookup for the calculator.
func indexIngredients(ingredients []*entity.Ingredient) map[uuid.UUID]*entity.Ingredient {
	byID := make(map[uuid.UUID]*entity.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		byID[ingredient.ID] = ingredient
	}
	return byID
}
