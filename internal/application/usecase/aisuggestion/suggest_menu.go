// Package aisuggestion contains AI-driven recipe suggestion use cases.
package aisuggestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/adapter"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/domain/valueobject"
)

// MaxMenuItemsPerRequest bounds a single suggestion batch.
const MaxMenuItemsPerRequest = 20

// SuggestMenuInput represents the input for menu suggestions.
type SuggestMenuInput struct {
	AccountID uuid.UUID
	MenuItems []adapter.MenuItemForAI
}

// SuggestedIngredient is an AI ingredient line annotated for costing.
type SuggestedIngredient struct {
	Name           string
	Quantity       float64
	Unit           string
	UnitRecognized bool
	EstimatedPrice float64
}

// MenuSuggestion is a suggested recipe with its estimated cost.
type MenuSuggestion struct {
	MenuItemName  string
	RecipeName    string
	Ingredients   []SuggestedIngredient
	EstimatedCost float64
	Reasoning     string
}

// SuggestMenuOutput represents the output of menu suggestions.
type SuggestMenuOutput struct {
	Suggestions []MenuSuggestion
}

// SuggestMenuUseCase asks the AI provider for recipes of the given menu items.
type SuggestMenuUseCase struct {
	aiService adapter.MenuSuggestionService
}

// NewSuggestMenuUseCase creates a new SuggestMenuUseCase instance.
func NewSuggestMenuUseCase(aiService adapter.MenuSuggestionService) *SuggestMenuUseCase {
	return &SuggestMenuUseCase{aiService: aiService}
}

// Execute validates the batch and returns one suggestion per menu item the AI answered for.
func (uc *SuggestMenuUseCase) Execute(ctx context.Context, input SuggestMenuInput) (*SuggestMenuOutput, error) {
	items := make([]adapter.MenuItemForAI, 0, len(input.MenuItems))
	for _, item := range input.MenuItems {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name != "" {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return nil, domainerror.NewAISuggestionError(
			domainerror.ErrCodeAINoMenuItems,
			"at least one menu item with a name is required",
			domainerror.ErrAINoMenuItems,
		)
	}
	if len(items) > MaxMenuItemsPerRequest {
		return nil, domainerror.NewAISuggestionError(
			domainerror.ErrCodeAITooManyMenuItems,
			fmt.Sprintf("at most %d menu items per request", MaxMenuItemsPerRequest),
			domainerror.ErrAITooManyMenuItems,
		)
	}

	if uc.aiService == nil || !uc.aiService.IsAvailable() {
		return nil, domainerror.NewAISuggestionError(
			domainerror.ErrCodeAIServiceUnavailable,
			"AI service is not available",
			domainerror.ErrAIServiceUnavailable,
		)
	}

	suggestions, err := uc.aiService.SuggestRecipes(ctx, items)
	if err != nil {
		slog.Error("AI menu suggestion failed",
			"accountID", input.AccountID.String(),
			"items", len(items),
			"error", err.Error(),
		)
		return nil, classifyError(err)
	}

	output := &SuggestMenuOutput{Suggestions: make([]MenuSuggestion, 0, len(suggestions))}
	for _, suggestion := range suggestions {
		if suggestion == nil {
			continue
		}
		output.Suggestions = append(output.Suggestions, annotate(suggestion))
	}

	slog.Info("AI menu suggestions generated",
		"accountID", input.AccountID.String(),
		"requested", len(items),
		"returned", len(output.Suggestions),
	)

	return output, nil
}

// annotate flags ingredient units the conversion table cannot cost.
func annotate(suggestion *adapter.MenuSuggestion) MenuSuggestion {
	result := MenuSuggestion{
		MenuItemName: suggestion.MenuItemName,
		RecipeName:   suggestion.RecipeName,
		Reasoning:    suggestion.Reasoning,
		Ingredients:  make([]SuggestedIngredient, 0, len(suggestion.Ingredients)),
	}

	var total float64
	for _, ingredient := range suggestion.Ingredients {
		recognized := valueobject.IsKnownUnit(ingredient.Unit)
		if !recognized {
			slog.Debug("AI suggested an unrecognized unit",
				"ingredient", ingredient.Name,
				"unit", ingredient.Unit,
			)
		}
		result.Ingredients = append(result.Ingredients, SuggestedIngredient{
			Name:           ingredient.Name,
			Quantity:       ingredient.Quantity,
			Unit:           valueobject.NormalizeUnit(ingredient.Unit),
			UnitRecognized: recognized,
			EstimatedPrice: ingredient.EstimatedPrice,
		})
		total += ingredient.EstimatedPrice
	}
	result.EstimatedCost = valueobject.RoundTo2(total)

	return result
}

// classifyError maps provider failures to AI error codes.
func classifyError(err error) error {
	errStr := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, context.DeadlineExceeded) || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline"):
		return domainerror.NewAISuggestionError(
			domainerror.ErrCodeAITimeout,
			"AI request timed out. Try again with fewer items.",
			err,
		)
	case strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted"):
		return domainerror.NewAISuggestionError(
			domainerror.ErrCodeAIRateLimited,
			"AI service is rate limited. Wait a few minutes and try again.",
			err,
		)
	case strings.Contains(errStr, "api key") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "401") || strings.Contains(errStr, "403"):
		return domainerror.NewAISuggestionError(
			domainerror.ErrCodeAIServiceUnavailable,
			"AI service authentication failed. Please contact support.",
			domainerror.ErrAIServiceUnavailable,
		)
	default:
		return domainerror.NewAISuggestionError(
			domainerror.ErrCodeAIGenerationFailed,
			"failed to generate menu suggestions",
			fmt.Errorf("%w: %v", domainerror.ErrAIGenerationFailed, err),
		)
	}
}
