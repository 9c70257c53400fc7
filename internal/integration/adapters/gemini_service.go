// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/menu-pricing/backend/internal/application/adapter"
)

// GeminiService implements the MenuSuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
	validate  *validator.Validate
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
		validate:  validator.New(),
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestRecipes asks Gemini for one recipe per menu item.
func (s *GeminiService) SuggestRecipes(ctx context.Context, items []adapter.MenuItemForAI) ([]*adapter.MenuSuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	// Create client
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildMenuPrompt(items)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	return s.parseSuggestions(text)
}

// buildMenuPrompt creates the prompt for Gemini.
func buildMenuPrompt(items []adapter.MenuItemForAI) string {
	var sb strings.Builder

	sb.WriteString(`You are an experienced restaurant chef and food cost controller. For each menu item below,
propose a realistic single-portion recipe with its ingredients and an estimated ingredient cost in USD.

RULES:
- Use one of these units for every ingredient: g, kg, oz, lb, ml, l, cup, tbsp, tsp, gal, qt, pt.
- Quantities are for ONE portion.
- estimated_price is the cost of the quantity used, not of a full package.
- Keep the reasoning to one sentence.

MENU ITEMS:
`)

	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- Name: %q, Category: %q, Price: %.2f", item.Name, item.Category, item.Price))
		if item.Description != "" {
			sb.WriteString(fmt.Sprintf(", Description: %q", item.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`
Respond with a JSON array. Each element must be:
{
  "menu_item_name": "name exactly as given",
  "recipe_name": "string",
  "ingredients": [{"name": "string", "quantity": number, "unit": "string", "estimated_price": number}],
  "reasoning": "string"
}

RESPONSE FORMAT: return only the JSON array, without additional text.
`)

	return sb.String()
}

// geminiRecipe is the schema of one element of Gemini's response.
type geminiRecipe struct {
	MenuItemName string             `json:"menu_item_name" validate:"required"`
	RecipeName   string             `json:"recipe_name" validate:"required"`
	Ingredients  []geminiIngredient `json:"ingredients" validate:"required,min=1,dive"`
	Reasoning    string             `json:"reasoning"`
}

type geminiIngredient struct {
	Name           string  `json:"name" validate:"required"`
	Quantity       float64 `json:"quantity" validate:"gt=0"`
	Unit           string  `json:"unit" validate:"required"`
	EstimatedPrice float64 `json:"estimated_price" validate:"gte=0"`
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && strings.TrimSpace(string(text)) != "" {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

// parseSuggestions decodes and validates the JSON payload.
// Invalid recipes are dropped and logged; an unparsable payload is an error.
func (s *GeminiService) parseSuggestions(text string) ([]*adapter.MenuSuggestion, error) {
	// Clean the response (remove markdown code blocks if present)
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var recipes []geminiRecipe
	if err := json.Unmarshal([]byte(text), &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	suggestions := make([]*adapter.MenuSuggestion, 0, len(recipes))
	for _, recipe := range recipes {
		if err := s.validate.Struct(recipe); err != nil {
			slog.Warn("Dropping invalid AI recipe",
				"menuItem", recipe.MenuItemName,
				"error", err.Error(),
			)
			continue
		}

		suggestion := &adapter.MenuSuggestion{
			MenuItemName: recipe.MenuItemName,
			RecipeName:   recipe.RecipeName,
			Reasoning:    recipe.Reasoning,
			Ingredients:  make([]adapter.SuggestedIngredient, len(recipe.Ingredients)),
		}
		for i, ingredient := range recipe.Ingredients {
			suggestion.Ingredients[i] = adapter.SuggestedIngredient{
				Name:           ingredient.Name,
				Quantity:       ingredient.Quantity,
				Unit:           ingredient.Unit,
				EstimatedPrice: ingredient.EstimatedPrice,
			}
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}
