package aisuggestion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menu-pricing/backend/internal/application/adapter"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

type fakeAIService struct {
	available   bool
	suggestions []*adapter.MenuSuggestion
	err         error
	received    []adapter.MenuItemForAI
}

func (f *fakeAIService) SuggestRecipes(_ context.Context, items []adapter.MenuItemForAI) ([]*adapter.MenuSuggestion, error) {
	f.received = items
	return f.suggestions, f.err
}

func (f *fakeAIService) IsAvailable() bool { return f.available }

func TestSuggestMenu_AnnotatesUnits(t *testing.T) {
	ai := &fakeAIService{
		available: true,
		suggestions: []*adapter.MenuSuggestion{{
			MenuItemName: "Margherita",
			RecipeName:   "Margherita Pizza",
			Ingredients: []adapter.SuggestedIngredient{
				{Name: "Flour", Quantity: 250, Unit: " Grams", EstimatedPrice: 0.5},
				{Name: "Basil", Quantity: 1, Unit: "bunch", EstimatedPrice: 1.25},
			},
		}},
	}

	out, err := NewSuggestMenuUseCase(ai).Execute(context.Background(), SuggestMenuInput{
		AccountID: uuid.New(),
		MenuItems: []adapter.MenuItemForAI{{Name: " Margherita "}, {Name: ""}},
	})
	require.NoError(t, err)

	require.Len(t, ai.received, 1)
	assert.Equal(t, "Margherita", ai.received[0].Name)

	require.Len(t, out.Suggestions, 1)
	ingredients := out.Suggestions[0].Ingredients
	require.Len(t, ingredients, 2)
	assert.True(t, ingredients[0].UnitRecognized)
	assert.Equal(t, "grams", ingredients[0].Unit)
	assert.False(t, ingredients[1].UnitRecognized)
	assert.Equal(t, 1.75, out.Suggestions[0].EstimatedCost)
}

func TestSuggestMenu_Validation(t *testing.T) {
	ai := &fakeAIService{available: true}
	uc := NewSuggestMenuUseCase(ai)

	_, err := uc.Execute(context.Background(), SuggestMenuInput{})
	assert.ErrorIs(t, err, domainerror.ErrAINoMenuItems)

	items := make([]adapter.MenuItemForAI, MaxMenuItemsPerRequest+1)
	for i := range items {
		items[i].Name = fmt.Sprintf("Item %d", i)
	}
	_, err = uc.Execute(context.Background(), SuggestMenuInput{MenuItems: items})
	assert.ErrorIs(t, err, domainerror.ErrAITooManyMenuItems)
}

func TestSuggestMenu_Unavailable(t *testing.T) {
	_, err := NewSuggestMenuUseCase(&fakeAIService{available: false}).Execute(context.Background(), SuggestMenuInput{
		MenuItems: []adapter.MenuItemForAI{{Name: "Soup"}},
	})

	var aiErr *domainerror.AISuggestionError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, domainerror.ErrCodeAIServiceUnavailable, aiErr.Code)
}

func TestSuggestMenu_ClassifiesProviderErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code domainerror.AISuggestionErrorCode
	}{
		{name: "timeout", err: context.DeadlineExceeded, code: domainerror.ErrCodeAITimeout},
		{name: "rate limited", err: errors.New("googleapi: Error 429: Resource exhausted"), code: domainerror.ErrCodeAIRateLimited},
		{name: "auth", err: errors.New("API key not valid"), code: domainerror.ErrCodeAIServiceUnavailable},
		{name: "parse", err: errors.New("invalid character '}' looking for value"), code: domainerror.ErrCodeAIGenerationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &fakeAIService{available: true, err: tt.err}
			_, err := NewSuggestMenuUseCase(ai).Execute(context.Background(), SuggestMenuInput{
				MenuItems: []adapter.MenuItemForAI{{Name: "Soup"}},
			})

			var aiErr *domainerror.AISuggestionError
			require.ErrorAs(t, err, &aiErr)
			assert.Equal(t, tt.code, aiErr.Code)
		})
	}
}
