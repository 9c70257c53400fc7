// Package competitor contains competitor price tracking use cases.
package competitor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/domain/valueobject"
)

const (
	nameWeight     = 0.6
	categoryWeight = 0.4

	// MinSimilarityScore is the lowest score a comparable item may have.
	MinSimilarityScore = 0.2
)

// SimilarItem is a competitor item ranked against one of the account's menu items.
type SimilarItem struct {
	Item               *entity.CompetitorItem
	Score              float64
	PriceDifference    float64
	PriceDifferencePct *float64 // nil when the menu item has no price
}

// SimilarToOutput represents the output of a similarity query.
type SimilarToOutput struct {
	MenuItem *entity.MenuItem
	Items    []SimilarItem
}

// SimilarTo ranks the account's competitor items against a menu item.
func (s *Service) SimilarTo(ctx context.Context, accountID, menuItemID uuid.UUID) (*SimilarToOutput, error) {
	menuItem, err := s.menuItemRepo.FindByID(ctx, menuItemID, accountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMenuItemNotFound) {
			return nil, domainerror.NewCompetitorError(
				domainerror.ErrCodeReferenceItemNotFound,
				"menu item not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	candidates, err := s.competitorRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitor items: %w", err)
	}

	return &SimilarToOutput{
		MenuItem: menuItem,
		Items:    RankSimilar(menuItem, candidates),
	}, nil
}

// RankSimilar scores candidates by name overlap and category, keeps those
// scoring at least MinSimilarityScore and sorts them by score, then by price
// distance to the menu item.
func RankSimilar(menuItem *entity.MenuItem, candidates []*entity.CompetitorItem) []SimilarItem {
	reference := tokenize(menuItem.Name)
	results := make([]SimilarItem, 0, len(candidates))

	for _, candidate := range candidates {
		score := nameWeight * jaccard(reference, tokenize(candidate.ItemName))
		if sameCategory(menuItem.Category, candidate.Category) {
			score += categoryWeight
		}
		score = valueobject.RoundTo2(score)
		if score < MinSimilarityScore {
			continue
		}

		diff := valueobject.RoundTo2(candidate.Price - menuItem.Price)
		result := SimilarItem{
			Item:            candidate,
			Score:           score,
			PriceDifference: diff,
		}
		if menuItem.Price > 0 {
			pct := valueobject.RoundTo2(diff / menuItem.Price * 100)
			result.PriceDifferencePct = &pct
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return math.Abs(results[i].PriceDifference) < math.Abs(results[j].PriceDifference)
	})

	return results
}

func tokenize(name string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		tokens[field] = struct{}{}
	}
	return tokens
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

func sameCategory(a, b string) bool {
	a = strings.TrimSpace(a)
	return a != "" && strings.EqualFold(a, strings.TrimSpace(b))
}
