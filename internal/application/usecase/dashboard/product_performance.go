// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/domain/valueobject"
)

// RecipeCostProvider returns the recipe unit cost per linked menu item.
type RecipeCostProvider interface {
	CostByMenuItem(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]float64, error)
}

// GetProductPerformanceInput represents the input for product performance.
type GetProductPerformanceInput struct {
	AccountID uuid.UUID
	TimeFrame valueobject.TimeFrame // Defaults to 1m
}

// ProductPerformance is the performance of one sold item over the window.
type ProductPerformance struct {
	MenuItemID   *uuid.UUID `json:"menu_item_id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	MenuPrice    *float64   `json:"menu_price"`
	Revenue      float64    `json:"revenue"`
	Quantity     int        `json:"quantity"`
	Orders       int        `json:"orders"`
	AveragePrice float64    `json:"average_price"`
	UnitCost     *float64   `json:"unit_cost"`
	FoodCostPct  *float64   `json:"food_cost_pct"`
	UnitMargin   *float64   `json:"unit_margin"`
}

// GetProductPerformanceUseCase ranks sold items by revenue with their recipe economics.
type GetProductPerformanceUseCase struct {
	salesRepo    adapter.SalesRepository
	menuItemRepo adapter.MenuItemRepository
	recipeCosts  RecipeCostProvider
	clock        adapter.Clock
}

// NewGetProductPerformanceUseCase creates a new GetProductPerformanceUseCase instance.
func NewGetProductPerformanceUseCase(
	salesRepo adapter.SalesRepository,
	menuItemRepo adapter.MenuItemRepository,
	recipeCosts RecipeCostProvider,
	clock adapter.Clock,
) *GetProductPerformanceUseCase {
	return &GetProductPerformanceUseCase{
		salesRepo:    salesRepo,
		menuItemRepo: menuItemRepo,
		recipeCosts:  recipeCosts,
		clock:        clock,
	}
}

// Execute returns per-item performance sorted by revenue descending.
func (uc *GetProductPerformanceUseCase) Execute(ctx context.Context, input GetProductPerformanceInput) ([]ProductPerformance, error) {
	frame := input.TimeFrame
	if frame == "" {
		frame = valueobject.TimeFrameMonth
	}
	if !frame.IsValid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTimeFrame,
			"time_frame must be: 1d, 7d, 1m, 6m, or 1yr",
			domainerror.ErrInvalidTimeFrame,
		)
	}

	start, end := FrameWindow(frame, uc.clock.Now(), false)

	var (
		records   []*entity.SalesRecord
		menuItems []*entity.MenuItem
		costs     map[uuid.UUID]float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = uc.salesRepo.FindByPeriod(gctx, input.AccountID, start, end)
		if err != nil {
			return fmt.Errorf("failed to load sales: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		menuItems, err = uc.menuItemRepo.FindByAccount(gctx, input.AccountID)
		if err != nil {
			return fmt.Errorf("failed to load menu items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		costs, err = uc.recipeCosts.CostByMenuItem(gctx, input.AccountID)
		if err != nil {
			return fmt.Errorf("failed to load recipe costs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	itemsByID := make(map[uuid.UUID]*entity.MenuItem, len(menuItems))
	for _, item := range menuItems {
		itemsByID[item.ID] = item
	}

	sales := AggregateItems(records)
	result := make([]ProductPerformance, 0, len(sales))
	for _, s := range sales {
		p := ProductPerformance{
			MenuItemID: s.MenuItemID,
			Name:       s.ItemName,
			Category:   s.Category,
			Revenue:    valueobject.RoundTo2(s.Revenue),
			Quantity:   s.Quantity,
			Orders:     s.Orders,
		}
		if s.Quantity > 0 {
			p.AveragePrice = valueobject.RoundTo2(s.Revenue / float64(s.Quantity))
		}

		if s.MenuItemID != nil {
			if item, ok := itemsByID[*s.MenuItemID]; ok {
				p.Name = item.Name
				p.Category = item.Category
				price := item.Price
				p.MenuPrice = &price
			}
			if cost, ok := costs[*s.MenuItemID]; ok && cost > 0 {
				unitCost := valueobject.RoundTo2(cost)
				p.UnitCost = &unitCost
				if p.AveragePrice > 0 {
					pct := valueobject.RoundTo2(cost / p.AveragePrice * 100)
					margin := valueobject.RoundTo2(p.AveragePrice - cost)
					p.FoodCostPct = &pct
					p.UnitMargin = &margin
				}
			}
		}

		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})
	return result, nil
}
