// Package worker provides background workers.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
)

// ActionItemCompleter completes an open item whose week already has COGS.
type ActionItemCompleter interface {
	CompleteFromEntry(ctx context.Context, item *entity.ActionItem) error
}

// COGSRefresher re-reads current-week COGS for accounts with open COGS
// action items and completes the items whose week has been entered.
type COGSRefresher struct {
	itemRepo  adapter.ActionItemRepository
	cogsRepo  adapter.COGSRepository
	completer ActionItemCompleter
	cache     adapter.AggregateCache
	interval  time.Duration
}

// COGSRefresherConfig holds configuration for the COGS refresher.
type COGSRefresherConfig struct {
	Interval time.Duration
}

// DefaultCOGSRefresherConfig returns the default refresher configuration.
func DefaultCOGSRefresherConfig() COGSRefresherConfig {
	return COGSRefresherConfig{
		Interval: 5 * time.Minute,
	}
}

// NewCOGSRefresher creates a new COGS refresher.
func NewCOGSRefresher(
	itemRepo adapter.ActionItemRepository,
	cogsRepo adapter.COGSRepository,
	completer ActionItemCompleter,
	cache adapter.AggregateCache,
	config COGSRefresherConfig,
) *COGSRefresher {
	if config.Interval <= 0 {
		config.Interval = DefaultCOGSRefresherConfig().Interval
	}
	return &COGSRefresher{
		itemRepo:  itemRepo,
		cogsRepo:  cogsRepo,
		completer: completer,
		cache:     cache,
		interval:  config.Interval,
	}
}

// Start begins the refresh loop. It blocks until the context is cancelled.
func (w *COGSRefresher) Start(ctx context.Context) {
	slog.Info("COGS refresher started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("COGS refresher shutting down")
			return
		case <-ticker.C:
			w.Refresh(ctx)
		}
	}
}

// Refresh runs a single pass and returns how many items were completed.
// Failures are logged and left for the next tick.
func (w *COGSRefresher) Refresh(ctx context.Context) int {
	items, err := w.itemRepo.FindOpenByType(ctx, entity.ActionItemTypeCOGSEntry)
	if err != nil {
		slog.Error("Failed to load open COGS action items", "error", err)
		return 0
	}

	completed := 0
	for _, item := range items {
		select {
		case <-ctx.Done():
			return completed
		default:
		}

		if w.refreshItem(ctx, item) {
			completed++
		}
	}

	if completed > 0 {
		slog.Info("COGS refresher completed action items", "count", completed)
	}
	return completed
}

func (w *COGSRefresher) refreshItem(ctx context.Context, item *entity.ActionItem) bool {
	logger := slog.With(
		"action_item_id", item.ID,
		"account_id", item.AccountID,
		"week_start", item.WeekStartDate.Format(entity.DateLayout),
	)

	entry, err := w.cogsRepo.FindByWeekStart(ctx, item.AccountID, item.WeekStartDate)
	if err != nil {
		logger.Error("Failed to read COGS entry", "error", err)
		return false
	}
	if entry == nil {
		return false
	}

	if err := w.completer.CompleteFromEntry(ctx, item); err != nil {
		logger.Error("Failed to complete action item", "error", err)
		return false
	}

	if err := w.cache.InvalidateAccount(ctx, item.AccountID); err != nil {
		logger.Warn("Failed to invalidate aggregate cache", "error", err)
	}

	logger.Debug("Action item completed from existing COGS entry")
	return true
}
