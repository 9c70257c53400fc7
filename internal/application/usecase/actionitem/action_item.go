// Package actionitem contains the weekly COGS action item use cases.
package actionitem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/application/usecase/cogs"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

// COGSSubmitter persists a weekly COGS amount.
type COGSSubmitter interface {
	Execute(ctx context.Context, input cogs.SubmitCOGSInput) (*cogs.SubmitCOGSOutput, error)
}

// Service drives the pending → in_progress → completed flow of action items.
type Service struct {
	itemRepo  adapter.ActionItemRepository
	submitter COGSSubmitter
	clock     adapter.Clock
}

// NewService creates a new Service instance.
func NewService(itemRepo adapter.ActionItemRepository, submitter COGSSubmitter, clock adapter.Clock) *Service {
	return &Service{
		itemRepo:  itemRepo,
		submitter: submitter,
		clock:     clock,
	}
}

// List returns the account's items, newest week first.
func (s *Service) List(ctx context.Context, accountID uuid.UUID) ([]*entity.ActionItem, error) {
	items, err := s.itemRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}

// EnsureCurrentWeek creates the pending COGS item of the current week if missing.
func (s *Service) EnsureCurrentWeek(ctx context.Context, accountID uuid.UUID) (*entity.ActionItem, bool, error) {
	y, m, d := entity.WeekStart(s.clock.Now()).Date()
	weekStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	existing, err := s.itemRepo.FindByAccountAndWeek(ctx, accountID, entity.ActionItemTypeCOGSEntry, weekStart)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find action item: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	item := entity.NewCOGSActionItem(accountID, weekStart)
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, false, fmt.Errorf("failed to create action item: %w", err)
	}
	return item, true, nil
}

// Start moves a pending item to in_progress.
func (s *Service) Start(ctx context.Context, accountID, itemID uuid.UUID) (*entity.ActionItem, error) {
	item, err := s.find(ctx, accountID, itemID)
	if err != nil {
		return nil, err
	}

	if !item.CanStart() {
		return nil, invalidTransition(item.Status, entity.ActionItemStatusInProgress)
	}

	item.MarkInProgress()
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}
	return item, nil
}

// Complete submits the week's COGS amount and marks the item completed.
// When the submission fails the item stays in_progress with the error recorded.
func (s *Service) Complete(ctx context.Context, accountID, itemID uuid.UUID, amount float64) (*entity.ActionItem, error) {
	item, err := s.find(ctx, accountID, itemID)
	if err != nil {
		return nil, err
	}

	if !item.CanComplete() {
		return nil, invalidTransition(item.Status, entity.ActionItemStatusCompleted)
	}

	weekEnd := item.WeekEndDate
	_, submitErr := s.submitter.Execute(ctx, cogs.SubmitCOGSInput{
		AccountID:     accountID,
		WeekStartDate: item.WeekStartDate,
		WeekEndDate:   &weekEnd,
		Amount:        amount,
	})
	if submitErr != nil {
		item.MarkFailed(submitErr)
		if err := s.itemRepo.Update(ctx, item); err != nil {
			slog.Error("Failed to record action item failure",
				"actionItemID", item.ID.String(),
				"error", err.Error(),
			)
		}

		// Validation errors reach the caller unchanged.
		var cogsErr *domainerror.COGSError
		if errors.As(submitErr, &cogsErr) {
			return nil, submitErr
		}
		return nil, domainerror.NewActionItemError(
			domainerror.ErrCodeActionItemSubmissionFailed,
			"failed to submit cogs entry, please retry",
			submitErr,
		)
	}

	item.MarkCompleted()
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}
	return item, nil
}

// CompleteFromEntry completes an open item whose week already has a COGS entry.
// Used by the background refresher; no amount is submitted. Unlike Complete it
// accepts pending items, moving them straight to completed. Completed items are
// left untouched.
func (s *Service) CompleteFromEntry(ctx context.Context, item *entity.ActionItem) error {
	if !item.IsOpen() {
		return nil
	}
	item.MarkCompleted()
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("failed to update action item: %w", err)
	}
	return nil
}

func (s *Service) find(ctx context.Context, accountID, itemID uuid.UUID) (*entity.ActionItem, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID, accountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrActionItemNotFound) {
			return nil, domainerror.NewActionItemError(
				domainerror.ErrCodeActionItemNotFound,
				"action item not found",
				domainerror.ErrActionItemNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find action item: %w", err)
	}
	return item, nil
}

func invalidTransition(from, to entity.ActionItemStatus) error {
	return domainerror.NewActionItemError(
		domainerror.ErrCodeInvalidActionItemTransition,
		fmt.Sprintf("cannot move action item from %s to %s", from, to),
		domainerror.ErrInvalidActionItemTransition,
	)
}
