// Package settings contains account settings use cases.
package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

// UpdateNotificationsInput represents the input for updating notification settings.
type UpdateNotificationsInput struct {
	AccountID          uuid.UUID
	Email              string
	WeeklyCOGSReminder bool
}

// NotificationService reads and writes the account's reminder preferences.
type NotificationService struct {
	settingsRepo adapter.NotificationSettingsRepository
	clock        adapter.Clock
	validate     *validator.Validate
}

// NewNotificationService creates a new NotificationService instance.
func NewNotificationService(settingsRepo adapter.NotificationSettingsRepository, clock adapter.Clock) *NotificationService {
	return &NotificationService{
		settingsRepo: settingsRepo,
		clock:        clock,
		validate:     validator.New(),
	}
}

// Get returns the stored settings, or disabled defaults when none exist.
func (s *NotificationService) Get(ctx context.Context, accountID uuid.UUID) (*entity.NotificationSettings, error) {
	settings, err := s.settingsRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}
	if settings == nil {
		return &entity.NotificationSettings{AccountID: accountID}, nil
	}
	return settings, nil
}

// Update replaces the account's settings. Enabling the reminder requires an e-mail.
func (s *NotificationService) Update(ctx context.Context, input UpdateNotificationsInput) (*entity.NotificationSettings, error) {
	email := strings.TrimSpace(input.Email)

	if input.WeeklyCOGSReminder && email == "" {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeMissingSettingsFields,
			"email is required to enable the weekly COGS reminder",
			domainerror.ErrInvalidNotificationEmail,
		)
	}
	if email != "" {
		if err := s.validate.Var(email, "email,max=255"); err != nil {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidNotificationEmail,
				"email is not a valid address",
				domainerror.ErrInvalidNotificationEmail,
			)
		}
	}

	settings := &entity.NotificationSettings{
		AccountID:          input.AccountID,
		Email:              email,
		WeeklyCOGSReminder: input.WeeklyCOGSReminder,
		UpdatedAt:          s.clock.Now().UTC(),
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save notification settings: %w", err)
	}
	return settings, nil
}
