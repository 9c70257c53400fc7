// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// NotificationSettingsRepository defines the interface for notification settings persistence.
type NotificationSettingsRepository interface {
	// FindByAccount retrieves the account's settings.
	// Returns nil without error when the account has not configured any.
	FindByAccount(ctx context.Context, accountID uuid.UUID) (*entity.NotificationSettings, error)

	// FindAll retrieves the settings of every account.
	FindAll(ctx context.Context) ([]*entity.NotificationSettings, error)

	// Upsert creates or replaces the account's settings.
	Upsert(ctx context.Context, settings *entity.NotificationSettings) error
}
