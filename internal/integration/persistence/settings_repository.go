// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	"github.com/menu-pricing/backend/internal/integration/persistence/model"
)

// notificationSettingsRepository implements the adapter.NotificationSettingsRepository interface.
type notificationSettingsRepository struct {
	db *gorm.DB
}

// NewNotificationSettingsRepository creates a new notification settings repository instance.
func NewNotificationSettingsRepository(db *gorm.DB) adapter.NotificationSettingsRepository {
	return &notificationSettingsRepository{
		db: db,
	}
}

// FindByAccount retrieves the account's settings, or nil when none exist.
func (r *notificationSettingsRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) (*entity.NotificationSettings, error) {
	var settingsModel model.NotificationSettingsModel
	result := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// FindAll retrieves the settings of every account.
func (r *notificationSettingsRepository) FindAll(ctx context.Context) ([]*entity.NotificationSettings, error) {
	var settingsModels []model.NotificationSettingsModel
	if err := r.db.WithContext(ctx).Order("account_id ASC").Find(&settingsModels).Error; err != nil {
		return nil, err
	}

	settings := make([]*entity.NotificationSettings, len(settingsModels))
	for i := range settingsModels {
		settings[i] = settingsModels[i].ToEntity()
	}
	return settings, nil
}

// Upsert creates or replaces the account's settings.
func (r *notificationSettingsRepository) Upsert(ctx context.Context, settings *entity.NotificationSettings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "weekly_cogs_reminder", "updated_at"}),
		}).
		Create(model.NotificationSettingsFromEntity(settings)).Error
}
