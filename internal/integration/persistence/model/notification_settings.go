// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// NotificationSettingsModel represents the notification_settings table in the database.
type NotificationSettingsModel struct {
	AccountID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email              string    `gorm:"type:varchar(255)"`
	WeeklyCOGSReminder bool      `gorm:"column:weekly_cogs_reminder;not null;default:false"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName returns the table name for the NotificationSettingsModel.
func (NotificationSettingsModel) TableName() string {
	return "notification_settings"
}

// ToEntity converts a NotificationSettingsModel to a domain NotificationSettings entity.
func (m *NotificationSettingsModel) ToEntity() *entity.NotificationSettings {
	return &entity.NotificationSettings{
		AccountID:          m.AccountID,
		Email:              m.Email,
		WeeklyCOGSReminder: m.WeeklyCOGSReminder,
		UpdatedAt:          m.UpdatedAt,
	}
}

// NotificationSettingsFromEntity creates a NotificationSettingsModel from a domain entity.
func NotificationSettingsFromEntity(settings *entity.NotificationSettings) *NotificationSettingsModel {
	return &NotificationSettingsModel{
		AccountID:          settings.AccountID,
		Email:              settings.Email,
		WeeklyCOGSReminder: settings.WeeklyCOGSReminder,
		UpdatedAt:          settings.UpdatedAt,
	}
}
