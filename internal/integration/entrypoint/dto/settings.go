// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/menu-pricing/backend/internal/domain/entity"
)

// UpdateNotificationSettingsRequest represents the request body for notification settings.
type UpdateNotificationSettingsRequest struct {
	Email              string `json:"email"`
	WeeklyCOGSReminder bool   `json:"weekly_cogs_reminder"`
}

// NotificationSettingsResponse represents the account's notification settings.
type NotificationSettingsResponse struct {
	Email              string `json:"email"`
	WeeklyCOGSReminder bool   `json:"weekly_cogs_reminder"`
}

// ToNotificationSettingsResponse converts the settings entity.
func ToNotificationSettingsResponse(s *entity.NotificationSettings) NotificationSettingsResponse {
	return NotificationSettingsResponse{
		Email:              s.Email,
		WeeklyCOGSReminder: s.WeeklyCOGSReminder,
	}
}
