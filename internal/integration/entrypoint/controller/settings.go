// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menu-pricing/backend/internal/application/usecase/settings"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles account settings endpoints.
type SettingsController struct {
	notifications *settings.NotificationService
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(notifications *settings.NotificationService) *SettingsController {
	return &SettingsController{
		notifications: notifications,
	}
}

// GetNotifications handles GET /settings/notifications requests.
func (c *SettingsController) GetNotifications(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	st, err := c.notifications.Get(ctx.Request.Context(), accountID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationSettingsResponse(st))
}

// UpdateNotifications handles PUT /settings/notifications requests.
func (c *SettingsController) UpdateNotifications(ctx *gin.Context) {
	accountID, ok := requireAccount(ctx)
	if !ok {
		return
	}

	var req dto.UpdateNotificationSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err)
		return
	}

	st, err := c.notifications.Update(ctx.Request.Context(), settings.UpdateNotificationsInput{
		AccountID:          accountID,
		Email:              req.Email,
		WeeklyCOGSReminder: req.WeeklyCOGSReminder,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationSettingsResponse(st))
}
