// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// ActionItemModel represents the action_items table in the database.
type ActionItemModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AccountID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_action_account_type_week"`
	Type          string     `gorm:"type:varchar(30);not null;uniqueIndex:idx_action_account_type_week"`
	WeekStartDate time.Time  `gorm:"type:date;not null;uniqueIndex:idx_action_account_type_week"`
	WeekEndDate   time.Time  `gorm:"type:date;not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	LastError     string     `gorm:"type:text"`
	CompletedAt   *time.Time `gorm:"type:timestamp"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName returns the table name for the ActionItemModel.
func (ActionItemModel) TableName() string {
	return "action_items"
}

// ToEntity converts an ActionItemModel to a domain ActionItem entity.
func (m *ActionItemModel) ToEntity() *entity.ActionItem {
	return &entity.ActionItem{
		ID:            m.ID,
		AccountID:     m.AccountID,
		Type:          entity.ActionItemType(m.Type),
		WeekStartDate: dateOnly(m.WeekStartDate),
		WeekEndDate:   dateOnly(m.WeekEndDate),
		Status:        entity.ActionItemStatus(m.Status),
		LastError:     m.LastError,
		CompletedAt:   m.CompletedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ActionItemFromEntity creates an ActionItemModel from a domain ActionItem entity.
func ActionItemFromEntity(item *entity.ActionItem) *ActionItemModel {
	return &ActionItemModel{
		ID:            item.ID,
		AccountID:     item.AccountID,
		Type:          string(item.Type),
		WeekStartDate: dateOnly(item.WeekStartDate),
		WeekEndDate:   dateOnly(item.WeekEndDate),
		Status:        string(item.Status),
		LastError:     item.LastError,
		CompletedAt:   item.CompletedAt,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}
