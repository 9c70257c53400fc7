// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// COGSEntryModel represents the cogs_entries table in the database.
// One row per (account, week start).
type COGSEntryModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cogs_account_week"`
	WeekStartDate time.Time       `gorm:"type:date;not null;uniqueIndex:idx_cogs_account_week"`
	WeekEndDate   time.Time       `gorm:"type:date;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the COGSEntryModel.
func (COGSEntryModel) TableName() string {
	return "cogs_entries"
}

// ToEntity converts a COGSEntryModel to a domain COGSEntry entity.
func (m *COGSEntryModel) ToEntity() *entity.COGSEntry {
	return &entity.COGSEntry{
		ID:            m.ID,
		AccountID:     m.AccountID,
		WeekStartDate: dateOnly(m.WeekStartDate),
		WeekEndDate:   dateOnly(m.WeekEndDate),
		Amount:        m.Amount.InexactFloat64(),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// COGSEntryFromEntity creates a COGSEntryModel from a domain COGSEntry entity.
func COGSEntryFromEntity(entry *entity.COGSEntry) *COGSEntryModel {
	return &COGSEntryModel{
		ID:            entry.ID,
		AccountID:     entry.AccountID,
		WeekStartDate: dateOnly(entry.WeekStartDate),
		WeekEndDate:   dateOnly(entry.WeekEndDate),
		Amount:        money(entry.Amount),
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}
}
