// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// SalesRecordModel represents the sales_records table in the database.
type SalesRecordModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	AccountID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_sales_account_line;index:idx_sales_account_sold_at"`
	ExternalLineID string           `gorm:"type:varchar(100);not null;uniqueIndex:idx_sales_account_line"`
	OrderID        string           `gorm:"type:varchar(100);not null"`
	MenuItemID     *uuid.UUID       `gorm:"type:uuid;index"`
	ItemName       string           `gorm:"type:varchar(255);not null"`
	Category       string           `gorm:"type:varchar(100)"`
	Quantity       int              `gorm:"not null"`
	Revenue        decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Cost           *decimal.Decimal `gorm:"type:decimal(12,2)"`
	SoldAt         time.Time        `gorm:"type:timestamp;not null;index:idx_sales_account_sold_at"`
	CreatedAt      time.Time        `gorm:"not null"`
}

// TableName returns the table name for the SalesRecordModel.
func (SalesRecordModel) TableName() string {
	return "sales_records"
}

// ToEntity converts a SalesRecordModel to a domain SalesRecord entity.
func (m *SalesRecordModel) ToEntity() *entity.SalesRecord {
	var cost *float64
	if m.Cost != nil {
		value := m.Cost.InexactFloat64()
		cost = &value
	}

	return &entity.SalesRecord{
		ID:             m.ID,
		AccountID:      m.AccountID,
		ExternalLineID: m.ExternalLineID,
		OrderID:        m.OrderID,
		MenuItemID:     m.MenuItemID,
		ItemName:       m.ItemName,
		Category:       m.Category,
		Quantity:       m.Quantity,
		Revenue:        m.Revenue.InexactFloat64(),
		Cost:           cost,
		SoldAt:         m.SoldAt,
		CreatedAt:      m.CreatedAt,
	}
}

// SalesRecordFromEntity creates a SalesRecordModel from a domain SalesRecord entity.
func SalesRecordFromEntity(record *entity.SalesRecord) *SalesRecordModel {
	var cost *decimal.Decimal
	if record.Cost != nil {
		value := money(*record.Cost)
		cost = &value
	}

	id := record.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return &SalesRecordModel{
		ID:             id,
		AccountID:      record.AccountID,
		ExternalLineID: record.ExternalLineID,
		OrderID:        record.OrderID,
		MenuItemID:     record.MenuItemID,
		ItemName:       record.ItemName,
		Category:       record.Category,
		Quantity:       record.Quantity,
		Revenue:        money(record.Revenue),
		Cost:           cost,
		SoldAt:         record.SoldAt.UTC(),
		CreatedAt:      createdAt,
	}
}
