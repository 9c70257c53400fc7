// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	"github.com/menu-pricing/backend/internal/integration/persistence/model"
)

// cogsRepository implements the adapter.COGSRepository interface.
type cogsRepository struct {
	db *gorm.DB
}

// NewCOGSRepository creates a new COGS repository instance.
func NewCOGSRepository(db *gorm.DB) adapter.COGSRepository {
	return &cogsRepository{
		db: db,
	}
}

// Upsert stores the entry, replacing the amount of an existing entry for the
// same account and week start. The entry's ID is synced with the stored row.
func (r *cogsRepository) Upsert(ctx context.Context, entry *entity.COGSEntry) error {
	entryModel := model.COGSEntryFromEntity(entry)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "week_start_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"week_end_date", "amount", "updated_at"}),
		}).Create(entryModel)
		if result.Error != nil {
			return result.Error
		}

		var stored model.COGSEntryModel
		if err := tx.Where("account_id = ? AND week_start_date = ?", entryModel.AccountID, entryModel.WeekStartDate).
			First(&stored).Error; err != nil {
			return err
		}
		entry.ID = stored.ID
		entry.CreatedAt = stored.CreatedAt
		return nil
	})
}

// FindByRange retrieves the entries whose week overlaps [start, end], ordered by week start.
func (r *cogsRepository) FindByRange(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]*entity.COGSEntry, error) {
	var entryModels []model.COGSEntryModel
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND week_start_date <= ? AND week_end_date >= ?", accountID, toDate(end), toDate(start)).
		Order("week_start_date ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.COGSEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToEntity()
	}
	return entries, nil
}

// FindByWeekStart retrieves the entry for the given week, or nil when none exists.
func (r *cogsRepository) FindByWeekStart(ctx context.Context, accountID uuid.UUID, weekStart time.Time) (*entity.COGSEntry, error) {
	var entryModel model.COGSEntryModel
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND week_start_date = ?", accountID, toDate(weekStart)).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// DeleteByAccount removes every entry of the account and returns the deleted count.
func (r *cogsRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.COGSEntryModel{}, "account_id = ?", accountID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// toDate pins a calendar date to midnight UTC, matching how date columns are written.
func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
