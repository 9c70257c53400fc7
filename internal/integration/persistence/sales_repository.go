// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	"github.com/menu-pricing/backend/internal/integration/persistence/model"
)

// salesBatchSize bounds the rows of a single insert statement.
const salesBatchSize = 500

// salesRepository implements the adapter.SalesRepository interface.
type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository creates a new sales repository instance.
func NewSalesRepository(db *gorm.DB) adapter.SalesRepository {
	return &salesRepository{
		db: db,
	}
}

// UpsertBatch stores records keyed by account and external line ID.
// Re-imported lines overwrite the previous values.
func (r *salesRepository) UpsertBatch(ctx context.Context, records []*entity.SalesRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	recordModels := make([]*model.SalesRecordModel, len(records))
	for i, record := range records {
		recordModels[i] = model.SalesRecordFromEntity(record)
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}, {Name: "external_line_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"order_id", "menu_item_id", "item_name", "category", "quantity", "revenue", "cost", "sold_at",
			}),
		}).
		CreateInBatches(recordModels, salesBatchSize)
	if result.Error != nil {
		return 0, result.Error
	}
	return len(recordModels), nil
}

// FindByPeriod retrieves the records sold within [start, end), ordered by sale time.
func (r *salesRepository) FindByPeriod(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]*entity.SalesRecord, error) {
	var recordModels []model.SalesRecordModel
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND sold_at >= ? AND sold_at < ?", accountID, start.UTC(), end.UTC()).
		Order("sold_at ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.SalesRecord, len(recordModels))
	for i := range recordModels {
		records[i] = recordModels[i].ToEntity()
	}
	return records, nil
}
