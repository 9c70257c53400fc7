// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/integration/persistence/model"
)

// competitorItemRepository implements the adapter.CompetitorItemRepository interface.
type competitorItemRepository struct {
	db *gorm.DB
}

// NewCompetitorItemRepository creates a new competitor item repository instance.
func NewCompetitorItemRepository(db *gorm.DB) adapter.CompetitorItemRepository {
	return &competitorItemRepository{
		db: db,
	}
}

// Create creates a new competitor item in the database.
func (r *competitorItemRepository) Create(ctx context.Context, item *entity.CompetitorItem) error {
	return r.db.WithContext(ctx).Create(model.CompetitorItemFromEntity(item)).Error
}

// FindByAccount retrieves all competitor items of an account.
func (r *competitorItemRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.CompetitorItem, error) {
	var itemModels []model.CompetitorItemModel
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("competitor_name ASC, item_name ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.CompetitorItem, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToEntity()
	}
	return items, nil
}

// Delete removes a competitor item from the database.
func (r *competitorItemRepository) Delete(ctx context.Context, id, accountID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CompetitorItemModel{}, "id = ? AND account_id = ?", id, accountID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCompetitorItemNotFound
	}
	return nil
}
