// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/integration/persistence/model"
)

// actionItemRepository implements the adapter.ActionItemRepository interface.
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository instance.
func NewActionItemRepository(db *gorm.DB) adapter.ActionItemRepository {
	return &actionItemRepository{
		db: db,
	}
}

// Create creates a new action item in the database.
func (r *actionItemRepository) Create(ctx context.Context, item *entity.ActionItem) error {
	return r.db.WithContext(ctx).Create(model.ActionItemFromEntity(item)).Error
}

// FindByID retrieves an action item by its ID scoped to the account.
func (r *actionItemRepository) FindByID(ctx context.Context, id, accountID uuid.UUID) (*entity.ActionItem, error) {
	var itemModel model.ActionItemModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrActionItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindByAccount retrieves the account's items, newest week first.
func (r *actionItemRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.ActionItem, error) {
	var itemModels []model.ActionItemModel
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("week_start_date DESC, created_at DESC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toActionItems(itemModels), nil
}

// FindByAccountAndWeek retrieves the item of the given type and week, or nil when none exists.
func (r *actionItemRepository) FindByAccountAndWeek(
	ctx context.Context,
	accountID uuid.UUID,
	itemType entity.ActionItemType,
	weekStart time.Time,
) (*entity.ActionItem, error) {
	var itemModel model.ActionItemModel
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND type = ? AND week_start_date = ?", accountID, string(itemType), toDate(weekStart)).
		First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindOpenByType retrieves every non-completed item of the given type across accounts.
func (r *actionItemRepository) FindOpenByType(ctx context.Context, itemType entity.ActionItemType) ([]*entity.ActionItem, error) {
	var itemModels []model.ActionItemModel
	result := r.db.WithContext(ctx).
		Where("type = ? AND status <> ?", string(itemType), string(entity.ActionItemStatusCompleted)).
		Order("week_start_date ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toActionItems(itemModels), nil
}

// Update updates an existing action item in the database.
func (r *actionItemRepository) Update(ctx context.Context, item *entity.ActionItem) error {
	return r.db.WithContext(ctx).Save(model.ActionItemFromEntity(item)).Error
}

func toActionItems(models []model.ActionItemModel) []*entity.ActionItem {
	items := make([]*entity.ActionItem, len(models))
	for i := range models {
		items[i] = models[i].ToEntity()
	}
	return items
}
