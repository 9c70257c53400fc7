// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/integration/persistence/model"
)

// menuItemRepository implements the adapter.MenuItemRepository interface.
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository instance.
func NewMenuItemRepository(db *gorm.DB) adapter.MenuItemRepository {
	return &menuItemRepository{
		db: db,
	}
}

// Create creates a new menu item in the database.
func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(model.MenuItemFromEntity(item)).Error
}

// FindByID retrieves a menu item by its ID scoped to the account.
func (r *menuItemRepository) FindByID(ctx context.Context, id, accountID uuid.UUID) (*entity.MenuItem, error) {
	var itemModel model.MenuItemModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMenuItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindByAccount retrieves all menu items of an account ordered by name.
func (r *menuItemRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.MenuItem, error) {
	var itemModels []model.MenuItemModel
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.MenuItem, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToEntity()
	}
	return items, nil
}

// Update updates an existing menu item in the database.
func (r *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Save(model.MenuItemFromEntity(item)).Error
}

// Delete removes a menu item from the database.
func (r *menuItemRepository) Delete(ctx context.Context, id, accountID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MenuItemModel{}, "id = ? AND account_id = ?", id, accountID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMenuItemNotFound
	}
	return nil
}
