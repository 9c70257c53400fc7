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

// recipeRepository implements the adapter.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository instance.
func NewRecipeRepository(db *gorm.DB) adapter.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

func preloadLines(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create creates a new recipe with its ingredient lines.
func (r *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeModel, lines := model.RecipeFromEntity(recipe)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lines").Create(recipeModel).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}

// FindByID retrieves a recipe with its lines scoped to the account.
func (r *recipeRepository) FindByID(ctx context.Context, id, accountID uuid.UUID) (*entity.Recipe, error) {
	var recipeModel model.RecipeModel
	result := r.db.WithContext(ctx).
		Preload("Lines", preloadLines).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&recipeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecipeNotFound
		}
		return nil, result.Error
	}
	return recipeModel.ToEntity(), nil
}

// FindByAccount retrieves all recipes of an account, newest first.
func (r *recipeRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Recipe, error) {
	var recipeModels []model.RecipeModel
	result := r.db.WithContext(ctx).
		Preload("Lines", preloadLines).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&recipeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]*entity.Recipe, len(recipeModels))
	for i := range recipeModels {
		recipes[i] = recipeModels[i].ToEntity()
	}
	return recipes, nil
}

// Update updates the recipe and replaces its ingredient lines.
func (r *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	recipeModel, lines := model.RecipeFromEntity(recipe)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.RecipeModel{}).
			Where("id = ? AND account_id = ?", recipe.ID, recipe.AccountID).
			Updates(map[string]interface{}{
				"name":         recipeModel.Name,
				"menu_item_id": recipeModel.MenuItemID,
				"updated_at":   recipeModel.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrRecipeNotFound
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeIngredientModel{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}

// Delete removes a recipe and its lines.
func (r *recipeRepository) Delete(ctx context.Context, id, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.RecipeModel{}, "id = ? AND account_id = ?", id, accountID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrRecipeNotFound
		}
		return tx.Where("recipe_id = ?", id).Delete(&model.RecipeIngredientModel{}).Error
	})
}

// CountByIngredient counts the recipes referencing an ingredient.
func (r *recipeRepository) CountByIngredient(ctx context.Context, ingredientID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RecipeIngredientModel{}).
		Where("ingredient_id = ?", ingredientID).
		Distinct("recipe_id").
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ClearMenuItem unlinks every recipe of the account from the menu item.
func (r *recipeRepository) ClearMenuItem(ctx context.Context, accountID, menuItemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("account_id = ? AND menu_item_id = ?", accountID, menuItemID).
		Update("menu_item_id", nil).Error
}
