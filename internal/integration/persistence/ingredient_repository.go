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

// ingredientRepository implements the adapter.IngredientRepository interface.
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository instance.
func NewIngredientRepository(db *gorm.DB) adapter.IngredientRepository {
	return &ingredientRepository{
		db: db,
	}
}

// Create creates a new ingredient in the database.
func (r *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	return r.db.WithContext(ctx).Create(model.IngredientFromEntity(ingredient)).Error
}

// FindByID retrieves an ingredient by its ID scoped to the account.
func (r *ingredientRepository) FindByID(ctx context.Context, id, accountID uuid.UUID) (*entity.Ingredient, error) {
	var ingredientModel model.IngredientModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&ingredientModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIngredientNotFound
		}
		return nil, result.Error
	}
	return ingredientModel.ToEntity(), nil
}

// FindByAccount retrieves all ingredients of an account ordered by name.
func (r *ingredientRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Ingredient, error) {
	var ingredientModels []model.IngredientModel
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&ingredientModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toIngredients(ingredientModels), nil
}

// FindByIDs retrieves the account's ingredients among the given IDs.
func (r *ingredientRepository) FindByIDs(ctx context.Context, accountID uuid.UUID, ids []uuid.UUID) ([]*entity.Ingredient, error) {
	if len(ids) == 0 {
		return []*entity.Ingredient{}, nil
	}

	var ingredientModels []model.IngredientModel
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND id IN ?", accountID, ids).
		Find(&ingredientModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toIngredients(ingredientModels), nil
}

// Update updates an existing ingredient in the database.
func (r *ingredientRepository) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	return r.db.WithContext(ctx).Save(model.IngredientFromEntity(ingredient)).Error
}

// Delete removes an ingredient from the database.
func (r *ingredientRepository) Delete(ctx context.Context, id, accountID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IngredientModel{}, "id = ? AND account_id = ?", id, accountID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIngredientNotFound
	}
	return nil
}

func toIngredients(models []model.IngredientModel) []*entity.Ingredient {
	ingredients := make([]*entity.Ingredient, len(models))
	for i := range models {
		ingredients[i] = models[i].ToEntity()
	}
	return ingredients
}
