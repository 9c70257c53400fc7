package costing

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

type memIngredientRepo struct {
	items map[uuid.UUID]*entity.Ingredient
}

func newMemIngredientRepo(items ...*entity.Ingredient) *memIngredientRepo {
	repo := &memIngredientRepo{items: make(map[uuid.UUID]*entity.Ingredient)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *memIngredientRepo) Create(_ context.Context, ingredient *entity.Ingredient) error {
	r.items[ingredient.ID] = ingredient
	return nil
}

func (r *memIngredientRepo) FindByID(_ context.Context, id, accountID uuid.UUID) (*entity.Ingredient, error) {
	item, ok := r.items[id]
	if !ok || item.AccountID != accountID {
		return nil, domainerror.ErrIngredientNotFound
	}
	return item, nil
}

func (r *memIngredientRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.Ingredient, error) {
	out := make([]*entity.Ingredient, 0)
	for _, item := range r.items {
		if item.AccountID == accountID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memIngredientRepo) FindByIDs(_ context.Context, accountID uuid.UUID, ids []uuid.UUID) ([]*entity.Ingredient, error) {
	out := make([]*entity.Ingredient, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.items[id]; ok && item.AccountID == accountID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memIngredientRepo) Update(_ context.Context, ingredient *entity.Ingredient) error {
	r.items[ingredient.ID] = ingredient
	return nil
}

func (r *memIngredientRepo) Delete(_ context.Context, id, _ uuid.UUID) error {
	delete(r.items, id)
	return nil
}

type memRecipeRepo struct {
	items map[uuid.UUID]*entity.Recipe
}

func newMemRecipeRepo() *memRecipeRepo {
	return &memRecipeRepo{items: make(map[uuid.UUID]*entity.Recipe)}
}

func (r *memRecipeRepo) Create(_ context.Context, recipe *entity.Recipe) error {
	r.items[recipe.ID] = recipe
	return nil
}

func (r *memRecipeRepo) FindByID(_ context.Context, id, accountID uuid.UUID) (*entity.Recipe, error) {
	item, ok := r.items[id]
	if !ok || item.AccountID != accountID {
		return nil, domainerror.ErrRecipeNotFound
	}
	return item, nil
}

func (r *memRecipeRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.Recipe, error) {
	out := make([]*entity.Recipe, 0)
	for _, item := range r.items {
		if item.AccountID == accountID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memRecipeRepo) Update(_ context.Context, recipe *entity.Recipe) error {
	r.items[recipe.ID] = recipe
	return nil
}

func (r *memRecipeRepo) Delete(_ context.Context, id, _ uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *memRecipeRepo) CountByIngredient(_ context.Context, ingredientID uuid.UUID) (int64, error) {
	var count int64
	for _, recipe := range r.items {
		for _, line := range recipe.Ingredients {
			if line.IngredientID == ingredientID {
				count++
				break
			}
		}
	}
	return count, nil
}

func (r *memRecipeRepo) ClearMenuItem(_ context.Context, accountID, menuItemID uuid.UUID) error {
	for _, recipe := range r.items {
		if recipe.AccountID == accountID && recipe.MenuItemID != nil && *recipe.MenuItemID == menuItemID {
			recipe.MenuItemID = nil
		}
	}
	return nil
}

type memMenuItemRepo struct {
	items map[uuid.UUID]*entity.MenuItem
}

func (r *memMenuItemRepo) Create(_ context.Context, item *entity.MenuItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *memMenuItemRepo) FindByID(_ context.Context, id, accountID uuid.UUID) (*entity.MenuItem, error) {
	item, ok := r.items[id]
	if !ok || item.AccountID != accountID {
		return nil, domainerror.ErrMenuItemNotFound
	}
	return item, nil
}

func (r *memMenuItemRepo) FindByAccount(_ context.Context, _ uuid.UUID) ([]*entity.MenuItem, error) {
	return nil, nil
}

func (r *memMenuItemRepo) Update(_ context.Context, item *entity.MenuItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *memMenuItemRepo) Delete(_ context.Context, id, _ uuid.UUID) error {
	delete(r.items, id)
	return nil
}
