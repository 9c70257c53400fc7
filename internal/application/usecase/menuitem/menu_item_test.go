package menuitem

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

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

func (r *memMenuItemRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.MenuItem, error) {
	out := make([]*entity.MenuItem, 0)
	for _, item := range r.items {
		if item.AccountID == accountID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *memMenuItemRepo) Update(_ context.Context, item *entity.MenuItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *memMenuItemRepo) Delete(_ context.Context, id, _ uuid.UUID) error {
	delete(r.items, id)
	return nil
}

type memRecipeRepo struct {
	recipes []*entity.Recipe
}

func (r *memRecipeRepo) Create(_ context.Context, recipe *entity.Recipe) error {
	r.recipes = append(r.recipes, recipe)
	return nil
}

func (r *memRecipeRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*entity.Recipe, error) {
	return nil, domainerror.ErrRecipeNotFound
}

func (r *memRecipeRepo) FindByAccount(context.Context, uuid.UUID) ([]*entity.Recipe, error) {
	return r.recipes, nil
}

func (r *memRecipeRepo) Update(context.Context, *entity.Recipe) error { return nil }

func (r *memRecipeRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (r *memRecipeRepo) CountByIngredient(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (r *memRecipeRepo) ClearMenuItem(_ context.Context, accountID, menuItemID uuid.UUID) error {
	for _, recipe := range r.recipes {
		if recipe.AccountID == accountID && recipe.MenuItemID != nil && *recipe.MenuItemID == menuItemID {
			recipe.MenuItemID = nil
		}
	}
	return nil
}

func TestService_CRUD(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	items := &memMenuItemRepo{items: map[uuid.UUID]*entity.MenuItem{}}
	recipes := &memRecipeRepo{}
	svc := NewService(items, recipes)

	item, err := svc.Create(ctx, CreateInput{AccountID: accountID, Name: "  Burger ", Category: "Mains", Price: 12})
	require.NoError(t, err)
	assert.Equal(t, "Burger", item.Name)
	assert.True(t, item.Active)

	price := 13.5
	active := false
	updated, err := svc.Update(ctx, UpdateInput{AccountID: accountID, MenuItemID: item.ID, Price: &price, Active: &active})
	require.NoError(t, err)
	assert.Equal(t, 13.5, updated.Price)
	assert.False(t, updated.Active)
	assert.Equal(t, "Burger", updated.Name)

	list, err := svc.List(ctx, accountID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	menuItemID := item.ID
	recipes.recipes = append(recipes.recipes, &entity.Recipe{ID: uuid.New(), AccountID: accountID, MenuItemID: &menuItemID})

	require.NoError(t, svc.Delete(ctx, accountID, item.ID))
	assert.Nil(t, recipes.recipes[0].MenuItemID)

	_, err = svc.Get(ctx, accountID, item.ID)
	var menuErr *domainerror.MenuItemError
	require.ErrorAs(t, err, &menuErr)
	assert.Equal(t, domainerror.ErrCodeMenuItemNotFound, menuErr.Code)
}

func TestService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memMenuItemRepo{items: map[uuid.UUID]*entity.MenuItem{}}, &memRecipeRepo{})

	_, err := svc.Create(ctx, CreateInput{AccountID: uuid.New(), Name: " ", Price: 1})
	assert.ErrorIs(t, err, domainerror.ErrInvalidMenuItemName)

	_, err = svc.Create(ctx, CreateInput{AccountID: uuid.New(), Name: "Soup", Price: -1})
	assert.ErrorIs(t, err, domainerror.ErrInvalidMenuItemPrice)
}

func TestService_OtherAccountCannotUpdate(t *testing.T) {
	ctx := context.Background()
	items := &memMenuItemRepo{items: map[uuid.UUID]*entity.MenuItem{}}
	svc := NewService(items, &memRecipeRepo{})

	item, err := svc.Create(ctx, CreateInput{AccountID: uuid.New(), Name: "Soup", Price: 6})
	require.NoError(t, err)

	name := "Stolen"
	_, err = svc.Update(ctx, UpdateInput{AccountID: uuid.New(), MenuItemID: item.ID, Name: &name})
	assert.ErrorIs(t, err, domainerror.ErrMenuItemNotFound)
	assert.Equal(t, "Soup", items.items[item.ID].Name)
}
