package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCOGSRepository_UpsertReplacesWeek(t *testing.T) {
	ctx := context.Background()
	repo := NewCOGSRepository(newTestDB(t))
	accountID := uuid.New()

	first := entity.NewCOGSEntry(accountID, date(2024, 1, 1), date(2024, 1, 7), 700)
	require.NoError(t, repo.Upsert(ctx, first))

	second := entity.NewCOGSEntry(accountID, date(2024, 1, 1), date(2024, 1, 7), 840.5)
	require.NoError(t, repo.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	entries, err := repo.FindByRange(ctx, accountID, date(2024, 1, 1), date(2024, 1, 31))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 840.5, entries[0].Amount)
	assert.Equal(t, date(2024, 1, 7), entries[0].WeekEndDate)
}

func TestCOGSRepository_RangeOverlapAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewCOGSRepository(newTestDB(t))
	accountID := uuid.New()

	for _, start := range []time.Time{date(2024, 1, 1), date(2024, 1, 8), date(2024, 1, 15)} {
		require.NoError(t, repo.Upsert(ctx, entity.NewCOGSEntry(accountID, start, start.AddDate(0, 0, 6), 100)))
	}
	require.NoError(t, repo.Upsert(ctx, entity.NewCOGSEntry(uuid.New(), date(2024, 1, 8), date(2024, 1, 14), 50)))

	// A local-time query bound still matches the UTC date columns.
	loc := time.FixedZone("UTC-5", -5*3600)
	entries, err := repo.FindByRange(ctx, accountID, time.Date(2024, 1, 10, 0, 0, 0, 0, loc), time.Date(2024, 1, 15, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, date(2024, 1, 8), entries[0].WeekStartDate)
	assert.Equal(t, date(2024, 1, 15), entries[1].WeekStartDate)

	week, err := repo.FindByWeekStart(ctx, accountID, date(2024, 1, 8))
	require.NoError(t, err)
	require.NotNil(t, week)

	missing, err := repo.FindByWeekStart(ctx, accountID, date(2024, 2, 5))
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := repo.DeleteByAccount(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestSalesRepository_UpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewSalesRepository(newTestDB(t))
	accountID := uuid.New()
	soldAt := time.Date(2024, 3, 4, 12, 30, 0, 0, time.UTC)
	cost := 4.25

	records := []*entity.SalesRecord{
		{AccountID: accountID, ExternalLineID: "l1", OrderID: "o1", ItemName: "Burger", Quantity: 1, Revenue: 12, Cost: &cost, SoldAt: soldAt},
		{AccountID: accountID, ExternalLineID: "l2", OrderID: "o1", ItemName: "Fries", Quantity: 1, Revenue: 4, SoldAt: soldAt},
	}
	count, err := repo.UpsertBatch(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	reimport := []*entity.SalesRecord{
		{AccountID: accountID, ExternalLineID: "l1", OrderID: "o1", ItemName: "Burger", Quantity: 2, Revenue: 24, SoldAt: soldAt},
	}
	_, err = repo.UpsertBatch(ctx, reimport)
	require.NoError(t, err)

	found, err := repo.FindByPeriod(ctx, accountID, date(2024, 3, 4), date(2024, 3, 5))
	require.NoError(t, err)
	require.Len(t, found, 2)

	var burger *entity.SalesRecord
	for _, record := range found {
		if record.ExternalLineID == "l1" {
			burger = record
		}
	}
	require.NotNil(t, burger)
	assert.Equal(t, 24.0, burger.Revenue)
	assert.Equal(t, 2, burger.Quantity)

	outside, err := repo.FindByPeriod(ctx, accountID, date(2024, 3, 5), date(2024, 3, 6))
	require.NoError(t, err)
	assert.Empty(t, outside)
}

func TestRecipeRepository_LinesAndReferences(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	recipes := NewRecipeRepository(db)
	ingredients := NewIngredientRepository(db)
	accountID := uuid.New()

	flour := entity.NewIngredient(accountID, "Flour", 1000, "g", 10)
	cheese := entity.NewIngredient(accountID, "Cheese", 2, "kg", 5)
	require.NoError(t, ingredients.Create(ctx, flour))
	require.NoError(t, ingredients.Create(ctx, cheese))

	menuItemID := uuid.New()
	recipe := entity.NewRecipe(accountID, "Pizza", &menuItemID, []entity.RecipeIngredient{
		{IngredientID: flour.ID, Quantity: 250, Unit: "g"},
		{IngredientID: cheese.ID, Quantity: 500, Unit: "g"},
	})
	require.NoError(t, recipes.Create(ctx, recipe))

	found, err := recipes.FindByID(ctx, recipe.ID, accountID)
	require.NoError(t, err)
	require.Len(t, found.Ingredients, 2)
	assert.Equal(t, flour.ID, found.Ingredients[0].IngredientID)

	count, err := recipes.CountByIngredient(ctx, cheese.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	recipe.Ingredients = recipe.Ingredients[:1]
	require.NoError(t, recipes.Update(ctx, recipe))

	count, err = recipes.CountByIngredient(ctx, cheese.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, recipes.ClearMenuItem(ctx, accountID, menuItemID))
	found, err = recipes.FindByID(ctx, recipe.ID, accountID)
	require.NoError(t, err)
	assert.Nil(t, found.MenuItemID)

	_, err = recipes.FindByID(ctx, recipe.ID, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrRecipeNotFound)

	byIDs, err := ingredients.FindByIDs(ctx, accountID, []uuid.UUID{flour.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)

	require.NoError(t, recipes.Delete(ctx, recipe.ID, accountID))
	assert.ErrorIs(t, recipes.Delete(ctx, recipe.ID, accountID), domainerror.ErrRecipeNotFound)
}

func TestActionItemRepository_WeekLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewActionItemRepository(newTestDB(t))
	accountID := uuid.New()

	older := entity.NewCOGSActionItem(accountID, date(2024, 1, 1))
	newer := entity.NewCOGSActionItem(accountID, date(2024, 1, 8))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	items, err := repo.FindByAccount(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer.ID, items[0].ID)

	found, err := repo.FindByAccountAndWeek(ctx, accountID, entity.ActionItemTypeCOGSEntry, date(2024, 1, 8))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, newer.ID, found.ID)

	older.MarkInProgress()
	older.MarkCompleted()
	require.NoError(t, repo.Update(ctx, older))

	open, err := repo.FindOpenByType(ctx, entity.ActionItemTypeCOGSEntry)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, newer.ID, open[0].ID)
}

func TestNotificationSettingsRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationSettingsRepository(newTestDB(t))
	accountID := uuid.New()

	missing, err := repo.FindByAccount(ctx, accountID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Upsert(ctx, &entity.NotificationSettings{AccountID: accountID, Email: "a@example.com", WeeklyCOGSReminder: true, UpdatedAt: time.Now()}))
	require.NoError(t, repo.Upsert(ctx, &entity.NotificationSettings{AccountID: accountID, Email: "b@example.com", UpdatedAt: time.Now()}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "b@example.com", all[0].Email)
	assert.False(t, all[0].WeeklyCOGSReminder)
}

func TestCompetitorItemRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewCompetitorItemRepository(newTestDB(t))
	accountID := uuid.New()

	item := entity.NewCompetitorItem(accountID, "Joe's", "Burger", "Mains", 11.99, time.Now())
	require.NoError(t, repo.Create(ctx, item))

	assert.ErrorIs(t, repo.Delete(ctx, item.ID, uuid.New()), domainerror.ErrCompetitorItemNotFound)
	require.NoError(t, repo.Delete(ctx, item.ID, accountID))

	items, err := repo.FindByAccount(ctx, accountID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
