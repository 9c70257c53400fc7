package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/domain/valueobject"
)

func TestGetSalesDataUseCase(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	now := time.Date(2024, 1, 17, 15, 0, 0, 0, time.UTC)

	pizza := uuid.New()
	records := []*entity.SalesRecord{
		sale(accountID, "o1", time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), 20),
		sale(accountID, "o1", time.Date(2024, 1, 10, 12, 1, 0, 0, time.UTC), 10),
		sale(accountID, "o2", time.Date(2024, 1, 11, 18, 0, 0, 0, time.UTC), 30),
		sale(uuid.New(), "o3", time.Date(2024, 1, 11, 18, 0, 0, 0, time.UTC), 999),
	}
	records[0].MenuItemID = &pizza
	records[2].MenuItemID = &pizza
	records[1].ItemName = "Tiramisu"
	records[1].Category = "Dessert"

	uc := NewGetSalesDataUseCase(
		&memSalesRepo{records: records},
		&memCOGSRepo{},
		fixedClock{now: now},
		nil,
		0,
	)

	t.Run("explicit range", func(t *testing.T) {
		start := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

		out, err := uc.Execute(ctx, GetSalesDataInput{AccountID: accountID, StartDate: &start, EndDate: &end})

		require.NoError(t, err)
		assert.Equal(t, 60.0, out.TotalSales)
		assert.Equal(t, 2, out.TotalOrders)
		assert.Equal(t, 30.0, out.AverageOrderValue)

		require.Len(t, out.SalesByDay, 4)
		assert.Equal(t, "2024-01-09", out.SalesByDay[0].Date)
		assert.Zero(t, out.SalesByDay[0].Revenue)
		assert.Nil(t, out.SalesByDay[0].ProfitMargin)
		assert.Equal(t, 30.0, out.SalesByDay[1].Revenue)
		assert.Equal(t, 1, out.SalesByDay[1].Orders)
		assert.True(t, out.SalesByDay[1].COGSEstimated)

		require.Len(t, out.TopSellingItems, 2)
		assert.Equal(t, 50.0, out.TopSellingItems[0].Revenue)
		assert.Equal(t, 2, out.TopSellingItems[0].Quantity)

		require.Len(t, out.SalesByCategory, 2)
		assert.Equal(t, "Pizza", out.SalesByCategory[0].Category)
	})

	t.Run("time frame window", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetSalesDataInput{AccountID: accountID, TimeFrame: valueobject.TimeFrameWeek})

		require.NoError(t, err)
		assert.Len(t, out.SalesByDay, 7)
		assert.Equal(t, 30.0, out.TotalSales)
	})

	t.Run("no orders yields zero average", func(t *testing.T) {
		out, err := uc.Execute(ctx, GetSalesDataInput{AccountID: uuid.New(), TimeFrame: valueobject.TimeFrameMonth})

		require.NoError(t, err)
		assert.Zero(t, out.AverageOrderValue)
		assert.Len(t, out.SalesByDay, 30)
		assert.Empty(t, out.TopSellingItems)
	})

	t.Run("validation", func(t *testing.T) {
		start := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
		before := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		far := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(ctx, GetSalesDataInput{AccountID: accountID})
		assert.ErrorIs(t, err, domainerror.ErrMissingTimeFrame)

		_, err = uc.Execute(ctx, GetSalesDataInput{AccountID: accountID, StartDate: &start})
		assert.ErrorIs(t, err, domainerror.ErrMissingEndDate)

		_, err = uc.Execute(ctx, GetSalesDataInput{AccountID: accountID, StartDate: &start, EndDate: &before})
		assert.ErrorIs(t, err, domainerror.ErrInvalidDateRange)

		_, err = uc.Execute(ctx, GetSalesDataInput{AccountID: accountID, StartDate: &start, EndDate: &far})
		assert.ErrorIs(t, err, domainerror.ErrDateRangeTooLarge)

		_, err = uc.Execute(ctx, GetSalesDataInput{AccountID: accountID, TimeFrame: "3d"})
		assert.ErrorIs(t, err, domainerror.ErrInvalidTimeFrame)
	})
}
