// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/application/usecase/cogs"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
	"github.com/menu-pricing/backend/internal/domain/valueobject"
)

// GetSalesChartInput represents the input for building a sales chart.
type GetSalesChartInput struct {
	AccountID    uuid.UUID
	TimeFrame    valueobject.TimeFrame
	EndYesterday bool // 7d only: end the window yesterday instead of today
}

// GetSalesChartOutput represents a gap-filled chart series.
type GetSalesChartOutput struct {
	TimeFrame        valueobject.TimeFrame   `json:"time_frame"`
	Granularity      valueobject.Granularity `json:"granularity"`
	StartDate        time.Time               `json:"start_date"`
	EndDate          time.Time               `json:"end_date"`
	Points           []entity.ChartDataPoint `json:"points"`
	EstimatedBuckets int                     `json:"estimated_buckets"`
}

// GetSalesChartUseCase builds revenue, COGS and margin series for a time frame.
type GetSalesChartUseCase struct {
	loader  *periodLoader
	cache   adapter.AggregateCache
	clock   adapter.Clock
	metrics adapter.MetricsRecorder
}

// NewGetSalesChartUseCase creates a new GetSalesChartUseCase instance.
func NewGetSalesChartUseCase(
	salesRepo adapter.SalesRepository,
	cogsRepo adapter.COGSRepository,
	cache adapter.AggregateCache,
	clock adapter.Clock,
	metrics adapter.MetricsRecorder,
	estimateRatio float64,
) *GetSalesChartUseCase {
	if metrics == nil {
		metrics = adapter.NoopMetrics{}
	}
	return &GetSalesChartUseCase{
		loader: &periodLoader{
			salesRepo:     salesRepo,
			cogsRepo:      cogsRepo,
			estimateRatio: estimateRatio,
		},
		cache:   cache,
		clock:   clock,
		metrics: metrics,
	}
}

// Execute builds the series. Its length always equals the frame's bucket count.
func (uc *GetSalesChartUseCase) Execute(ctx context.Context, input GetSalesChartInput) (*GetSalesChartOutput, error) {
	if !input.TimeFrame.IsValid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTimeFrame,
			"time_frame must be: 1d, 7d, 1m, 6m, or 1yr",
			domainerror.ErrInvalidTimeFrame,
		)
	}

	started := time.Now()
	now := uc.clock.Now()

	var (
		points []entity.ChartDataPoint
		err    error
	)
	if input.TimeFrame.IsMonthly() {
		points, err = uc.monthlyAggregation(ctx, input.AccountID, now)
		if err != nil {
			return nil, err
		}
		// 6m is a slice of the 12-month aggregation so both frames always agree.
		points = points[len(points)-input.TimeFrame.BucketCount():]
	} else {
		points, err = uc.build(ctx, input.AccountID, input.TimeFrame, now, input.EndYesterday)
		if err != nil {
			return nil, err
		}
	}

	uc.metrics.SeriesBuilt(string(input.TimeFrame), time.Since(started))

	start, end := FrameWindow(input.TimeFrame, now, input.EndYesterday)
	output := &GetSalesChartOutput{
		TimeFrame:   input.TimeFrame,
		Granularity: input.TimeFrame.Granularity(),
		StartDate:   start,
		EndDate:     end.AddDate(0, 0, -1),
		Points:      points,
	}
	for _, p := range points {
		if p.COGSEstimated {
			output.EstimatedBuckets++
		}
	}
	return output, nil
}

// monthlyAggregation returns the trailing 12-month series, memoized per
// account and window.
func (uc *GetSalesChartUseCase) monthlyAggregation(ctx context.Context, accountID uuid.UUID, now time.Time) ([]entity.ChartDataPoint, error) {
	start, end := FrameWindow(valueobject.TimeFrameYear, now, false)
	key := adapter.AggregateKey{AccountID: accountID, Start: start, End: end}

	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("Aggregate cache read failed", "key", key.String(), "error", err.Error())
		} else if ok && len(cached) == valueobject.TimeFrameYear.BucketCount() {
			return cached, nil
		}
	}

	points, err := uc.build(ctx, accountID, valueobject.TimeFrameYear, now, false)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, points); err != nil {
			slog.Warn("Aggregate cache write failed", "key", key.String(), "error", err.Error())
		}
	}
	return points, nil
}

func (uc *GetSalesChartUseCase) build(
	ctx context.Context,
	accountID uuid.UUID,
	frame valueobject.TimeFrame,
	now time.Time,
	endYesterday bool,
) ([]entity.ChartDataPoint, error) {
	start, end := FrameWindow(frame, now, endYesterday)

	data, err := uc.loader.load(ctx, accountID, start, end, now)
	if err != nil {
		return nil, err
	}

	buckets := GenerateBuckets(frame, now, endYesterday)
	granularity := frame.Granularity()
	today := entity.StartOfDay(now)

	estimatedDays := make(map[string]struct{})
	points := make([]entity.ChartDataPoint, 0, len(buckets))
	for _, bucket := range buckets {
		point := entity.ChartDataPoint{
			Label:       bucket.Label,
			BucketStart: bucket.Start,
		}

		switch granularity {
		case valueobject.GranularityHour:
			uc.fillHour(&point, bucket, data, estimatedDays)
		case valueobject.GranularityDay:
			uc.fillDay(&point, bucket.Start, data)
		case valueobject.GranularityMonth:
			uc.fillMonth(&point, bucket, today, data)
		}

		point.ProfitMargin = valueobject.ProfitMargin(point.Revenue, point.COGS)
		point.COGS = valueobject.RoundTo2(point.COGS)
		point.Revenue = valueobject.RoundTo2(point.Revenue)
		points = append(points, point)
	}

	return points, nil
}

func (uc *GetSalesChartUseCase) fillDay(point *entity.ChartDataPoint, day time.Time, data *periodData) {
	revenue, orders := data.day(day)
	cost := data.resolver.Resolve(day, revenue)
	if cost.Estimated() {
		uc.metrics.EstimatedCostDay()
	}

	point.Revenue = revenue
	point.Orders = orders
	point.COGS = cost.Amount
	point.COGSEstimated = cost.Estimated()
}

// fillMonth sums the resolved cost of every day of the month up to today.
func (uc *GetSalesChartUseCase) fillMonth(point *entity.ChartDataPoint, bucket Bucket, today time.Time, data *periodData) {
	last := bucket.End
	if tomorrow := today.AddDate(0, 0, 1); last.After(tomorrow) {
		last = tomorrow
	}

	for _, day := range daysOf(bucket.Start, last) {
		revenue, orders := data.day(day)
		cost := data.resolver.Resolve(day, revenue)
		if cost.Estimated() {
			uc.metrics.EstimatedCostDay()
			point.COGSEstimated = true
		}
		point.Revenue += revenue
		point.Orders += orders
		point.COGS += cost.Amount
	}
}

// fillHour allocates the day's cost by the hour's share of the day's revenue.
// An estimated day is counted once in estimatedDays however many hours it spans.
func (uc *GetSalesChartUseCase) fillHour(point *entity.ChartDataPoint, bucket Bucket, data *periodData, estimatedDays map[string]struct{}) {
	if row, ok := data.hourly[bucket.Key(valueobject.GranularityHour)]; ok {
		point.Revenue = row.Revenue
		point.Orders = row.Orders
	}

	day := entity.StartOfDay(bucket.Start)
	dayRevenue, _ := data.day(day)
	if dayRevenue <= 0 || point.Revenue <= 0 {
		return
	}

	cost := data.resolver.Resolve(day, dayRevenue)
	point.COGS = cost.Amount * point.Revenue / dayRevenue
	point.COGSEstimated = cost.Estimated()
	if !cost.Estimated() {
		return
	}
	key := day.Format(entity.DateLayout)
	if _, seen := estimatedDays[key]; !seen {
		estimatedDays[key] = struct{}{}
		uc.metrics.EstimatedCostDay()
	}
}

// periodData is the sales and cost input of one chart build.
type periodData struct {
	daily    map[string]*entity.DailySalesRow
	hourly   map[string]*entity.HourlySalesRow
	records  []*entity.SalesRecord
	resolver *cogs.CostResolver
}

func (d *periodData) day(day time.Time) (float64, int) {
	if row, ok := d.daily[day.Format(entity.DateLayout)]; ok {
		return row.Revenue, row.Orders
	}
	return 0, 0
}

// periodLoader fetches sales and COGS of a window concurrently.
type periodLoader struct {
	salesRepo     adapter.SalesRepository
	cogsRepo      adapter.COGSRepository
	estimateRatio float64
}

func (l *periodLoader) load(ctx context.Context, accountID uuid.UUID, start, end, now time.Time) (*periodData, error) {
	var (
		records []*entity.SalesRecord
		entries []*entity.COGSEntry
	)

	// Entries from the week before start back the carried-forward fallback.
	cogsFrom := entity.WeekStart(start).AddDate(0, 0, -7)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = l.salesRepo.FindByPeriod(gctx, accountID, start, end)
		if err != nil {
			return fmt.Errorf("failed to load sales: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = l.cogsRepo.FindByRange(gctx, accountID, cogsFrom, end)
		if err != nil {
			return fmt.Errorf("failed to load cogs entries: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	loc := now.Location()
	daily := AggregateDaily(records, loc)

	actual := make(map[string]float64)
	for key, row := range daily {
		if row.Cost != nil {
			actual[key] = *row.Cost
		}
	}

	return &periodData{
		daily:    daily,
		hourly:   AggregateHourly(records, loc),
		records:  records,
		resolver: cogs.NewCostResolver(entries, actual, now, l.estimateRatio),
	}, nil
}
