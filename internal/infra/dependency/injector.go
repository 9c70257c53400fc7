// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/menu-pricing/backend/config"
	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/application/usecase/actionitem"
	"github.com/menu-pricing/backend/internal/application/usecase/aisuggestion"
	"github.com/menu-pricing/backend/internal/application/usecase/cogs"
	"github.com/menu-pricing/backend/internal/application/usecase/competitor"
	"github.com/menu-pricing/backend/internal/application/usecase/costing"
	"github.com/menu-pricing/backend/internal/application/usecase/dashboard"
	"github.com/menu-pricing/backend/internal/application/usecase/menuitem"
	"github.com/menu-pricing/backend/internal/application/usecase/salesimport"
	"github.com/menu-pricing/backend/internal/application/usecase/settings"
	"github.com/menu-pricing/backend/internal/infra/scheduler"
	"github.com/menu-pricing/backend/internal/infra/server/router"
	"github.com/menu-pricing/backend/internal/integration/adapters"
	"github.com/menu-pricing/backend/internal/integration/cache"
	"github.com/menu-pricing/backend/internal/integration/email"
	"github.com/menu-pricing/backend/internal/integration/email/templates"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/controller"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/middleware"
	"github.com/menu-pricing/backend/internal/integration/metrics"
	"github.com/menu-pricing/backend/internal/integration/persistence"
	"github.com/menu-pricing/backend/internal/integration/upstream"
	"github.com/menu-pricing/backend/internal/integration/worker"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	Metrics      *metrics.PrometheusRecorder
	TokenService adapter.TokenService
	EmailSender  adapter.EmailSender
	Refresher    *worker.COGSRefresher
	Scheduler    *scheduler.Scheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient selects the in-memory cache and import tracker.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, clock adapter.Clock) (*Injector, error) {
	location := cfg.Dashboard.Location()
	recorder := metrics.NewPrometheusRecorder()

	// Create repositories
	ingredientRepo := persistence.NewIngredientRepository(db)
	recipeRepo := persistence.NewRecipeRepository(db)
	menuItemRepo := persistence.NewMenuItemRepository(db)
	cogsRepo := persistence.NewCOGSRepository(db)
	salesRepo := persistence.NewSalesRepository(db)
	competitorRepo := persistence.NewCompetitorItemRepository(db)
	actionItemRepo := persistence.NewActionItemRepository(db)
	settingsRepo := persistence.NewNotificationSettingsRepository(db)

	// Create cache and import tracker
	var aggregateCache adapter.AggregateCache
	var importTracker adapter.ImportTracker
	if redisClient != nil {
		aggregateCache = cache.NewRedisAggregateCache(redisClient, cfg.Dashboard.CacheTTL)
		importTracker = cache.NewRedisImportTracker(redisClient, cache.DefaultImportJobTTL, cfg.Upstream.JobTimeout)
	} else {
		aggregateCache = cache.NewMemoryAggregateCache(cfg.Dashboard.CacheTTL, clock)
		importTracker = salesimport.NewInMemoryImportTracker()
	}

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	geminiService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	upstreamClient := upstream.NewClient(upstream.Options{
		BaseURL:    cfg.Upstream.BaseURL,
		APIKey:     cfg.Upstream.APIKey,
		Timeout:    cfg.Upstream.Timeout,
		RetryCount: cfg.Upstream.RetryCount,
	})

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, err
		}
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail, renderer)
	} else {
		slog.Warn("RESEND_API_KEY not set, reminder emails will not be delivered")
		emailSender = email.NewMockEmailSender()
	}

	// Create costing use cases
	costCalculator := costing.NewCostCalculator(recorder)
	recipeService := costing.NewRecipeService(recipeRepo, ingredientRepo, menuItemRepo, costCalculator)
	listIngredientsUseCase := costing.NewListIngredientsUseCase(ingredientRepo)
	createIngredientUseCase := costing.NewCreateIngredientUseCase(ingredientRepo)
	updateIngredientUseCase := costing.NewUpdateIngredientUseCase(ingredientRepo)
	deleteIngredientUseCase := costing.NewDeleteIngredientUseCase(ingredientRepo, recipeRepo)

	// Create COGS use cases
	submitCOGSUseCase := cogs.NewSubmitCOGSUseCase(cogsRepo, aggregateCache)
	listCOGSUseCase := cogs.NewListCOGSUseCase(cogsRepo)
	dailyCOGSUseCase := cogs.NewGetDailyCOGSUseCase(cogsRepo)
	deleteCOGSUseCase := cogs.NewDeleteCOGSUseCase(cogsRepo, aggregateCache)
	currentWeekUseCase := cogs.NewGetCurrentWeekUseCase(cogsRepo, clock)

	// Create dashboard use cases
	salesDataUseCase := dashboard.NewGetSalesDataUseCase(salesRepo, cogsRepo, clock, recorder, cfg.Dashboard.EstimateRatio)
	salesChartUseCase := dashboard.NewGetSalesChartUseCase(salesRepo, cogsRepo, aggregateCache, clock, recorder, cfg.Dashboard.EstimateRatio)
	productPerformanceUseCase := dashboard.NewGetProductPerformanceUseCase(salesRepo, menuItemRepo, recipeService, clock)

	// Create remaining services
	menuItemService := menuitem.NewService(menuItemRepo, recipeRepo)
	competitorService := competitor.NewService(competitorRepo, menuItemRepo, clock)
	suggestMenuUseCase := aisuggestion.NewSuggestMenuUseCase(geminiService)
	actionItemService := actionitem.NewService(actionItemRepo, submitCOGSUseCase, clock)
	notificationService := settings.NewNotificationService(settingsRepo, clock)
	startImportUseCase := salesimport.NewStartImportUseCase(
		upstreamClient,
		salesRepo,
		importTracker,
		aggregateCache,
		clock,
		recorder,
		salesimport.Options{
			PollInterval: cfg.Worker.ImportPollInterval,
			JobTimeout:   cfg.Upstream.JobTimeout,
		},
	)
	getImportUseCase := salesimport.NewGetImportUseCase(importTracker)

	// Create controllers
	healthController := controller.NewHealthController(pingDB(db), pingRedis(redisClient))
	dashboardController := controller.NewDashboardController(salesDataUseCase, salesChartUseCase, productPerformanceUseCase)
	cogsController := controller.NewCOGSController(
		submitCOGSUseCase,
		listCOGSUseCase,
		dailyCOGSUseCase,
		deleteCOGSUseCase,
		currentWeekUseCase,
	)
	ingredientController := controller.NewIngredientController(
		listIngredientsUseCase,
		createIngredientUseCase,
		updateIngredientUseCase,
		deleteIngredientUseCase,
	)
	recipeController := controller.NewRecipeController(recipeService)
	menuItemController := controller.NewMenuItemController(menuItemService)
	competitorController := controller.NewCompetitorController(competitorService)
	aiSuggestionController := controller.NewAISuggestionController(suggestMenuUseCase)
	actionItemController := controller.NewActionItemController(actionItemService)
	salesImportController := controller.NewSalesImportController(startImportUseCase, getImportUseCase)
	settingsController := controller.NewSettingsController(notificationService)

	// Test environments share one account across many scenarios.
	aiLimit := cfg.Server.RateLimit
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		aiLimit = 1000
	}
	aiRateLimiter := middleware.NewRateLimiterWithClock(aiLimit, cfg.Server.RateLimitWindow, clock)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		dashboardController,
		cogsController,
		recipeController,
		ingredientController,
		menuItemController,
		competitorController,
		aiSuggestionController,
		actionItemController,
		salesImportController,
		settingsController,
		aiRateLimiter,
		authMiddleware,
		recorder,
		recorder.Handler(),
	)

	// Create background jobs
	refresher := worker.NewCOGSRefresher(
		actionItemRepo,
		cogsRepo,
		actionItemService,
		aggregateCache,
		worker.COGSRefresherConfig{Interval: cfg.Worker.RefreshInterval},
	)
	reminderScheduler := scheduler.NewScheduler(settingsRepo, actionItemService, emailSender, scheduler.Config{
		Schedule:      cfg.Worker.ReminderSchedule,
		Location:      location,
		DashboardURL:  cfg.Email.AppBaseURL,
		EstimateRatio: cfg.Dashboard.EstimateRatio,
	})

	return &Injector{
		Config:       cfg,
		DB:           db,
		Router:       r,
		Metrics:      recorder,
		TokenService: tokenService,
		EmailSender:  emailSender,
		Refresher:    refresher,
		Scheduler:    reminderScheduler,
	}, nil
}

func pingDB(db *gorm.DB) controller.HealthChecker {
	return func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}
}

func pingRedis(client *redis.Client) controller.HealthChecker {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}
