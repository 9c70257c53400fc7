// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menu-pricing/backend/internal/integration/entrypoint/controller"
	"github.com/menu-pricing/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	dashboardController    *controller.DashboardController
	cogsController         *controller.COGSController
	recipeController       *controller.RecipeController
	ingredientController   *controller.IngredientController
	menuItemController     *controller.MenuItemController
	competitorController   *controller.CompetitorController
	aiSuggestionController *controller.AISuggestionController
	actionItemController   *controller.ActionItemController
	salesImportController  *controller.SalesImportController
	settingsController     *controller.SettingsController
	aiRateLimiter          *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
	requestObserver        middleware.RequestObserver
	metricsHandler         http.Handler
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	cogsController *controller.COGSController,
	recipeController *controller.RecipeController,
	ingredientController *controller.IngredientController,
	menuItemController *controller.MenuItemController,
	competitorController *controller.CompetitorController,
	aiSuggestionController *controller.AISuggestionController,
	actionItemController *controller.ActionItemController,
	salesImportController *controller.SalesImportController,
	settingsController *controller.SettingsController,
	aiRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	requestObserver middleware.RequestObserver,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		healthController:       healthController,
		dashboardController:    dashboardController,
		cogsController:         cogsController,
		recipeController:       recipeController,
		ingredientController:   ingredientController,
		menuItemController:     menuItemController,
		competitorController:   competitorController,
		aiSuggestionController: aiSuggestionController,
		actionItemController:   actionItemController,
		salesImportController:  salesImportController,
		settingsController:     settingsController,
		aiRateLimiter:          aiRateLimiter,
		authMiddleware:         authMiddleware,
		requestObserver:        requestObserver,
		metricsHandler:         metricsHandler,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	if r.requestObserver != nil {
		r.engine.Use(middleware.Metrics(r.requestObserver))
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metricsHandler != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metricsHandler))
	}
}

// setupAPIRoutes configures the main API routes. Every route requires a
// valid access token; the account is taken from its claims.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	if r.dashboardController != nil {
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/sales-data", r.dashboardController.GetSalesData)
			dashboard.GET("/sales-chart", r.dashboardController.GetSalesChart)
			dashboard.GET("/product-performance", r.dashboardController.GetProductPerformance)
		}
	}

	if r.cogsController != nil {
		cogs := v1.Group("/cogs")
		{
			cogs.GET("", r.cogsController.List)
			cogs.POST("", r.cogsController.Submit)
			cogs.DELETE("", r.cogsController.DeleteAll)
			cogs.GET("/daily", r.cogsController.Daily)
			cogs.GET("/current-week", r.cogsController.CurrentWeek)
		}
	}

	recipes := v1.Group("/recipes")
	{
		// Ingredient routes are registered before /:id so the static segment wins.
		if r.ingredientController != nil {
			recipes.GET("/ingredients", r.ingredientController.List)
			recipes.POST("/ingredients", r.ingredientController.Create)
			recipes.PUT("/ingredients/:id", r.ingredientController.Update)
			recipes.DELETE("/ingredients/:id", r.ingredientController.Delete)
		}
		if r.recipeController != nil {
			recipes.GET("", r.recipeController.List)
			recipes.POST("", r.recipeController.Create)
			recipes.GET("/:id", r.recipeController.Get)
			recipes.PUT("/:id", r.recipeController.Update)
			recipes.DELETE("/:id", r.recipeController.Delete)
		}
	}

	if r.menuItemController != nil {
		menuItems := v1.Group("/menu-items")
		{
			menuItems.GET("", r.menuItemController.List)
			menuItems.POST("", r.menuItemController.Create)
			menuItems.PUT("/:id", r.menuItemController.Update)
			menuItems.DELETE("/:id", r.menuItemController.Delete)
		}
	}

	if r.competitorController != nil {
		competitors := v1.Group("/competitor-items")
		{
			competitors.GET("", r.competitorController.List)
			competitors.POST("", r.competitorController.Create)
			competitors.DELETE("/:id", r.competitorController.Delete)
			competitors.GET("/similar-to/:itemId", r.competitorController.SimilarTo)
		}
	}

	if r.aiSuggestionController != nil {
		ai := v1.Group("/ai-suggestions")
		if r.aiRateLimiter != nil {
			ai.Use(r.aiRateLimiter.Middleware())
		}
		{
			ai.POST("/menu-suggestions", r.aiSuggestionController.MenuSuggestions)
		}
	}

	if r.actionItemController != nil {
		actionItems := v1.Group("/action-items")
		{
			actionItems.GET("", r.actionItemController.List)
			actionItems.POST("/:id/start", r.actionItemController.Start)
			actionItems.POST("/:id/complete", r.actionItemController.Complete)
		}
	}

	if r.salesImportController != nil {
		imports := v1.Group("/sales/imports")
		{
			imports.POST("", r.salesImportController.Start)
			imports.GET("/:id", r.salesImportController.Get)
		}
	}

	if r.settingsController != nil {
		settings := v1.Group("/settings")
		{
			settings.GET("/notifications", r.settingsController.GetNotifications)
			settings.PUT("/notifications", r.settingsController.UpdateNotifications)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
