package api

import (
	"time"

	healthHandler "pantry-planner/internal/api/handlers/health"
	mealplanHandler "pantry-planner/internal/api/handlers/mealplan"
	recipeHandler "pantry-planner/internal/api/handlers/recipe"
	"pantry-planner/internal/api/middleware"
	"pantry-planner/internal/core/importer"
	"pantry-planner/internal/core/mealplan"
	"pantry-planner/internal/core/recipe"
	"pantry-planner/internal/infrastructure/config"
	"pantry-planner/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Request body cap (1MB); recipes are text.
const maxBodySize = 1 << 20

// Services groups everything the router serves.
type Services struct {
	Recipes  *recipe.Service
	Plans    *mealplan.Service
	Importer *importer.Service
}

// SetupRouter wires middleware, handlers and routes.
func SetupRouter(cfg *config.Config, svc Services) *gin.Engine {
	common.LogInfo("starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	recipes := recipeHandler.NewHandler(svc.Recipes, svc.Importer)
	plans := mealplanHandler.NewHandler(svc.Plans)

	router.GET("/health", healthHandler.HealthCheck(cfg))
	router.GET("/health/ready", healthHandler.ReadinessCheck)
	router.GET("/health/live", healthHandler.LivenessCheck)

	v1 := router.Group("/api/v1")
	if cfg.DedupWindow > 0 {
		v1.Use(middleware.Deduplication(cfg.DedupWindow))
	}
	{
		v1.GET("/recipes", recipes.HandleList)
		v1.POST("/recipes", recipes.HandleCreate)
		v1.GET("/recipes/:id", recipes.HandleGet)
		v1.PUT("/recipes/:id", recipes.HandleUpdate)
		v1.DELETE("/recipes/:id", recipes.HandleDelete)
		v1.POST("/recipes/import", recipes.HandleImport)

		v1.POST("/shopping-list", recipes.HandleShoppingList)

		v1.GET("/meal-plan", plans.HandleWeek)
		v1.POST("/meal-plan", plans.HandleAdd)
		v1.POST("/meal-plan/bulk", plans.HandleBulkSet)
		v1.DELETE("/meal-plan/:id", plans.HandleRemove)
		v1.DELETE("/meal-plan", plans.HandleClear)
		v1.GET("/meal-plan/shopping-list", plans.HandleShoppingList)
	}

	common.LogInfo("router setup complete")
	return router
}
