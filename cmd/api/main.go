package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pantry-planner/internal/api"
	"pantry-planner/internal/core/importer"
	"pantry-planner/internal/core/mealplan"
	"pantry-planner/internal/core/recipe"
	"pantry-planner/internal/infrastructure/cache"
	"pantry-planner/internal/infrastructure/config"
	"pantry-planner/internal/infrastructure/storage"
	"pantry-planner/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("configuration loaded",
		zap.String("storage_path", cfg.Storage.Path),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	store, err := storage.NewBoltStore(cfg.Storage.Path)
	if err != nil {
		common.LogFatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	listCache, err := cache.NewService(&cfg.Cache)
	if err != nil {
		common.LogFatal("Failed to initialize cache", zap.Error(err))
	}
	defer listCache.Close()

	recipes := recipe.NewService(store, listCache)
	plans := mealplan.NewService(store, recipes)
	imp := importer.NewService(&cfg.Import, recipes)

	router := api.SetupRouter(cfg, api.Services{
		Recipes:  recipes,
		Plans:    plans,
		Importer: imp,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("starting server",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
