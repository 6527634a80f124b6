package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sakeCompass/app/echo-server/router"
	"sakeCompass/business/preference"
	"sakeCompass/business/product"
	"sakeCompass/business/recommendation"
	"sakeCompass/internal/middleware"
	psqlRepo "sakeCompass/internal/repository/postgres"
	redisRepo "sakeCompass/internal/repository/redis"
	"sakeCompass/internal/rest"
	"sakeCompass/pkg/config"
	"sakeCompass/pkg/database"
	redisdb "sakeCompass/pkg/database/redis"
	"sakeCompass/pkg/logger"
	"sakeCompass/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting SakeCompass", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Redis is optional; without it the recommend path hits postgres
	// for every profile lookup.
	var profileCache *redisRepo.ProfileCache
	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, profile cache disabled", "error", err)
	} else {
		profileCache = redisRepo.NewProfileCache(redisClient)
		defer redisdb.CloseRedisClient(redisClient)
	}

	// Init validate
	validate := validator.New()

	// Init repo
	productRepo := psqlRepo.NewProductRepository(db)
	prefRepo := psqlRepo.NewPreferenceRepository(db)

	// Init service
	productService := product.NewProductService(productRepo)

	var recoCache recommendation.ProfileCache
	var prefCache preference.ProfileCache
	if profileCache != nil {
		recoCache = profileCache
		prefCache = profileCache
	}
	recommendationService := recommendation.NewService(prefRepo, productRepo, recoCache, nil)
	preferenceService := preference.NewPreferenceService(prefRepo, prefCache, validate)

	// Init handler
	productHandler := rest.NewProductHandler(productService)
	preferenceHandler := rest.NewPreferenceHandler(preferenceService)
	recommendationHandler := rest.NewRecommendationHandler(recommendationService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	authRequired := middleware.AuthMiddleware()
	api := e.Group("/api/v1")
	router.SetupProductRoutes(api, productHandler, authRequired)
	router.SetupPreferenceRoutes(api, preferenceHandler)
	router.SetupRecommendationRoutes(api, recommendationHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
