package main

import (
	"context"
	"log"
	"net/http"

	_ "habitly/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"habitly/internal/auth"
	"habitly/internal/cache"
	"habitly/internal/config"
	"habitly/internal/db"
	"habitly/internal/handler"
	"habitly/internal/metrics"
	"habitly/internal/model"
	"habitly/internal/repository"
	"habitly/internal/router"
	"habitly/internal/service"
)

// @title Habitly API
// @version 1.0
// @description Habit-tracking API with categorized habits, practice history, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Category{},
		&model.Habit{},
		&model.PracticeTracker{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("redis unavailable, running without cache: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	habitRepo := repository.NewHabitRepository(gormDB)
	practiceRepo := repository.NewPracticeRepository(gormDB)

	// Initialize auth components
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo)
	habitService := service.NewHabitService(habitRepo, categoryRepo, cacheClient)
	practiceService := service.NewPracticeService(practiceRepo, habitRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, collector)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService, userService)
	habitHandler := handler.NewHabitHandler(habitService, userService)
	practiceHandler := handler.NewPracticeHandler(practiceService, userService)

	// Register routes
	router.Register(
		e,
		cfg,
		collector,
		registry,
		authHandler,
		userHandler,
		categoryHandler,
		habitHandler,
		practiceHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
