package main

import (
	"log"
	"net/http"
	"os"

	_ "lingorelay/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"lingorelay/internal/auth"
	"lingorelay/internal/cache"
	"lingorelay/internal/config"
	"lingorelay/internal/db"
	"lingorelay/internal/handler"
	"lingorelay/internal/model"
	"lingorelay/internal/repository"
	"lingorelay/internal/router"
	"lingorelay/internal/service"
)

// @title LingoRelay API
// @version 1.0
// @description Translation relay with authenticated per-user history.
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

	// The store is the only hard dependency: fail fast when it is unreachable.
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.TranslationRecord{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.TranslationRecord{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	historyRepo := repository.NewHistoryRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	historyService := service.NewHistoryService(historyRepo)
	translateService := service.NewTranslateService(cfg.TranslateAPIURL, cfg.TranslateAPIKey, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	historyHandler := handler.NewHistoryHandler(historyService)
	translateHandler := handler.NewTranslateHandler(translateService)
	healthHandler := handler.NewHealthHandler(gormDB)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		historyHandler,
		translateHandler,
		healthHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
