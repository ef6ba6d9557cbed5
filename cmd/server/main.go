package main

import (
	"log"
	"net/http"

	"humanatlas/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"humanatlas/internal/auth"
	"humanatlas/internal/cache"
	"humanatlas/internal/config"
	"humanatlas/internal/db"
	"humanatlas/internal/handler"
	"humanatlas/internal/model"
	"humanatlas/internal/repository"
	"humanatlas/internal/router"
	"humanatlas/internal/service"
)

// @title The Human Atlas API
// @version 1.0
// @description Pseudonymous emotional journal: identity and sessions, hourly rate-limited entry submission, and per-user aggregate statistics.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Entry{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	entryRepo := repository.NewEntryRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	rateLimiter := service.NewRateLimiter(entryRepo, cacheClient, cfg.RateLimitWindow)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	entryService := service.NewEntryService(entryRepo, userRepo, rateLimiter)
	statsService := service.NewStatsService(entryRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	entryHandler := handler.NewEntryHandler(entryService)
	profileHandler := handler.NewProfileHandler(statsService)
	metaHandler := handler.NewMetaHandler()

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		tokenStore,
		authHandler,
		entryHandler,
		profileHandler,
		metaHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
