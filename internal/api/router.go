package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/claimcheck/claimcheck-api/internal/api/handler"
	"github.com/claimcheck/claimcheck-api/internal/core/service"
	mongodb "github.com/claimcheck/claimcheck-api/internal/infrastructure/db/mongo"
	redisdb "github.com/claimcheck/claimcheck-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/claimcheck/claimcheck-api/internal/infrastructure/http/handlers"
)

const searchCacheTTL = 30 * time.Second

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("claimcheck"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	searchCache := redisdb.NewSearchCache(rdb, searchCacheTTL)

	authService := service.NewAuthService(userRepo, log)
	userService := service.NewUserService(userRepo, log)
	searchService := service.NewSearchService(userRepo, searchCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	searchHandler := handler.NewSearchHandler(searchService)

	// --- API routes ---
	e.POST("/api/auth", authHandler.Auth)
	e.GET("/api/search", searchHandler.Search)
	e.PUT("/api/users", userHandler.UpdatePartner)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Static SPA client ---
	e.Static("/", "web")

	return e
}
