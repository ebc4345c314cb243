package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookmarkd/bookmarkd/internal/api/handler"
	"github.com/bookmarkd/bookmarkd/internal/api/middleware"
	"github.com/bookmarkd/bookmarkd/internal/core/service"
	"github.com/bookmarkd/bookmarkd/internal/core/token"
	mongodb "github.com/bookmarkd/bookmarkd/internal/infrastructure/db/mongo"
	redisdb "github.com/bookmarkd/bookmarkd/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, issuer *token.Issuer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bookmarkd"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookmarkRepo := mongodb.NewBookmarkRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb)

	authService := service.NewAuthService(userRepo, issuer, limiter, log)
	userService := service.NewUserService(userRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	guard := middleware.Auth(issuer)

	// --- Auth routes (public) ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)

	// --- Guarded routes ---
	users := e.Group("/users", guard)
	users.GET("/me", userHandler.Me)
	users.PATCH("", userHandler.Edit)

	bookmarks := e.Group("/bookmarks", guard)
	bookmarks.GET("", bookmarkHandler.List)
	bookmarks.POST("", bookmarkHandler.Create)
	bookmarks.GET("/:id", bookmarkHandler.Get)
	bookmarks.PATCH("/:id", bookmarkHandler.Edit)
	bookmarks.DELETE("/:id", bookmarkHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
