package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fortune-labs/task-tracker/docs"
	"github.com/fortune-labs/task-tracker/internal/api/handler"
	"github.com/fortune-labs/task-tracker/internal/api/middleware"
	"github.com/fortune-labs/task-tracker/internal/api/session"
	"github.com/fortune-labs/task-tracker/internal/core/service"
	"github.com/fortune-labs/task-tracker/internal/infrastructure/config"
	mongodb "github.com/fortune-labs/task-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/fortune-labs/task-tracker/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, events service.EventSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tasktracker"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	revoker := redisdb.NewRevoker(rdb)
	hasher := service.NewHasher(cfg.BcryptCost)
	carrier := session.NewCarrier(cfg.CookieName, tokens.TTL(), cfg.CookieSecure)

	authService := service.NewAuthService(userRepo, hasher, tokens, revoker, events, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService, carrier)
	taskHandler := handler.NewTaskHandler(taskService)
	authGate := middleware.Auth(carrier, tokens, revoker, log)

	// --- Auth routes ---
	e.POST("/signUp", authHandler.SignUp)
	e.POST("/signIn", authHandler.SignIn)
	e.POST("/signOut", authHandler.SignOut)

	// --- Protected routes ---
	protected := e.Group("", authGate)
	protected.GET("/get-user", authHandler.GetUser)
	protected.GET("/get-tasks", taskHandler.List)
	protected.POST("/add-task", taskHandler.Create)
	protected.PUT("/edit-task/:id", taskHandler.Update)
	protected.DELETE("/delete-task/:id", taskHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
