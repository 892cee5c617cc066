package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/conectar/clients-api/internal/api/handler"
	"github.com/conectar/clients-api/internal/api/middleware"
	"github.com/conectar/clients-api/internal/core/domain"
	"github.com/conectar/clients-api/internal/core/ports"
	"github.com/conectar/clients-api/internal/core/service"
	mongodb "github.com/conectar/clients-api/internal/infrastructure/db/mongo"
	redisdb "github.com/conectar/clients-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/conectar/clients-api/internal/infrastructure/http/handlers"
)

// Options carries everything NewRouter needs to compose the application.
type Options struct {
	DB        *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	TokenTTL  time.Duration
	Verifier  ports.IdentityVerifier
	Logger    zerolog.Logger
}

// NewRouter builds the Echo instance with all collaborators wired through
// explicit constructors, no ambient singletons.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("conectar"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.DB)
	clientRepo := mongodb.NewClientRepository(opts.DB)
	statsCache := redisdb.NewStatsCache(opts.Redis)

	authService := service.NewAuthService(userRepo, opts.Verifier, opts.JWTSecret, opts.TokenTTL, opts.Logger)
	userService := service.NewUserService(userRepo, clientRepo, opts.Logger)
	clientService := service.NewClientService(clientRepo, statsCache, opts.Logger)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)

	authn := middleware.Auth(opts.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/google/token", authHandler.GoogleToken)

	// --- User routes ---
	users := e.Group("/users", authn)
	users.GET("", userHandler.List)
	users.GET("/inactive", userHandler.ListInactive, adminOnly)
	users.GET("/notifications", userHandler.Notifications, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.PUT("/:id/password", userHandler.UpdatePassword)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Client routes ---
	clients := e.Group("/clients", authn)
	clients.POST("", clientHandler.Create)
	clients.GET("", clientHandler.List)
	clients.GET("/my-stats", clientHandler.Stats)
	clients.GET("/:id", clientHandler.Get)
	clients.PATCH("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(opts.DB, opts.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
