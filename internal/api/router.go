package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartgridlink/energy-trading-api/internal/api/handler"
	"github.com/smartgridlink/energy-trading-api/internal/api/middleware"
	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
	"github.com/smartgridlink/energy-trading-api/internal/core/ports"
	"github.com/smartgridlink/energy-trading-api/internal/core/service"
)

// RouterConfig carries everything the HTTP surface depends on. Mongo and
// Redis are optional and only feed the readiness probe.
type RouterConfig struct {
	Store      ports.SessionStore
	Dashboards ports.DashboardService
	JWTSecret  string
	TokenTTL   time.Duration
	Mongo      *mongo.Database
	Redis      *redis.Client
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("smartgrid"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(cfg.Store, service.NewSignupValidator(), cfg.JWTSecret, cfg.TokenTTL)
	dashboardHandler := handler.NewDashboardHandler(cfg.Dashboards, cfg.Store)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/logout", authHandler.Logout)
	e.PATCH("/auth/profile", authHandler.UpdateProfile, authMiddleware)
	e.GET("/auth/me", authHandler.Me)

	// --- Role-gated dashboards ---
	e.GET("/dashboard", dashboardHandler.Redirect, authMiddleware)
	e.GET(domain.PathAdminDashboard, dashboardHandler.Admin, authMiddleware, middleware.Guard(domain.RoleAdmin))
	e.GET(domain.PathProducerDashboard, dashboardHandler.Producer, authMiddleware, middleware.Guard(domain.RoleProducer))
	e.GET(domain.PathConsumerDashboard, dashboardHandler.Consumer, authMiddleware, middleware.Guard(domain.RoleConsumer))

	// Community map — any authenticated role.
	e.GET("/map/producers", dashboardHandler.MapProducers, authMiddleware, middleware.Guard())

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
