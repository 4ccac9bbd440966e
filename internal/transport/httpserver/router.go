// Package httpserver provides HTTP server and routing.
package httpserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"yota-analytics/internal/app/service"
	"yota-analytics/internal/domain"
	"yota-analytics/internal/transport/httpserver/handler"
	"yota-analytics/internal/transport/httpserver/middleware"
	"yota-analytics/internal/validator"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port             int
	BodyLimit        int
	Debug            bool
	ExportDir        string
	DefaultChannelID string
}

// Server wraps Fiber app with handlers.
type Server struct {
	App    *fiber.App
	Logger *zap.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	cfg ServerConfig,
	analyticsSvc *service.AnalyticsService,
	trendingSvc *service.TrendingService,
	cache domain.Cache,
	redisClient *redis.Client,
	v *validator.Validator,
	logger *zap.Logger,
) *Server {
	// Template engine for dashboard
	engine := html.New("./web/templates", ".html")
	if cfg.Debug {
		engine.Reload(true)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "yota-analytics",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler(logger),
		Views:        engine,
	})

	// Health check middleware MUST be registered BEFORE other middleware
	// for Kubernetes probes to work even during high load
	app.Use(middleware.NewHealthCheck(redisClient))

	// Global middleware
	app.Use(requestid.New())
	app.Use(middleware.Recover(logger))
	app.Use(middleware.Logger(logger))
	app.Use(compress.New())

	// Static files
	app.Static("/static", "./web/static")

	// Create handlers
	channelHandler := handler.NewChannelHandler(analyticsSvc, v, logger)
	trendingHandler := handler.NewTrendingHandler(trendingSvc, v, logger)
	adminHandler := handler.NewAdminHandler(analyticsSvc, cache, cfg.ExportDir, logger)
	dashboardHandler := handler.NewDashboardHandler(cfg.DefaultChannelID, logger)

	// Register routes
	registerRoutes(app, channelHandler, trendingHandler, adminHandler, dashboardHandler)

	return &Server{
		App:    app,
		Logger: logger,
	}
}

// registerRoutes sets up all API routes.
func registerRoutes(
	app *fiber.App,
	channelHandler *handler.ChannelHandler,
	trendingHandler *handler.TrendingHandler,
	adminHandler *handler.AdminHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	// Health checks are handled by middleware (/livez, /readyz)

	// Dashboard (HTML)
	app.Get("/dashboard", dashboardHandler.Render)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	// API v1 routes
	v1 := app.Group("/api/v1")

	// Channel analytics
	channels := v1.Group("/channels")
	channels.Get("/:id/report", channelHandler.Report)
	channels.Get("/:id/audit", channelHandler.Audit)
	channels.Get("/:id/timing", channelHandler.Timing)
	channels.Get("/:id/outliers", channelHandler.Outliers)

	// Niche discovery
	v1.Get("/trending", trendingHandler.Discover)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Post("/export/:id", adminHandler.Export)
	admin.Post("/cache/clear", adminHandler.ClearCache)
}

// errorHandler returns a custom error handler that logs based on HTTP status code.
// 404s are logged at DEBUG level (expected client behavior), 4xx at WARN, 5xx at ERROR.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		// Log based on status code - 404s are common and not server errors
		switch {
		case code == fiber.StatusNotFound:
			logger.Debug("resource not found",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
			)
		case code >= 500:
			logger.Error("server error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		case code >= 400:
			logger.Warn("client error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		default:
			logger.Error("unhandled error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "UNHANDLED_ERROR",
		})
	}
}

// Start starts the HTTP server.
func (s *Server) Start(port int) error {
	s.Logger.Info("starting HTTP server", zap.Int("port", port))

	return s.App.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	s.Logger.Info("shutting down HTTP server")

	return s.App.Shutdown()
}
