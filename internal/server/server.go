// Package server contains the HTTP trigger layer around the calendar
// scheduler: generation endpoints, the cron trigger wrapper, the hot-post
// intake helper, and health/metrics plumbing.
package server

import (
	"context"
	"log"
	"time"

	"mastermind/internal/cache"
	"mastermind/internal/calendar"
	"mastermind/internal/config"
	"mastermind/internal/featureflags"
	"mastermind/internal/middleware"
	"mastermind/internal/observability"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	generator      *calendar.Generator
	featureFlags   *featureflags.Manager
	runLog         *observability.RunLogger
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, redisClient), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes Redis.
func NewServerWithDeps(cfg *config.Config, redisClient *redis.Client) *Server {
	prom := fiberprometheus.New("mastermind-api")

	return &Server{
		config:         cfg,
		redis:          redisClient,
		promMiddleware: prom,
		generator:      calendar.NewGenerator(),
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
		runLog:         observability.NewRunLogger("calendar"),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Mastermind Metrics Dashboard",
	}))

	// Calendar generation and evaluation
	cal := api.Group("/calendar")
	cal.Post("/generate", middleware.RateLimit(
		s.redis, 10, time.Minute, "generate_calendar"), s.GenerateCalendar)
	cal.Post("/evaluate", s.EvaluateCalendar)

	// Cron trigger wrapper
	cron := api.Group("/cron")
	cron.Post("/generate-week", middleware.RateLimit(
		s.redis, 10, time.Minute, "cron_generate"), s.CronGenerateWeek)
	cron.Get("/generate-week", s.CronStatus)
	cron.Get("/schedule", s.DescribeSchedule)

	// Hot-post intake helper, feature flagged
	api.Post("/intake/draft", s.IntakeEnabled(), s.IntakeDraft)
}

// IntakeEnabled gates the intake routes behind the "intake" feature flag.
func (s *Server) IntakeEnabled() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !s.featureFlags.Enabled("intake", c.IP()) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Not found",
			})
		}
		return c.Next()
	}
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The scheduler itself has
// no external dependencies; Redis only affects rate limiting, so its state
// is reported but never fails readiness.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	redisStatus := "unavailable"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err == nil {
			redisStatus = "healthy"
		} else {
			redisStatus = "unhealthy"
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"service": "mastermind-api",
		"version": "1.0.0",
		"status":  "healthy",
		"checks": fiber.Map{
			"redis": redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Reddit Mastermind API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
