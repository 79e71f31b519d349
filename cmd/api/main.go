package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"eldersafe/internal/adapter"
	"eldersafe/internal/adapter/llm"
	"eldersafe/internal/adapter/scenariogen"
	"eldersafe/internal/adapter/summarygen"
	"eldersafe/internal/cache"
	"eldersafe/internal/catalog"
	"eldersafe/internal/config"
	"eldersafe/internal/domain"
	"eldersafe/internal/handler"
	"eldersafe/internal/logger"
	"eldersafe/internal/middleware"
	"eldersafe/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Initialize text-generation client
	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	appLogger.Info("LLM client initialized", zap.String("provider", cfg.LLM.Provider))

	// Select the scenario source
	var generator domain.ScenarioGenerationService
	switch cfg.Quiz.Source {
	case "llm":
		generator = scenariogen.NewGenerator(llmClient)
		appLogger.Info("Using LLM scenario generation")
	case "catalog":
		generator = catalog.NewCatalog()
		appLogger.Info("Using built-in scenario catalog")
	default:
		appLogger.Fatal("Unsupported quiz source. Please check quiz.source in config.",
			zap.String("source", cfg.Quiz.Source))
	}

	// Initialize Redis client and cache adapter
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize services
	scenarioCache := service.NewScenarioCacheService(cacheAdapter, cfg.Quiz.SessionTTL)
	sessionService := service.NewSessionService(cacheAdapter, generator, scenarioCache, cfg.Quiz, cfg.LLM.Timeout)
	summaryService := service.NewSummaryService(sessionService, summarygen.NewSummarizer(llmClient))
	guidanceService := service.NewGuidanceService(summarygen.NewGuidanceTool(llmClient))

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessionService, summaryService)
	guidanceHandler := handler.NewGuidanceHandler(guidanceService)
	validationMiddleware := middleware.NewValidationMiddleware()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	apiGroup.Get("/kinds", handler.Kinds)
	apiGroup.Post("/guidance", guidanceHandler.Ask)

	apiGroup.Post("/sessions", sessionHandler.Start)
	sessionGroup := apiGroup.Group("/sessions/:id", validationMiddleware.ValidateSessionID())
	sessionGroup.Get("/", sessionHandler.Get)
	sessionGroup.Post("/answers", sessionHandler.Answer)
	sessionGroup.Post("/advance", sessionHandler.Advance)
	sessionGroup.Post("/step", sessionHandler.GoToStep)
	sessionGroup.Get("/results", sessionHandler.Results)
	sessionGroup.Post("/summary", sessionHandler.Summary)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
