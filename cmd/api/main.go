package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/REVAN05072006/explainify/internal/adapter/textgen"
	"github.com/REVAN05072006/explainify/internal/config"
	"github.com/REVAN05072006/explainify/internal/domain"
	"github.com/REVAN05072006/explainify/internal/handler"
	"github.com/REVAN05072006/explainify/internal/logger"
	"github.com/REVAN05072006/explainify/internal/middleware"
	"github.com/REVAN05072006/explainify/internal/service"
	"github.com/REVAN05072006/explainify/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests. Each request gets
// a ULID request ID, echoed back in the X-Request-ID header.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		requestID := util.NewRequestID()
		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)

		// Process request
		err := c.Next()

		// Log request details
		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

// newTextGenerator builds the configured backend client for one role.
func newTextGenerator(cfg config.BackendConfig) (domain.TextGenerator, error) {
	switch cfg.Source {
	case "openrouter":
		return textgen.NewOpenRouterGenerator(cfg)
	case "ollama":
		return textgen.NewOllamaGenerator(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM source: %s", cfg.Source)
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

	// Primary generation backend
	appLogger.Info("Initializing primary text generator",
		zap.String("source", cfg.LLM.Primary.Source),
		zap.String("model", cfg.LLM.Primary.Model))
	primary, err := newTextGenerator(cfg.LLM.Primary)
	if err != nil {
		appLogger.Fatal("Failed to create primary text generator", zap.Error(err))
	}

	// Enrichment backend is optional; without it documents simply ship
	// without study suggestions
	var suggestionService service.SuggestionService
	if cfg.LLM.Enrichment.Source != "" {
		appLogger.Info("Initializing enrichment text generator",
			zap.String("source", cfg.LLM.Enrichment.Source),
			zap.String("model", cfg.LLM.Enrichment.Model))
		enrichment, err := newTextGenerator(cfg.LLM.Enrichment)
		if err != nil {
			appLogger.Fatal("Failed to create enrichment text generator", zap.Error(err))
		}
		suggestionService = service.NewSuggestionService(enrichment)
	} else {
		appLogger.Info("Enrichment backend disabled")
	}

	// Initialize services and handlers
	learningService := service.NewLearningService(primary, suggestionService)
	learningHandler := handler.NewLearningHandler(learningService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.WriteTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	// Add request logging middleware
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.AllowOrigins, AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")
	apiGroup.Post("/generate", learningHandler.GenerateContent)
	apiGroup.Get("/health", learningHandler.Health)

	// Frontend assets
	if cfg.Server.StaticDir != "" {
		app.Static("/", cfg.Server.StaticDir)
	}

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
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
