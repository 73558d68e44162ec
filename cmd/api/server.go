package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-gap/internal/config"
	"alfredoptarigan/resume-gap/internal/handlers"
	"alfredoptarigan/resume-gap/internal/services"
)

const appName = "Resume Gap Analyzer API"

// multipart framing on top of the largest accepted upload
const bodyOverhead = 1 << 20

func newApp(cfg *config.Config, log *zap.Logger, advisor services.AdvisorService, parser services.DocumentParser) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + bodyOverhead,
		ErrorHandler: handlers.NewErrorHandler(log),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(handlers.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.Register(app, handlers.Handlers{
		Keywords:    handlers.NewKeywordHandler(advisor),
		Analysis:    handlers.NewAnalysisHandler(),
		Suggestions: handlers.NewSuggestionHandler(advisor),
		Documents:   handlers.NewDocumentHandler(parser, cfg.Upload.MaxFileSize),
	})

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   appName,
			"version":   version,
			"endpoints": handlers.Endpoints,
		})
	})

	return app
}
