package api

import (
	"errors"

	"expense-explorer/docs"
	"expense-explorer/internal/api/handlers"
	"expense-explorer/internal/dto"
	"expense-explorer/pkg/config"
	"expense-explorer/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handlers struct {
	Transactions *handlers.TransactionHandler
	Analysis     *handlers.AnalysisHandler
	Query        *handlers.QueryHandler
	Data         *handlers.DataHandler
}

func SetupRouter(cfg *config.ServerConfig, h Handlers, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Expense Explorer",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal server error"
			var e *fiber.Error
			if errors.As(err, &e) {
				code, msg = e.Code, e.Message
			} else {
				appLogger.Error("Unhandled request error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.RequestLogger(appLogger.Named("http")))

	// Importing docs registers the OpenAPI document with swag.
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.StatusResponse{Message: "Expense Explorer API", Status: "running"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	api := app.Group("/api/v1")

	// /expenses mirrors /transactions for older clients.
	for _, prefix := range []string{"/transactions", "/expenses"} {
		group := api.Group(prefix)
		group.Get("", h.Transactions.ListTransactions)
		group.Get("/categories", h.Transactions.GetCategories)
		group.Get("/summary", h.Transactions.GetSummary)
	}

	api.Post("/query", h.Query.Query)
	api.Get("/insights", h.Analysis.GetInsights)
	api.Get("/categories", h.Analysis.GetCategoryHierarchy)

	analysis := api.Group("/analysis")
	analysis.Get("/tags", h.Analysis.GetTags)
	analysis.Get("/tags/:tag/overlap", h.Analysis.GetTagOverlap)
	analysis.Get("/overlap", h.Analysis.GetMultiOverlap)

	data := api.Group("/data")
	data.Post("/sync", h.Data.Sync)
	data.Get("/sync", h.Data.Sync)
	data.Post("/upload", h.Data.Upload)
	data.Post("/validate", h.Data.Validate)
	data.Get("/sample-csv", h.Data.SampleCSV)

	return app
}
