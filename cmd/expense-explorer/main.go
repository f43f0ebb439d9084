package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"expense-explorer/internal/api"
	"expense-explorer/internal/api/handlers"
	"expense-explorer/internal/ledger"
	"expense-explorer/internal/repository"
	"expense-explorer/internal/service"
	"expense-explorer/pkg/config"
	"expense-explorer/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// @title Expense Explorer API
// @version 1.0
// @description Explore a personal expense ledger: filters, summaries, tag and category overlaps, insights and questions answered by an LLM

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Expense Explorer service")

	// Amounts go out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()

	source, err := repository.NewSource(ctx, cfg.Data.Source, cfg.Data.GCSCredentialsFile)
	if err != nil {
		appLogger.Fatal("Failed to open ledger source", zap.Error(err))
	}
	if closer, ok := source.(io.Closer); ok {
		defer closer.Close()
	}

	decoder := ledger.NewDecoder(logger.Named("ledger"))
	snapshots := repository.NewSnapshotRepository(source, decoder, cfg.Data.SampleFallback, logger.Named("repository"))

	// Warm the snapshot so the first request does not pay for the load.
	if snap, err := snapshots.Current(ctx); err != nil {
		appLogger.Warn("Initial ledger load failed", zap.String("location", source.Location()), zap.Error(err))
	} else {
		appLogger.Info("Ledger ready", zap.Int("transactions", len(snap.Transactions)), zap.Bool("sample", snap.Sample))
	}

	chatModel, err := service.NewChatModel(ctx, &cfg.LLM, logger.Named("llm"))
	switch {
	case errors.Is(err, service.ErrLLMDisabled):
		appLogger.Info("LLM provider disabled, answers are composed offline")
	case err != nil:
		appLogger.Fatal("Failed to initialize LLM", zap.Error(err))
	default:
		defer chatModel.Close()
	}

	// Initialize services
	analysisService := service.NewAnalysisService(snapshots, &cfg.Analysis, logger.Named("analysis"))
	queryService := service.NewQueryService(snapshots, chatModel, cfg, logger.Named("query"))

	// Initialize handlers
	handlerLogger := logger.Named("handlers")
	app := api.SetupRouter(&cfg.Server, api.Handlers{
		Transactions: handlers.NewTransactionHandler(analysisService, handlerLogger),
		Analysis:     handlers.NewAnalysisHandler(analysisService, handlerLogger),
		Query:        handlers.NewQueryHandler(queryService, handlerLogger),
		Data:         handlers.NewDataHandler(analysisService, handlerLogger),
	}, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
