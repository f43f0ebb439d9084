package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"expense-explorer/internal/ledger"
	"expense-explorer/internal/repository"
	"expense-explorer/pkg/config"
	"expense-explorer/pkg/logger"

	"go.uber.org/zap"
)

// seed writes the sample ledger to the configured DATA_SOURCE.
func main() {
	force := flag.Bool("force", false, "overwrite an existing ledger")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Named("seed")

	ctx := context.Background()
	source, err := repository.NewSource(ctx, cfg.Data.Source, cfg.Data.GCSCredentialsFile)
	if err != nil {
		log.Fatal("Failed to open ledger source", zap.Error(err))
	}
	if closer, ok := source.(io.Closer); ok {
		defer closer.Close()
	}

	if err := seed(ctx, source, *force, log); err != nil {
		log.Fatal("Failed to seed ledger", zap.String("location", source.Location()), zap.Error(err))
	}
}

func seed(ctx context.Context, source repository.Source, force bool, log *zap.Logger) error {
	existing, err := source.Open(ctx)
	switch {
	case err == nil:
		existing.Close()
		if !force {
			log.Info("Ledger already exists, skipping (use -force to overwrite)", zap.String("location", source.Location()))
			return nil
		}
	case !errors.Is(err, repository.ErrSourceNotFound):
		return err
	}

	var buf bytes.Buffer
	if err := ledger.WriteSample(&buf); err != nil {
		return fmt.Errorf("failed to render sample ledger: %w", err)
	}
	if err := source.Store(ctx, &buf); err != nil {
		return err
	}

	log.Info("Sample ledger written", zap.String("location", source.Location()), zap.Int("bytes", buf.Len()))
	return nil
}
