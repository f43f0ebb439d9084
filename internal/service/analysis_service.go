package service

import (
	"context"
	"fmt"
	"io"

	"expense-explorer/internal/analysis"
	"expense-explorer/internal/models"
	"expense-explorer/internal/repository"
	"expense-explorer/pkg/config"

	"go.uber.org/zap"
)

// SnapshotStore is the part of repository.SnapshotRepository the services need.
type SnapshotStore interface {
	Current(ctx context.Context) (*repository.Snapshot, error)
	Reload(ctx context.Context) (*repository.Snapshot, error)
	Replace(ctx context.Context, data io.Reader) (*repository.Snapshot, error)
	Location() string
}

// AnalysisService runs the analysis engine over the current ledger snapshot.
type AnalysisService struct {
	store        SnapshotStore
	insightOpts  analysis.InsightOptions
	topMerchants int
	logger       *zap.Logger
}

func NewAnalysisService(store SnapshotStore, cfg *config.AnalysisConfig, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		store: store,
		insightOpts: analysis.InsightOptions{
			MarkerTag:        cfg.MarkerTag,
			FallbackCategory: cfg.FallbackCategory,
		},
		topMerchants: cfg.TopMerchants,
		logger:       logger,
	}
}

func (s *AnalysisService) records(ctx context.Context, q models.TransactionQuery) ([]models.Transaction, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return analysis.Filter(snap.Transactions, q), nil
}

func (s *AnalysisService) Transactions(ctx context.Context, q models.TransactionQuery) ([]models.Transaction, error) {
	return s.records(ctx, q)
}

func (s *AnalysisService) Summary(ctx context.Context, q models.TransactionQuery) (models.TransactionSummary, error) {
	records, err := s.records(ctx, q)
	if err != nil {
		return models.TransactionSummary{}, err
	}
	return analysis.BuildSummaryReport(records, s.topMerchants), nil
}

// Categories lists categories of the non-excluded records.
func (s *AnalysisService) Categories(ctx context.Context) ([]models.CategoryInfo, error) {
	records, err := s.records(ctx, models.TransactionQuery{})
	if err != nil {
		return nil, err
	}
	return analysis.Categories(records), nil
}

func (s *AnalysisService) CategoryHierarchy(ctx context.Context) (models.CategoryHierarchy, error) {
	records, err := s.records(ctx, models.TransactionQuery{IncludeExcluded: true})
	if err != nil {
		return models.CategoryHierarchy{}, err
	}
	return analysis.CategoryHierarchy(records), nil
}

func (s *AnalysisService) Insights(ctx context.Context) ([]models.Insight, error) {
	records, err := s.records(ctx, models.TransactionQuery{})
	if err != nil {
		return nil, err
	}
	insights := analysis.Insights(records, s.insightOpts)
	s.logger.Debug("Insights generated", zap.Int("count", len(insights)))
	return insights, nil
}

func (s *AnalysisService) Tags(ctx context.Context, q models.TransactionQuery) (models.TagCatalogue, error) {
	records, err := s.records(ctx, q)
	if err != nil {
		return models.TagCatalogue{}, err
	}
	return analysis.AvailableTags(records), nil
}

func (s *AnalysisService) TagOverlap(ctx context.Context, tag string, q models.TransactionQuery) (models.TagOverlap, error) {
	records, err := s.records(ctx, q)
	if err != nil {
		return models.TagOverlap{}, err
	}
	return analysis.TagCategoryOverlap(records, tag), nil
}

func (s *AnalysisService) MultiOverlap(ctx context.Context, tags, categories []string, q models.TransactionQuery) (models.MultiTagOverlap, error) {
	records, err := s.records(ctx, q)
	if err != nil {
		return models.MultiTagOverlap{}, err
	}
	return analysis.MultiTagCategoryOverlap(records, tags, categories), nil
}

// SyncResult describes a freshly loaded snapshot.
type SyncResult struct {
	Location string
	Records  int
	Skipped  int
	Warnings int
	Sample   bool
}

func syncResult(snap *repository.Snapshot) SyncResult {
	return SyncResult{
		Location: snap.Location,
		Records:  len(snap.Transactions),
		Skipped:  snap.Skipped,
		Warnings: snap.Warnings,
		Sample:   snap.Sample,
	}
}

// Sync re-reads the ledger source.
func (s *AnalysisService) Sync(ctx context.Context) (SyncResult, error) {
	snap, err := s.store.Reload(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("failed to reload ledger: %w", err)
	}
	s.logger.Info("Ledger synced", zap.String("location", snap.Location), zap.Int("records", len(snap.Transactions)))
	return syncResult(snap), nil
}

// Upload replaces the ledger with data and reloads it.
func (s *AnalysisService) Upload(ctx context.Context, data io.Reader) (SyncResult, error) {
	snap, err := s.store.Replace(ctx, data)
	if err != nil {
		return SyncResult{}, err
	}
	return syncResult(snap), nil
}
