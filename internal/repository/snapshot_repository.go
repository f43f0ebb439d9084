package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"expense-explorer/internal/ledger"
	"expense-explorer/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Snapshot is one decoded load of the ledger. It is never modified after
// it has been published, so callers may share it freely.
type Snapshot struct {
	Transactions []models.Transaction
	Location     string
	LoadedAt     time.Time
	Skipped      int
	Warnings     int
	Sample       bool
}

// loadTimeout bounds a shared load, which no longer follows any one caller's context.
const loadTimeout = 2 * time.Minute

// SnapshotRepository keeps the current ledger snapshot in memory.
type SnapshotRepository struct {
	source         Source
	decoder        *ledger.Decoder
	sampleFallback bool
	logger         *zap.Logger

	current atomic.Pointer[Snapshot]
	loads   singleflight.Group

	// A read publishes only if no later-started read has published already.
	mu        sync.Mutex
	started   uint64
	published uint64
}

func NewSnapshotRepository(source Source, decoder *ledger.Decoder, sampleFallback bool, logger *zap.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		source:         source,
		decoder:        decoder,
		sampleFallback: sampleFallback,
		logger:         logger,
	}
}

// Current returns the loaded snapshot, reading the source on first use.
func (r *SnapshotRepository) Current(ctx context.Context) (*Snapshot, error) {
	if snap := r.current.Load(); snap != nil {
		return snap, nil
	}
	return r.load(ctx, "cold", func() *Snapshot { return r.current.Load() })
}

// Reload re-reads the source and swaps the snapshot in place.
func (r *SnapshotRepository) Reload(ctx context.Context) (*Snapshot, error) {
	return r.load(ctx, "reload", func() *Snapshot { return nil })
}

func (r *SnapshotRepository) load(ctx context.Context, key string, ready func() *Snapshot) (*Snapshot, error) {
	v, err, shared := r.loads.Do(key, func() (any, error) {
		if snap := ready(); snap != nil {
			return snap, nil
		}

		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		seq := r.begin()
		snap, err := r.read(loadCtx)
		if err != nil {
			return nil, err
		}
		return r.publish(seq, snap), nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		r.logger.Debug("Shared in-flight ledger load", zap.String("kind", key))
	}
	return v.(*Snapshot), nil
}

func (r *SnapshotRepository) begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started++
	return r.started
}

// publish stores snap unless a read started after it has already been
// published, in which case the newer snapshot is returned instead.
func (r *SnapshotRepository) publish(seq uint64, snap *Snapshot) *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seq < r.published {
		r.logger.Debug("Dropping stale ledger snapshot", zap.Time("loaded_at", snap.LoadedAt))
		return r.current.Load()
	}
	r.published = seq
	r.current.Store(snap)
	return snap
}

func (r *SnapshotRepository) read(ctx context.Context) (*Snapshot, error) {
	rc, err := r.source.Open(ctx)
	if errors.Is(err, ErrSourceNotFound) && r.sampleFallback {
		r.logger.Warn("Ledger not found, serving sample data", zap.String("location", r.source.Location()))
		return &Snapshot{
			Transactions: ledger.SampleTransactions(),
			Location:     r.source.Location(),
			LoadedAt:     time.Now(),
			Sample:       true,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	res, err := r.decoder.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ledger %s: %w", r.source.Location(), err)
	}

	r.logger.Info("Ledger snapshot loaded",
		zap.String("location", r.source.Location()),
		zap.Int("transactions", len(res.Transactions)),
		zap.Int("skipped", res.Skipped),
	)

	return &Snapshot{
		Transactions: res.Transactions,
		Location:     r.source.Location(),
		LoadedAt:     time.Now(),
		Skipped:      res.Skipped,
		Warnings:     res.Warnings,
	}, nil
}

// Replace checks that data decodes, writes it to the source and reloads.
func (r *SnapshotRepository) Replace(ctx context.Context, data io.Reader) (*Snapshot, error) {
	raw, err := io.ReadAll(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if _, err := r.decoder.Decode(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to decode upload: %w", err)
	}

	if err := r.source.Store(ctx, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to store ledger: %w", err)
	}

	r.logger.Info("Ledger replaced", zap.String("location", r.source.Location()), zap.Int("bytes", len(raw)))
	return r.Reload(ctx)
}

func (r *SnapshotRepository) Location() string {
	return r.source.Location()
}
