package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/sci-calc/internal/collector"
	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
)

const defaultBatchSize = 500

type Pipeline interface {
	Run(ctx context.Context) (Stats, error)
}

type BulkOptions struct {
	Enabled bool
	Size    int
}

type PipelineConfig struct {
	Name string
	Bulk *BulkOptions
}

// Stats counts what a run did. Failed covers both collection errors and
// entries the store rejected.
type Stats struct {
	Saved    int
	Failed   int
	Batches  int
	Duration time.Duration
}

// HistoryPipeline moves collected history entries into a HistoryStore.
type HistoryPipeline struct {
	collector collector.Collector[domain.HistoryEntry]
	store     storage.HistoryStore
	config    *PipelineConfig
}

type PipelineOption func(pipeline *HistoryPipeline)

// WithBulk saves entries in batches of size through SaveBulk.
func WithBulk(size int) PipelineOption {
	return func(pipeline *HistoryPipeline) {
		if size <= 0 {
			size = defaultBatchSize
		}
		pipeline.config.Bulk = &BulkOptions{Enabled: true, Size: size}
	}
}

func WithName(name string) PipelineOption {
	return func(pipeline *HistoryPipeline) {
		pipeline.config.Name = name
	}
}

func NewPipeline(c collector.Collector[domain.HistoryEntry], store storage.HistoryStore, opts ...PipelineOption) *HistoryPipeline {
	p := &HistoryPipeline{
		collector: c,
		store:     store,
		config: &PipelineConfig{
			Name: "history-pipeline",
			Bulk: &BulkOptions{
				Enabled: false,
				Size:    defaultBatchSize,
			},
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *HistoryPipeline) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	slog.Info("Starting pipeline run",
		"pipeline", p.config.Name,
		"bulk_enabled", p.config.Bulk.Enabled,
		"batch_size", p.config.Bulk.Size,
	)

	results, err := p.collector.Collect(ctx)
	if err != nil {
		slog.Error("Error collecting history entries", "error", err, "pipeline", p.config.Name)
		return Stats{}, err
	}

	var stats Stats
	if p.config.Bulk.Enabled {
		err = p.processBatch(ctx, results, &stats)
	} else {
		err = p.processBasic(ctx, results, &stats)
	}
	stats.Duration = time.Since(start)

	slog.Info("Pipeline run completed",
		"pipeline", p.config.Name,
		"saved", stats.Saved,
		"failed", stats.Failed,
		"batches", stats.Batches,
		"duration", stats.Duration,
		"error", err,
	)

	return stats, err
}

func (p *HistoryPipeline) processBasic(ctx context.Context, results <-chan collector.Result[domain.HistoryEntry], stats *Stats) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				return nil
			}

			if res.Err != nil {
				slog.Warn("Skipping row", "error", res.Err, "pipeline", p.config.Name)
				stats.Failed++
				continue
			}

			if err := p.store.Save(ctx, res.Result); err != nil {
				slog.Error("Error saving history entry",
					"error", err,
					"pipeline", p.config.Name,
					"expression", res.Result.Expression,
				)
				stats.Failed++
				continue
			}
			stats.Saved++
		}
	}
}

func (p *HistoryPipeline) processBatch(ctx context.Context, results <-chan collector.Result[domain.HistoryEntry], stats *Stats) error {
	batch := make([]domain.HistoryEntry, 0, p.config.Bulk.Size)

	flush := func(ctx context.Context) {
		if len(batch) == 0 {
			return
		}
		if err := p.store.SaveBulk(ctx, batch); err != nil {
			slog.Error("Error saving bulk history entries",
				"error", err,
				"count", len(batch),
				"pipeline", p.config.Name,
			)
			stats.Failed += len(batch)
		} else {
			stats.Saved += len(batch)
			stats.Batches++
			slog.Debug("Bulk saved", "count", len(batch), "batch", stats.Batches, "pipeline", p.config.Name)
		}
		batch = batch[:0]
	}

	for {
		if err := ctx.Err(); err != nil {
			// keep what was already collected
			flush(context.WithoutCancel(ctx))
			return err
		}

		select {
		case <-ctx.Done():
			flush(context.WithoutCancel(ctx))
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				flush(ctx)
				return nil
			}

			if res.Err != nil {
				slog.Warn("Skipping row", "error", res.Err, "pipeline", p.config.Name)
				stats.Failed++
				continue
			}

			batch = append(batch, res.Result)
			if len(batch) >= p.config.Bulk.Size {
				flush(ctx)
			}
		}
	}
}
