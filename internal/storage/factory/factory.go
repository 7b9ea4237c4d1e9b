package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/es"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/pg"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/sqlite"
	"github.com/DjordjeVuckovic/sci-calc/pkg/server"
)

// NewHistoryStore opens the configured backend together with a health
// checker for it.
func NewHistoryStore(ctx context.Context, cfg *StorageConfig) (storage.HistoryStore, server.HealthChecker, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return pg.NewHistoryStore(pool), pg.NewHealthChecker(pool), nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		store, err := es.NewHistoryStore(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return store, es.NewHealthChecker(store), nil

	case storage.Sqlite:
		store, err := sqlite.NewHistoryStore(ctx, cfg.SqlitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, sqlite.NewHealthChecker(store), nil

	case storage.InMem:
		return in_mem.NewHistoryStore(), server.NewOkHealthChecker(), nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
