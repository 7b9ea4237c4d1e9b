package factory

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/es"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/pg"
)

const defaultSqlitePath = "calc_history.db"

type StorageConfig struct {
	storage.Type
	Pg         *pg.PoolConfig
	Es         *es.ClientConfig
	SqlitePath string
}

// LoadEnv reads the history backend from STORAGE_TYPE and the variables of
// the selected backend. An unset STORAGE_TYPE selects fallback.
func LoadEnv(fallback storage.Type) (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE is not set, using fallback", "type", fallback)
		storageType = fallback
	}
	if !slices.Contains(storage.Types(), storageType) {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType, storage.Types())
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: splitNonEmpty(os.Getenv("ES_ADDRESSES")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if cfg.Es.IndexName == "" {
			cfg.Es.IndexName = "calc_history"
		}
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}

	case storage.PG:
		cfg.Pg = &pg.PoolConfig{ConnStr: os.Getenv("PG_CONNECTION_STRING")}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS %q: %w", v, err)
			}
			cfg.Pg.MaxConns = int32(n)
		}

	case storage.Sqlite:
		cfg.SqlitePath = os.Getenv("SQLITE_PATH")
		if cfg.SqlitePath == "" {
			cfg.SqlitePath = defaultSqlitePath
		}
	}

	return cfg, nil
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
