package es

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// EnsureIndex creates the history index with explicit mappings when missing.
// Expression and error text are keywords so wildcard search sees the raw text.
func (s *HistoryStore) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":            types.NewKeywordProperty(),
			"expression":    types.NewKeywordProperty(),
			"result":        types.NewDoubleNumberProperty(),
			"error_message": types.NewKeywordProperty(),
			"angle_unit":    types.NewKeywordProperty(),
			"timestamp":     types.NewDateProperty(),
			"seq":           types.NewLongNumberProperty(),
		},
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}
