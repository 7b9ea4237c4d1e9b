package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/pkg/pagination"
)

// HistoryStore persists calculation history. Every read returns entries
// newest first.
type HistoryStore interface {
	Save(ctx context.Context, entry domain.HistoryEntry) error
	SaveBulk(ctx context.Context, entries []domain.HistoryEntry) error
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.HistoryEntry], error)
	// Search matches text case-insensitively against the expression and,
	// for failed calculations, the error message.
	Search(ctx context.Context, text string, limit int) ([]domain.HistoryEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) error
	// Prune keeps the newest keep entries and reports how many were removed.
	Prune(ctx context.Context, keep int) (int64, error)
	Close() error
}

type Type string

const (
	ES     Type = "es"
	PG     Type = "pg"
	Sqlite Type = "sqlite"
	InMem  Type = "in_mem"
)

func Types() []Type {
	return []Type{InMem, PG, Sqlite, ES}
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

var ErrNotFound = errors.New("history entry not found")
