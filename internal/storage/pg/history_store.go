package pg

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
	"github.com/DjordjeVuckovic/sci-calc/pkg/pagination"
)

const historyColumns = `id, expression, result, error_message, angle_unit, created_at`

// HistoryStore keeps history in the calculation_history table
// (db/migrations). The seq column orders entries saved with the same
// timestamp.
type HistoryStore struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

var _ storage.HistoryStore = (*HistoryStore)(nil)

func NewHistoryStore(pool *ConnectionPool) *HistoryStore {
	return &HistoryStore{pool: pool, db: pool.conn}
}

func (s *HistoryStore) Save(ctx context.Context, entry domain.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	cmd := `
		INSERT INTO calculation_history (` + historyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := s.db.Exec(ctx, cmd,
		entry.ID,
		entry.Expression,
		entry.Result,
		entry.ErrorMessage,
		entry.AngleUnit.String(),
		entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

func (s *HistoryStore) SaveBulk(ctx context.Context, entries []domain.HistoryEntry) error {
	rows := make([][]any, len(entries))
	now := time.Now().UTC()

	for i, e := range entries {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		if e.Timestamp.IsZero() {
			e.Timestamp = now
		}
		rows[i] = []any{e.ID, e.Expression, e.Result, e.ErrorMessage, e.AngleUnit.String(), e.Timestamp}
	}

	n, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{"calculation_history"},
		[]string{"id", "expression", "result", "error_message", "angle_unit", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert history: %w", err)
	}

	slog.Info("history bulk insert completed", "inserted", n, "total", len(entries))
	return nil
}

func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	query := `SELECT ` + historyColumns + ` FROM calculation_history ORDER BY created_at DESC, seq DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent history: %w", err)
	}
	return collectEntries(rows)
}

func (s *HistoryStore) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.HistoryEntry], error) {
	_ = page.Validate()

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM calculation_history`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count history: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT `+historyColumns+` FROM calculation_history
		 ORDER BY created_at DESC, seq DESC
		 LIMIT $1 OFFSET $2`,
		page.Size, (page.Page-1)*page.Size,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	items, err := collectEntries(rows)
	if err != nil {
		return nil, err
	}
	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}

func (s *HistoryStore) Search(ctx context.Context, text string, limit int) ([]domain.HistoryEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.Recent(ctx, limit)
	}

	query := `SELECT ` + historyColumns + ` FROM calculation_history
		WHERE expression ILIKE $1 OR error_message ILIKE $1
		ORDER BY created_at DESC, seq DESC`
	args := []any{"%" + escapeLike(text) + "%"}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		slog.Error("history search failed", "error", err, "text", text)
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	return collectEntries(rows)
}

func (s *HistoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM calculation_history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *HistoryStore) Clear(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM calculation_history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *HistoryStore) Prune(ctx context.Context, keep int) (int64, error) {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM calculation_history
		WHERE id IN (
			SELECT id FROM calculation_history
			ORDER BY created_at DESC, seq DESC
			OFFSET $1
		)`, max(keep, 0))
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *HistoryStore) Close() error {
	s.pool.Close()
	return nil
}

func collectEntries(rows pgx.Rows) ([]domain.HistoryEntry, error) {
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.HistoryEntry, error) {
		var (
			e    domain.HistoryEntry
			unit string
		)
		if err := row.Scan(&e.ID, &e.Expression, &e.Result, &e.ErrorMessage, &unit, &e.Timestamp); err != nil {
			return e, err
		}
		parsed, err := angle.Parse(unit)
		if err != nil {
			return e, err
		}
		e.AngleUnit = parsed
		e.Timestamp = e.Timestamp.UTC()
		return e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan history rows: %w", err)
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return entries, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
