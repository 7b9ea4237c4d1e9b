package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
	"github.com/DjordjeVuckovic/sci-calc/pkg/pagination"
)

const historyColumns = `id, expression, result, error_message, angle_unit, created_at`

// HistoryStore keeps history in a local SQLite file. Timestamps are stored
// as unix nanoseconds so ordering is numeric.
type HistoryStore struct {
	db *sql.DB
}

var _ storage.HistoryStore = (*HistoryStore)(nil)

func NewHistoryStore(ctx context.Context, path string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cant open database %w", err)
	}
	// one writer at a time; also keeps ":memory:" on a single connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cant reach database %w", err)
	}

	s := &HistoryStore{db: db}
	if err := s.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *HistoryStore) Init(ctx context.Context) error {
	historyQ := `
	CREATE TABLE IF NOT EXISTS calculation_history (
		id            TEXT    PRIMARY KEY,
		expression    TEXT    NOT NULL,
		result        REAL,
		error_message TEXT,
		angle_unit    TEXT    NOT NULL,
		created_at    INTEGER NOT NULL
	);`

	indexQ := `
	CREATE INDEX IF NOT EXISTS idx_calculation_history_created_at
		ON calculation_history (created_at DESC);`

	if _, err := s.db.ExecContext(ctx, historyQ); err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, indexQ); err != nil {
		return fmt.Errorf("failed to create history index: %w", err)
	}
	return nil
}

func (s *HistoryStore) Save(ctx context.Context, entry domain.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calculation_history(`+historyColumns+`)
		 VALUES(?, ?, ?, ?, ?, ?)`,
		entry.ID.String(),
		entry.Expression,
		nullFloat(entry.Result),
		nullString(entry.ErrorMessage),
		entry.AngleUnit.String(),
		entry.Timestamp.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

func (s *HistoryStore) SaveBulk(ctx context.Context, entries []domain.HistoryEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO calculation_history(`+historyColumns+`) VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, e := range entries {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		if e.Timestamp.IsZero() {
			e.Timestamp = now
		}
		_, err := stmt.ExecContext(ctx,
			e.ID.String(), e.Expression, nullFloat(e.Result), nullString(e.ErrorMessage),
			e.AngleUnit.String(), e.Timestamp.UnixNano())
		if err != nil {
			return fmt.Errorf("insert history entry %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	return s.query(ctx,
		`SELECT `+historyColumns+` FROM calculation_history
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
}

func (s *HistoryStore) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.HistoryEntry], error) {
	_ = page.Validate()

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM calculation_history`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count history: %w", err)
	}

	items, err := s.query(ctx,
		`SELECT `+historyColumns+` FROM calculation_history
		 ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`,
		page.Size, (page.Page-1)*page.Size)
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
	if limit <= 0 {
		limit = -1
	}

	pattern := "%" + escapeLike(text) + "%"
	return s.query(ctx,
		`SELECT `+historyColumns+` FROM calculation_history
		 WHERE expression LIKE ? ESCAPE '\' OR error_message LIKE ? ESCAPE '\'
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		pattern, pattern, limit)
}

func (s *HistoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM calculation_history WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *HistoryStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM calculation_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *HistoryStore) Prune(ctx context.Context, keep int) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM calculation_history
		WHERE id IN (
			SELECT id FROM calculation_history
			ORDER BY created_at DESC, rowid DESC
			LIMIT -1 OFFSET ?
		)`, max(keep, 0))
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	return res.RowsAffected()
}

func (s *HistoryStore) Close() error {
	return s.db.Close()
}

func (s *HistoryStore) query(ctx context.Context, q string, args ...any) ([]domain.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var (
			id      string
			result  sql.NullFloat64
			message sql.NullString
			unit    string
			nanos   int64
			e       domain.HistoryEntry
		)
		if err := rows.Scan(&id, &e.Expression, &result, &message, &unit, &nanos); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}

		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse history id %q: %w", id, err)
		}
		if e.AngleUnit, err = angle.Parse(unit); err != nil {
			return nil, fmt.Errorf("parse angle unit: %w", err)
		}
		if result.Valid {
			e.Result = &result.Float64
		}
		if message.Valid {
			e.ErrorMessage = &message.String
		}
		e.Timestamp = time.Unix(0, nanos).UTC()

		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// HealthChecker pings the database file.
type HealthChecker struct {
	db *sql.DB
}

func NewHealthChecker(s *HistoryStore) *HealthChecker {
	return &HealthChecker{db: s.db}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	return hc.db.PingContext(ctx) == nil
}
