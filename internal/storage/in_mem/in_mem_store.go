package in_mem

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
	"github.com/DjordjeVuckovic/sci-calc/pkg/pagination"
)

// HistoryStore keeps entries in a slice ordered newest first.
type HistoryStore struct {
	storageLock sync.RWMutex
	entries     []domain.HistoryEntry
}

var _ storage.HistoryStore = (*HistoryStore)(nil)

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

func (s *HistoryStore) Save(_ context.Context, entry domain.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	// newest first; on equal timestamps the later save comes first
	i, _ := slices.BinarySearchFunc(s.entries, entry, func(e, target domain.HistoryEntry) int {
		if e.Timestamp.After(target.Timestamp) {
			return -1
		}
		return 1
	})
	s.entries = slices.Insert(s.entries, i, entry)

	slog.Debug("history entry saved in memory", "id", entry.ID, "expression", entry.Expression)
	return nil
}

func (s *HistoryStore) SaveBulk(ctx context.Context, entries []domain.HistoryEntry) error {
	for _, e := range entries {
		if err := s.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (s *HistoryStore) Recent(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	return head(s.entries, limit), nil
}

func (s *HistoryStore) List(_ context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.HistoryEntry], error) {
	_ = page.Validate()

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	total := len(s.entries)
	offset := min((page.Page-1)*page.Size, total)
	end := min(offset+page.Size, total)

	items := append([]domain.HistoryEntry{}, s.entries[offset:end]...)
	return pagination.NewOffsetResult(items, int64(total), page.Page, page.Size), nil
}

func (s *HistoryStore) Search(_ context.Context, text string, limit int) ([]domain.HistoryEntry, error) {
	needle := strings.ToLower(strings.TrimSpace(text))

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	if needle == "" {
		return head(s.entries, limit), nil
	}

	found := []domain.HistoryEntry{}
	for _, e := range s.entries {
		if limit > 0 && len(found) == limit {
			break
		}
		if matches(e, needle) {
			found = append(found, e)
		}
	}
	return found, nil
}

func (s *HistoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	i := slices.IndexFunc(s.entries, func(e domain.HistoryEntry) bool { return e.ID == id })
	if i < 0 {
		return storage.ErrNotFound
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return nil
}

func (s *HistoryStore) Clear(_ context.Context) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.entries = nil
	return nil
}

func (s *HistoryStore) Prune(_ context.Context, keep int) (int64, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	keep = max(keep, 0)
	if len(s.entries) <= keep {
		return 0, nil
	}
	removed := len(s.entries) - keep
	s.entries = slices.Clone(s.entries[:keep])
	return int64(removed), nil
}

func (s *HistoryStore) Close() error {
	return nil
}

func head(entries []domain.HistoryEntry, limit int) []domain.HistoryEntry {
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}
	return append([]domain.HistoryEntry{}, entries[:limit]...)
}

func matches(e domain.HistoryEntry, needle string) bool {
	if strings.Contains(strings.ToLower(e.Expression), needle) {
		return true
	}
	return e.ErrorMessage != nil && strings.Contains(strings.ToLower(*e.ErrorMessage), needle)
}
