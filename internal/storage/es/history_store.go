package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
	"github.com/DjordjeVuckovic/sci-calc/pkg/pagination"
)

// maxResultWindow is the index's default from+size ceiling; Recent, Search
// and Prune never page past it.
const maxResultWindow = 10_000

// HistoryStore indexes history entries as documents keyed by entry ID.
// Writes wait for a refresh so they are visible to the next read.
// Every document carries a seq that grows with each save, so entries with
// the same timestamp sort with the later save first.
type HistoryStore struct {
	client    *elasticsearch.TypedClient
	indexName string
	lastSeq   atomic.Int64
}

var _ storage.HistoryStore = (*HistoryStore)(nil)

func NewHistoryStore(ctx context.Context, config ClientConfig) (*HistoryStore, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &HistoryStore{
		client:    client,
		indexName: config.IndexName,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return s, nil
}

func (s *HistoryStore) Save(ctx context.Context, entry domain.HistoryEntry) error {
	doc := toDocument(entry, s.nextSeq())

	res, err := s.client.Index(s.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index history entry: %w", err)
	}

	slog.Debug("history entry indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return nil
}

func (s *HistoryStore) SaveBulk(ctx context.Context, entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         s.indexName,
		Client:        s.client,
		NumWorkers:    2,
		FlushBytes:    1e+6,
		FlushInterval: 5 * time.Second,
		Refresh:       "wait_for",
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var failed atomic.Int64

	for _, entry := range entries {
		doc := toDocument(entry, s.nextSeq())

		body, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal history document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(body),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add history document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	stats := bi.Stats()
	slog.Info("history bulk indexing completed",
		"indexed", stats.NumIndexed,
		"failed", failed.Load(),
		"total", len(entries),
		"index", s.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d history entries", n, len(entries))
	}
	return nil
}

func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = maxResultWindow
	}
	return s.search(ctx, &types.Query{MatchAll: &types.MatchAllQuery{}}, 0, limit)
}

func (s *HistoryStore) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.HistoryEntry], error) {
	_ = page.Validate()

	count, err := s.client.Count().Index(s.indexName).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count history: %w", err)
	}

	items, err := s.search(ctx, &types.Query{MatchAll: &types.MatchAllQuery{}}, (page.Page-1)*page.Size, page.Size)
	if err != nil {
		return nil, err
	}
	return pagination.NewOffsetResult(items, count.Count, page.Page, page.Size), nil
}

func (s *HistoryStore) Search(ctx context.Context, text string, limit int) ([]domain.HistoryEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.Recent(ctx, limit)
	}
	if limit <= 0 {
		limit = maxResultWindow
	}

	pattern := "*" + escapeWildcard(text) + "*"
	caseInsensitive := true
	wildcard := func(field string) types.Query {
		return types.Query{
			Wildcard: map[string]types.WildcardQuery{
				field: {Value: &pattern, CaseInsensitive: &caseInsensitive},
			},
		}
	}

	query := &types.Query{
		Bool: &types.BoolQuery{
			Should: []types.Query{wildcard("expression"), wildcard("error_message")},
		},
	}
	return s.search(ctx, query, 0, limit)
}

func (s *HistoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.client.Exists(s.indexName, id.String()).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to look up history entry: %w", err)
	}
	if !exists {
		return storage.ErrNotFound
	}

	if _, err := s.client.Delete(s.indexName, id.String()).Refresh(refresh.Waitfor).Do(ctx); err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	return nil
}

func (s *HistoryStore) Clear(ctx context.Context) error {
	_, err := s.client.DeleteByQuery(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Refresh(true).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *HistoryStore) Prune(ctx context.Context, keep int) (int64, error) {
	keep = max(keep, 0)
	if keep >= maxResultWindow {
		return 0, nil
	}

	stale, err := s.search(ctx, &types.Query{MatchAll: &types.MatchAllQuery{}}, keep, maxResultWindow-keep)
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	ids := make([]string, len(stale))
	for i, e := range stale {
		ids[i] = e.ID.String()
	}

	res, err := s.client.DeleteByQuery(s.indexName).
		Query(&types.Query{Ids: &types.IdsQuery{Values: ids}}).
		Refresh(true).
		Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}
	if res.Deleted == nil {
		return 0, nil
	}
	return *res.Deleted, nil
}

func (s *HistoryStore) Close() error {
	return nil
}

func (s *HistoryStore) search(ctx context.Context, query *types.Query, from, size int) ([]domain.HistoryEntry, error) {
	desc := sortorder.Desc

	res, err := s.client.Search().
		Index(s.indexName).
		Query(query).
		From(from).
		Size(size).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"timestamp": {Order: &desc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"seq": {Order: &desc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch history query failed", "error", err, "from", from, "size", size)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		entry, err := doc.toEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Document is the indexed form of a history entry.
type Document struct {
	ID           string    `json:"id"`
	Expression   string    `json:"expression"`
	Result       *float64  `json:"result,omitempty"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	AngleUnit    string    `json:"angle_unit"`
	Timestamp    time.Time `json:"timestamp"`
	Seq          int64     `json:"seq"`
}

// nextSeq returns a value above every seq handed out before. It follows the
// wall clock in nanoseconds so documents written by an earlier process still
// sort below new ones.
func (s *HistoryStore) nextSeq() int64 {
	for {
		last := s.lastSeq.Load()
		next := max(time.Now().UnixNano(), last+1)
		if s.lastSeq.CompareAndSwap(last, next) {
			return next
		}
	}
}

func toDocument(e domain.HistoryEntry, seq int64) Document {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	return Document{
		ID:           e.ID.String(),
		Expression:   e.Expression,
		Result:       e.Result,
		ErrorMessage: e.ErrorMessage,
		AngleUnit:    e.AngleUnit.String(),
		Timestamp:    e.Timestamp.UTC(),
		Seq:          seq,
	}
}

func (d Document) toEntry() (domain.HistoryEntry, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("invalid history id %q: %w", d.ID, err)
	}
	unit, err := angle.Parse(d.AngleUnit)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	return domain.HistoryEntry{
		ID:           id,
		Expression:   d.Expression,
		Result:       d.Result,
		ErrorMessage: d.ErrorMessage,
		AngleUnit:    unit,
		Timestamp:    d.Timestamp.UTC(),
	}, nil
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func escapeWildcard(s string) string {
	return wildcardEscaper.Replace(s)
}
