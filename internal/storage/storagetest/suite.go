// Package storagetest holds the behaviour every storage.HistoryStore
// implementation must share, runnable against any backend.
package storagetest

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
	"github.com/DjordjeVuckovic/sci-calc/pkg/pagination"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// Factory returns an empty store; the suite clears it before each case.
type Factory func(t *testing.T) storage.HistoryStore

func RunHistoryStoreSuite(t *testing.T, newStore Factory) {
	store := newStore(t)

	cases := []struct {
		name string
		fn   func(t *testing.T, s storage.HistoryStore)
	}{
		{name: "save and recent", fn: testSaveAndRecent},
		{name: "recent limit", fn: testRecentLimit},
		{name: "save bulk", fn: testSaveBulk},
		{name: "list pages", fn: testList},
		{name: "search", fn: testSearch},
		{name: "delete", fn: testDelete},
		{name: "clear", fn: testClear},
		{name: "prune", fn: testPrune},
		{name: "equal timestamps", fn: testEqualTimestamps},
		{name: "equal timestamps bulk", fn: testEqualTimestampsBulk},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, store.Clear(context.Background()))
			tc.fn(t, store)
		})
	}
}

func entryAt(expression string, result float64, offset time.Duration) domain.HistoryEntry {
	e := domain.NewHistoryResult(expression, result, angle.Degree)
	e.Timestamp = base.Add(offset)
	return e
}

func seed(t *testing.T, s storage.HistoryStore, n int) []domain.HistoryEntry {
	t.Helper()
	entries := make([]domain.HistoryEntry, n)
	for i := range n {
		entries[i] = entryAt(fmt.Sprintf("%d+%d", i, i), float64(2*i), time.Duration(i)*time.Second)
		require.NoError(t, s.Save(context.Background(), entries[i]))
	}
	return entries
}

func ids(entries []domain.HistoryEntry) []uuid.UUID {
	out := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func testSaveAndRecent(t *testing.T, s storage.HistoryStore) {
	ctx := context.Background()

	ok := entryAt("2+3", 5, 0)
	ok.AngleUnit = angle.Radian
	failed := domain.NewHistoryError("5/0", "Cannot divide by zero", angle.Degree)
	failed.Timestamp = base.Add(time.Second)

	require.NoError(t, s.Save(ctx, ok))
	require.NoError(t, s.Save(ctx, failed))

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, failed.ID, got[0].ID)
	assert.True(t, got[0].HasError())
	assert.Equal(t, "Cannot divide by zero", *got[0].ErrorMessage)
	assert.Nil(t, got[0].Result)

	assert.Equal(t, ok.ID, got[1].ID)
	assert.Equal(t, "2+3", got[1].Expression)
	require.NotNil(t, got[1].Result)
	assert.Equal(t, 5.0, *got[1].Result)
	assert.Equal(t, angle.Radian, got[1].AngleUnit)
	assert.WithinDuration(t, ok.Timestamp, got[1].Timestamp, time.Millisecond)
}

func testRecentLimit(t *testing.T, s storage.HistoryStore) {
	entries := seed(t, s, 5)

	got, err := s.Recent(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{entries[4].ID, entries[3].ID, entries[2].ID}, ids(got))

	all, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func testSaveBulk(t *testing.T, s storage.HistoryStore) {
	entries := []domain.HistoryEntry{
		entryAt("1+1", 2, time.Second),
		entryAt("2+2", 4, 2*time.Second),
		entryAt("3+3", 6, 3*time.Second),
	}
	require.NoError(t, s.SaveBulk(context.Background(), entries))

	got, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{entries[2].ID, entries[1].ID, entries[0].ID}, ids(got))
}

func testList(t *testing.T, s storage.HistoryStore) {
	entries := seed(t, s, 5)

	page, err := s.List(context.Background(), pagination.OffsetRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.True(t, page.HasMore)
	assert.Equal(t, []uuid.UUID{entries[4].ID, entries[3].ID}, ids(page.Items))

	page, err = s.List(context.Background(), pagination.OffsetRequest{Page: 3, Size: 2})
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	assert.Equal(t, []uuid.UUID{entries[0].ID}, ids(page.Items))

	page, err = s.List(context.Background(), pagination.OffsetRequest{Page: 9, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func testSearch(t *testing.T, s storage.HistoryStore) {
	ctx := context.Background()

	sin := entryAt("sin(30)", 0.5, 0)
	sqrt := entryAt("SQRT(16)", 4, time.Second)
	failed := domain.NewHistoryError("ln(-1)", "Domain error", angle.Degree)
	failed.Timestamp = base.Add(2 * time.Second)
	for _, e := range []domain.HistoryEntry{sin, sqrt, failed} {
		require.NoError(t, s.Save(ctx, e))
	}

	got, err := s.Search(ctx, "sqrt", 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{sqrt.ID}, ids(got))

	got, err = s.Search(ctx, "domain", 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{failed.ID}, ids(got))

	got, err = s.Search(ctx, "(", 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{failed.ID, sqrt.ID, sin.ID}, ids(got))

	got, err = s.Search(ctx, "(", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = s.Search(ctx, "cos", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func testDelete(t *testing.T, s storage.HistoryStore) {
	entries := seed(t, s, 2)

	require.NoError(t, s.Delete(context.Background(), entries[0].ID))
	assert.ErrorIs(t, s.Delete(context.Background(), entries[0].ID), storage.ErrNotFound)
	assert.ErrorIs(t, s.Delete(context.Background(), uuid.New()), storage.ErrNotFound)

	got, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{entries[1].ID}, ids(got))
}

func testClear(t *testing.T, s storage.HistoryStore) {
	seed(t, s, 3)
	require.NoError(t, s.Clear(context.Background()))

	got, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func testPrune(t *testing.T, s storage.HistoryStore) {
	entries := seed(t, s, 5)

	removed, err := s.Prune(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	got, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{entries[4].ID, entries[3].ID}, ids(got))

	removed, err = s.Prune(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

// tiedEntries shares one timestamp across n entries and hands out IDs in
// descending order, so an ID tie-break would return the earliest save first.
func tiedEntries(n int) []domain.HistoryEntry {
	idList := make([]uuid.UUID, n)
	for i := range idList {
		idList[i] = uuid.New()
	}
	slices.SortFunc(idList, func(a, b uuid.UUID) int { return -bytes.Compare(a[:], b[:]) })

	entries := make([]domain.HistoryEntry, n)
	for i := range entries {
		entries[i] = entryAt(fmt.Sprintf("%d*%d", i, i), float64(i*i), time.Minute)
		entries[i].ID = idList[i]
	}
	return entries
}

func testEqualTimestamps(t *testing.T, s storage.HistoryStore) {
	ctx := context.Background()

	entries := tiedEntries(3)
	for _, e := range entries {
		require.NoError(t, s.Save(ctx, e))
	}
	want := []uuid.UUID{entries[2].ID, entries[1].ID, entries[0].ID}

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, want, ids(got))

	page, err := s.List(ctx, pagination.OffsetRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, want, ids(page.Items))

	removed, err := s.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	got, err = s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, want[:2], ids(got))
}

func testEqualTimestampsBulk(t *testing.T, s storage.HistoryStore) {
	ctx := context.Background()

	entries := tiedEntries(4)
	require.NoError(t, s.SaveBulk(ctx, entries))

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{entries[3].ID, entries[2].ID, entries[1].ID, entries[0].ID}, ids(got))
}
