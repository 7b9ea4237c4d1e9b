package es

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
	"github.com/DjordjeVuckovic/sci-calc/internal/storage/storagetest"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
	pkgtesting "github.com/DjordjeVuckovic/sci-calc/pkg/testing"
)

func TestHistoryStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping elasticsearch container test in short mode")
	}

	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	store, err := NewHistoryStore(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "calc_history_test",
	})
	require.NoError(t, err)
	require.True(t, NewHealthChecker(store).Healthy(ctx))

	// second call sees the existing index
	require.NoError(t, store.EnsureIndex(ctx))

	storagetest.RunHistoryStoreSuite(t, func(t *testing.T) storage.HistoryStore {
		return store
	})
}

func TestDocumentRoundTrip(t *testing.T) {
	entry := domain.NewHistoryError("ln(-1)", "Domain error", angle.Radian)

	got, err := toDocument(entry, 1).toEntry()
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, entry.Expression, got.Expression)
	assert.Equal(t, angle.Radian, got.AngleUnit)
	assert.Nil(t, got.Result)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "Domain error", *got.ErrorMessage)
}

func TestEscapeWildcard(t *testing.T) {
	assert.Equal(t, `2\*3\?\\`, escapeWildcard(`2*3?\`))
}

func TestNextSeqIncreases(t *testing.T) {
	s := &HistoryStore{}
	s.lastSeq.Store(time.Now().Add(time.Hour).UnixNano())

	first := s.nextSeq()
	second := s.nextSeq()
	assert.Greater(t, second, first)
	assert.Equal(t, first+1, second)
}
