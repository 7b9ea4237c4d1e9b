package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

func TestStores_SaveLoad(t *testing.T) {
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "nested", "settings.yaml")),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.DefaultSettings(), got)

			want := domain.DefaultSettings()
			want.AngleUnit = angle.Radian
			want.DecimalPlaces = 6
			want.FirstLaunch = false
			require.NoError(t, store.Save(ctx, want))

			got, err = store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestStores_SaveNormalizes(t *testing.T) {
	for name, store := range map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "settings.yaml")),
	} {
		t.Run(name, func(t *testing.T) {
			s := domain.DefaultSettings()
			s.DecimalPlaces = 42
			s.MaxHistoryCount = 1

			require.NoError(t, store.Save(context.Background(), s))
			got, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, domain.MaxDecimalPlaces, got.DecimalPlaces)
			assert.Equal(t, domain.MinHistoryCount, got.MaxHistoryCount)
		})
	}
}

func TestFileStore_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("angle_unit: rad\ndecimal_places: 2\n"), 0o644))

	got, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.AngleUnit = angle.Radian
	want.DecimalPlaces = 2
	assert.Equal(t, want, got)
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestFileStore_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("angle_unit: gradians\n"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "settings.yaml"))
	require.NoError(t, store.Save(context.Background(), domain.DefaultSettings()))
	require.NoError(t, store.Save(context.Background(), domain.DefaultSettings()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "settings.yaml", entries[0].Name())
}

func TestNewStore(t *testing.T) {
	assert.IsType(t, &MemoryStore{}, NewStore(""))
	assert.IsType(t, &FileStore{}, NewStore("settings.yaml"))
}
