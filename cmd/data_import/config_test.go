package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/sci-calc/internal/storage"
)

func TestAppConfig_Load(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("ENV_PATH", "")
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("DATASET_PATH", "data/expressions.csv")
	t.Setenv("BULK_SIZE", "")
	t.Setenv("BULK_ENABLED", "")
	t.Setenv("READ_WORKERS", "8")
	t.Setenv("CALC_LOCALE", "ko")

	cfg, err := NewAppConfig().Load()
	require.NoError(t, err)

	assert.Equal(t, "data/expressions.csv", cfg.DatasetPath)
	assert.Equal(t, storage.Sqlite, cfg.StorageConfig.Type)
	assert.True(t, cfg.BulkOptions.Enabled)
	assert.Equal(t, defaultBulkSize, cfg.BulkOptions.Size)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "ko", string(cfg.Locale))
}

func TestAppConfig_LoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "no dataset", env: map[string]string{"DATASET_PATH": ""}},
		{name: "bad bulk size", env: map[string]string{"BULK_SIZE": "lots"}},
		{name: "zero workers", env: map[string]string{"READ_WORKERS": "0"}},
		{name: "bad locale", env: map[string]string{"CALC_LOCALE": "xx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV", "test")
			t.Setenv("ENV_PATH", "")
			t.Setenv("STORAGE_TYPE", "")
			t.Setenv("DATASET_PATH", "data.csv")
			t.Setenv("BULK_SIZE", "")
			t.Setenv("READ_WORKERS", "")
			t.Setenv("CALC_LOCALE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewAppConfig().Load()
			assert.Error(t, err)
		})
	}
}

func TestRun_ImportsIntoSqlite(t *testing.T) {
	dir := t.TempDir()
	dataset := filepath.Join(dir, "expressions.csv")
	require.NoError(t, os.WriteFile(dataset, []byte("expression\n2+3\nsqrt(16)\n1/0\n"), 0o644))

	t.Setenv("ENV", "test")
	t.Setenv("ENV_PATH", "")
	t.Setenv("STORAGE_TYPE", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "history.db"))
	t.Setenv("DATASET_PATH", dataset)
	t.Setenv("MAPPING_CONFIG_PATH", "")
	t.Setenv("BULK_SIZE", "2")
	t.Setenv("READ_WORKERS", "")
	t.Setenv("CALC_LOCALE", "")

	cfg, err := NewAppConfig().Load()
	require.NoError(t, err)
	require.NoError(t, run(t.Context(), cfg))
}
