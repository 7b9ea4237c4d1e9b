package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CALC_TEST_VALUE=42\n"), 0o644))
	t.Setenv("ENV_PATH", path)
	t.Setenv("CALC_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("CALC_TEST_VALUE"))

	require.NoError(t, LoadDotEnv("local", "unused"))
	assert.Equal(t, "42", os.Getenv("CALC_TEST_VALUE"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, LoadDotEnv("local", ""))
	assert.NoError(t, LoadDotEnv("production", ""))
}
