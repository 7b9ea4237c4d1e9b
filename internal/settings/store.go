// Package settings persists the user's calculator preferences.
package settings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
)

// Store loads and saves settings. Load never fails for a store that has
// nothing saved yet; it returns domain.DefaultSettings instead.
type Store interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

type MemoryStore struct {
	mu       sync.RWMutex
	settings domain.Settings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{settings: domain.DefaultSettings()}
}

func (m *MemoryStore) Load(_ context.Context) (domain.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings, nil
}

func (m *MemoryStore) Save(_ context.Context, s domain.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s.Normalize()
	return nil
}

// FileStore keeps settings in a YAML file. Saves go to a temp file in the
// same directory that is then renamed over the target.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Load(_ context.Context) (domain.Settings, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	file, err := os.Open(f.path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("settings file not found, using defaults", "path", f.path)
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	s, err := decode(file)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to decode settings file %s: %w", f.path, err)
	}
	return s, nil
}

func (f *FileStore) Save(_ context.Context, s domain.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := yaml.Marshal(s.Normalize())
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp settings file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	slog.Debug("settings saved", "path", f.path)
	return nil
}

// decode starts from the defaults so keys missing in the file keep their
// default values.
func decode(r io.Reader) (domain.Settings, error) {
	s := domain.DefaultSettings()
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, err
	}
	return s.Normalize(), nil
}

// NewStore returns a FileStore for path, or a MemoryStore when path is empty.
func NewStore(path string) Store {
	if path == "" {
		return NewMemoryStore()
	}
	return NewFileStore(path)
}
