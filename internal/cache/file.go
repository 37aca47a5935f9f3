package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dashmover/dashmover/internal/logger"
	"github.com/dashmover/dashmover/models"
)

type fileStore struct {
	path string

	mu      sync.RWMutex
	entries map[string]models.Dashboard
	dirty   bool

	logger *logger.Logger
}

type filePersistedState struct {
	Entries map[string]models.Dashboard `json:"entries"`
}

// NewFileStore opens (or initializes) a JSON-file backed [Store] at path.
// An existing file is loaded eagerly; a missing or unreadable file starts
// empty and is rebuilt on the first Flush.
func NewFileStore(path string, log *logger.Logger) (Store, error) {
	s := &fileStore{
		path:    path,
		entries: make(map[string]models.Dashboard),
		logger:  log,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read cache file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		// the cache is an optimization: an unreadable file is treated as
		// absent and rebuilt, never a reason to fail the run
		s.logger.Warn().Err(err).Str("path", s.path).Msg("cache file unreadable, starting empty")
		s.dirty = true
		return nil
	}
	if st.Entries != nil {
		s.entries = st.Entries
	}

	s.logger.Debug().Str("path", s.path).Int("entries", len(s.entries)).Msg("loaded dashboard cache")
	return nil
}

func (s *fileStore) Get(_ context.Context, uid string) (*models.Dashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[uid]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *fileStore) Put(_ context.Context, dashboard models.Dashboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[dashboard.UID] = dashboard
	s.dirty = true
	return nil
}

// Flush rewrites the backing file when entries changed since the last flush.
// The payload is written to a temp file in the same directory and renamed
// over the target, so an interrupted flush never leaves a torn cache.
func (s *fileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Entries: s.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create cache temp file: %w", err)
	}

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write cache file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close cache temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o600); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("chmod cache file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace cache file: %w", err)
	}

	s.dirty = false
	return nil
}

func (s *fileStore) Close() error {
	return s.Flush()
}
