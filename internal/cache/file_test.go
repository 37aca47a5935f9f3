package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dashmover/dashmover/internal/logger"
	"github.com/dashmover/dashmover/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDashboard(uid string) models.Dashboard {
	return models.Dashboard{
		UID:         uid,
		Title:       "CPU",
		FolderUID:   "f1",
		FolderTitle: "Ops",
		OrgID:       1,
		Payload:     json.RawMessage(`{"uid":"` + uid + `","title":"CPU"}`),
		FetchedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestFileStore_PutGetRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	s, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	want := testDashboard("d1")
	require.NoError(t, s.Put(ctx, want))

	got, err := s.Get(ctx, "d1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.UID, got.UID)
	assert.JSONEq(t, string(want.Payload), string(got.Payload))
}

func TestFileStore_GetAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	s, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	got, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStore_FlushPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.json")
	ctx := context.Background()

	s, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, testDashboard("d1")))
	require.NoError(t, s.Put(ctx, testDashboard("d2")))
	require.NoError(t, s.Close())

	reopened, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "d2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "d2", got.UID)
}

func TestFileStore_PutOverwritesPriorEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	ctx := context.Background()

	s, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	first := testDashboard("d1")
	require.NoError(t, s.Put(ctx, first))

	second := first
	second.Title = "CPU v2"
	second.Payload = json.RawMessage(`{"uid":"d1","title":"CPU v2"}`)
	require.NoError(t, s.Put(ctx, second))

	got, err := s.Get(ctx, "d1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "CPU v2", got.Title)
}

func TestFileStore_FlushWithoutChangesLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	ctx := context.Background()

	s, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, testDashboard("d1")))
	require.NoError(t, s.Flush())

	before, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, s.Flush())

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestFileStore_CorruptedFileStartsEmptyAndRebuilds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	ctx := context.Background()

	// torn write: valid prefix of a real cache file
	require.NoError(t, os.WriteFile(path, []byte(`{"entries":{"d1":{"uid":"d1","ti`), 0o600))

	s, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	got, err := s.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Put(ctx, testDashboard("d2")))
	require.NoError(t, s.Close())

	reopened, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	got, err = reopened.Get(ctx, "d2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "d2", got.UID)
}

func TestFileStore_CorruptedFileRebuiltEvenWithoutPuts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	got, err := reopened.Get(context.Background(), "anything")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStore_FlushLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")
	ctx := context.Background()

	s, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, testDashboard("d1")))
	require.NoError(t, s.Flush())

	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "cache.json", names[0].Name())
}

func TestOpen_DisabledWithoutCacheFile(t *testing.T) {
	s, err := Open(context.Background(), sourceCfg("", ""), logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestOpen_SelectsFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	s, err := Open(context.Background(), sourceCfg(path, "file"), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s)
	defer s.Close()

	_, ok := s.(*fileStore)
	assert.True(t, ok)
}
