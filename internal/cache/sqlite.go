package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dashmover/dashmover/internal/logger"
	"github.com/dashmover/dashmover/migrations"
	"github.com/dashmover/dashmover/models"
)

const cacheTable = "dashboard_cache"

type sqliteStore struct {
	db *sql.DB

	mu sync.Mutex // single-writer discipline over the db file

	logger *logger.Logger
}

// NewSQLiteStore opens (or creates) a sqlite-backed [Store] at path and
// applies the embedded schema migrations.
func NewSQLiteStore(ctx context.Context, path string, log *logger.Logger) (Store, error) {
	if err := createDBFileIfNotExists(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping cache db: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug().Str("path", path).Msg("opened sqlite dashboard cache")
	return &sqliteStore{db: db, logger: log}, nil
}

func createDBFileIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create cache db file: %w", err)
		}
		f.Close()
	}

	return nil
}

// newSQLiteStoreWithDB wires an existing connection; used by tests.
func newSQLiteStoreWithDB(db *sql.DB, log *logger.Logger) *sqliteStore {
	return &sqliteStore{db: db, logger: log}
}

func (s *sqliteStore) Get(ctx context.Context, uid string) (*models.Dashboard, error) {
	query, args, err := sq.
		Select("uid", "title", "folder_uid", "folder_title", "org_id", "payload", "fetched_at").
		From(cacheTable).
		Where(sq.Eq{"uid": uid}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cache select: %w", err)
	}

	var d models.Dashboard
	row := s.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&d.UID, &d.Title, &d.FolderUID, &d.FolderTitle, &d.OrgID, (*[]byte)(&d.Payload), &d.FetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache entry %s: %w", uid, err)
	}

	return &d, nil
}

func (s *sqliteStore) Put(ctx context.Context, dashboard models.Dashboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query, args, err := sq.
		Insert(cacheTable).
		Columns("uid", "title", "folder_uid", "folder_title", "org_id", "payload", "fetched_at").
		Values(dashboard.UID, dashboard.Title, dashboard.FolderUID, dashboard.FolderTitle,
			dashboard.OrgID, []byte(dashboard.Payload), dashboard.FetchedAt).
		Suffix(`ON CONFLICT(uid) DO UPDATE SET
			title = excluded.title,
			folder_uid = excluded.folder_uid,
			folder_title = excluded.folder_title,
			org_id = excluded.org_id,
			payload = excluded.payload,
			fetched_at = excluded.fetched_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build cache upsert: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write cache entry %s: %w", dashboard.UID, err)
	}

	return nil
}

// Flush is a no-op: sqlite commits each upsert immediately, so the file is
// always consistent.
func (s *sqliteStore) Flush() error {
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
