// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache persists previously fetched dashboards keyed by uid so a
// rerun of the pipeline can skip redundant network fetches. The cache is an
// optimization only: a missing or stale entry simply causes a re-fetch, and
// entries are never auto-expired.
package cache

import (
	"context"
	"fmt"

	"github.com/dashmover/dashmover/internal/config"
	"github.com/dashmover/dashmover/internal/logger"
	"github.com/dashmover/dashmover/models"
)

//go:generate mockgen -source=cache.go -destination=../mock/cache_store_mock.go -package=mock

// Store is a uid-keyed dashboard cache. Implementations are the sole writer
// of their backing file.
type Store interface {
	// Get returns the cached dashboard for uid, or nil when absent.
	Get(ctx context.Context, uid string) (*models.Dashboard, error)

	// Put overwrites any prior entry for dashboard.UID.
	Put(ctx context.Context, dashboard models.Dashboard) error

	// Flush persists pending writes. It is safe to call on any exit path,
	// including mid-run failures, and always leaves the backing file in a
	// consistent, reusable state.
	Flush() error

	// Close flushes and releases the backing file.
	Close() error
}

// Open constructs the [Store] selected by cfg.CacheBackend, backed by
// cfg.CacheFile. It returns (nil, nil) when no cache file is configured.
func Open(ctx context.Context, cfg config.Source, log *logger.Logger) (Store, error) {
	if cfg.CacheFile == "" {
		return nil, nil
	}

	switch cfg.CacheBackend {
	case config.CacheBackendSQLite:
		return NewSQLiteStore(ctx, cfg.CacheFile, log)
	case config.CacheBackendFile, "":
		return NewFileStore(cfg.CacheFile, log)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidCacheBackend, cfg.CacheBackend)
	}
}
