// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grafana provides the HTTP client used to talk to Grafana-compatible
// dashboard APIs on both ends of a migration.
//
// The primary abstraction is [Client], which decouples the pipeline from the
// transport. The package ships an HTTP/REST implementation ([NewHTTPClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrAuth] for 401/403,
// [ErrTransient] for 5xx and network failures).
package grafana

import (
	"context"

	"github.com/dashmover/dashmover/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/grafana_client_mock.go -package=mock

// Client defines transport-agnostic access to a Grafana instance.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package. All operations are network calls with no local
// side effects.
type Client interface {
	// SearchDashboards enumerates the dashboards visible to the
	// authenticated principal, scoped to the configured org.
	SearchDashboards(ctx context.Context) ([]models.SearchHit, error)

	// SearchFolders enumerates the folders visible to the authenticated
	// principal, scoped to the configured org.
	SearchFolders(ctx context.Context) ([]models.SearchHit, error)

	// GetDashboard fetches the full dashboard payload by uid. Returns
	// [ErrNotFound] (wrapped) if the uid does not exist.
	GetDashboard(ctx context.Context, uid string) (models.Dashboard, error)

	// PostDashboard creates or overwrites a dashboard at the destination
	// (idempotent upsert keyed by the uid inside the payload). folderUID
	// selects the destination folder; empty means the General folder.
	// Returns the uid reported by the server. Returns [ErrValidation] on
	// malformed payloads and [ErrConflict] when overwrite is disabled and
	// the uid collides with an incompatible version.
	PostDashboard(ctx context.Context, dashboard models.Dashboard, folderUID string, overwrite bool) (string, error)

	// CreateFolder creates a folder with the given uid and title,
	// optionally under a parent folder.
	CreateFolder(ctx context.Context, folder models.Folder) error

	// ListFolders lists folders in the configured org, optionally scoped
	// to a parent folder uid.
	ListFolders(ctx context.Context, parentUID string) ([]models.Folder, error)

	// FolderByTitle returns the folder with the exact title under
	// parentUID, or nil when no such folder exists.
	FolderByTitle(ctx context.Context, title, parentUID string) (*models.Folder, error)

	// ListDatasources enumerates datasource descriptors in the configured
	// org.
	ListDatasources(ctx context.Context) ([]models.Datasource, error)

	// SwitchOrg changes the active organizational context for subsequent
	// calls and verifies the switch took effect. It is a no-op when the
	// switch-org capability is disabled or no org is configured.
	SwitchOrg(ctx context.Context) error
}
