// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Dashboard is a single dashboard as fetched from the source Grafana.
// The UID is the stable identity of the dashboard within an organization and
// is never rewritten; Payload is the raw dashboard JSON body and is only
// mutated by the declared transforms (folder suffix, folder/org
// reassignment).
type Dashboard struct {
	// UID is the stable unique identifier within the org.
	UID string `json:"uid"`

	// Title is the dashboard display title.
	Title string `json:"title"`

	// FolderUID references the parent folder, empty for the General folder.
	FolderUID string `json:"folder_uid"`

	// FolderTitle is the parent folder title as reported by the source.
	FolderTitle string `json:"folder_title"`

	// OrgID is the source organization the dashboard was fetched from.
	OrgID int64 `json:"org_id"`

	// Payload is the opaque dashboard JSON exactly as returned by
	// GET /api/dashboards/uid/{uid} (the "dashboard" object).
	Payload json.RawMessage `json:"payload"`

	// FetchedAt records when the payload was read from the source.
	FetchedAt time.Time `json:"fetched_at"`
}

// SearchHit is one row of the Grafana /api/search response.
type SearchHit struct {
	UID         string `json:"uid"`
	Title       string `json:"title"`
	Type        string `json:"type"` // "dash-db" or "dash-folder"
	FolderUID   string `json:"folderUid,omitempty"`
	FolderTitle string `json:"folderTitle,omitempty"`
}

// Search result types returned by /api/search.
const (
	SearchTypeDashboard = "dash-db"
	SearchTypeFolder    = "dash-folder"
)

// IsDashboard reports whether the hit is a dashboard row.
func (h SearchHit) IsDashboard() bool {
	return h.Type == SearchTypeDashboard
}

// IsFolder reports whether the hit is a folder row.
func (h SearchHit) IsFolder() bool {
	return h.Type == SearchTypeFolder
}
