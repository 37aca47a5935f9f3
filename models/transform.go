// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TransformRules is the configuration-derived rule set applied to every
// resource that survives filtering. The zero value applies no transforms.
// Rules are read-only for the duration of a run.
type TransformRules struct {
	// ParentFolderUID, when non-empty, reassigns migrated folders (and
	// folderless dashboards) under this destination folder.
	ParentFolderUID string

	// FolderSuffix, when non-empty, is appended verbatim to every migrated
	// folder title. It is reapplied on every run: migrating an already
	// suffixed folder a second time yields a doubled suffix. That is the
	// documented behavior, not a bug.
	FolderSuffix string

	// OrgID, when non-zero, is the destination organization. The client
	// switches its active org before the push phase when the switch-org
	// capability is enabled.
	OrgID int64
}

// SuffixedTitle returns title with the folder suffix appended, leaving the
// General folder untouched.
func (r TransformRules) SuffixedTitle(title string) string {
	if title == GeneralFolderTitle || title == "" {
		return title
	}
	return title + r.FolderSuffix
}
