// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/dashmover/dashmover/internal/logger"
	"github.com/dashmover/dashmover/models"
	"github.com/google/uuid"
)

// EnsureFolderStructure materializes a nested folder tree at the destination
// before any dashboard is pushed. structure maps folder titles to their
// children: a nil value is a leaf, a string is a single child title, and a
// nested map recurses. Existing folders with a matching title are reused.
//
// The returned uid is the uid of the last folder resolved in the walk
// (deepest, last in title order), which callers may use as the parent
// override for subsequent pushes. The walk is deterministic: siblings are
// visited in sorted title order.
func EnsureFolderStructure(ctx context.Context, client grafanaFolderClient, structure map[string]any, log *logger.Logger) (string, error) {
	return ensureLevel(ctx, client, structure, "", log)
}

// grafanaFolderClient is the slice of the Grafana client the structure walk
// needs.
type grafanaFolderClient interface {
	CreateFolder(ctx context.Context, folder models.Folder) error
	FolderByTitle(ctx context.Context, title, parentUID string) (*models.Folder, error)
}

func ensureLevel(ctx context.Context, client grafanaFolderClient, level map[string]any, parentUID string, log *logger.Logger) (string, error) {
	titles := make([]string, 0, len(level))
	for title := range level {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	var lastUID string
	for _, title := range titles {
		uid, err := ensureTitled(ctx, client, title, parentUID, log)
		if err != nil {
			return "", err
		}
		lastUID = uid

		switch children := level[title].(type) {
		case nil:
		case string:
			lastUID, err = ensureTitled(ctx, client, children, uid, log)
		case map[string]any:
			lastUID, err = ensureLevel(ctx, client, children, uid, log)
		default:
			err = fmt.Errorf("folder structure: unsupported child type %T under %q", children, title)
		}
		if err != nil {
			return "", err
		}
	}

	return lastUID, nil
}

func ensureTitled(ctx context.Context, client grafanaFolderClient, title, parentUID string, log *logger.Logger) (string, error) {
	if title == models.GeneralFolderTitle || title == "" {
		// the General folder is implicit and must never be created
		return parentUID, nil
	}

	existing, err := client.FolderByTitle(ctx, title, parentUID)
	if err != nil {
		return "", fmt.Errorf("lookup folder %q: %w", title, err)
	}
	if existing != nil {
		log.Debug().Str("uid", existing.UID).Str("title", title).Msg("folder structure: reusing folder")
		return existing.UID, nil
	}

	folder := models.Folder{UID: uuid.NewString(), Title: title, ParentUID: parentUID}
	if err = client.CreateFolder(ctx, folder); err != nil {
		return "", fmt.Errorf("create folder %q: %w", title, err)
	}

	log.Info().Str("uid", folder.UID).Str("title", title).Msg("folder structure: folder created")
	return folder.UID, nil
}
