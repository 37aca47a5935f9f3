// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/dashmover/dashmover/internal/grafana"
	"github.com/dashmover/dashmover/internal/logger"
	"github.com/dashmover/dashmover/internal/mock"
	"github.com/dashmover/dashmover/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEnsureFolderStructure_CreatesNestedTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	ctx := context.Background()

	structure := map[string]any{
		"Teams": map[string]any{
			"Platform": "Dashboards",
		},
	}

	var teamsUID, platformUID, leafUID string

	gomock.InOrder(
		client.EXPECT().FolderByTitle(ctx, "Teams", "").Return(nil, nil),
		client.EXPECT().CreateFolder(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, f models.Folder) error {
				assert.Equal(t, "Teams", f.Title)
				assert.Empty(t, f.ParentUID)
				teamsUID = f.UID
				return nil
			},
		),
		client.EXPECT().FolderByTitle(ctx, "Platform", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, parentUID string) (*models.Folder, error) {
				assert.Equal(t, teamsUID, parentUID)
				return nil, nil
			},
		),
		client.EXPECT().CreateFolder(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, f models.Folder) error {
				assert.Equal(t, "Platform", f.Title)
				assert.Equal(t, teamsUID, f.ParentUID)
				platformUID = f.UID
				return nil
			},
		),
		client.EXPECT().FolderByTitle(ctx, "Dashboards", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, parentUID string) (*models.Folder, error) {
				assert.Equal(t, platformUID, parentUID)
				return nil, nil
			},
		),
		client.EXPECT().CreateFolder(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, f models.Folder) error {
				assert.Equal(t, "Dashboards", f.Title)
				leafUID = f.UID
				return nil
			},
		),
	)

	lastUID, err := EnsureFolderStructure(ctx, client, structure, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, leafUID, lastUID)
}

func TestEnsureFolderStructure_ReusesExistingFolders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	ctx := context.Background()

	client.EXPECT().FolderByTitle(ctx, "Teams", "").Return(&models.Folder{UID: "t1", Title: "Teams"}, nil)
	// no CreateFolder expectation: existing folders must be reused

	lastUID, err := EnsureFolderStructure(ctx, client, map[string]any{"Teams": nil}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "t1", lastUID)
}

func TestEnsureFolderStructure_SiblingsVisitedInTitleOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().FolderByTitle(ctx, "Alpha", "").Return(&models.Folder{UID: "a"}, nil),
		client.EXPECT().FolderByTitle(ctx, "Beta", "").Return(&models.Folder{UID: "b"}, nil),
	)

	lastUID, err := EnsureFolderStructure(ctx, client, map[string]any{"Beta": nil, "Alpha": nil}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "b", lastUID)
}

func TestEnsureFolderStructure_NeverCreatesGeneral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	ctx := context.Background()

	// a child under General attaches to General's parent instead
	client.EXPECT().FolderByTitle(ctx, "Nested", "").Return(&models.Folder{UID: "n1"}, nil)

	lastUID, err := EnsureFolderStructure(ctx, client, map[string]any{
		models.GeneralFolderTitle: "Nested",
	}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "n1", lastUID)
}

func TestEnsureFolderStructure_LookupErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	ctx := context.Background()

	client.EXPECT().FolderByTitle(ctx, "Teams", "").
		Return(nil, fmt.Errorf("%w: status 401", grafana.ErrAuth))

	_, err := EnsureFolderStructure(ctx, client, map[string]any{"Teams": nil}, logger.Nop())
	require.ErrorIs(t, err, grafana.ErrAuth)
}

func TestEnsureFolderStructure_RejectsUnsupportedChildType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	ctx := context.Background()

	client.EXPECT().FolderByTitle(ctx, "Teams", "").Return(&models.Folder{UID: "t1"}, nil)

	_, err := EnsureFolderStructure(ctx, client, map[string]any{"Teams": 42}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported child type")
}
