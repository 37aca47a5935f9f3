// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pipeline orchestrates one migration run: enumerate dashboards and
// folders on the source, consult the fetch cache, apply the uid filter and
// transform rules, then push folders and dashboards to the destination.
//
// Every resource walks the state machine
// Pending → Fetched → Filtered(kept|dropped) → Transformed → Pushed|Failed;
// per-resource failures are collected into the run report and never abort
// the run. Only authentication failures and catastrophic configuration
// errors abort.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dashmover/dashmover/internal/cache"
	"github.com/dashmover/dashmover/internal/grafana"
	"github.com/dashmover/dashmover/internal/logger"
	"github.com/dashmover/dashmover/internal/workers"
	"github.com/dashmover/dashmover/models"
	"github.com/google/uuid"
)

// Options carries the run-scoped knobs derived from configuration. All
// fields are read-only during a run.
type Options struct {
	// Rules is the transform rule set applied to surviving resources.
	Rules models.TransformRules

	// UIDFilterList restricts the run to the listed dashboard uids;
	// empty means no restriction.
	UIDFilterList []string

	// Overwrite controls whether pushes replace existing dashboards.
	Overwrite bool

	// RetryAttempts bounds retries of transient failures per call.
	RetryAttempts int

	// PushConcurrency bounds parallel dashboard pushes. Folders are always
	// pushed sequentially, and before any dashboard.
	PushConcurrency int

	// NoCache disables cache reads (writes still happen), forcing a
	// re-fetch of every resource.
	NoCache bool
}

// Pipeline owns the in-memory resource set for the duration of one run.
type Pipeline struct {
	source grafana.Client
	dest   grafana.Client
	store  cache.Store // nil when caching is disabled

	opts      Options
	retryBase time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	report models.Report
}

// New constructs a Pipeline. store may be nil to disable caching.
func New(source, dest grafana.Client, store cache.Store, opts Options, log *logger.Logger) *Pipeline {
	return &Pipeline{
		source:    source,
		dest:      dest,
		store:     store,
		opts:      opts,
		retryBase: defaultRetryBase,
		logger:    log,
	}
}

// Run executes the migration and returns the run report. The returned error
// is non-nil only when the run aborted (authentication failure or a failed
// enumeration); per-resource failures are reported, not returned.
//
// The cache is flushed on every exit path, so an aborted run still leaves a
// consistent, reusable cache file.
func (p *Pipeline) Run(ctx context.Context) (*models.Report, error) {
	start := time.Now()
	p.report = models.Report{}
	defer func() {
		p.flushCache()
		p.report.Duration = models.Duration(time.Since(start))
	}()

	if err := p.source.SwitchOrg(ctx); err != nil {
		return &p.report, fmt.Errorf("switch source org: %w", err)
	}

	var hits []models.SearchHit
	err := p.withRetry(ctx, func(ctx context.Context) error {
		var searchErr error
		hits, searchErr = p.source.SearchDashboards(ctx)
		return searchErr
	})
	if err != nil {
		return &p.report, fmt.Errorf("enumerate source dashboards: %w", err)
	}

	folderTitles, err := p.sourceFolderTitles(ctx)
	if err != nil {
		return &p.report, fmt.Errorf("enumerate source folders: %w", err)
	}

	// datasources ride along in the report for post-migration remapping
	if datasources, dsErr := p.source.ListDatasources(ctx); dsErr != nil {
		p.logger.Warn().Err(dsErr).Msg("could not list source datasources")
	} else {
		p.report.Datasources = datasources
		p.logger.Debug().Int("count", len(datasources)).Msg("source datasources")
	}

	kept, dropped := Filter(hits, p.opts.UIDFilterList)
	for _, hit := range dropped {
		p.record(models.ResourceResult{
			Kind: models.KindDashboard, UID: hit.UID, Title: hit.Title,
			Status: models.StatusDropped,
		})
	}
	p.report.UnmatchedFilter = Unmatched(hits, p.opts.UIDFilterList)
	for _, uid := range p.report.UnmatchedFilter {
		p.logger.Warn().Str("uid", uid).Msg("filter uid matched no source dashboard")
	}

	dashboards, err := p.fetchAll(ctx, kept, folderTitles)
	if err != nil {
		return &p.report, err
	}

	if err = p.dest.SwitchOrg(ctx); err != nil {
		return &p.report, fmt.Errorf("switch destination org: %w", err)
	}

	// folders first: a dashboard's folderUid must exist at the destination
	// before the dashboard referencing it is created
	folderMap, failedFolders, err := p.pushFolders(ctx, dashboards)
	if err != nil {
		return &p.report, err
	}

	if err = p.pushDashboards(ctx, dashboards, folderMap, failedFolders); err != nil {
		return &p.report, err
	}

	return &p.report, nil
}

func (p *Pipeline) sourceFolderTitles(ctx context.Context) (map[string]string, error) {
	var hits []models.SearchHit
	err := p.withRetry(ctx, func(ctx context.Context) error {
		var searchErr error
		hits, searchErr = p.source.SearchFolders(ctx)
		return searchErr
	})
	if err != nil {
		return nil, err
	}

	titles := make(map[string]string, len(hits))
	for _, hit := range hits {
		titles[hit.UID] = hit.Title
	}
	return titles, nil
}

// fetchAll resolves each kept hit to a full dashboard, preferring the cache
// over the network. Per-dashboard fetch failures are recorded and skipped;
// an authentication failure aborts.
func (p *Pipeline) fetchAll(ctx context.Context, kept []models.SearchHit, folderTitles map[string]string) ([]models.Dashboard, error) {
	dashboards := make([]models.Dashboard, 0, len(kept))

	for _, hit := range kept {
		dash, err := p.fetchOne(ctx, hit.UID)
		if err != nil {
			if errors.Is(err, grafana.ErrAuth) {
				return nil, fmt.Errorf("fetch dashboard %s: %w", hit.UID, err)
			}
			p.record(models.ResourceResult{
				Kind: models.KindDashboard, UID: hit.UID, Title: hit.Title,
				Status: models.StatusFailed, Reason: fmt.Sprintf("fetch: %v", err),
			})
			continue
		}

		if dash.FolderTitle == "" && dash.FolderUID != "" {
			dash.FolderTitle = folderTitles[dash.FolderUID]
		}
		dashboards = append(dashboards, dash)
	}

	return dashboards, nil
}

func (p *Pipeline) fetchOne(ctx context.Context, uid string) (models.Dashboard, error) {
	if p.store != nil && !p.opts.NoCache {
		entry, err := p.store.Get(ctx, uid)
		if err != nil {
			p.logger.Warn().Err(err).Str("uid", uid).Msg("cache read failed, falling back to fetch")
		} else if entry != nil {
			p.logger.Debug().Str("uid", uid).Msg("dashboard served from cache")
			return *entry, nil
		}
	}

	var dash models.Dashboard
	err := p.withRetry(ctx, func(ctx context.Context) error {
		var fetchErr error
		dash, fetchErr = p.source.GetDashboard(ctx, uid)
		return fetchErr
	})
	if err != nil {
		return models.Dashboard{}, err
	}

	if p.store != nil {
		if err = p.store.Put(ctx, dash); err != nil {
			p.logger.Warn().Err(err).Str("uid", uid).Msg("cache write failed")
		}
	}

	return dash, nil
}

// pushFolders resolves every folder referenced by the dashboards at the
// destination, creating missing ones. It returns the source-folder-uid to
// destination-folder-uid mapping and the set of folders whose push failed.
// Folders are resolved sequentially, in first-reference order.
func (p *Pipeline) pushFolders(ctx context.Context, dashboards []models.Dashboard) (map[string]string, map[string]bool, error) {
	folderMap := make(map[string]string)
	failed := make(map[string]bool)
	seen := make(map[string]bool)

	for _, dash := range dashboards {
		if dash.FolderUID == "" || dash.FolderTitle == models.GeneralFolderTitle || dash.FolderTitle == "" {
			// General-folder dashboards land under the parent override
			folderMap[dash.FolderUID] = p.opts.Rules.ParentFolderUID
			continue
		}
		if seen[dash.FolderUID] {
			continue
		}
		seen[dash.FolderUID] = true

		destUID, err := p.ensureFolder(ctx, dash.FolderUID, dash.FolderTitle)
		if err != nil {
			if errors.Is(err, grafana.ErrAuth) {
				return nil, nil, fmt.Errorf("push folder %s: %w", dash.FolderUID, err)
			}
			failed[dash.FolderUID] = true
			p.record(models.ResourceResult{
				Kind: models.KindFolder, UID: dash.FolderUID, Title: dash.FolderTitle,
				Status: models.StatusFailed, Reason: err.Error(),
			})
			continue
		}

		folderMap[dash.FolderUID] = destUID
		p.record(models.ResourceResult{
			Kind: models.KindFolder, UID: destUID, Title: p.opts.Rules.SuffixedTitle(dash.FolderTitle),
			Status: models.StatusPushed,
		})
	}

	return folderMap, failed, nil
}

// ensureFolder reuses the destination folder with the (suffixed) title when
// it already exists, otherwise creates it, preserving the source uid where
// possible.
func (p *Pipeline) ensureFolder(ctx context.Context, sourceUID, title string) (string, error) {
	destTitle := p.opts.Rules.SuffixedTitle(title)
	parent := p.opts.Rules.ParentFolderUID

	var existing *models.Folder
	err := p.withRetry(ctx, func(ctx context.Context) error {
		var lookupErr error
		existing, lookupErr = p.dest.FolderByTitle(ctx, destTitle, parent)
		return lookupErr
	})
	if err != nil {
		return "", fmt.Errorf("lookup folder %q: %w", destTitle, err)
	}
	if existing != nil {
		return existing.UID, nil
	}

	uid := sourceUID
	if uid == "" {
		uid = uuid.NewString()
	}

	create := func(uid string) error {
		return p.withRetry(ctx, func(ctx context.Context) error {
			return p.dest.CreateFolder(ctx, models.Folder{UID: uid, Title: destTitle, ParentUID: parent})
		})
	}

	err = create(uid)
	if errors.Is(err, grafana.ErrConflict) {
		// source uid already taken by a different folder at the destination
		uid = uuid.NewString()
		err = create(uid)
	}
	if err != nil {
		return "", fmt.Errorf("create folder %q: %w", destTitle, err)
	}

	return uid, nil
}

// pushDashboards pushes every fetched dashboard, optionally in parallel.
// Dashboards whose folder failed to push are recorded as failed without a
// push attempt, honoring the destination's referential requirement.
func (p *Pipeline) pushDashboards(ctx context.Context, dashboards []models.Dashboard, folderMap map[string]string, failedFolders map[string]bool) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var abortMu sync.Mutex
	var abortErr error
	abort := func(err error) {
		abortMu.Lock()
		if abortErr == nil {
			abortErr = err
		}
		abortMu.Unlock()
		cancel()
	}

	tasks := make([]func(ctx context.Context), 0, len(dashboards))
	for i := range dashboards {
		dash := dashboards[i]
		tasks = append(tasks, func(ctx context.Context) {
			p.pushOne(ctx, dash, folderMap, failedFolders, abort)
		})
	}

	workers.NewPool(p.opts.PushConcurrency).Run(runCtx, tasks)

	abortMu.Lock()
	defer abortMu.Unlock()
	return abortErr
}

func (p *Pipeline) pushOne(ctx context.Context, dash models.Dashboard, folderMap map[string]string, failedFolders map[string]bool, abort func(error)) {
	if failedFolders[dash.FolderUID] {
		p.record(models.ResourceResult{
			Kind: models.KindDashboard, UID: dash.UID, Title: dash.Title,
			Status: models.StatusFailed, Reason: "parent folder push failed",
		})
		return
	}

	destFolder, ok := folderMap[dash.FolderUID]
	if !ok {
		destFolder = p.opts.Rules.ParentFolderUID
	}

	err := p.withRetry(ctx, func(ctx context.Context) error {
		_, pushErr := p.dest.PostDashboard(ctx, dash, destFolder, p.opts.Overwrite)
		return pushErr
	})
	if err != nil {
		if errors.Is(err, grafana.ErrAuth) {
			abort(fmt.Errorf("push dashboard %s: %w", dash.UID, err))
			return
		}
		p.record(models.ResourceResult{
			Kind: models.KindDashboard, UID: dash.UID, Title: dash.Title,
			Status: models.StatusFailed, Reason: fmt.Sprintf("push: %v", err),
		})
		return
	}

	p.logger.Debug().Str("uid", dash.UID).Str("title", dash.Title).Msg("dashboard pushed")
	p.record(models.ResourceResult{
		Kind: models.KindDashboard, UID: dash.UID, Title: dash.Title,
		Status: models.StatusPushed,
	})
}

func (p *Pipeline) record(result models.ResourceResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch result.Status {
	case models.StatusPushed:
		p.report.Pushed = append(p.report.Pushed, result)
	case models.StatusDropped:
		p.report.Dropped = append(p.report.Dropped, result)
	case models.StatusFailed:
		p.report.Failed = append(p.report.Failed, result)
	}
}

func (p *Pipeline) flushCache() {
	if p.store == nil {
		return
	}
	if err := p.store.Flush(); err != nil {
		p.logger.Error().Err(err).Msg("cache flush failed")
	}
}
