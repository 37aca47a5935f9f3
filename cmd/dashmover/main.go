package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dashmover/dashmover/internal/cache"
	"github.com/dashmover/dashmover/internal/config"
	"github.com/dashmover/dashmover/internal/grafana"
	"github.com/dashmover/dashmover/internal/logger"
	"github.com/dashmover/dashmover/internal/pipeline"
	"github.com/dashmover/dashmover/internal/report"
	"github.com/dashmover/dashmover/models"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("dashmover")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	logger.SetGlobalLevel(cfg.LogLevel)
	log.Debug().Int("runs", len(cfg.Runs)).Msg("configuration resolved")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = cleanupReports(cfg.Runs); err != nil {
		log.Fatal().Err(err).Msg("error cleaning previous reports")
	}

	failed := false
	for i := range cfg.Runs {
		run := cfg.Runs[i]
		name := run.Name
		if name == "" {
			name = fmt.Sprintf("run-%d", i+1)
		}

		runLog := log.GetChildLogger()
		runLog.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("run", name)
		})

		if err = executeRun(ctx, runLog, cfg, run, name); err != nil {
			failed = true
			runLog.Error().Err(err).Msg("run aborted")
		}
	}

	if failed {
		os.Exit(1)
	}
}

func executeRun(ctx context.Context, log *logger.Logger, cfg *config.Config, run config.Run, name string) error {
	source, err := grafana.NewHTTPClient(run.Source.Grafana, run.Pipeline.RequestTimeout, log)
	if err != nil {
		return fmt.Errorf("create source client: %w", err)
	}

	dest, err := grafana.NewHTTPClient(run.Destination.Grafana, run.Pipeline.RequestTimeout, log)
	if err != nil {
		return fmt.Errorf("create destination client: %w", err)
	}

	store, err := cache.Open(ctx, run.Source, log)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	if store != nil {
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("error closing cache")
			}
		}()
	}

	parentFolderUID := run.Destination.ParentFolderUID
	if len(run.Destination.FolderStructure) > 0 {
		if err = dest.SwitchOrg(ctx); err != nil {
			return fmt.Errorf("switch destination org: %w", err)
		}

		lastUID, structErr := pipeline.EnsureFolderStructure(ctx, dest, run.Destination.FolderStructure, log)
		if structErr != nil {
			return fmt.Errorf("ensure folder structure: %w", structErr)
		}
		if run.Destination.ParentFolderUIDFromStructure {
			parentFolderUID = lastUID
			log.Info().Str("parent_folder_uid", parentFolderUID).Msg("parent folder taken from folder structure")
		}
	}

	p := pipeline.New(source, dest, store, pipeline.Options{
		Rules: models.TransformRules{
			ParentFolderUID: parentFolderUID,
			FolderSuffix:    run.Destination.FolderSuffix,
			OrgID:           run.Destination.OrgID,
		},
		UIDFilterList:   run.Source.UIDFilterList,
		Overwrite:       run.Destination.OverwriteEnabled(),
		RetryAttempts:   run.Pipeline.RetryAttempts,
		PushConcurrency: run.Pipeline.PushConcurrency,
		NoCache:         cfg.NoCache,
	}, log)

	result, runErr := p.Run(ctx)

	if result != nil {
		if err = report.WriteRunReport(run.Pipeline.ReportFile, name, result); err != nil {
			log.Error().Err(err).Msg("error writing run report")
		}
		if err = report.AppendErrors(run.Pipeline.ErrorsFile, name, result); err != nil {
			log.Error().Err(err).Msg("error writing errors report")
		}

		log.Info().Str("summary", report.Summary(result)).Msg("run finished")
	}

	return runErr
}

// cleanupReports removes report artifacts from a previous invocation once,
// before any run appends to them.
func cleanupReports(runs []config.Run) error {
	seen := make(map[string]bool)
	var paths []string
	for _, run := range runs {
		for _, path := range []string{run.Pipeline.ReportFile, run.Pipeline.ErrorsFile} {
			if path != "" && !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
		}
	}
	return report.Cleanup(paths...)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
