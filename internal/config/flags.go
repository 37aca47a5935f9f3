package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-c/-config yaml run file path
//	-no-cache disable cache reads for this invocation
//	-source-endpoint source Grafana base URL
//	-source-token source Grafana API token
//	-dest-endpoint destination Grafana base URL
//	-dest-token destination Grafana API token
//	-parent-folder-uid destination folder override
//	-folder-suffix suffix appended to migrated folder titles
//	-request-timeout per-call HTTP timeout (e.g., "30s", "1m")
//	-retry-attempts bounded retry count for transient failures
//	-push-concurrency parallel dashboard pushes (1 = sequential)
//	-log-level zerolog level name
func ParseFlags() *Config {
	var runFilePath string
	var noCache bool
	var sourceEndpoint, sourceToken string
	var destEndpoint, destToken string
	var parentFolderUID string
	var folderSuffix string
	var requestTimeout time.Duration
	var retryAttempts int
	var pushConcurrency int
	var logLevel string

	flag.StringVar(&runFilePath, "c", "", "YAML run file path")
	flag.StringVar(&runFilePath, "config", "", "YAML run file path (alias)")
	flag.BoolVar(&noCache, "no-cache", false, "Disable importer cache reads")
	flag.StringVar(&sourceEndpoint, "source-endpoint", "", "Source Grafana base URL")
	flag.StringVar(&sourceToken, "source-token", "", "Source Grafana API token")
	flag.StringVar(&destEndpoint, "dest-endpoint", "", "Destination Grafana base URL")
	flag.StringVar(&destToken, "dest-token", "", "Destination Grafana API token")
	flag.StringVar(&parentFolderUID, "parent-folder-uid", "", "Destination parent folder uid")
	flag.StringVar(&folderSuffix, "folder-suffix", "", "Suffix appended to migrated folder titles")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Per-call HTTP timeout (e.g., 30s, 1m)")
	flag.IntVar(&retryAttempts, "retry-attempts", 0, "Retry count for transient failures")
	flag.IntVar(&pushConcurrency, "push-concurrency", 0, "Parallel dashboard pushes")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	flag.Parse()

	return &Config{
		Base: Run{
			Source: Source{
				Grafana: Grafana{
					Endpoint: sourceEndpoint,
					APIToken: sourceToken,
				},
			},
			Destination: Destination{
				Grafana: Grafana{
					Endpoint: destEndpoint,
					APIToken: destToken,
				},
				ParentFolderUID: parentFolderUID,
				FolderSuffix:    folderSuffix,
			},
			Pipeline: Pipeline{
				RequestTimeout:  requestTimeout,
				RetryAttempts:   retryAttempts,
				PushConcurrency: pushConcurrency,
			},
		},
		RunFilePath: runFilePath,
		NoCache:     noCache,
		LogLevel:    logLevel,
	}
}
