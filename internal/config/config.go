// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Config is the top-level configuration container for dashmover. It is
// populated by merging values from environment variables, command-line
// flags, and an optional multi-document YAML run file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// Base holds the run settings loaded from environment variables and
	// flags. When a run file is configured, each YAML document is merged
	// on top of Base (env and flags win for fields they set).
	Base Run `envPrefix:""`

	// Runs is the resolved list of migration runs to execute in order.
	// Without a run file it contains exactly Base.
	Runs []Run

	// RunFilePath is the optional path to the YAML run file. Each YAML
	// document in the file describes one migration run. Populated via the
	// CONFIG environment variable or the -c / -config flag.
	RunFilePath string `env:"CONFIG"`

	// NoCache disables cache reads for this invocation so every resource
	// is re-fetched from the source. Cache writes still happen.
	NoCache bool `env:"NO_CACHE"`

	// LogLevel is the zerolog level name ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`
}

// Run describes one migration run: where to import dashboards from, where
// to export them to, and how the pipeline should behave.
type Run struct {
	// Name labels the run in reports and logs. Optional; unnamed runs are
	// numbered by position.
	Name string `env:"RUN_NAME" yaml:"name"`

	Source      Source      `envPrefix:"SOURCE_" yaml:"source"`
	Destination Destination `envPrefix:"DEST_" yaml:"destination"`
	Pipeline    Pipeline    `envPrefix:"PIPELINE_" yaml:"pipeline"`
}

// AuthHeader is a static header attached to every request, used instead of
// bearer-token auth (e.g. X-Grafana-Token deployments behind a proxy).
type AuthHeader struct {
	Key   string `env:"KEY" yaml:"key"`
	Value string `env:"VALUE" yaml:"value"`
}

// Grafana holds the connection settings shared by source and destination
// instances. Endpoint is the bare base URL without the /api prefix; the
// client appends API paths itself.
type Grafana struct {
	// Endpoint is the base API address, e.g. "https://grafana.example.com".
	Endpoint string `env:"ENDPOINT" yaml:"endpoint"`

	// APIToken is the bearer token sent in the Authorization header when
	// AuthHeader is not configured.
	APIToken string `env:"API_TOKEN" yaml:"api_token"`

	// AuthType overrides the default "Bearer " Authorization prefix.
	AuthType string `env:"AUTH_TYPE" yaml:"auth_type"`

	// AuthHeader, when Key is non-empty, takes precedence over APIToken.
	AuthHeader AuthHeader `envPrefix:"AUTH_HEADER_" yaml:"auth_header"`

	// OrgID scopes all calls to this organization. Zero means the token's
	// default org.
	OrgID int64 `env:"ORG_ID" yaml:"org_id"`

	// UseSwitchOrgAPI enables the multi-org switch-org capability
	// (POST /api/user/using/{org}). Defaults to true.
	UseSwitchOrgAPI *bool `env:"USE_SWITCH_ORG_API" yaml:"use_switch_org_api"`
}

// Source configures the Grafana instance dashboards are imported from.
type Source struct {
	Grafana `yaml:",inline"`

	// UIDFilterList restricts the run to the listed dashboard uids.
	// Empty means no restriction.
	UIDFilterList []string `env:"UID_FILTER_LIST" yaml:"uid_filter_list"`

	// CacheFile enables the fetch cache when non-empty.
	CacheFile string `env:"CACHE_FILE" yaml:"cache_file"`

	// CacheBackend selects the cache implementation: "file" (JSON, the
	// default) or "sqlite".
	CacheBackend string `env:"CACHE_BACKEND" yaml:"cache_backend"`
}

// Destination configures the Grafana instance dashboards are exported to,
// together with the transform rules applied on the way.
type Destination struct {
	Grafana `yaml:",inline"`

	// ParentFolderUID places migrated folders under this destination
	// folder instead of the root.
	ParentFolderUID string `env:"PARENT_FOLDER_UID" yaml:"parent_folder_uid"`

	// ParentFolderUIDFromStructure takes the parent folder uid from the
	// folder-structure step of the same run instead of ParentFolderUID.
	ParentFolderUIDFromStructure bool `env:"PARENT_FOLDER_UID_FROM_STRUCTURE" yaml:"parent_folder_uid_from_structure"`

	// FolderSuffix is appended to every migrated folder title.
	FolderSuffix string `env:"FOLDER_SUFFIX" yaml:"folder_suffix"`

	// Overwrite controls whether pushes replace existing dashboards with
	// the same uid. Defaults to true.
	Overwrite *bool `env:"OVERWRITE" yaml:"overwrite"`

	// FolderStructure is a nested map of folder titles to provision at the
	// destination before dashboards are pushed. YAML only.
	FolderStructure map[string]any `yaml:"folder_structure"`
}

// Pipeline holds run-behavior knobs with documented defaults.
type Pipeline struct {
	// RequestTimeout is the per-call HTTP timeout. Default 30s.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" yaml:"-"`

	// RetryAttempts is the number of retries for transient failures.
	// Default 3. Non-transient errors are never retried.
	RetryAttempts int `env:"RETRY_ATTEMPTS" yaml:"retry_attempts"`

	// PushConcurrency bounds parallel dashboard pushes. Default 1
	// (sequential). Folders are always pushed sequentially and first.
	PushConcurrency int `env:"PUSH_CONCURRENCY" yaml:"push_concurrency"`

	// ReportFile is the YAML run-report path. Default "result_report.yml".
	ReportFile string `env:"REPORT_FILE" yaml:"report_file"`

	// ErrorsFile is the CSV error-report path. Default "errors.csv".
	ErrorsFile string `env:"ERRORS_FILE" yaml:"errors_file"`
}

// Defaults applied by the builder after all sources are merged.
const (
	DefaultAuthType        = "Bearer "
	DefaultRequestTimeout  = 30 * time.Second
	DefaultRetryAttempts   = 3
	DefaultPushConcurrency = 1
	DefaultReportFile      = "result_report.yml"
	DefaultErrorsFile      = "errors.csv"
	DefaultCacheBackend    = "file"
)

// SwitchOrgEnabled resolves the UseSwitchOrgAPI tri-state: unset means true.
func (g Grafana) SwitchOrgEnabled() bool {
	return g.UseSwitchOrgAPI == nil || *g.UseSwitchOrgAPI
}

// OverwriteEnabled resolves the Overwrite tri-state: unset means true.
func (d Destination) OverwriteEnabled() bool {
	return d.Overwrite == nil || *d.Overwrite
}

// GetConfig loads, merges, and validates the dashmover configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. YAML run file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to load
// or a resolved run fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withRunFile().
		build()
}
