// Package config provides configuration loading, merging, and validation
// facilities for dashmover.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. YAML run file (one migration run per YAML document, with ${VAR}
//     substitution from the environment)
//
// The main entry point is [GetConfig], which resolves all sources into an
// ordered list of runs and validates each once at startup.
package config
