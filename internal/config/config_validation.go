// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that every resolved run satisfies the invariants required
// before any network call is made. A failed validation is a catastrophic
// configuration error and aborts the whole invocation.
func (cfg *Config) validate() error {
	for i := range cfg.Runs {
		if err := cfg.Runs[i].validate(); err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *Run) validate() error {
	if r.Source.Endpoint == "" {
		return ErrMissingSourceEndpoint
	}
	if r.Source.APIToken == "" && r.Source.AuthHeader.Key == "" {
		return ErrMissingSourceAuth
	}
	if r.Destination.Endpoint == "" {
		return ErrMissingDestinationEndpoint
	}
	if r.Destination.APIToken == "" && r.Destination.AuthHeader.Key == "" {
		return ErrMissingDestinationAuth
	}

	switch r.Source.CacheBackend {
	case CacheBackendFile, CacheBackendSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCacheBackend, r.Source.CacheBackend)
	}

	if r.Pipeline.RetryAttempts < 0 {
		return ErrInvalidRetryAttempts
	}
	if r.Pipeline.PushConcurrency < 1 {
		return ErrInvalidPushConcurrency
	}

	return nil
}

// Cache backend names accepted by Source.CacheBackend.
const (
	CacheBackendFile   = "file"
	CacheBackendSQLite = "sqlite"
)
