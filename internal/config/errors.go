package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration values are incomplete or invalid.
var (
	// ErrMissingSourceEndpoint indicates the source Grafana base URL is unset.
	ErrMissingSourceEndpoint = errors.New("source endpoint is required")
	// ErrMissingSourceAuth indicates no api_token and no auth_header were
	// configured for the source.
	ErrMissingSourceAuth = errors.New("source requires api_token or auth_header")
	// ErrMissingDestinationEndpoint indicates the destination Grafana base
	// URL is unset.
	ErrMissingDestinationEndpoint = errors.New("destination endpoint is required")
	// ErrMissingDestinationAuth indicates no api_token and no auth_header
	// were configured for the destination.
	ErrMissingDestinationAuth = errors.New("destination requires api_token or auth_header")
	// ErrInvalidCacheBackend indicates an unknown cache_backend value.
	ErrInvalidCacheBackend = errors.New("invalid cache backend")
	// ErrInvalidRetryAttempts indicates a negative retry count.
	ErrInvalidRetryAttempts = errors.New("retry_attempts must be zero or positive")
	// ErrInvalidPushConcurrency indicates a non-positive worker count.
	ErrInvalidPushConcurrency = errors.New("push_concurrency must be at least 1")
)
