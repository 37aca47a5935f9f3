package grafana

import "errors"

// Sentinel errors mapped from HTTP responses. Per-resource handling in the
// pipeline relies on errors.Is against these values: ErrAuth aborts the run,
// ErrTransient is retried with bounded backoff, everything else is recorded
// for the resource and the run continues.
var (
	// ErrAuth indicates invalid or expired credentials (401/403).
	ErrAuth = errors.New("authentication failed")
	// ErrNotFound indicates a missing resource or org (404).
	ErrNotFound = errors.New("resource not found")
	// ErrValidation indicates a malformed payload (400).
	ErrValidation = errors.New("payload validation failed")
	// ErrConflict indicates a uid collision with an incompatible version
	// (409, or 412 when overwrite is disabled).
	ErrConflict = errors.New("resource conflict")
	// ErrTransient indicates a network failure or 5xx response, eligible
	// for retry.
	ErrTransient = errors.New("transient upstream error")
	// ErrOrgSwitch indicates the switch-org call succeeded but the active
	// org read back from the server did not change.
	ErrOrgSwitch = errors.New("organization switch not applied")
)
