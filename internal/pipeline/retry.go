package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/dashmover/dashmover/internal/grafana"
	"github.com/sethvargo/go-retry"
)

// defaultRetryBase is the initial backoff delay between retry attempts.
const defaultRetryBase = 200 * time.Millisecond

// withRetry runs op, retrying up to attempts times with exponential backoff
// when the failure is [grafana.ErrTransient]. Auth, validation, conflict and
// not-found errors are returned immediately.
func (p *Pipeline) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(uint64(p.opts.RetryAttempts), retry.NewExponential(p.retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if errors.Is(err, grafana.ErrTransient) {
			return retry.RetryableError(err)
		}
		return err
	})
}
