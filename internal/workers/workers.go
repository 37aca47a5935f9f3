// Package workers provides a bounded worker pool used by the migration
// pipeline's push phase.
package workers

import (
	"context"
	"sync"
)

// Pool executes tasks on a fixed number of goroutines. Tasks are picked up
// in submission order; once the context is cancelled, queued tasks that have
// not started are skipped so cancellation between resources takes effect
// promptly.
type Pool struct {
	size int
}

// NewPool returns a pool of the given size. Sizes below 1 are clamped to 1
// (sequential execution).
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{size: size}
}

// Run executes all tasks and blocks until every started task has finished.
func (p *Pool) Run(ctx context.Context, tasks []func(ctx context.Context)) {
	queue := make(chan func(ctx context.Context))

	var wg sync.WaitGroup
	wg.Add(p.size)
	for i := 0; i < p.size; i++ {
		go func() {
			defer wg.Done()
			for task := range queue {
				if ctx.Err() != nil {
					continue // drain without running
				}
				task(ctx)
			}
		}()
	}

	for _, task := range tasks {
		queue <- task
	}
	close(queue)

	wg.Wait()
}
