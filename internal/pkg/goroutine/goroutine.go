// Package goroutine provides a bounded background-task manager used for
// fire-and-forget work such as delivery fan-out and event publishing.
package goroutine

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"go.uber.org/atomic"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 100

// Manager runs functions in goroutines with a configurable concurrency limit.
//
// It collects errors returned by tasks and can be waited on using Wait.
type Manager struct {
	mu     sync.Mutex
	errs   []error
	wg     sync.WaitGroup
	sema   chan struct{}
	closed atomic.Bool
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = runtime.NumCPU() * DefaultMaxGoroutine
	}

	return &Manager{
		sema: make(chan struct{}, maxGoroutine),
	}
}

// Go schedules a function to run in a goroutine if capacity is available.
//
// If the manager is closed or already at its concurrency limit, the function
// is not run and a warning is logged.
func (g *Manager) Go(pCtx context.Context, f func(ctx context.Context) error) {
	if g == nil {
		return
	}

	if g.closed.Load() {
		slog.WarnContext(pCtx, "goroutine manager is closed, skipping new goroutine")
		return
	}

	select {
	case g.sema <- struct{}{}:
		g.wg.Go(func() {
			defer func() {
				<-g.sema

				if rvr := recover(); rvr != nil {
					slog.ErrorContext(pCtx, "panic occurred in goroutine",
						"because", rvr,
						"stack", string(debug.Stack()),
					)
				}
			}()

			select {
			case <-pCtx.Done():
				slog.WarnContext(pCtx, "goroutine canceled", "because", pCtx.Err())
			default:
				if err := f(pCtx); err != nil {
					g.mu.Lock()
					g.errs = append(g.errs, err)
					g.mu.Unlock()
				}
			}
		})

	default:
		slog.WarnContext(pCtx, "maximum goroutine limit reached, failed to start new goroutine")
	}
}

// Wait blocks until all scheduled goroutines finish and returns any collected errors.
func (g *Manager) Wait() error {
	if g == nil {
		return nil
	}

	g.closed.Store(true)
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}
