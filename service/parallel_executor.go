package service

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/ludo-technologies/prosescan/domain"
	"golang.org/x/sync/errgroup"
)

// DocumentTask evaluates one document and returns its result
type DocumentTask func(ctx context.Context, path string) (*domain.FileResult, error)

// TaskError represents a single document failure
type TaskError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e TaskError) Error() string {
	return fmt.Sprintf("[%s] %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e TaskError) Unwrap() error {
	return e.Err
}

// AggregatedError collects all document failures in a batch
type AggregatedError struct {
	Errors []TaskError
}

// Error implements the error interface
func (e *AggregatedError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d documents failed:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Unwrap returns the first error for errors.Is/As compatibility
func (e *AggregatedError) Unwrap() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[0].Err
}

// ParallelDocumentRunner fans a document batch out over a bounded worker
// pool. Results land in a slice indexed by input position, so downstream
// aggregation never depends on completion order.
type ParallelDocumentRunner struct {
	workers  int
	progress domain.ProgressManager
}

// NewParallelDocumentRunner creates a runner with the given worker count.
// A count of zero or less means one worker per CPU.
func NewParallelDocumentRunner(workers int) *ParallelDocumentRunner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &ParallelDocumentRunner{workers: workers}
}

// NewParallelDocumentRunnerWithProgress creates a runner that reports batch
// progress
func NewParallelDocumentRunnerWithProgress(workers int, pm domain.ProgressManager) *ParallelDocumentRunner {
	runner := NewParallelDocumentRunner(workers)
	runner.progress = pm
	return runner
}

// Workers returns the effective worker count
func (r *ParallelDocumentRunner) Workers() int {
	return r.workers
}

// Run evaluates every path with the task. Per-document failures are
// collected, not fatal: the rest of the batch still runs. Cancellation is
// cooperative at document granularity: documents not yet started are skipped,
// in-flight documents finish, and the context error is returned.
func (r *ParallelDocumentRunner) Run(ctx context.Context, paths []string, task DocumentTask) ([]*domain.FileResult, []TaskError, error) {
	results := make([]*domain.FileResult, len(paths))
	if len(paths) == 0 {
		return results, nil, nil
	}

	var progress domain.TaskProgress = &NoOpTaskProgress{}
	if r.progress != nil {
		progress = r.progress.StartTask("Linting documents", len(paths))
	}
	defer progress.Complete()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	var errMu sync.Mutex
	var taskErrors []TaskError

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			// Skip documents that have not started when cancelled
			select {
			case <-gCtx.Done():
				return nil
			default:
			}

			result, err := task(gCtx, path)
			progress.Increment(1)

			if err != nil {
				errMu.Lock()
				taskErrors = append(taskErrors, TaskError{Path: path, Err: err})
				errMu.Unlock()
				return nil
			}

			results[i] = result
			return nil
		})
	}

	// Goroutines always return nil so the whole batch completes; failures
	// are collected in taskErrors instead.
	_ = g.Wait()

	sort.SliceStable(taskErrors, func(a, b int) bool {
		return taskErrors[a].Path < taskErrors[b].Path
	})

	return results, taskErrors, ctx.Err()
}
