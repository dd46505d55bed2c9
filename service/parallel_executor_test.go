package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ludo-technologies/prosescan/domain"
)

func TestNewParallelDocumentRunner_Defaults(t *testing.T) {
	runner := NewParallelDocumentRunner(0)
	if runner.Workers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers for 0, got %d", runtime.NumCPU(), runner.Workers())
	}

	runner = NewParallelDocumentRunner(3)
	if runner.Workers() != 3 {
		t.Errorf("Expected 3 workers, got %d", runner.Workers())
	}

	runner = NewParallelDocumentRunner(-1)
	if runner.Workers() != runtime.NumCPU() {
		t.Errorf("Negative worker count should fall back to NumCPU, got %d", runner.Workers())
	}
}

func TestParallelDocumentRunner_ResultsIndexedByInput(t *testing.T) {
	paths := []string{"c.md", "a.md", "b.md", "d.md"}
	runner := NewParallelDocumentRunner(2)

	results, taskErrors, err := runner.Run(context.Background(), paths, func(_ context.Context, path string) (*domain.FileResult, error) {
		return &domain.FileResult{FilePath: path, Severity: domain.SeverityPass}, nil
	})

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(taskErrors) != 0 {
		t.Fatalf("Expected no task errors, got %d", len(taskErrors))
	}
	if len(results) != len(paths) {
		t.Fatalf("Expected %d results, got %d", len(paths), len(results))
	}
	for i, path := range paths {
		if results[i] == nil || results[i].FilePath != path {
			t.Errorf("Result %d should correspond to input %s, got %v", i, path, results[i])
		}
	}
}

func TestParallelDocumentRunner_CollectsFailures(t *testing.T) {
	paths := []string{"ok.md", "bad.md", "also-ok.md"}
	runner := NewParallelDocumentRunner(1)

	results, taskErrors, err := runner.Run(context.Background(), paths, func(_ context.Context, path string) (*domain.FileResult, error) {
		if path == "bad.md" {
			return nil, errors.New("boom")
		}
		return &domain.FileResult{FilePath: path}, nil
	})

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(taskErrors) != 1 {
		t.Fatalf("Expected 1 task error, got %d", len(taskErrors))
	}
	if taskErrors[0].Path != "bad.md" {
		t.Errorf("Expected failure for bad.md, got %s", taskErrors[0].Path)
	}
	if results[1] != nil {
		t.Error("Failed document should leave a nil result slot")
	}
	if results[0] == nil || results[2] == nil {
		t.Error("Failures must not stop the rest of the batch")
	}
}

func TestParallelDocumentRunner_CancellationSkipsPending(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths := make([]string, 20)
	for i := range paths {
		paths[i] = fmt.Sprintf("doc%d.md", i)
	}

	var started atomic.Int32
	runner := NewParallelDocumentRunner(1)
	_, _, err := runner.Run(ctx, paths, func(_ context.Context, path string) (*domain.FileResult, error) {
		started.Add(1)
		return &domain.FileResult{FilePath: path}, nil
	})

	if err == nil {
		t.Fatal("Expected context error after cancellation")
	}
	if started.Load() != 0 {
		t.Errorf("Pending documents must not start after cancellation, %d started", started.Load())
	}
}

func TestParallelDocumentRunner_EmptyBatch(t *testing.T) {
	runner := NewParallelDocumentRunner(4)
	results, taskErrors, err := runner.Run(context.Background(), nil, func(_ context.Context, path string) (*domain.FileResult, error) {
		t.Fatal("task must not run for an empty batch")
		return nil, nil
	})

	if err != nil || len(results) != 0 || len(taskErrors) != 0 {
		t.Errorf("Empty batch should produce empty output, got %v %v %v", results, taskErrors, err)
	}
}

func TestTaskError(t *testing.T) {
	cause := errors.New("underlying")
	taskErr := TaskError{Path: "doc.md", Err: cause}

	if !strings.Contains(taskErr.Error(), "doc.md") {
		t.Errorf("Error should name the path, got: %s", taskErr.Error())
	}
	if !errors.Is(taskErr, cause) {
		t.Error("TaskError should unwrap to its cause")
	}
}

func TestAggregatedError(t *testing.T) {
	cause := errors.New("first")
	agg := &AggregatedError{Errors: []TaskError{
		{Path: "a.md", Err: cause},
		{Path: "b.md", Err: errors.New("second")},
	}}

	if !strings.Contains(agg.Error(), "2 documents failed") {
		t.Errorf("Expected aggregate message, got: %s", agg.Error())
	}
	if !errors.Is(agg, cause) {
		t.Error("AggregatedError should unwrap to the first cause")
	}

	single := &AggregatedError{Errors: []TaskError{{Path: "a.md", Err: cause}}}
	if strings.Contains(single.Error(), "failed:") {
		t.Errorf("Single failure should render directly, got: %s", single.Error())
	}
}
