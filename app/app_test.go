package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/config"
	"github.com/ludo-technologies/prosescan/service"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func TestFileHelperCollectDocuments(t *testing.T) {
	tempDir := t.TempDir()

	for _, f := range []string{"readme.md", "notes.markdown", "page.html", "index.htm", "script.js", "plain.txt"} {
		writeDoc(t, tempDir, f, "Some text.\n")
	}

	helper := NewFileHelper()

	files, err := helper.CollectDocuments([]string{tempDir}, true, nil)
	if err != nil {
		t.Fatalf("CollectDocuments failed: %v", err)
	}

	if len(files) != 4 {
		t.Errorf("Expected 4 documents, got %d: %v", len(files), files)
	}
}

func TestFileHelperCollectDocumentsSkipsHiddenAndVendorDirs(t *testing.T) {
	tempDir := t.TempDir()

	writeDoc(t, tempDir, "docs/guide.md", "Guide.\n")
	writeDoc(t, tempDir, ".git/internal.md", "Hidden.\n")
	writeDoc(t, tempDir, "node_modules/pkg/readme.md", "Dep.\n")
	writeDoc(t, tempDir, "vendor/lib/readme.md", "Vendored.\n")

	helper := NewFileHelper()

	files, err := helper.CollectDocuments([]string{tempDir}, true, nil)
	if err != nil {
		t.Fatalf("CollectDocuments failed: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("Expected 1 document, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "guide.md" {
		t.Errorf("Expected guide.md, got %s", files[0])
	}
}

func TestFileHelperCollectDocumentsExcludePatterns(t *testing.T) {
	tempDir := t.TempDir()

	writeDoc(t, tempDir, "index.md", "Index.\n")
	writeDoc(t, tempDir, "drafts/wip.md", "Draft.\n")
	writeDoc(t, tempDir, "docs/ignore-me.md", "Skipped.\n")
	writeDoc(t, tempDir, "docs/keep.md", "Kept.\n")

	helper := NewFileHelper()

	files, err := helper.CollectDocuments([]string{tempDir}, true, []string{"drafts/**", "**/ignore-me.md"})
	if err != nil {
		t.Fatalf("CollectDocuments failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 documents, got %d: %v", len(files), files)
	}
	for _, f := range files {
		base := filepath.Base(f)
		if base != "index.md" && base != "keep.md" {
			t.Errorf("Unexpected file collected: %s", f)
		}
	}
}

func TestFileHelperCollectDocumentsNonRecursive(t *testing.T) {
	tempDir := t.TempDir()

	writeDoc(t, tempDir, "top.md", "Top.\n")
	writeDoc(t, tempDir, "nested/deep.md", "Deep.\n")

	helper := NewFileHelper()

	files, err := helper.CollectDocuments([]string{tempDir}, false, nil)
	if err != nil {
		t.Fatalf("CollectDocuments failed: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("Expected 1 document, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "top.md" {
		t.Errorf("Expected top.md, got %s", files[0])
	}
}

func TestFileHelperCollectDocumentsDeduplicatesAndSorts(t *testing.T) {
	tempDir := t.TempDir()

	b := writeDoc(t, tempDir, "b.md", "B.\n")
	a := writeDoc(t, tempDir, "a.md", "A.\n")

	helper := NewFileHelper()

	files, err := helper.CollectDocuments([]string{b, a, b}, false, nil)
	if err != nil {
		t.Fatalf("CollectDocuments failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 documents, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.md" || filepath.Base(files[1]) != "b.md" {
		t.Errorf("Expected sorted [a.md b.md], got %v", files)
	}
}

func TestFileHelperCollectDocumentsMissingFile(t *testing.T) {
	helper := NewFileHelper()

	_, err := helper.CollectDocuments([]string{"/nonexistent/missing.md"}, false, nil)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}

	var lintErr domain.LintError
	if !errors.As(err, &lintErr) {
		t.Fatalf("Expected LintError, got %T", err)
	}
	if lintErr.Code != domain.ErrCodeFileNotFound {
		t.Errorf("Expected code %s, got %s", domain.ErrCodeFileNotFound, lintErr.Code)
	}
}

func TestFileHelperCollectDocumentsUnsupportedExplicitFile(t *testing.T) {
	tempDir := t.TempDir()
	path := writeDoc(t, tempDir, "notes.txt", "Plain text.\n")

	helper := NewFileHelper()

	_, err := helper.CollectDocuments([]string{path}, false, nil)
	if err == nil {
		t.Fatal("Expected error for unsupported file")
	}

	var lintErr domain.LintError
	if !errors.As(err, &lintErr) {
		t.Fatalf("Expected LintError, got %T", err)
	}
	if lintErr.Code != domain.ErrCodeUnsupportedFormat {
		t.Errorf("Expected code %s, got %s", domain.ErrCodeUnsupportedFormat, lintErr.Code)
	}
}

func TestFileHelperIsValidDocument(t *testing.T) {
	helper := NewFileHelper()

	tests := []struct {
		path     string
		expected bool
	}{
		{"readme.md", true},
		{"notes.markdown", true},
		{"page.html", true},
		{"index.htm", true},
		{"README.MD", true},
		{"script.js", false},
		{"plain.txt", false},
		{"archive.tar.gz", false},
	}

	for _, tt := range tests {
		result := helper.IsValidDocument(tt.path)
		if result != tt.expected {
			t.Errorf("IsValidDocument(%s) = %v, expected %v", tt.path, result, tt.expected)
		}
	}
}

func TestFileHelperFileExists(t *testing.T) {
	tempDir := t.TempDir()
	path := writeDoc(t, tempDir, "exists.md", "Here.\n")

	helper := NewFileHelper()

	exists, err := helper.FileExists(path)
	if err != nil {
		t.Fatalf("FileExists failed: %v", err)
	}
	if !exists {
		t.Error("Expected file to exist")
	}

	exists, err = helper.FileExists(filepath.Join(tempDir, "missing.md"))
	if err != nil {
		t.Fatalf("FileExists failed: %v", err)
	}
	if exists {
		t.Error("Expected file to not exist")
	}
}

func newTestUseCase(t *testing.T) *LintUseCase {
	t.Helper()
	svc := service.NewLintService(config.DefaultConfig())
	uc, err := NewLintUseCaseBuilder().
		WithService(svc).
		WithFormatter(service.NewOutputFormatter()).
		Build()
	if err != nil {
		t.Fatalf("failed to build use case: %v", err)
	}
	return uc
}

func TestLintUseCaseExecute(t *testing.T) {
	tempDir := t.TempDir()
	writeDoc(t, tempDir, "clean.md", "The quick brown fox jumps over the lazy dog.\n")

	uc := newTestUseCase(t)

	var buf bytes.Buffer
	req := domain.LintRequest{
		Paths:        []string{tempDir},
		OutputFormat: domain.OutputFormatText,
		OutputWriter: &buf,
		FailOn:       domain.SeverityFail,
		Recursive:    true,
		NoProgress:   true,
	}

	report, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if report.Summary.TotalFiles != 1 {
		t.Errorf("Expected 1 file, got %d", report.Summary.TotalFiles)
	}
	if buf.Len() == 0 {
		t.Error("Expected text output to be written")
	}
}

func TestLintUseCaseExecuteWritesOutputFile(t *testing.T) {
	tempDir := t.TempDir()
	writeDoc(t, tempDir, "clean.md", "The quick brown fox jumps over the lazy dog.\n")
	outPath := filepath.Join(tempDir, "out", "report.json")

	uc := newTestUseCase(t)

	req := domain.LintRequest{
		Paths:        []string{tempDir},
		OutputFormat: domain.OutputFormatJSON,
		OutputPath:   outPath,
		FailOn:       domain.SeverityFail,
		Recursive:    true,
		NoProgress:   true,
	}

	if _, err := uc.Execute(context.Background(), req); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !bytes.Contains(data, []byte("\"summary\"")) {
		t.Error("Expected JSON report in output file")
	}
}

func TestLintUseCaseExecuteNoPaths(t *testing.T) {
	uc := newTestUseCase(t)

	req := domain.LintRequest{
		OutputFormat: domain.OutputFormatText,
		FailOn:       domain.SeverityFail,
	}

	_, err := uc.Execute(context.Background(), req)
	if err == nil {
		t.Fatal("Expected error for empty paths")
	}

	var lintErr domain.LintError
	if !errors.As(err, &lintErr) {
		t.Fatalf("Expected LintError, got %T", err)
	}
	if lintErr.Code != domain.ErrCodeInvalidInput {
		t.Errorf("Expected code %s, got %s", domain.ErrCodeInvalidInput, lintErr.Code)
	}
}

func TestLintUseCaseExecuteNoDocuments(t *testing.T) {
	tempDir := t.TempDir()
	writeDoc(t, tempDir, "only.txt", "Not a document.\n")

	uc := newTestUseCase(t)

	req := domain.LintRequest{
		Paths:        []string{tempDir},
		OutputFormat: domain.OutputFormatText,
		FailOn:       domain.SeverityFail,
		Recursive:    true,
		NoProgress:   true,
	}

	_, err := uc.Execute(context.Background(), req)
	if err == nil {
		t.Fatal("Expected error when no documents are found")
	}

	var lintErr domain.LintError
	if !errors.As(err, &lintErr) {
		t.Fatalf("Expected LintError, got %T", err)
	}
	if lintErr.Code != domain.ErrCodeInvalidInput {
		t.Errorf("Expected code %s, got %s", domain.ErrCodeInvalidInput, lintErr.Code)
	}
}

func TestLintUseCaseExecuteInvalidFormat(t *testing.T) {
	uc := newTestUseCase(t)

	req := domain.LintRequest{
		Paths:        []string{"docs"},
		OutputFormat: domain.OutputFormat("csv"),
		FailOn:       domain.SeverityFail,
	}

	if _, err := uc.Execute(context.Background(), req); err == nil {
		t.Fatal("Expected error for unknown output format")
	}
}

func TestLintUseCaseBuilderRequiresService(t *testing.T) {
	_, err := NewLintUseCaseBuilder().
		WithFormatter(service.NewOutputFormatter()).
		Build()
	if err == nil {
		t.Fatal("Expected error when service is missing")
	}
}
