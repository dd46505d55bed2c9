package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/prosescan/domain"
)

// LintUseCase orchestrates the lint workflow: collect documents, run the
// lint service, and write the report in the requested format.
type LintUseCase struct {
	service    domain.LintService
	formatter  domain.OutputFormatter
	fileHelper *FileHelper
}

// NewLintUseCase creates a new lint use case
func NewLintUseCase(service domain.LintService, formatter domain.OutputFormatter) *LintUseCase {
	return &LintUseCase{
		service:    service,
		formatter:  formatter,
		fileHelper: NewFileHelper(),
	}
}

// Execute performs the complete lint workflow and returns the report so
// callers can apply their severity gate.
func (uc *LintUseCase) Execute(ctx context.Context, req domain.LintRequest) (*domain.Report, error) {
	// Validate input
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	// Resolve document paths
	files, err := uc.fileHelper.CollectDocuments(req.Paths, req.Recursive, req.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, domain.NewInvalidInputError("no lintable documents found in the specified paths", nil)
	}

	// Update request with collected files
	req.Paths = files

	// Run the lint
	report, err := uc.service.Lint(ctx, req)
	if err != nil {
		return nil, err
	}

	// Write output
	if err := uc.writeReport(report, req); err != nil {
		return nil, err
	}

	return report, nil
}

// writeReport writes the report to the configured destination
func (uc *LintUseCase) writeReport(report *domain.Report, req domain.LintRequest) error {
	writer := req.OutputWriter
	if req.OutputPath != "" {
		if dir := filepath.Dir(req.OutputPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return domain.NewOutputError("failed to create output directory", err)
			}
		}
		file, err := os.Create(req.OutputPath)
		if err != nil {
			return domain.NewOutputError(fmt.Sprintf("failed to create output file: %s", req.OutputPath), err)
		}
		defer file.Close()
		writer = file
	}
	if writer == nil {
		writer = os.Stdout
	}

	if err := uc.formatter.Write(report, req.OutputFormat, writer); err != nil {
		return domain.NewOutputError("failed to write report", err)
	}

	return nil
}

// validateRequest validates the lint request
func (uc *LintUseCase) validateRequest(req domain.LintRequest) error {
	if len(req.Paths) == 0 {
		return fmt.Errorf("no input paths specified")
	}

	if !req.FailOn.IsValid() {
		return fmt.Errorf("unknown severity: %s", req.FailOn)
	}

	switch req.OutputFormat {
	case domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatMarkdown, domain.OutputFormatHTML:
	default:
		return fmt.Errorf("unknown output format: %s", req.OutputFormat)
	}

	if req.Workers < 0 {
		return fmt.Errorf("worker count cannot be negative")
	}

	return nil
}

// LintUseCaseBuilder provides a builder pattern for creating LintUseCase
type LintUseCaseBuilder struct {
	service    domain.LintService
	formatter  domain.OutputFormatter
	fileHelper *FileHelper
}

// NewLintUseCaseBuilder creates a new builder
func NewLintUseCaseBuilder() *LintUseCaseBuilder {
	return &LintUseCaseBuilder{}
}

// WithService sets the lint service
func (b *LintUseCaseBuilder) WithService(service domain.LintService) *LintUseCaseBuilder {
	b.service = service
	return b
}

// WithFormatter sets the output formatter
func (b *LintUseCaseBuilder) WithFormatter(formatter domain.OutputFormatter) *LintUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithFileHelper sets the file helper
func (b *LintUseCaseBuilder) WithFileHelper(fileHelper *FileHelper) *LintUseCaseBuilder {
	b.fileHelper = fileHelper
	return b
}

// Build creates the LintUseCase with the configured dependencies
func (b *LintUseCaseBuilder) Build() (*LintUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("lint service is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}

	uc := &LintUseCase{
		service:    b.service,
		formatter:  b.formatter,
		fileHelper: b.fileHelper,
	}

	if uc.fileHelper == nil {
		uc.fileHelper = NewFileHelper()
	}

	return uc, nil
}
