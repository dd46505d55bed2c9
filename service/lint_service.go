package service

import (
	"context"
	"fmt"
	"os"

	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/config"
	"github.com/ludo-technologies/prosescan/internal/constants"
	"github.com/ludo-technologies/prosescan/internal/parser"
	"github.com/ludo-technologies/prosescan/internal/rules"
	"github.com/ludo-technologies/prosescan/internal/segment"
)

// LintServiceImpl implements the LintService interface
type LintServiceImpl struct {
	config     *config.Config
	registry   []rules.Detector
	aggregator *ReportAggregator
	progress   domain.ProgressManager
}

// NewLintService creates a new lint service implementation
func NewLintService(cfg *config.Config) *LintServiceImpl {
	return &LintServiceImpl{
		config:     cfg,
		registry:   rules.NewRegistry(),
		aggregator: NewReportAggregator(),
	}
}

// NewLintServiceWithProgress creates a new lint service with progress reporting
func NewLintServiceWithProgress(cfg *config.Config, pm domain.ProgressManager) *LintServiceImpl {
	s := NewLintService(cfg)
	s.progress = pm
	return s
}

// Lint evaluates all documents in the request and aggregates the report.
// Per-document failures do not abort the batch: the report covers every
// document that succeeded and lists the failures explicitly.
func (s *LintServiceImpl) Lint(ctx context.Context, req domain.LintRequest) (*domain.Report, error) {
	runner := NewParallelDocumentRunnerWithProgress(req.Workers, s.progress)

	results, taskErrors, ctxErr := runner.Run(ctx, req.Paths, func(taskCtx context.Context, path string) (*domain.FileResult, error) {
		return s.evaluateDocument(taskCtx, path)
	})
	if ctxErr != nil {
		return nil, fmt.Errorf("lint cancelled: %w", ctxErr)
	}

	var errors []string
	for _, taskErr := range taskErrors {
		errors = append(errors, taskErr.Error())
	}

	report := s.aggregator.Aggregate(results, nil, errors)
	if report.Summary.TotalFiles == 0 && len(taskErrors) > 0 {
		return nil, &AggregatedError{Errors: taskErrors}
	}
	return report, nil
}

// LintFile evaluates a single document
func (s *LintServiceImpl) LintFile(ctx context.Context, path string, req domain.LintRequest) (*domain.FileResult, error) {
	return s.evaluateDocument(ctx, path)
}

// evaluateDocument runs the full pipeline for one document: read, normalize,
// segment, resolve config, run detectors.
func (s *LintServiceImpl) evaluateDocument(ctx context.Context, path string) (*domain.FileResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	format, ok := parser.FormatForPath(path)
	if !ok {
		return nil, domain.NewUnsupportedFormatError(path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewFileNotFoundError(path, err)
		}
		return nil, domain.NewIOError(fmt.Sprintf("failed to read %s", path), err)
	}
	if len(raw) > constants.MaxFileSizeBytes {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("%s exceeds the %d MiB size limit", path, constants.MaxFileSizeBytes/(1024*1024)), nil)
	}

	doc := parser.Parse(path, raw, format)
	return s.evaluateParsed(doc), nil
}

// evaluateParsed runs segmentation and every enabled detector over an
// already-normalized document
func (s *LintServiceImpl) evaluateParsed(doc *parser.Document) *domain.FileResult {
	sentences := segment.Sentences(doc.Text)
	tokens := segment.Words(doc.Text)
	effective := config.Resolve(s.config, doc.Path)

	var findings []domain.Finding

	if doc.Degraded {
		findings = append(findings, domain.Finding{
			RuleID:   "parse-degraded",
			Severity: domain.SeverityPass,
			Message:  fmt.Sprintf("Markup not fully parsed, linted best-effort text: %s", doc.DegradedNote),
			FilePath: doc.Path,
			Line:     1,
		})
	}

	for _, detector := range s.registry {
		rule, ok := effective.Rule(detector.ID())
		if !ok || !rule.Enabled {
			// Disabled rules cost nothing: the detector is never invoked
			continue
		}
		findings = append(findings, s.runDetector(detector, doc, sentences, tokens, rule)...)
	}

	return &domain.FileResult{
		FilePath: doc.Path,
		Severity: domain.FileSeverity(findings),
		Findings: findings,
	}
}

// runDetector invokes one detector with panic isolation: a panicking rule
// yields a synthetic WARN finding and the rest of the registry still runs.
func (s *LintServiceImpl) runDetector(detector rules.Detector, doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, rule config.EffectiveRule) (findings []domain.Finding) {
	defer func() {
		if r := recover(); r != nil {
			err := domain.NewInternalRuleError(detector.ID(), fmt.Errorf("%v", r))
			findings = []domain.Finding{{
				RuleID:   "internal-rule-error",
				Severity: domain.SeverityWarn,
				Message:  err.Error(),
				FilePath: doc.Path,
				Line:     1,
				Details:  map[string]any{"rule": detector.ID()},
			}}
		}
	}()

	return detector.Check(doc, sentences, tokens, rule)
}
