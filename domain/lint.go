package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported report formats
type OutputFormat string

const (
	OutputFormatText     OutputFormat = "text"
	OutputFormatJSON     OutputFormat = "json"
	OutputFormatMarkdown OutputFormat = "markdown"
	OutputFormatHTML     OutputFormat = "html"
)

// Severity classifies a finding. Ordering is PASS < WARN < FAIL.
type Severity string

const (
	SeverityPass Severity = "PASS"
	SeverityWarn Severity = "WARN"
	SeverityFail Severity = "FAIL"
)

// severityRank maps severities onto a comparable scale
var severityRank = map[Severity]int{
	SeverityPass: 0,
	SeverityWarn: 1,
	SeverityFail: 2,
}

// AtLeast reports whether s is at least as severe as other
func (s Severity) AtLeast(other Severity) bool {
	return severityRank[s] >= severityRank[other]
}

// IsValid reports whether s is a known severity name
func (s Severity) IsValid() bool {
	_, ok := severityRank[s]
	return ok
}

// Finding is one reported issue instance. Findings are immutable once
// produced by a detector.
type Finding struct {
	RuleID   string         `json:"rule_id" yaml:"rule_id"`
	Severity Severity       `json:"severity" yaml:"severity"`
	Message  string         `json:"message" yaml:"message"`
	FilePath string         `json:"file_path" yaml:"file_path"`
	Snippet  string         `json:"snippet" yaml:"snippet"`
	Line     int            `json:"line" yaml:"line"`
	Details  map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
}

// FileResult holds the findings for a single document together with
// its derived severity
type FileResult struct {
	FilePath string    `json:"file_path" yaml:"file_path"`
	Severity Severity  `json:"severity" yaml:"severity"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

// FileSeverity derives the file-level severity from a finding list:
// FAIL if any finding fails, WARN if any warns, PASS otherwise.
func FileSeverity(findings []Finding) Severity {
	result := SeverityPass
	for _, f := range findings {
		if severityRank[f.Severity] > severityRank[result] {
			result = f.Severity
		}
	}
	return result
}

// RuleCount pairs a rule id with its total finding count for ranking
type RuleCount struct {
	RuleID string `json:"rule_id" yaml:"rule_id"`
	Count  int    `json:"count" yaml:"count"`
}

// ReportSummary holds aggregate statistics across a batch of documents
type ReportSummary struct {
	TotalFiles     int              `json:"total_files" yaml:"total_files"`
	TotalFindings  int              `json:"total_findings" yaml:"total_findings"`
	SeverityCounts map[Severity]int `json:"severity_counts" yaml:"severity_counts"`
	TopRules       []RuleCount      `json:"top_rules" yaml:"top_rules"`
	CategoryCounts map[string]int   `json:"category_counts,omitempty" yaml:"category_counts,omitempty"`
}

// Report is the aggregated view over all linted documents
type Report struct {
	Files   []FileResult  `json:"files" yaml:"files"`
	Summary ReportSummary `json:"summary" yaml:"summary"`

	// Metadata
	RunID       string   `json:"run_id" yaml:"run_id"`
	GeneratedAt string   `json:"generated_at" yaml:"generated_at"`
	Version     string   `json:"version" yaml:"version"`
	Warnings    []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors      []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ExceedsGate reports whether any finding reaches the fail-on severity.
// The CLI maps this to the process exit code.
func (r *Report) ExceedsGate(failOn Severity) bool {
	for severity, count := range r.Summary.SeverityCounts {
		if count > 0 && severity.AtLeast(failOn) {
			return true
		}
	}
	return false
}

// LintRequest represents a request to lint a set of paths
type LintRequest struct {
	// Input files or directories to lint
	Paths []string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string

	// Severity gate: findings at or above this level fail the run
	FailOn Severity

	// Traversal options
	Recursive       bool
	ExcludePatterns []string

	// Concurrency: 0 means one worker per CPU
	Workers int

	// Configuration
	ConfigPath string

	// Presentation
	NoProgress bool
	Verbose    bool
}

// LintService defines the core evaluation engine contract
type LintService interface {
	// Lint evaluates all documents in the request and aggregates the report
	Lint(ctx context.Context, req LintRequest) (*Report, error)

	// LintFile evaluates a single document
	LintFile(ctx context.Context, path string, req LintRequest) (*FileResult, error)
}

// OutputFormatter renders a report in one of the supported formats
type OutputFormatter interface {
	Write(report *Report, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader loads and merges lint configuration
type ConfigurationLoader interface {
	LoadConfig(path string) (*LintRequest, error)
	LoadDefaultConfig() *LintRequest
	MergeConfig(base *LintRequest, override *LintRequest) *LintRequest
}

// DocumentReader defines file collection and reading for lintable documents
type DocumentReader interface {
	CollectDocuments(paths []string, recursive bool, excludePatterns []string) ([]string, error)
	ReadFile(path string) ([]byte, error)
	IsValidDocument(path string) bool
	FileExists(path string) (bool, error)
}

// ProgressManager tracks long-running batch operations
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	Increment(n int)
	Describe(description string)
	Complete()
}
