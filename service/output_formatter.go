package service

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/version"
)

// markdownFindingsPerSeverity caps the finding list per severity group in
// markdown reports
const markdownFindingsPerSeverity = 10

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// severityColors maps each severity to its terminal color
var severityColors = map[domain.Severity]*color.Color{
	domain.SeverityFail: color.New(color.FgRed, color.Bold),
	domain.SeverityWarn: color.New(color.FgYellow),
	domain.SeverityPass: color.New(color.FgGreen),
}

// severityEmoji maps each severity to its markdown status marker
var severityEmoji = map[domain.Severity]string{
	domain.SeverityFail: "🔴",
	domain.SeverityWarn: "🟡",
	domain.SeverityPass: "🟢",
}

// WriteJSON writes data as indented JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ReportJSON wraps the report with top-level metadata for JSON output
type ReportJSON struct {
	Version     string               `json:"version"`
	GeneratedAt string               `json:"generated_at"`
	RunID       string               `json:"run_id"`
	Files       []domain.FileResult  `json:"files"`
	Summary     domain.ReportSummary `json:"summary"`
	Warnings    []string             `json:"warnings,omitempty"`
	Errors      []string             `json:"errors,omitempty"`
}

// Write writes the report in the specified format
func (f *OutputFormatterImpl) Write(report *domain.Report, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return f.writeJSON(report, writer)
	case domain.OutputFormatText:
		return f.writeText(report, writer)
	case domain.OutputFormatMarkdown:
		return f.writeMarkdown(report, writer)
	case domain.OutputFormatHTML:
		return f.writeHTML(report, writer)
	default:
		return domain.NewOutputError(fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

// writeJSON writes the report as indented JSON
func (f *OutputFormatterImpl) writeJSON(report *domain.Report, writer io.Writer) error {
	return WriteJSON(writer, ReportJSON{
		Version:     version.Version,
		GeneratedAt: report.GeneratedAt,
		RunID:       report.RunID,
		Files:       report.Files,
		Summary:     report.Summary,
		Warnings:    report.Warnings,
		Errors:      report.Errors,
	})
}

// writeText writes the report as colorized plain text
func (f *OutputFormatterImpl) writeText(report *domain.Report, writer io.Writer) error {
	fmt.Fprintf(writer, "prosescan %s\n", version.Version)
	fmt.Fprintf(writer, "Generated: %s\n\n", report.GeneratedAt)

	for _, file := range report.Files {
		label := severityColors[file.Severity].Sprint(string(file.Severity))
		fmt.Fprintf(writer, "%s %s (%d findings)\n", label, file.FilePath, len(file.Findings))

		for _, finding := range file.Findings {
			marker := severityColors[finding.Severity].Sprint(string(finding.Severity))
			fmt.Fprintf(writer, "  %s [%s] line %d: %s\n", marker, finding.RuleID, finding.Line, finding.Message)
			if finding.Snippet != "" {
				fmt.Fprintf(writer, "      %s\n", finding.Snippet)
			}
		}
		if len(file.Findings) > 0 {
			fmt.Fprintln(writer)
		}
	}

	fmt.Fprintf(writer, "Summary:\n")
	fmt.Fprintf(writer, "  Files checked: %d\n", report.Summary.TotalFiles)
	fmt.Fprintf(writer, "  Findings: %d (%d FAIL, %d WARN, %d PASS)\n",
		report.Summary.TotalFindings,
		report.Summary.SeverityCounts[domain.SeverityFail],
		report.Summary.SeverityCounts[domain.SeverityWarn],
		report.Summary.SeverityCounts[domain.SeverityPass])

	if len(report.Summary.TopRules) > 0 {
		fmt.Fprintf(writer, "  Most frequent rules:\n")
		for _, rule := range report.Summary.TopRules {
			fmt.Fprintf(writer, "    %s: %d\n", rule.RuleID, rule.Count)
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(writer, "\nWarnings:\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(writer, "  - %s\n", w)
		}
	}
	if len(report.Errors) > 0 {
		fmt.Fprintf(writer, "\nErrors:\n")
		for _, e := range report.Errors {
			fmt.Fprintf(writer, "  - %s\n", e)
		}
	}

	return nil
}

// writeMarkdown writes the report as a human-readable markdown document,
// files ordered worst-first
func (f *OutputFormatterImpl) writeMarkdown(report *domain.Report, writer io.Writer) error {
	fmt.Fprintf(writer, "# prosescan Report\n\n")
	fmt.Fprintf(writer, "Generated: %s (version %s)\n\n", report.GeneratedAt, version.Version)

	// Summary table
	fmt.Fprintf(writer, "## Summary\n\n")
	fmt.Fprintf(writer, "| Metric | Value |\n")
	fmt.Fprintf(writer, "|--------|-------|\n")
	fmt.Fprintf(writer, "| Files checked | %d |\n", report.Summary.TotalFiles)
	fmt.Fprintf(writer, "| Total findings | %d |\n", report.Summary.TotalFindings)
	fmt.Fprintf(writer, "| FAIL | %d |\n", report.Summary.SeverityCounts[domain.SeverityFail])
	fmt.Fprintf(writer, "| WARN | %d |\n", report.Summary.SeverityCounts[domain.SeverityWarn])
	fmt.Fprintf(writer, "| PASS | %d |\n\n", report.Summary.SeverityCounts[domain.SeverityPass])

	if len(report.Summary.TopRules) > 0 {
		fmt.Fprintf(writer, "## Most Frequent Rules\n\n")
		fmt.Fprintf(writer, "| Rule | Findings |\n")
		fmt.Fprintf(writer, "|------|----------|\n")
		for _, rule := range report.Summary.TopRules {
			fmt.Fprintf(writer, "| %s | %d |\n", rule.RuleID, rule.Count)
		}
		fmt.Fprintln(writer)
	}

	// Per-file sections, worst first
	fmt.Fprintf(writer, "## Files\n\n")
	for _, file := range sortFilesWorstFirst(report.Files) {
		fmt.Fprintf(writer, "### %s %s\n\n", severityEmoji[file.Severity], file.FilePath)
		if len(file.Findings) == 0 {
			fmt.Fprintf(writer, "No findings.\n\n")
			continue
		}
		for _, severity := range []domain.Severity{domain.SeverityFail, domain.SeverityWarn, domain.SeverityPass} {
			f.writeMarkdownSeverityGroup(writer, file.Findings, severity)
		}
	}

	f.writeMarkdownRecommendations(writer, report)

	if len(report.Errors) > 0 {
		fmt.Fprintf(writer, "## Errors\n\n")
		for _, e := range report.Errors {
			fmt.Fprintf(writer, "- %s\n", e)
		}
		fmt.Fprintln(writer)
	}

	return nil
}

// writeMarkdownSeverityGroup writes one severity's findings for a file,
// capped with an overflow note
func (f *OutputFormatterImpl) writeMarkdownSeverityGroup(writer io.Writer, findings []domain.Finding, severity domain.Severity) {
	var group []domain.Finding
	for _, finding := range findings {
		if finding.Severity == severity {
			group = append(group, finding)
		}
	}
	if len(group) == 0 {
		return
	}

	fmt.Fprintf(writer, "**%s** (%d)\n\n", severity, len(group))
	shown := group
	if len(shown) > markdownFindingsPerSeverity {
		shown = shown[:markdownFindingsPerSeverity]
	}
	for _, finding := range shown {
		fmt.Fprintf(writer, "- `%s` line %d: %s\n", finding.RuleID, finding.Line, finding.Message)
	}
	if extra := len(group) - len(shown); extra > 0 {
		fmt.Fprintf(writer, "- ... and %d more\n", extra)
	}
	fmt.Fprintln(writer)
}

// categoryAdvice maps rule categories to a remediation hint
var categoryAdvice = map[string]string{
	"style":     "Cut filler words, stacked intensifiers, and repeated vocabulary.",
	"clarity":   "Replace hedged or passive constructions with direct statements.",
	"structure": "Vary sentence length and avoid opening sentences with conjunctions.",
	"ai-tell":   "Rework formulaic phrasing that reads as machine-generated.",
}

// writeMarkdownRecommendations summarizes remediation advice for the
// categories that produced findings
func (f *OutputFormatterImpl) writeMarkdownRecommendations(writer io.Writer, report *domain.Report) {
	if len(report.Summary.CategoryCounts) == 0 {
		return
	}

	categories := make([]string, 0, len(report.Summary.CategoryCounts))
	for category, count := range report.Summary.CategoryCounts {
		if count > 0 {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := categories[i], categories[j]
		if report.Summary.CategoryCounts[a] != report.Summary.CategoryCounts[b] {
			return report.Summary.CategoryCounts[a] > report.Summary.CategoryCounts[b]
		}
		return a < b
	})

	fmt.Fprintf(writer, "## Recommendations\n\n")
	for _, category := range categories {
		advice, ok := categoryAdvice[category]
		if !ok {
			continue
		}
		fmt.Fprintf(writer, "- **%s** (%d findings): %s\n",
			category, report.Summary.CategoryCounts[category], advice)
	}
	fmt.Fprintln(writer)
}

// sortFilesWorstFirst orders files by FAIL finding count, then WARN count,
// descending, with path as the deterministic tiebreak
func sortFilesWorstFirst(files []domain.FileResult) []domain.FileResult {
	counts := func(file domain.FileResult, severity domain.Severity) int {
		n := 0
		for _, finding := range file.Findings {
			if finding.Severity == severity {
				n++
			}
		}
		return n
	}

	sorted := make([]domain.FileResult, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		failI, failJ := counts(sorted[i], domain.SeverityFail), counts(sorted[j], domain.SeverityFail)
		if failI != failJ {
			return failI > failJ
		}
		warnI, warnJ := counts(sorted[i], domain.SeverityWarn), counts(sorted[j], domain.SeverityWarn)
		if warnI != warnJ {
			return warnI > warnJ
		}
		return strings.Compare(sorted[i].FilePath, sorted[j].FilePath) < 0
	})
	return sorted
}
