package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/ludo-technologies/prosescan/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Files: []domain.FileResult{
			{
				FilePath: "docs/clean.md",
				Severity: domain.SeverityPass,
			},
			{
				FilePath: "blog/post.md",
				Severity: domain.SeverityFail,
				Findings: []domain.Finding{
					{
						RuleID:   "banned-words",
						Severity: domain.SeverityFail,
						Message:  "Overuse of 'very': 6 occurrences (12.00 per 1,000 words)",
						FilePath: "blog/post.md",
						Snippet:  "...it was very very good...",
						Line:     3,
					},
					{
						RuleID:   "transitions",
						Severity: domain.SeverityWarn,
						Message:  "Overuse of transitions: 4 occurrences (8.00 per 1,000 words)",
						FilePath: "blog/post.md",
						Line:     7,
					},
				},
			},
		},
		Summary: domain.ReportSummary{
			TotalFiles:    2,
			TotalFindings: 2,
			SeverityCounts: map[domain.Severity]int{
				domain.SeverityPass: 0,
				domain.SeverityWarn: 1,
				domain.SeverityFail: 1,
			},
			TopRules: []domain.RuleCount{
				{RuleID: "banned-words", Count: 1},
				{RuleID: "transitions", Count: 1},
			},
			CategoryCounts: map[string]int{"style": 2},
		},
		RunID:       "test-run",
		GeneratedAt: "2026-01-02T15:04:05Z",
		Version:     "dev",
	}
}

func TestWrite_JSON_FieldNames(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewOutputFormatter()

	if err := formatter.Write(sampleReport(), domain.OutputFormatJSON, &buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	for _, key := range []string{"version", "generated_at", "run_id", "files", "summary"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Top-level key %q missing", key)
		}
	}

	files, ok := decoded["files"].([]any)
	if !ok || len(files) != 2 {
		t.Fatalf("Expected 2 files in JSON, got %v", decoded["files"])
	}
	file := files[1].(map[string]any)
	findings := file["findings"].([]any)
	first := findings[0].(map[string]any)
	for _, key := range []string{"rule_id", "severity", "message", "file_path", "snippet", "line"} {
		if _, ok := first[key]; !ok {
			t.Errorf("Finding key %q missing", key)
		}
	}

	summary := decoded["summary"].(map[string]any)
	counts := summary["severity_counts"].(map[string]any)
	for _, key := range []string{"PASS", "WARN", "FAIL"} {
		if _, ok := counts[key]; !ok {
			t.Errorf("severity_counts key %q missing", key)
		}
	}
}

func TestWrite_Text(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	formatter := NewOutputFormatter()

	if err := formatter.Write(sampleReport(), domain.OutputFormatText, &buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"FAIL blog/post.md (2 findings)",
		"[banned-words] line 3:",
		"...it was very very good...",
		"PASS docs/clean.md",
		"Files checked: 2",
		"Findings: 2 (1 FAIL, 1 WARN, 0 PASS)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Text output missing %q:\n%s", want, out)
		}
	}
}

func TestWrite_Markdown(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewOutputFormatter()

	if err := formatter.Write(sampleReport(), domain.OutputFormatMarkdown, &buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# prosescan Report",
		"## Summary",
		"| Files checked | 2 |",
		"## Most Frequent Rules",
		"### 🔴 blog/post.md",
		"### 🟢 docs/clean.md",
		"`banned-words` line 3:",
		"## Recommendations",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown output missing %q", want)
		}
	}

	// Worst file first
	failIdx := strings.Index(out, "### 🔴 blog/post.md")
	passIdx := strings.Index(out, "### 🟢 docs/clean.md")
	if failIdx < 0 || passIdx < 0 || failIdx > passIdx {
		t.Error("Failing files should be listed before passing files")
	}
}

func TestWrite_Markdown_CapsFindingsPerSeverity(t *testing.T) {
	report := sampleReport()
	var findings []domain.Finding
	for i := 0; i < markdownFindingsPerSeverity+5; i++ {
		findings = append(findings, domain.Finding{
			RuleID:   "banned-words",
			Severity: domain.SeverityWarn,
			Message:  "finding",
			Line:     i + 1,
		})
	}
	report.Files[0].Findings = findings
	report.Files[0].Severity = domain.SeverityWarn

	var buf bytes.Buffer
	if err := NewOutputFormatter().Write(report, domain.OutputFormatMarkdown, &buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "... and 5 more") {
		t.Error("Expected an overflow note for the capped severity group")
	}
}

func TestWrite_HTML(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewOutputFormatter()

	if err := formatter.Write(sampleReport(), domain.OutputFormatHTML, &buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"prosescan Report",
		"blog/post.md",
		"banned-words",
		"severity-fail",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q", want)
		}
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewOutputFormatter().Write(sampleReport(), domain.OutputFormat("csv"), &buf)
	if err == nil {
		t.Fatal("Expected an error for an unsupported format")
	}
}

func TestSortFilesWorstFirst(t *testing.T) {
	files := []domain.FileResult{
		{FilePath: "a.md", Findings: []domain.Finding{
			{Severity: domain.SeverityWarn},
		}},
		{FilePath: "b.md", Findings: []domain.Finding{
			{Severity: domain.SeverityFail},
		}},
		{FilePath: "c.md", Findings: []domain.Finding{
			{Severity: domain.SeverityWarn},
			{Severity: domain.SeverityWarn},
		}},
	}

	sorted := sortFilesWorstFirst(files)

	want := []string{"b.md", "c.md", "a.md"}
	for i, path := range want {
		if sorted[i].FilePath != path {
			t.Errorf("Position %d: expected %s, got %s", i, path, sorted[i].FilePath)
		}
	}

	// Input slice untouched
	if files[0].FilePath != "a.md" {
		t.Error("sortFilesWorstFirst must not mutate its input")
	}
}
