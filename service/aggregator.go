package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/rules"
	"github.com/ludo-technologies/prosescan/internal/version"
)

// topRulesLimit caps the ranked rule list in the summary
const topRulesLimit = 10

// ReportAggregator reduces per-document results into the final report.
// Aggregation is a pure fold over sorted inputs, so the report is identical
// no matter which document finished first.
type ReportAggregator struct {
	categories map[string]string
}

// NewReportAggregator creates an aggregator that knows each rule's category
func NewReportAggregator() *ReportAggregator {
	categories := make(map[string]string)
	for _, detector := range rules.NewRegistry() {
		categories[detector.ID()] = detector.Category()
	}
	return &ReportAggregator{categories: categories}
}

// Aggregate builds the report from per-file results. Nil entries (documents
// skipped by cancellation or failure) are dropped; failures arrive separately
// as error strings.
func (a *ReportAggregator) Aggregate(results []*domain.FileResult, warnings []string, errors []string) *domain.Report {
	files := make([]domain.FileResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			files = append(files, *r)
		}
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].FilePath < files[j].FilePath
	})

	severityCounts := map[domain.Severity]int{
		domain.SeverityPass: 0,
		domain.SeverityWarn: 0,
		domain.SeverityFail: 0,
	}
	ruleCounts := make(map[string]int)
	categoryCounts := make(map[string]int)
	totalFindings := 0

	for _, file := range files {
		for _, finding := range file.Findings {
			severityCounts[finding.Severity]++
			ruleCounts[finding.RuleID]++
			if category, ok := a.categories[finding.RuleID]; ok {
				categoryCounts[category]++
			}
			totalFindings++
		}
	}

	return &domain.Report{
		Files: files,
		Summary: domain.ReportSummary{
			TotalFiles:     len(files),
			TotalFindings:  totalFindings,
			SeverityCounts: severityCounts,
			TopRules:       rankRules(ruleCounts),
			CategoryCounts: categoryCounts,
		},
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
		Warnings:    warnings,
		Errors:      errors,
	}
}

// rankRules orders rules by finding count descending, ties broken by rule id
// ascending, capped at topRulesLimit
func rankRules(counts map[string]int) []domain.RuleCount {
	ranked := make([]domain.RuleCount, 0, len(counts))
	for id, count := range counts {
		ranked = append(ranked, domain.RuleCount{RuleID: id, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].RuleID < ranked[j].RuleID
	})
	if len(ranked) > topRulesLimit {
		ranked = ranked[:topRulesLimit]
	}
	return ranked
}
