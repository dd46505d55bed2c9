package rules

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/parser"
)

const snippetContext = 40

// ratePerThousand converts a raw count into occurrences per 1,000 words
func ratePerThousand(count, totalWords int) float64 {
	if totalWords == 0 {
		return 0
	}
	return float64(count) / float64(totalWords) * 1000
}

// percentage returns count as a percentage of total
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// rateSeverity applies the shared rate comparison: FAIL at or above the fail
// threshold, else WARN at or above the warn threshold. A threshold <= 0
// disables that tier. The second return is false when neither tier fires.
func rateSeverity(rate, warnThreshold, failThreshold float64) (domain.Severity, bool) {
	if failThreshold > 0 && rate >= failThreshold {
		return domain.SeverityFail, true
	}
	if warnThreshold > 0 && rate >= warnThreshold {
		return domain.SeverityWarn, true
	}
	return domain.SeverityPass, false
}

// countSeverity applies the shared count comparison for phrase rules.
// A threshold of 0 disables that tier.
func countSeverity(count, warnCount, failCount int) (domain.Severity, bool) {
	if failCount > 0 && count >= failCount {
		return domain.SeverityFail, true
	}
	if warnCount > 0 && count >= warnCount {
		return domain.SeverityWarn, true
	}
	return domain.SeverityPass, false
}

// contextSnippet extracts up to snippetContext characters on each side of a
// match, collapses whitespace, and marks truncated ends with "...".
func contextSnippet(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		start = end
	}

	from := start - snippetContext
	if from < 0 {
		from = 0
	}
	to := end + snippetContext
	if to > len(text) {
		to = len(text)
	}

	snippet := strings.Join(strings.Fields(text[from:to]), " ")
	if from > 0 {
		snippet = "..." + snippet
	}
	if to < len(text) {
		snippet = snippet + "..."
	}
	return snippet
}

// newFinding assembles a finding anchored at a byte range of the normalized
// document text
func newFinding(doc *parser.Document, ruleID string, severity domain.Severity, message string, start, end int, details map[string]any) domain.Finding {
	return domain.Finding{
		RuleID:   ruleID,
		Severity: severity,
		Message:  message,
		FilePath: doc.Path,
		Snippet:  contextSnippet(doc.Text, start, end),
		Line:     doc.LineFor(start),
		Details:  details,
	}
}

// compilePatterns compiles a configured pattern list case-insensitively.
// Uncompilable patterns are skipped; config validation rejects them before a
// document is ever checked.
func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

// phrasePattern compiles a literal word or phrase into a case-insensitive,
// word-bounded pattern. Spaces match any whitespace run.
func phrasePattern(phrase string) (*regexp.Regexp, error) {
	escaped := regexp.QuoteMeta(strings.TrimSpace(phrase))
	escaped = strings.Join(strings.Fields(escaped), `\s+`)
	return regexp.Compile(`(?i)\b` + escaped + `\b`)
}

// matchAll collects every match of every pattern, ordered by position in the
// text so the first reported match is the first one a reader would hit.
func matchAll(patterns []*regexp.Regexp, text string) [][]int {
	var all [][]int
	for _, re := range patterns {
		all = append(all, re.FindAllStringIndex(text, -1)...)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i][0] != all[j][0] {
			return all[i][0] < all[j][0]
		}
		return all[i][1] < all[j][1]
	})
	return all
}

// truncate shortens a matched string for use in messages
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
