package rules

import (
	"fmt"
	"strings"

	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/config"
	"github.com/ludo-technologies/prosescan/internal/parser"
	"github.com/ludo-technologies/prosescan/internal/segment"
)

// ConjunctionStartsDetector flags sentences that open with a conjunction.
// Two independent checks: the overall percentage of conjunction-started
// sentences warns, and the first run of consecutive conjunction starts at or
// above the configured length fails.
type ConjunctionStartsDetector struct{}

func (d *ConjunctionStartsDetector) ID() string       { return "conjunction-starts" }
func (d *ConjunctionStartsDetector) Category() string { return config.CategoryStructure }

func (d *ConjunctionStartsDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	if len(sentences) == 0 {
		return nil
	}

	conjunctions := make(map[string]bool)
	for _, c := range cfg.Strings("conjunctions") {
		conjunctions[strings.ToLower(c)] = true
	}
	if len(conjunctions) == 0 {
		return nil
	}

	starts := make([]bool, len(sentences))
	startCount := 0
	for i, sentence := range sentences {
		if conjunctions[firstWord(sentence.Text)] {
			starts[i] = true
			startCount++
		}
	}

	var findings []domain.Finding

	// First run of consecutive conjunction starts at or above the limit
	failCount := cfg.Int("consecutive_fail_count", 3)
	if failCount > 0 {
		runStart, runLength := firstRun(starts, failCount)
		if runStart >= 0 {
			sentence := sentences[runStart]
			findings = append(findings, newFinding(doc, d.ID(), domain.SeverityFail,
				fmt.Sprintf("%d consecutive sentences start with conjunctions", runLength),
				sentence.Start, sentence.End,
				map[string]any{"consecutive_count": runLength}))
		}
	}

	// Overall share of conjunction-started sentences
	percent := percentage(startCount, len(sentences))
	warnPercent := cfg.Float("warn_threshold_percent", 20)
	if warnPercent > 0 && percent > warnPercent {
		for i, started := range starts {
			if !started {
				continue
			}
			sentence := sentences[i]
			findings = append(findings, newFinding(doc, d.ID(), domain.SeverityWarn,
				fmt.Sprintf("%.2f%% of sentences start with conjunctions (threshold: %.0f%%)", percent, warnPercent),
				sentence.Start, sentence.End,
				map[string]any{"percent": percent, "count": startCount, "total_sentences": len(sentences)}))
			break
		}
	}

	return findings
}

// firstWord extracts the lowercased first word of a sentence, stripped of
// trailing punctuation
func firstWord(sentence string) string {
	fields := strings.Fields(sentence)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimRight(strings.ToLower(fields[0]), ".,!?;:")
}

// firstRun finds the first run of true values with length >= minLength.
// It returns the run's start index and its full length, or -1 when no run
// qualifies.
func firstRun(flags []bool, minLength int) (int, int) {
	runStart := -1
	runLength := 0
	for i, flag := range flags {
		if flag {
			if runLength == 0 {
				runStart = i
			}
			runLength++
			continue
		}
		if runLength >= minLength {
			return runStart, runLength
		}
		runLength = 0
	}
	if runLength >= minLength {
		return runStart, runLength
	}
	return -1, 0
}

// SentenceVarianceDetector flags monotone sentence rhythm: when too many
// sentences fall into the same fixed-width length band the text reads flat.
type SentenceVarianceDetector struct{}

func (d *SentenceVarianceDetector) ID() string       { return "sentence-variance" }
func (d *SentenceVarianceDetector) Category() string { return config.CategoryStructure }

func (d *SentenceVarianceDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	minSentences := cfg.Int("min_sentences", 5)
	if len(sentences) < minSentences || len(sentences) == 0 {
		return nil
	}

	bandWidth := cfg.Int("band_width", 10)
	if bandWidth < 1 {
		bandWidth = 10
	}

	// Fixed bands: 0..bandWidth-1, bandWidth..2*bandWidth-1, ...
	bands := make(map[int]int)
	for _, sentence := range sentences {
		length := len(segment.Words(sentence.Text))
		bands[length/bandWidth]++
	}

	modalBand := 0
	modalCount := 0
	for band, count := range bands {
		if count > modalCount || (count == modalCount && band < modalBand) {
			modalBand = band
			modalCount = count
		}
	}

	percent := percentage(modalCount, len(sentences))
	threshold := cfg.Float("threshold_percent", 70)
	if threshold <= 0 || percent < threshold {
		return nil
	}

	bandStart := modalBand * bandWidth
	bandEnd := bandStart + bandWidth
	first := sentences[0]

	return []domain.Finding{newFinding(doc, d.ID(), domain.SeverityWarn,
		fmt.Sprintf("Low sentence length variance: %.2f%% of sentences are %d-%d words", percent, bandStart, bandEnd),
		first.Start, first.End,
		map[string]any{
			"percent_in_band": percent,
			"band_start":      bandStart,
			"band_end":        bandEnd,
			"sentence_count":  len(sentences),
		})}
}
