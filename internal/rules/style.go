package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/config"
	"github.com/ludo-technologies/prosescan/internal/parser"
	"github.com/ludo-technologies/prosescan/internal/segment"
)

// BannedWordsDetector flags filler words whose per-word usage rate crosses
// the configured thresholds. Each offending word yields its own finding.
type BannedWordsDetector struct{}

func (d *BannedWordsDetector) ID() string       { return "banned-words" }
func (d *BannedWordsDetector) Category() string { return config.CategoryStyle }

func (d *BannedWordsDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	totalWords := len(tokens)
	if totalWords == 0 {
		return nil
	}

	warnThreshold := cfg.Float("warn_threshold_per_1000", 2)
	failThreshold := cfg.Float("fail_threshold_per_1000", 3)

	counts := make(map[string]int)
	firstAt := make(map[string]int)
	for _, tok := range tokens {
		counts[tok.Word]++
		if _, seen := firstAt[tok.Word]; !seen {
			firstAt[tok.Word] = tok.Start
		}
	}

	var findings []domain.Finding
	for _, banned := range cfg.Strings("words") {
		word := strings.ToLower(banned)
		count := counts[word]
		if count == 0 {
			continue
		}

		rate := ratePerThousand(count, totalWords)
		severity, hit := rateSeverity(rate, warnThreshold, failThreshold)
		if !hit {
			continue
		}

		start := firstAt[word]
		findings = append(findings, newFinding(doc, d.ID(), severity,
			fmt.Sprintf("Overuse of '%s': %d occurrences (%.2f per 1,000 words)", word, count, rate),
			start, start+len(word),
			map[string]any{"word": word, "count": count, "rate": rate}))
	}

	return findings
}

// AdverbsDetector flags a high aggregate rate of -ly adverbs
type AdverbsDetector struct{}

func (d *AdverbsDetector) ID() string       { return "adverbs" }
func (d *AdverbsDetector) Category() string { return config.CategoryStyle }

func (d *AdverbsDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	totalWords := len(tokens)
	if totalWords == 0 {
		return nil
	}

	exceptions := make(map[string]bool)
	for _, w := range cfg.Strings("exceptions") {
		exceptions[strings.ToLower(w)] = true
	}

	count := 0
	first := -1
	firstWord := ""
	for _, tok := range tokens {
		if len(tok.Word) <= 3 || !strings.HasSuffix(tok.Word, "ly") || exceptions[tok.Word] {
			continue
		}
		count++
		if first < 0 {
			first = tok.Start
			firstWord = tok.Word
		}
	}

	rate := ratePerThousand(count, totalWords)
	severity, hit := rateSeverity(rate,
		cfg.Float("warn_threshold_per_1000", 8),
		cfg.Float("fail_threshold_per_1000", 15))
	if !hit || first < 0 {
		return nil
	}

	return []domain.Finding{newFinding(doc, d.ID(), severity,
		fmt.Sprintf("Overuse of -ly adverbs: %d occurrences (%.2f per 1,000 words)", count, rate),
		first, first+len(firstWord),
		map[string]any{"count": count, "rate": rate})}
}

// StackedIntensifiersDetector flags an intensifier immediately followed by
// another -ly word ("really incredibly"). Each occurrence fails.
type StackedIntensifiersDetector struct{}

func (d *StackedIntensifiersDetector) ID() string       { return "stacked-intensifiers" }
func (d *StackedIntensifiersDetector) Category() string { return config.CategoryStyle }

func (d *StackedIntensifiersDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	intensifiers := cfg.Strings("intensifiers")
	if len(intensifiers) == 0 {
		return nil
	}

	alternation := make([]string, 0, len(intensifiers))
	for _, w := range intensifiers {
		alternation = append(alternation, regexp.QuoteMeta(strings.ToLower(w)))
	}
	re, err := regexp.Compile(`(?i)\b(` + strings.Join(alternation, "|") + `)\s+\w+ly\b`)
	if err != nil {
		return nil
	}

	var findings []domain.Finding
	for _, m := range re.FindAllStringIndex(doc.Text, -1) {
		phrase := doc.Text[m[0]:m[1]]
		findings = append(findings, newFinding(doc, d.ID(), domain.SeverityFail,
			fmt.Sprintf("Stacked intensifier: '%s'", phrase),
			m[0], m[1],
			map[string]any{"phrase": phrase}))
	}
	return findings
}

// TransitionsDetector flags a high aggregate rate of transition words.
// This rule only warns.
type TransitionsDetector struct{}

func (d *TransitionsDetector) ID() string       { return "transitions" }
func (d *TransitionsDetector) Category() string { return config.CategoryStyle }

func (d *TransitionsDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	totalWords := len(tokens)
	if totalWords == 0 {
		return nil
	}

	count := 0
	first := []int{-1, -1}
	for _, transition := range cfg.Strings("transitions") {
		re, err := phrasePattern(transition)
		if err != nil {
			continue
		}
		matches := re.FindAllStringIndex(doc.Text, -1)
		count += len(matches)
		for _, m := range matches {
			if first[0] < 0 || m[0] < first[0] {
				first = m
			}
		}
	}

	rate := ratePerThousand(count, totalWords)
	warnThreshold := cfg.Float("warn_threshold_per_1000", 4)
	if warnThreshold <= 0 || rate < warnThreshold || first[0] < 0 {
		return nil
	}

	return []domain.Finding{newFinding(doc, d.ID(), domain.SeverityWarn,
		fmt.Sprintf("Overuse of transitions: %d occurrences (%.2f per 1,000 words)", count, rate),
		first[0], first[1],
		map[string]any{"count": count, "rate": rate})}
}

// RepetitionDetector flags words repeated too often within a sliding window
// of a paragraph. A word is reported at most once per document, at the first
// window where it offends.
type RepetitionDetector struct{}

func (d *RepetitionDetector) ID() string       { return "repetition" }
func (d *RepetitionDetector) Category() string { return config.CategoryStyle }

func (d *RepetitionDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	windowWords := cfg.Int("window_words", 150)
	threshold := cfg.Int("repeat_threshold", 4)
	minLength := cfg.Int("min_word_length", 5)
	if windowWords < 2 {
		windowWords = 2
	}
	step := windowWords / 2

	var findings []domain.Finding
	reported := make(map[string]bool)

	for _, para := range splitParagraphs(doc.Text) {
		words := segment.Words(para.text)

		for i := 0; i < len(words); i += step {
			end := i + windowWords
			if end > len(words) {
				end = len(words)
			}
			window := words[i:end]

			counts := make(map[string]int)
			firstAt := make(map[string]int)
			for _, tok := range window {
				if len(tok.Word) < minLength || segment.IsStopword(tok.Word) {
					continue
				}
				counts[tok.Word]++
				if _, seen := firstAt[tok.Word]; !seen {
					firstAt[tok.Word] = para.start + tok.Start
				}
			}

			var offending []string
			for word, count := range counts {
				if count > threshold && !reported[word] {
					offending = append(offending, word)
				}
			}
			sort.Slice(offending, func(a, b int) bool {
				return firstAt[offending[a]] < firstAt[offending[b]]
			})

			for _, word := range offending {
				count := counts[word]
				reported[word] = true
				start := firstAt[word]
				findings = append(findings, newFinding(doc, d.ID(), domain.SeverityWarn,
					fmt.Sprintf("Word '%s' repeated %d times in %d-word window", word, count, windowWords),
					start, start+len(word),
					map[string]any{"word": word, "count": count, "window_size": windowWords}))
			}

			if end == len(words) {
				break
			}
		}
	}

	return findings
}

type paragraphSpan struct {
	text  string
	start int
}

// splitParagraphs divides normalized text on blank lines, keeping each
// paragraph's byte offset in the original text
func splitParagraphs(text string) []paragraphSpan {
	var spans []paragraphSpan
	offset := 0
	for _, part := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(part) != "" {
			spans = append(spans, paragraphSpan{text: part, start: offset})
		}
		offset += len(part) + 2
	}
	return spans
}
