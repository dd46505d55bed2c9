package rules

import (
	"fmt"
	"strings"

	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/config"
	"github.com/ludo-technologies/prosescan/internal/parser"
	"github.com/ludo-technologies/prosescan/internal/segment"
)

// AIVocabularyDetector flags the vocabulary that post-2023 language models
// favor far beyond human baseline rates ("delve", "tapestry", "testament").
// The aggregate rate is checked against thresholds; independently, several
// distinct list words in one document warn even at a low rate, because the
// words cluster in generated text.
type AIVocabularyDetector struct{}

func (d *AIVocabularyDetector) ID() string       { return "ai-vocabulary" }
func (d *AIVocabularyDetector) Category() string { return config.CategoryAITell }

func (d *AIVocabularyDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	totalWords := len(tokens)
	if totalWords == 0 {
		return nil
	}

	watched := make(map[string]bool)
	for _, w := range cfg.Strings("words") {
		watched[strings.ToLower(w)] = true
	}
	if len(watched) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	first := -1
	firstWord := ""
	totalCount := 0
	for _, tok := range tokens {
		if !watched[tok.Word] {
			continue
		}
		if counts[tok.Word] == 0 {
			order = append(order, tok.Word)
		}
		counts[tok.Word]++
		totalCount++
		if first < 0 {
			first = tok.Start
			firstWord = tok.Word
		}
	}
	if totalCount == 0 {
		return nil
	}

	rate := ratePerThousand(totalCount, totalWords)
	severity, hit := rateSeverity(rate,
		cfg.Float("warn_threshold_per_1000", 3),
		cfg.Float("fail_threshold_per_1000", 5))
	if !hit {
		clusterThreshold := cfg.Int("cluster_threshold", 3)
		if clusterThreshold <= 0 || len(order) < clusterThreshold {
			return nil
		}
		severity = domain.SeverityWarn
	}

	shown := order
	if len(shown) > 5 {
		shown = shown[:5]
	}
	described := make([]string, 0, len(shown))
	for _, w := range shown {
		described = append(described, fmt.Sprintf("'%s' (%dx)", w, counts[w]))
	}

	return []domain.Finding{newFinding(doc, d.ID(), severity,
		fmt.Sprintf("AI vocabulary: %d occurrences (%.2f per 1,000 words). Words: %s",
			totalCount, rate, strings.Join(described, ", ")),
		first, first+len(firstWord),
		map[string]any{
			"count":          totalCount,
			"rate":           rate,
			"distinct_words": len(order),
		})}
}

// patternDetector is the shared shape of the regex-list rules: count every
// match of every configured pattern and compare the total against count
// thresholds, reporting one finding at the first match.
type patternDetector struct {
	id       string
	category string
	message  string // fmt verb: %d match count
}

func newPatternDetector(id, category, message string) *patternDetector {
	return &patternDetector{id: id, category: category, message: message}
}

func (d *patternDetector) ID() string       { return d.id }
func (d *patternDetector) Category() string { return d.category }

func (d *patternDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	matches := matchAll(compilePatterns(cfg.Strings("patterns")), doc.Text)

	severity, hit := countSeverity(len(matches), cfg.Int("warn_count", 0), cfg.Int("fail_count", 0))
	if !hit {
		return nil
	}

	first := matches[0]
	return []domain.Finding{newFinding(doc, d.id, severity,
		fmt.Sprintf(d.message, len(matches)),
		first[0], first[1],
		map[string]any{"count": len(matches)})}
}

// occurrenceDetector is the shared shape of the always-fail regex rules:
// every match is distinctive enough to fail on its own.
type occurrenceDetector struct {
	id       string
	category string
	message  string // fmt verb: %s matched text
}

func newOccurrenceDetector(id, category, message string) *occurrenceDetector {
	return &occurrenceDetector{id: id, category: category, message: message}
}

func (d *occurrenceDetector) ID() string       { return d.id }
func (d *occurrenceDetector) Category() string { return d.category }

func (d *occurrenceDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	matches := matchAll(compilePatterns(cfg.Strings("patterns")), doc.Text)

	var findings []domain.Finding
	for _, m := range matches {
		phrase := doc.Text[m[0]:m[1]]
		findings = append(findings, newFinding(doc, d.id, domain.SeverityFail,
			fmt.Sprintf(d.message, truncate(phrase, 50)),
			m[0], m[1],
			map[string]any{"phrase": phrase}))
	}
	return findings
}

// phraseDetector is the shared shape of the literal-phrase rules: count
// word-bounded occurrences of each configured phrase and compare the total
// against count thresholds.
type phraseDetector struct {
	id       string
	category string
	message  string // fmt verb: %d match count
}

func newPhraseDetector(id, category, message string) *phraseDetector {
	return &phraseDetector{id: id, category: category, message: message}
}

func (d *phraseDetector) ID() string       { return d.id }
func (d *phraseDetector) Category() string { return d.category }

func (d *phraseDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	count := 0
	first := []int{-1, -1}
	for _, phrase := range cfg.Strings("phrases") {
		re, err := phrasePattern(phrase)
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

	severity, hit := countSeverity(count, cfg.Int("warn_count", 0), cfg.Int("fail_count", 0))
	if !hit || first[0] < 0 {
		return nil
	}

	return []domain.Finding{newFinding(doc, d.id, severity,
		fmt.Sprintf(d.message, count),
		first[0], first[1],
		map[string]any{"count": count})}
}
