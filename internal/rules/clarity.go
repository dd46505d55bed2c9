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

// WeakPhrasesDetector flags hedging phrases ("I think", "arguably") that
// appear in assertive statements. A phrase only counts when a claim verb
// occurs in the same sentence; hedges in genuinely tentative sentences are
// left alone.
type WeakPhrasesDetector struct{}

func (d *WeakPhrasesDetector) ID() string       { return "weak-phrases" }
func (d *WeakPhrasesDetector) Category() string { return config.CategoryClarity }

func (d *WeakPhrasesDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	phrases := cfg.Strings("phrases")
	if len(phrases) == 0 {
		return nil
	}

	claimRe := claimVerbPattern(cfg.Strings("claim_verbs"))

	count := 0
	first := []int{-1, -1}
	firstPhrase := ""
	matched := make(map[string]bool)

	for _, phrase := range phrases {
		re, err := phrasePattern(phrase)
		if err != nil {
			continue
		}
		for _, sentence := range sentences {
			hits := re.FindAllStringIndex(sentence.Text, -1)
			if len(hits) == 0 {
				continue
			}
			if claimRe != nil && !claimRe.MatchString(sentence.Text) {
				continue
			}
			count += len(hits)
			matched[strings.ToLower(phrase)] = true
			for _, m := range hits {
				start := sentence.Start + m[0]
				if first[0] < 0 || start < first[0] {
					first = []int{start, sentence.Start + m[1]}
					firstPhrase = strings.ToLower(phrase)
				}
			}
		}
	}

	severity, hit := countSeverity(count, cfg.Int("warn_count", 1), cfg.Int("fail_count", 3))
	if !hit || first[0] < 0 {
		return nil
	}

	phraseList := make([]string, 0, len(matched))
	for p := range matched {
		phraseList = append(phraseList, p)
	}
	sort.Strings(phraseList)

	return []domain.Finding{newFinding(doc, d.ID(), severity,
		fmt.Sprintf("Weak phrase '%s' in an assertive statement: %d occurrence(s)", firstPhrase, count),
		first[0], first[1],
		map[string]any{"count": count, "phrases": phraseList})}
}

// claimVerbPattern builds a word-bounded alternation over the claim verbs.
// Returns nil when the list is empty, which makes every sentence assertive.
func claimVerbPattern(verbs []string) *regexp.Regexp {
	if len(verbs) == 0 {
		return nil
	}
	parts := make([]string, 0, len(verbs))
	for _, v := range verbs {
		escaped := regexp.QuoteMeta(strings.TrimSpace(v))
		parts = append(parts, strings.Join(strings.Fields(escaped), `\s+`))
	}
	re, err := regexp.Compile(`(?i)\b(` + strings.Join(parts, "|") + `)\b`)
	if err != nil {
		return nil
	}
	return re
}

// VagueThisDetector flags sentences opening with "This" followed directly by
// a vague verb, leaving the referent unclear
type VagueThisDetector struct{}

func (d *VagueThisDetector) ID() string       { return "vague-this" }
func (d *VagueThisDetector) Category() string { return config.CategoryClarity }

func (d *VagueThisDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	verbs := cfg.Strings("verbs")
	if len(verbs) == 0 {
		return nil
	}

	parts := make([]string, 0, len(verbs))
	for _, v := range verbs {
		parts = append(parts, regexp.QuoteMeta(strings.ToLower(v)))
	}
	re, err := regexp.Compile(`(?i)^this\s+(` + strings.Join(parts, "|") + `)\b`)
	if err != nil {
		return nil
	}

	var findings []domain.Finding
	for _, sentence := range sentences {
		m := re.FindStringIndex(sentence.Text)
		if m == nil {
			continue
		}
		phrase := sentence.Text[m[0]:m[1]]
		findings = append(findings, newFinding(doc, d.ID(), domain.SeverityWarn,
			fmt.Sprintf("Vague 'this' at sentence start: '%s'", phrase),
			sentence.Start+m[0], sentence.Start+m[1],
			map[string]any{"phrase": phrase}))
	}
	return findings
}

// PassiveVoiceDetector flags a high share of sentences in passive voice.
// The heuristic is a be-verb followed by an -ed word or a known irregular
// participle. This rule only warns: passive voice is sometimes the right
// choice.
type PassiveVoiceDetector struct{}

func (d *PassiveVoiceDetector) ID() string       { return "passive-voice" }
func (d *PassiveVoiceDetector) Category() string { return config.CategoryClarity }

func (d *PassiveVoiceDetector) Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding {
	if len(sentences) == 0 {
		return nil
	}

	participles := cfg.Strings("participles")
	alternation := `\w+ed`
	if len(participles) > 0 {
		escaped := make([]string, 0, len(participles))
		for _, p := range participles {
			escaped = append(escaped, regexp.QuoteMeta(strings.ToLower(p)))
		}
		alternation += "|" + strings.Join(escaped, "|")
	}
	re, err := regexp.Compile(`(?i)\b(was|were|is|are|been|be)\s+(` + alternation + `)\b`)
	if err != nil {
		return nil
	}

	passiveCount := 0
	first := []int{-1, -1}
	for _, sentence := range sentences {
		m := re.FindStringIndex(sentence.Text)
		if m == nil {
			continue
		}
		passiveCount++
		if first[0] < 0 {
			first = []int{sentence.Start + m[0], sentence.Start + m[1]}
		}
	}

	percent := percentage(passiveCount, len(sentences))
	threshold := cfg.Float("threshold_percent", 12)
	if threshold <= 0 || percent <= threshold || first[0] < 0 {
		return nil
	}

	return []domain.Finding{newFinding(doc, d.ID(), domain.SeverityWarn,
		fmt.Sprintf("High passive voice usage: %.2f%% of sentences (threshold: %.0f%%)", percent, threshold),
		first[0], first[1],
		map[string]any{"percent": percent, "count": passiveCount, "total_sentences": len(sentences)})}
}
