// Package rules implements the prose lint rule catalog.
//
// Each detector inspects one normalized document and reports findings for a
// single rule id. Detectors are pure: they read the document, its sentence
// and token segmentation, and their resolved configuration, and return
// findings without touching shared state. The engine decides which detectors
// run; a detector never checks its own enabled flag.
package rules

import (
	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/config"
	"github.com/ludo-technologies/prosescan/internal/parser"
	"github.com/ludo-technologies/prosescan/internal/segment"
)

// Detector checks one rule against a document
type Detector interface {
	// ID returns the rule identifier
	ID() string

	// Category returns the rule category for report grouping
	Category() string

	// Check runs the rule and returns its findings
	Check(doc *parser.Document, sentences []segment.Sentence, tokens []segment.Token, cfg config.EffectiveRule) []domain.Finding
}

// NewRegistry returns the full detector catalog in evaluation order.
// The order is fixed so runs are deterministic.
func NewRegistry() []Detector {
	return []Detector{
		&BannedWordsDetector{},
		&WeakPhrasesDetector{},
		&AdverbsDetector{},
		&StackedIntensifiersDetector{},
		&TransitionsDetector{},
		&ConjunctionStartsDetector{},
		&VagueThisDetector{},
		&SentenceVarianceDetector{},
		&PassiveVoiceDetector{},
		&RepetitionDetector{},
		&AIVocabularyDetector{},
		newPatternDetector("significance-language", config.CategoryAITell,
			"Overemphasis on significance/legacy: %d instances"),
		newPatternDetector("promotional-language", config.CategoryAITell,
			"Promotional language detected: %d instances of puffery"),
		newPatternDetector("superficial-analysis", config.CategoryAITell,
			"Superficial analysis: %d trailing participial phrases adding empty commentary"),
		newPatternDetector("copulative-avoidance", config.CategoryAITell,
			"Copulative avoidance: %d substitutes for plain 'is'/'has'"),
		newOccurrenceDetector("negative-parallelism", config.CategoryAITell,
			"Negative parallelism: '%s'"),
		newOccurrenceDetector("rule-of-three", config.CategoryAITell,
			"Formulaic 'rule of three' triad: '%s'"),
		newPatternDetector("challenges-conclusions", config.CategoryAITell,
			"Formulaic challenges/conclusions wrap-up: %d instances"),
		newOccurrenceDetector("knowledge-cutoff", config.CategoryAITell,
			"Knowledge cutoff disclaimer: '%s'"),
		newPhraseDetector("vague-attribution", config.CategoryAITell,
			"Vague attribution to unnamed authorities: %d instances"),
		newPhraseDetector("notability-emphasis", config.CategoryAITell,
			"Overemphasis on notability: %d instances"),
		newPhraseDetector("conversational-hooks", config.CategoryAITell,
			"Conversational hook: %d instances"),
		newPhraseDetector("meta-commentary", config.CategoryAITell,
			"Meta-commentary about the text itself: %d instances"),
	}
}
