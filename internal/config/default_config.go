package config

// Rule categories used for report grouping
const (
	CategoryStyle     = "style"
	CategoryClarity   = "clarity"
	CategoryStructure = "structure"
	CategoryAITell    = "ai-tell"
)

// defaultBannedWords are filler words whose per-word rate is checked
var defaultBannedWords = []string{
	"really", "very", "just", "actually", "basically", "literally",
	"totally", "simply", "quite", "pretty",
}

// defaultWeakPhrases are hedging phrases that undermine assertions
var defaultWeakPhrases = []string{
	"i think", "i believe", "i feel", "in my opinion", "it seems",
	"sort of", "kind of", "arguably", "perhaps", "maybe",
}

// defaultClaimVerbs mark a sentence as making an assertive claim
var defaultClaimVerbs = []string{
	"is", "are", "causes", "leads to", "results in", "means", "shows", "proves",
}

// defaultAdverbExceptions are -ly words that are not adverbs
var defaultAdverbExceptions = []string{
	"fly", "supply", "apply", "reply", "multiply", "early", "only",
	"daily", "family", "july", "likely",
}

var defaultIntensifiers = []string{
	"really", "very", "extremely", "incredibly", "absolutely", "totally", "completely",
}

var defaultTransitions = []string{
	"however", "furthermore", "moreover", "additionally", "consequently",
	"therefore", "thus", "nevertheless", "nonetheless", "accordingly",
	"subsequently", "in addition", "on the other hand", "as a result",
}

var defaultConjunctions = []string{
	"and", "but", "so", "because", "however", "then",
}

var defaultVagueThisVerbs = []string{
	"is", "means", "suggests", "indicates", "shows", "implies", "can", "will",
}

// defaultIrregularParticiples supplement the -ed heuristic in passive detection
var defaultIrregularParticiples = []string{
	"been", "done", "made", "taken", "given", "shown", "seen", "found",
	"used", "known", "built", "written", "held", "kept", "left", "lost",
	"met", "paid", "sent", "sold", "told", "thought", "brought", "bought",
	"caught", "taught",
}

// defaultAIWords are words that appear far more often in LLM output than
// in pre-2023 human writing
var defaultAIWords = []string{
	"additionally", "align", "aligned", "aligns", "crucial", "delve",
	"delved", "delves", "delving", "emphasizing", "emphasize", "emphasized",
	"enduring", "enhance", "enhanced", "enhances", "enhancing", "fostering",
	"foster", "fostered", "garner", "garnered", "garnering", "highlight",
	"highlighted", "highlighting", "highlights", "interplay", "intricate",
	"intricacies", "landscape", "pivotal", "showcase", "showcased",
	"showcases", "showcasing", "tapestry", "testament", "underscore",
	"underscored", "underscores", "underscoring", "valuable", "vibrant",
}

// defaultSignificancePatterns match statements that inflate a subject's
// importance, legacy, or connection to broader trends
var defaultSignificancePatterns = []string{
	`\b(stands?|serves?|marks?|represents?)\s+(as\s+)?a\s+(testament|reminder|symbol|pivotal|crucial|vital|significant|key)\b`,
	`\b(underscores?|highlights?|emphasizes?|symbolizes?)\s+(its|their|the)\s+(importance|significance|role|impact|legacy)\b`,
	`\bplays?\s+a\s+(vital|significant|crucial|pivotal|key)\s+(role|part)\b`,
	`\b(enduring|lasting|ongoing|continued)\s+(legacy|significance|impact|relevance|importance)\b`,
	`\b(reflects?|represents?|symbolizes?)\s+(broader|wider|larger)\s+(trends?|movements?|contexts?|patterns?)\b`,
	`\bcontribut(es?|ing|ed)\s+to\s+the\s+(broader|wider|larger|overall)\b`,
	`\b(setting\s+the\s+stage|marking|shaping)\s+(the|a)\b`,
	`\b(deeply|firmly)\s+(rooted|embedded|ingrained)\b`,
	`\b(focal\s+point|indelible\s+mark|key\s+turning\s+point|pivotal\s+moment)\b`,
}

// defaultPromotionalPatterns match brochure language that breaks neutral tone
var defaultPromotionalPatterns = []string{
	`\b(boasts?|features?|offers?|showcases?)\s+a\b`,
	`\b(vibrant|rich|profound|breathtaking|stunning|remarkable|exceptional|outstanding)\s+(culture|heritage|landscape|history|tradition|community)\b`,
	`\b(enhancing|enriching|elevating)\s+(its|their|the)\b`,
	`\b(natural\s+beauty|scenic\s+landscapes?|breathtaking\s+views?)\b`,
	`\b(nestled|situated|located)\s+(in\s+the\s+heart\s+of|within|amidst)\b`,
	`\b(groundbreaking|revolutionary|pioneering|innovative)\s+(work|research|approach|method)\b`,
	`\b(renowned|celebrated|acclaimed|distinguished|esteemed)\s+(for|as)\b`,
	`\b(commitment|dedication)\s+to\s+(excellence|quality|sustainability|innovation)\b`,
	`\b(clean\s+and\s+modern|state-of-the-art|world-class|cutting-edge)\b`,
}

// defaultSuperficialPatterns match trailing participial phrases that attach
// empty commentary to the end of sentences
var defaultSuperficialPatterns = []string{
	`,\s+(highlighting|underscoring|emphasizing|demonstrating|illustrating|showcasing|reflecting|symbolizing)\s+(the|its|their)\s+(importance|significance|impact|role|value|legacy)\b`,
	`,\s+(ensuring|cultivating|fostering|promoting|enabling|facilitating)\s+\w+`,
	`,\s+(contributing\s+to|reflecting|symbolizing)\s+\w+`,
	`,\s+(encompassing|spanning|including)\s+\w+`,
	`,\s+(aligning|resonating)\s+with\b`,
}

// defaultCopulativePatterns match substitutes for plain "is"/"has"
var defaultCopulativePatterns = []string{
	`\b(serves?|stands?)\s+as\s+(a|an|the)\s+\w+`,
	`\b(features?|offers?)\s+(a|an|the|numerous|several|many)\s+\w+`,
	`\b(marks?|represents?)\s+(a|an|the)\s+(shift|change|transition|milestone)\b`,
	`\bholds?\s+the\s+(distinction|position|role)\b`,
}

// defaultNegativeParallelismPatterns match "not just X, but Y" constructions
var defaultNegativeParallelismPatterns = []string{
	`\bnot\s+only\s+\w+[\w\s,]+but\s+(also\s+)?\w+`,
	`\bnot\s+(just|merely|simply)\s+\w+[\w\s,]+but\s+\w+`,
	`\bit'?s\s+not\s+\w+[\w\s,]+it'?s\s+\w+`,
	`\bno\s+\w+,\s+no\s+\w+,\s+just\s+\w+`,
	`\bnot\s+\w+[\w\s,]+\.\s+rather,?\s+(it|this)\s+(is|constitutes|represents)\b`,
}

// defaultRuleOfThreePatterns match formulaic "X, Y, and Z" triads
var defaultRuleOfThreePatterns = []string{
	`\b(\w+),\s+(\w+),?\s+and\s+(\w+)\s+(approach|method|system|framework|strategy|solution|model|perspective)\b`,
	`\b(\w+\s+\w+),\s+(\w+\s+\w+),?\s+and\s+(\w+\s+\w+)\b`,
}

// defaultChallengesPatterns match outline-style challenges/future wrap-ups
var defaultChallengesPatterns = []string{
	`\bdespite\s+(its|their|the)\s+[\w\s,]+faces?\s+(several\s+)?(challenges?|obstacles?|difficulties?)\b`,
	`\b(challenges?\s+and\s+(legacy|future|prospects?)|future\s+(outlook|prospects?))\b`,
	`\bdespite\s+these\s+(challenges?|obstacles?),?[\w\s,]+continues?\s+to\b`,
	`\bfuture\s+(investments?|developments?|initiatives?)\s+[\w\s,]+could\s+(enhance|improve|maintain)\b`,
}

// defaultKnowledgeCutoffPatterns match training-data disclaimers
var defaultKnowledgeCutoffPatterns = []string{
	`\bas\s+of\s+(my\s+)?(last\s+)?(knowledge\s+)?(update|training|information)\b`,
	`\bup\s+to\s+my\s+last\s+(training\s+)?(update|knowledge)\b`,
	`\b(while|although)\s+(specific\s+)?(details?|information)\s+(is|are|remains?)\s+(limited|scarce|not\s+widely|not\s+extensively)\b`,
	`\bbased\s+on\s+(available|provided|current)\s+(information|sources|data)\b`,
	`\b(maintains?|keeps?)\s+(a\s+low\s+profile|personal\s+details\s+private)\b`,
}

// defaultVagueAttributionPhrases are weasel attributions to unnamed authorities
var defaultVagueAttributionPhrases = []string{
	"some critics argue", "some sources claim", "experts suggest",
	"experts argue", "observers note", "analysts suggest", "scholars argue",
	"researchers suggest", "industry reports suggest",
	"it is widely believed", "many believe",
}

// defaultNotabilityPhrases hammer on claimed importance or media coverage
var defaultNotabilityPhrases = []string{
	"it is important to note", "it is worth noting", "notably",
	"importantly", "significantly", "independent coverage",
	"active social media presence",
}

var defaultConversationalHooks = []string{
	"let's dive in", "let's explore", "let's take a closer look",
	"have you ever wondered", "buckle up", "without further ado",
	"so, what does this mean", "stay tuned",
}

var defaultMetaCommentaryPhrases = []string{
	"in this article", "in this post", "as mentioned earlier",
	"as we discussed", "in the following sections",
	"by the end of this article", "in conclusion", "as previously stated",
}

func enabled() *bool {
	v := true
	return &v
}

// DefaultConfig returns the built-in configuration: the full rule catalog
// with every rule enabled, plus default runtime settings.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Settings: Settings{
			FailOn:    "FAIL",
			Workers:   0,
			Recursive: true,
			Exclude:   []string{},
		},
		Rules: DefaultRules(),
	}
}

// DefaultRules returns the built-in rule catalog in registry order.
// The catalog doubles as the validation schema: its ids are the known rule
// ids and its parameter keys are the allowed keys per rule.
func DefaultRules() []RuleConfig {
	return []RuleConfig{
		{
			ID:       "banned-words",
			Enabled:  enabled(),
			Category: CategoryStyle,
			Params: map[string]any{
				"words":                   defaultBannedWords,
				"warn_threshold_per_1000": 2.0,
				"fail_threshold_per_1000": 3.0,
			},
		},
		{
			ID:       "weak-phrases",
			Enabled:  enabled(),
			Category: CategoryClarity,
			Params: map[string]any{
				"phrases":     defaultWeakPhrases,
				"claim_verbs": defaultClaimVerbs,
				"warn_count":  1,
				"fail_count":  3,
			},
		},
		{
			ID:       "adverbs",
			Enabled:  enabled(),
			Category: CategoryStyle,
			Params: map[string]any{
				"exceptions":              defaultAdverbExceptions,
				"warn_threshold_per_1000": 8.0,
				"fail_threshold_per_1000": 15.0,
			},
		},
		{
			ID:       "stacked-intensifiers",
			Enabled:  enabled(),
			Category: CategoryStyle,
			Params: map[string]any{
				"intensifiers": defaultIntensifiers,
			},
		},
		{
			ID:       "transitions",
			Enabled:  enabled(),
			Category: CategoryStyle,
			Params: map[string]any{
				"transitions":             defaultTransitions,
				"warn_threshold_per_1000": 4.0,
			},
		},
		{
			ID:       "conjunction-starts",
			Enabled:  enabled(),
			Category: CategoryStructure,
			Params: map[string]any{
				"conjunctions":           defaultConjunctions,
				"warn_threshold_percent": 20.0,
				"consecutive_fail_count": 3,
			},
		},
		{
			ID:       "vague-this",
			Enabled:  enabled(),
			Category: CategoryClarity,
			Params: map[string]any{
				"verbs": defaultVagueThisVerbs,
			},
		},
		{
			ID:       "sentence-variance",
			Enabled:  enabled(),
			Category: CategoryStructure,
			Params: map[string]any{
				"threshold_percent": 70.0,
				"min_sentences":     5,
				"band_width":        10,
			},
		},
		{
			ID:       "passive-voice",
			Enabled:  enabled(),
			Category: CategoryClarity,
			Params: map[string]any{
				"threshold_percent": 12.0,
				"participles":       defaultIrregularParticiples,
			},
		},
		{
			ID:       "repetition",
			Enabled:  enabled(),
			Category: CategoryStyle,
			Params: map[string]any{
				"window_words":     150,
				"repeat_threshold": 4,
				"min_word_length":  5,
			},
		},
		{
			ID:       "ai-vocabulary",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"words":                   defaultAIWords,
				"warn_threshold_per_1000": 3.0,
				"fail_threshold_per_1000": 5.0,
				"cluster_threshold":       3,
			},
		},
		{
			ID:       "significance-language",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"patterns":   defaultSignificancePatterns,
				"warn_count": 2,
				"fail_count": 4,
			},
		},
		{
			ID:       "promotional-language",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"patterns":   defaultPromotionalPatterns,
				"warn_count": 2,
				"fail_count": 4,
			},
		},
		{
			ID:       "superficial-analysis",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"patterns":   defaultSuperficialPatterns,
				"warn_count": 3,
				"fail_count": 5,
			},
		},
		{
			ID:       "copulative-avoidance",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"patterns":   defaultCopulativePatterns,
				"warn_count": 3,
			},
		},
		{
			ID:       "negative-parallelism",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"patterns": defaultNegativeParallelismPatterns,
			},
		},
		{
			ID:       "rule-of-three",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"patterns": defaultRuleOfThreePatterns,
			},
		},
		{
			ID:       "challenges-conclusions",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"patterns":   defaultChallengesPatterns,
				"warn_count": 1,
				"fail_count": 2,
			},
		},
		{
			ID:       "knowledge-cutoff",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"patterns": defaultKnowledgeCutoffPatterns,
			},
		},
		{
			ID:       "vague-attribution",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"phrases":    defaultVagueAttributionPhrases,
				"warn_count": 2,
			},
		},
		{
			ID:       "notability-emphasis",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"phrases":    defaultNotabilityPhrases,
				"warn_count": 2,
			},
		},
		{
			ID:       "conversational-hooks",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"phrases":    defaultConversationalHooks,
				"warn_count": 1,
				"fail_count": 3,
			},
		},
		{
			ID:       "meta-commentary",
			Enabled:  enabled(),
			Category: CategoryAITell,
			Params: map[string]any{
				"phrases":    defaultMetaCommentaryPhrases,
				"warn_count": 2,
				"fail_count": 4,
			},
		},
	}
}
