package segment

// stopwords is the fixed common-English stopword set. It only feeds
// repetition filtering, so it is deliberately not configurable; the
// set is read-only after process start and safe to share across
// concurrent evaluations.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true,
	"at": true, "be": true, "by": true, "for": true, "from": true,
	"has": true, "he": true, "in": true, "is": true, "it": true,
	"its": true, "of": true, "on": true, "that": true, "the": true,
	"to": true, "was": true, "will": true, "with": true, "your": true,
	"you": true, "we": true, "they": true, "their": true, "this": true,
	"these": true, "those": true, "or": true, "but": true, "not": true,
	"can": true, "have": true, "had": true, "do": true, "does": true,
	"did": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "must": true, "been": true,
	"being": true, "than": true, "then": true, "there": true,
	"here": true, "where": true, "when": true, "who": true,
	"which": true, "what": true, "how": true, "why": true, "all": true,
	"each": true, "every": true, "both": true, "few": true,
	"more": true, "most": true, "other": true, "some": true,
	"such": true, "only": true, "own": true, "same": true, "so": true,
	"no": true, "nor": true, "just": true, "too": true, "very": true,
	"any": true, "also": true, "she": true, "her": true, "his": true,
	"him": true, "i": true, "my": true, "our": true, "us": true,
	"if": true, "into": true, "about": true, "over": true,
}

// IsStopword reports whether word (already lower-cased) belongs to the
// fixed stopword set
func IsStopword(word string) bool {
	return stopwords[word]
}
