package segment

import (
	"strings"
	"unicode"
)

// Token is one normalized word: lower-cased, punctuation-stripped,
// possessive suffix removed. Start is its byte offset in the
// normalized text.
type Token struct {
	Word  string
	Start int
}

// Words tokenizes text into word tokens. Words split on
// non-alphanumeric boundaries; apostrophes survive inside a word
// ("don't") but possessive 's and trailing apostrophes are stripped.
func Words(text string) []Token {
	var tokens []Token

	start := -1
	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if tok, ok := makeToken(text[start:i], start); ok {
				tokens = append(tokens, tok)
			}
			start = -1
		}
	}
	if start >= 0 {
		if tok, ok := makeToken(text[start:], start); ok {
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// makeToken normalizes one raw word run. It returns false when the run
// was only apostrophes.
func makeToken(raw string, start int) (Token, bool) {
	trimmed := strings.TrimLeft(raw, "'’")
	start += len(raw) - len(trimmed)
	trimmed = strings.TrimRight(trimmed, "'’")

	word := strings.ToLower(strings.ReplaceAll(trimmed, "’", "'"))
	word = strings.TrimSuffix(word, "'s")

	if word == "" {
		return Token{}, false
	}
	return Token{Word: word, Start: start}, true
}
