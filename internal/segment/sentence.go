// Package segment splits normalized prose into sentences and word
// tokens. Both operations are pure functions of their input, so
// segmented views can be shared freely across concurrent rule checks.
package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentence is one sentence span over the normalized text. Spans tile
// the text exactly: each sentence ends where the next begins, and
// joining all spans reconstructs the input byte for byte. Trailing
// whitespace after a terminator belongs to the sentence it closes.
type Sentence struct {
	Text      string
	Start     int
	End       int
	Index     int
	Paragraph int
}

// abbreviations whose trailing period never ends a sentence
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"e.g": true, "i.e": true, "eg": true, "ie": true,
	"approx": true, "dept": true, "fig": true, "vol": true, "no": true,
}

// Sentences splits text into an ordered sequence of sentences. A
// boundary is sentence-terminal punctuation followed by whitespace and
// a capital letter (or end of text), unless the terminator closes a
// known abbreviation, a single capital initial, or sits inside a
// decimal number.
func Sentences(text string) []Sentence {
	if text == "" {
		return nil
	}

	paragraphStarts := paragraphOffsets(text)
	var sentences []Sentence

	start := 0
	i := 0
	for i < len(text) {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			i++
			continue
		}

		if c == '.' && (insideDecimal(text, i) || endsAbbreviation(text, i)) {
			i++
			continue
		}

		// Consume any run of terminators and closing quotes
		j := i + 1
		for j < len(text) && (text[j] == '.' || text[j] == '!' || text[j] == '?' || text[j] == '"' || text[j] == '\'' || text[j] == ')') {
			j++
		}

		// Whitespace must follow, then a capital letter or end of text
		k := j
		for k < len(text) {
			r, size := utf8.DecodeRuneInString(text[k:])
			if !unicode.IsSpace(r) {
				break
			}
			k += size
		}
		if k == j && j < len(text) {
			i = j
			continue
		}

		if k < len(text) {
			r, _ := utf8.DecodeRuneInString(text[k:])
			if !unicode.IsUpper(r) {
				i = j
				continue
			}
		}

		sentences = append(sentences, Sentence{
			Text:      text[start:k],
			Start:     start,
			End:       k,
			Index:     len(sentences),
			Paragraph: paragraphFor(paragraphStarts, start),
		})
		start = k
		i = k
	}

	if start < len(text) {
		sentences = append(sentences, Sentence{
			Text:      text[start:],
			Start:     start,
			End:       len(text),
			Index:     len(sentences),
			Paragraph: paragraphFor(paragraphStarts, start),
		})
	}

	return sentences
}

// insideDecimal reports whether the period at i sits between digits
func insideDecimal(text string, i int) bool {
	return i > 0 && i+1 < len(text) &&
		isDigit(text[i-1]) && isDigit(text[i+1])
}

// endsAbbreviation reports whether the token immediately before the
// period at i is a known abbreviation or a single-letter initial
func endsAbbreviation(text string, i int) bool {
	end := i
	start := end
	for start > 0 {
		c := text[start-1]
		if isLetter(c) || c == '.' {
			start--
			continue
		}
		break
	}
	if start == end {
		return false
	}

	word := strings.ToLower(strings.Trim(text[start:end], "."))
	if word == "" {
		return false
	}
	if len(word) == 1 && isUpper(text[end-1]) {
		// Initials such as "J." or the inner periods of "U.S.";
		// a lowercase letter before the period is an ordinary word
		return true
	}
	return abbreviations[word]
}

// paragraphOffsets returns the start offset of each paragraph.
// Paragraphs are separated by blank-line runs.
func paragraphOffsets(text string) []int {
	starts := []int{0}
	i := 0
	for {
		idx := strings.Index(text[i:], "\n\n")
		if idx < 0 {
			break
		}
		j := i + idx
		for j < len(text) && (text[j] == '\n' || text[j] == ' ' || text[j] == '\t') {
			j++
		}
		if j < len(text) {
			starts = append(starts, j)
		}
		i = j
	}
	return starts
}

// paragraphFor returns the 0-based paragraph ordinal for an offset
func paragraphFor(starts []int, offset int) int {
	lo, hi := 0, len(starts)
	for lo < hi {
		mid := (lo + hi) / 2
		if starts[mid] <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo - 1
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
