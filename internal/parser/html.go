package parser

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// blockTags are elements that introduce a paragraph break in the
// normalized text, so sentence and window detectors never bridge
// unrelated blocks
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "hr": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true,
	"ul": true,
}

// skippedTags are elements whose contents are never prose
var skippedTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

// normalizeHTML extracts visible text from doc.Raw using a streaming
// tokenizer. Inline tags vanish without whitespace artifacts, block
// tags become paragraph breaks, and script/style contents are dropped.
// A malformed document terminates the scan with whatever text was
// extracted so far.
func normalizeHTML(doc *Document) {
	z := html.NewTokenizer(strings.NewReader(doc.Raw))
	offsets := NewOffsetMap()
	var out strings.Builder
	var title strings.Builder

	line := 1
	skipTag := ""
	inTitle := false
	pendingSpace := false
	pendingBreak := false

	for {
		tt := z.Next()

		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				doc.Degraded = true
				doc.DegradedNote = "malformed HTML: " + err.Error()
			}
			break
		}

		raw := z.Raw()

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tt == html.StartTagToken && skippedTags[tag] && skipTag == "" {
				skipTag = tag
			}
			if tag == "title" && tt == html.StartTagToken {
				inTitle = true
			}
			if blockTags[tag] {
				pendingBreak = true
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == skipTag {
				skipTag = ""
			}
			if tag == "title" {
				inTitle = false
			}
			if blockTags[tag] {
				pendingBreak = true
			}

		case html.TextToken:
			text := string(z.Text())
			switch {
			case skipTag != "":
				// dropped entirely
			case inTitle:
				title.WriteString(strings.TrimSpace(text))
			default:
				line = emitText(&out, offsets, text, line, &pendingSpace, &pendingBreak)
				continue
			}
		}

		line += strings.Count(string(raw), "\n")
	}

	doc.Text = out.String()
	doc.Title = title.String()
	doc.offsets = offsets
}

// emitText appends one text token to the normalized output, collapsing
// whitespace runs and realizing any pending paragraph break. It returns
// the original line number after the token.
func emitText(out *strings.Builder, offsets *OffsetMap, text string, line int, pendingSpace, pendingBreak *bool) int {
	for _, r := range text {
		if r == '\n' {
			line++
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			*pendingSpace = true
			continue
		}

		if out.Len() > 0 {
			if *pendingBreak {
				out.WriteString("\n\n")
			} else if *pendingSpace {
				out.WriteByte(' ')
			}
		}
		*pendingBreak = false
		*pendingSpace = false

		offsets.Add(out.Len(), line)
		out.WriteRune(r)
	}
	return line
}
