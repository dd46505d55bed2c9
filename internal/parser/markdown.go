package parser

import (
	"regexp"
	"strings"
)

var (
	mdCommentRe    = regexp.MustCompile(`<!--.*?-->`)
	mdInlineCodeRe = regexp.MustCompile("`[^`]+`")
	mdImageRe      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	mdLinkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	mdBoldStarRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalStarRe   = regexp.MustCompile(`\*([^*]+)\*`)
	mdBoldUnderRe  = regexp.MustCompile(`__([^_]+)__`)
	mdItalUnderRe  = regexp.MustCompile(`\b_([^_]+)_\b`)
	mdHTMLTagRe    = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
)

// normalizeMarkdown strips Markdown syntax from doc.Raw in a single
// line-oriented pass, keeping heading and list markers as plain text.
// Fenced code blocks, front matter, images and HTML comments are
// dropped entirely; link text survives without its URL.
func normalizeMarkdown(doc *Document) {
	lines := strings.Split(doc.Raw, "\n")
	offsets := NewOffsetMap()
	var out strings.Builder

	start := skipFrontMatter(lines)

	inFence := false
	fenceMarker := ""
	inComment := false
	pendingBlank := false

	for i := start; i < len(lines); i++ {
		line := lines[i]

		if inComment {
			end := strings.Index(line, "-->")
			if end < 0 {
				continue
			}
			line = line[end+len("-->"):]
			inComment = false
		}

		trimmed := strings.TrimLeft(line, " \t")
		if marker := fenceOpening(trimmed); marker != "" {
			if !inFence {
				inFence = true
				fenceMarker = marker
			} else if strings.HasPrefix(trimmed, fenceMarker) {
				inFence = false
			}
			continue
		}
		if inFence {
			continue
		}

		cleaned, openComment := cleanMarkdownLine(line)
		inComment = openComment

		if strings.TrimSpace(cleaned) == "" {
			if out.Len() > 0 {
				pendingBlank = true
			}
			continue
		}

		if pendingBlank {
			out.WriteByte('\n')
			pendingBlank = false
		}
		offsets.Add(out.Len(), i+1)
		out.WriteString(cleaned)
		out.WriteByte('\n')
	}

	if inFence {
		doc.Degraded = true
		doc.DegradedNote = "unterminated code fence; text after the opening fence was skipped"
	}

	doc.Text = strings.TrimRight(out.String(), "\n")
	doc.offsets = offsets
}

// skipFrontMatter returns the index of the first content line,
// skipping a leading YAML front matter block when present
func skipFrontMatter(lines []string) int {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return 0
	}
	for i := 1; i < len(lines); i++ {
		t := strings.TrimSpace(lines[i])
		if t == "---" || t == "..." {
			return i + 1
		}
	}
	// No closing fence: not front matter after all
	return 0
}

// fenceOpening returns the fence marker if the line opens or closes a
// fenced code block, or "" otherwise
func fenceOpening(trimmed string) string {
	if strings.HasPrefix(trimmed, "```") {
		return "```"
	}
	if strings.HasPrefix(trimmed, "~~~") {
		return "~~~"
	}
	return ""
}

// cleanMarkdownLine strips inline Markdown constructs from one line.
// The second return is true when the line opens an HTML comment that
// continues past end of line.
func cleanMarkdownLine(line string) (string, bool) {
	line = mdCommentRe.ReplaceAllString(line, "")

	openComment := false
	if idx := strings.Index(line, "<!--"); idx >= 0 {
		line = line[:idx]
		openComment = true
	}

	line = mdInlineCodeRe.ReplaceAllString(line, "")
	line = mdImageRe.ReplaceAllString(line, "")
	line = mdLinkRe.ReplaceAllString(line, "$1")
	line = mdBoldStarRe.ReplaceAllString(line, "$1")
	line = mdItalStarRe.ReplaceAllString(line, "$1")
	line = mdBoldUnderRe.ReplaceAllString(line, "$1")
	line = mdItalUnderRe.ReplaceAllString(line, "$1")
	line = mdHTMLTagRe.ReplaceAllString(line, "")

	return strings.TrimRight(line, " \t"), openComment
}
