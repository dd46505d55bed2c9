// Package parser normalizes Markdown and HTML documents into plain
// prose text. Markup is stripped, code and scripts are dropped, and a
// compact offset map preserves the mapping from normalized text
// positions back to original line numbers.
package parser

import (
	"path/filepath"
	"strings"
)

// Format identifies the markup format of a document
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Document is the normalized view of one input file. It is immutable
// after Parse; detectors only ever see the normalized text.
type Document struct {
	// Path is the original file path, used for reporting and for
	// matching configuration overrides
	Path string

	// Format is the markup format the raw text was parsed as
	Format Format

	// Raw is the original file content
	Raw string

	// Text is the normalized plain text
	Text string

	// Title holds the <title> text for HTML documents, if any
	Title string

	// Degraded is set when normalization hit malformed markup and fell
	// back to best-effort extraction
	Degraded bool

	// DegradedNote describes the degradation cause when Degraded is set
	DegradedNote string

	offsets *OffsetMap
}

// LineFor returns the 1-based line number in the original document for
// an offset into the normalized text
func (d *Document) LineFor(offset int) int {
	return d.offsets.LineFor(offset)
}

// FormatForPath returns the document format for a file path based on
// its extension, and whether the extension is supported.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown, true
	case ".html", ".htm":
		return FormatHTML, true
	default:
		return "", false
	}
}

// Parse normalizes raw document content. Malformed markup never
// returns an error: the parser degrades to best-effort extraction and
// marks the document accordingly.
func Parse(path string, raw []byte, format Format) *Document {
	doc := &Document{
		Path:   path,
		Format: format,
		Raw:    string(raw),
	}

	switch format {
	case FormatHTML:
		normalizeHTML(doc)
	default:
		normalizeMarkdown(doc)
	}

	return doc
}
