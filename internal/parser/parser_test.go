package parser

import (
	"strings"
	"testing"
)

func TestOffsetMap_Empty(t *testing.T) {
	m := NewOffsetMap()
	if got := m.LineFor(0); got != 1 {
		t.Errorf("Empty map should resolve to line 1, got %d", got)
	}
	if got := m.LineFor(500); got != 1 {
		t.Errorf("Empty map should resolve to line 1, got %d", got)
	}
}

func TestOffsetMap_LineFor(t *testing.T) {
	m := NewOffsetMap()
	m.Add(0, 1)
	m.Add(10, 3)
	m.Add(25, 7)

	tests := []struct {
		offset   int
		expected int
	}{
		{0, 1},
		{9, 1},
		{10, 3},
		{24, 3},
		{25, 7},
		{1000, 7},
	}

	for _, tt := range tests {
		if got := m.LineFor(tt.offset); got != tt.expected {
			t.Errorf("LineFor(%d) = %d, want %d", tt.offset, got, tt.expected)
		}
	}
}

func TestOffsetMap_DedupeSameLine(t *testing.T) {
	m := NewOffsetMap()
	m.Add(0, 1)
	m.Add(1, 1)
	m.Add(2, 1)
	m.Add(5, 2)

	if m.Len() != 2 {
		t.Errorf("Expected 2 breakpoints after dedupe, got %d", m.Len())
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path      string
		format    Format
		supported bool
	}{
		{"post.md", FormatMarkdown, true},
		{"post.markdown", FormatMarkdown, true},
		{"page.html", FormatHTML, true},
		{"page.HTM", FormatHTML, true},
		{"notes.txt", "", false},
		{"script.js", "", false},
	}

	for _, tt := range tests {
		format, ok := FormatForPath(tt.path)
		if ok != tt.supported {
			t.Errorf("FormatForPath(%q) supported = %v, want %v", tt.path, ok, tt.supported)
		}
		if format != tt.format {
			t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, format, tt.format)
		}
	}
}

func TestParse_MarkdownBasics(t *testing.T) {
	raw := "# Title\n\nSome *emphasized* text with a [link](https://example.com).\n"
	doc := Parse("post.md", []byte(raw), FormatMarkdown)

	if doc.Degraded {
		t.Error("Well-formed markdown should not be degraded")
	}
	if !strings.Contains(doc.Text, "# Title") {
		t.Errorf("Heading marker should survive as plain text, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "emphasized") {
		t.Error("Emphasis content should survive")
	}
	if strings.Contains(doc.Text, "*") {
		t.Errorf("Emphasis markers should be stripped, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "link") || strings.Contains(doc.Text, "example.com") {
		t.Errorf("Link text should survive without URL, got %q", doc.Text)
	}
}

func TestParse_MarkdownCodeBlocks(t *testing.T) {
	raw := "Before.\n\n```go\nfunc main() {}\n```\n\nAfter with `inline code` span.\n"
	doc := Parse("post.md", []byte(raw), FormatMarkdown)

	if strings.Contains(doc.Text, "func main") {
		t.Errorf("Fenced code should be dropped, got %q", doc.Text)
	}
	if strings.Contains(doc.Text, "inline code") {
		t.Errorf("Inline code should be dropped, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "Before.") || !strings.Contains(doc.Text, "After with") {
		t.Errorf("Prose around code should survive, got %q", doc.Text)
	}
}

func TestParse_MarkdownUnterminatedFence(t *testing.T) {
	raw := "Text.\n\n```\ncode that never ends\n"
	doc := Parse("post.md", []byte(raw), FormatMarkdown)

	if !doc.Degraded {
		t.Error("Unterminated fence should mark the parse degraded")
	}
	if !strings.Contains(doc.Text, "Text.") {
		t.Error("Text before the fence should survive")
	}
}

func TestParse_MarkdownFrontMatter(t *testing.T) {
	raw := "---\ntitle: My Post\ndate: 2024-01-01\n---\n\nFirst paragraph.\n"
	doc := Parse("post.md", []byte(raw), FormatMarkdown)

	if strings.Contains(doc.Text, "title:") {
		t.Errorf("Front matter should be dropped, got %q", doc.Text)
	}

	// The paragraph started on line 6 of the original file
	idx := strings.Index(doc.Text, "First")
	if idx < 0 {
		t.Fatal("Paragraph should survive")
	}
	if line := doc.LineFor(idx); line != 6 {
		t.Errorf("Line for first paragraph = %d, want 6", line)
	}
}

func TestParse_MarkdownImagesAndComments(t *testing.T) {
	raw := "A photo: ![alt text](img.png) here.\n<!-- hidden\nnote -->\nVisible.\n"
	doc := Parse("post.md", []byte(raw), FormatMarkdown)

	if strings.Contains(doc.Text, "alt text") || strings.Contains(doc.Text, "img.png") {
		t.Errorf("Images should be dropped entirely, got %q", doc.Text)
	}
	if strings.Contains(doc.Text, "hidden") || strings.Contains(doc.Text, "note") {
		t.Errorf("HTML comments should be dropped, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "Visible.") {
		t.Error("Text after a multi-line comment should survive")
	}
}

func TestParse_MarkdownBlankLineCollapse(t *testing.T) {
	raw := "One.\n\n\n\n\nTwo.\n"
	doc := Parse("post.md", []byte(raw), FormatMarkdown)

	if strings.Contains(doc.Text, "\n\n\n") {
		t.Errorf("Blank line runs should collapse to one blank line, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "One.\n\nTwo.") {
		t.Errorf("Paragraph break should be preserved, got %q", doc.Text)
	}
}

func TestParse_MarkdownLineNumbers(t *testing.T) {
	raw := "Line one.\nLine two.\n\nLine four.\n"
	doc := Parse("post.md", []byte(raw), FormatMarkdown)

	cases := []struct {
		substr string
		line   int
	}{
		{"Line one.", 1},
		{"Line two.", 2},
		{"Line four.", 4},
	}
	for _, c := range cases {
		idx := strings.Index(doc.Text, c.substr)
		if idx < 0 {
			t.Fatalf("%q not found in normalized text", c.substr)
		}
		if got := doc.LineFor(idx); got != c.line {
			t.Errorf("LineFor(%q) = %d, want %d", c.substr, got, c.line)
		}
	}
}

func TestParse_HTMLBasics(t *testing.T) {
	raw := `<html><head><title>My Page</title><style>body { color: red; }</style></head>
<body><p>First <em>paragraph</em> here.</p><p>Second paragraph.</p>
<script>var x = 1;</script></body></html>`
	doc := Parse("page.html", []byte(raw), FormatHTML)

	if doc.Title != "My Page" {
		t.Errorf("Title = %q, want %q", doc.Title, "My Page")
	}
	if strings.Contains(doc.Text, "color: red") || strings.Contains(doc.Text, "var x") {
		t.Errorf("Script/style contents should be dropped, got %q", doc.Text)
	}
	if strings.Contains(doc.Text, "My Page") {
		t.Errorf("Title is metadata, not prose, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "First paragraph here.") {
		t.Errorf("Inline tags should vanish without whitespace artifacts, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "here.\n\nSecond") {
		t.Errorf("Block tags should introduce a paragraph break, got %q", doc.Text)
	}
}

func TestParse_HTMLInlineNoArtifacts(t *testing.T) {
	raw := `<p>re<em>mark</em>able</p>`
	doc := Parse("page.html", []byte(raw), FormatHTML)

	if doc.Text != "remarkable" {
		t.Errorf("Text = %q, want %q", doc.Text, "remarkable")
	}
}

func TestParse_HTMLLineNumbers(t *testing.T) {
	raw := "<p>alpha</p>\n<p>beta</p>\n<p>gamma</p>"
	doc := Parse("page.html", []byte(raw), FormatHTML)

	idx := strings.Index(doc.Text, "gamma")
	if idx < 0 {
		t.Fatal("gamma not found")
	}
	if got := doc.LineFor(idx); got != 3 {
		t.Errorf("LineFor(gamma) = %d, want 3", got)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	for _, format := range []Format{FormatMarkdown, FormatHTML} {
		doc := Parse("empty", nil, format)
		if doc.Text != "" {
			t.Errorf("%s: empty input should normalize to empty text, got %q", format, doc.Text)
		}
		if doc.LineFor(0) != 1 {
			t.Errorf("%s: empty document offsets should resolve to line 1", format)
		}
	}
}

func TestParse_Deterministic(t *testing.T) {
	raw := "# Post\n\nSome *text* with [a link](x) and `code`.\n\nMore text.\n"
	a := Parse("post.md", []byte(raw), FormatMarkdown)
	b := Parse("post.md", []byte(raw), FormatMarkdown)

	if a.Text != b.Text {
		t.Error("Normalization should be deterministic")
	}
}
