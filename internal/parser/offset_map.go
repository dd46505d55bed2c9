package parser

import "sort"

// breakpoint maps an offset into the normalized text to the 1-based
// line number in the original document
type breakpoint struct {
	offset int
	line   int
}

// OffsetMap is a monotonic sequence of (normalized offset, original
// line) breakpoints. It is built in a single O(n) pass during
// normalization; lookups are O(log n).
type OffsetMap struct {
	points []breakpoint
}

// NewOffsetMap creates an empty offset map
func NewOffsetMap() *OffsetMap {
	return &OffsetMap{}
}

// Add records that normalized text at offset originates from the given
// original line. Breakpoints must be added in increasing offset order;
// redundant entries for the same line are dropped.
func (m *OffsetMap) Add(offset, line int) {
	if n := len(m.points); n > 0 {
		last := m.points[n-1]
		if last.line == line {
			return
		}
		if last.offset == offset {
			m.points[n-1].line = line
			return
		}
	}
	m.points = append(m.points, breakpoint{offset: offset, line: line})
}

// LineFor returns the original 1-based line number for a normalized
// text offset. A nil or empty map resolves to line 1.
func (m *OffsetMap) LineFor(offset int) int {
	if m == nil || len(m.points) == 0 {
		return 1
	}

	// First breakpoint with offset > target; the answer precedes it
	i := sort.Search(len(m.points), func(i int) bool {
		return m.points[i].offset > offset
	})
	if i == 0 {
		return m.points[0].line
	}
	return m.points[i-1].line
}

// Len returns the number of stored breakpoints
func (m *OffsetMap) Len() int {
	return len(m.points)
}
