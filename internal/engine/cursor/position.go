package cursor

import (
	"fmt"
	"strings"
)

// Position is a (line, column) location in a slice of lines. Column is a
// byte offset within the line.
type Position struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// Span is a selection between two positions. Spans built with NewSpan are
// ordered (Start <= End).
type Span struct {
	Start Position
	End   Position
}

// NewSpan creates an ordered span from an anchor and a cursor in either
// order.
func NewSpan(anchor, cursor Position) Span {
	s := Span{Start: anchor, End: cursor}
	s.Normalize()
	return s
}

// Normalize swaps the ends in place if they are reversed.
func (s *Span) Normalize() {
	if s.End.Before(s.Start) {
		s.Start, s.End = s.End, s.Start
	}
}

// Min returns the earlier end.
func (s Span) Min() Position {
	if s.End.Before(s.Start) {
		return s.End
	}
	return s.Start
}

// Max returns the later end.
func (s Span) Max() Position {
	if s.End.Before(s.Start) {
		return s.Start
	}
	return s.End
}

// IsEmpty reports whether the span covers nothing.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Text extracts the spanned text from lines, joining lines with sep.
// Boundary rows are sliced at their columns; rows in between are taken
// whole. Positions outside lines are clamped.
func (s Span) Text(lines []string, sep string) string {
	if len(lines) == 0 {
		return ""
	}
	start, end := clampPosition(s.Min(), lines), clampPosition(s.Max(), lines)
	if start.Line == end.Line {
		return lines[start.Line][start.Column:end.Column]
	}

	var b strings.Builder
	b.WriteString(lines[start.Line][start.Column:])
	for row := start.Line + 1; row < end.Line; row++ {
		b.WriteString(sep)
		b.WriteString(lines[row])
	}
	b.WriteString(sep)
	b.WriteString(lines[end.Line][:end.Column])
	return b.String()
}

func clampPosition(p Position, lines []string) Position {
	if p.Line < 0 {
		return Position{}
	}
	if p.Line >= len(lines) {
		last := len(lines) - 1
		return Position{Line: last, Column: len(lines[last])}
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if n := len(lines[p.Line]); p.Column > n {
		p.Column = n
	}
	return p
}
