package cursor

import "fmt"

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the length of the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has no extent.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Selection is an anchor/cursor pair of byte offsets.
type Selection struct {
	Anchor int // where the selection started
	Cursor int // where typing occurs
}

// NewSelection creates a selection from anchor to cursor.
func NewSelection(anchor, cursor int) Selection {
	return Selection{Anchor: anchor, Cursor: cursor}
}

// Caret creates a selection with no extent at offset.
func Caret(offset int) Selection {
	return Selection{Anchor: offset, Cursor: offset}
}

// HasSelection reports whether any text is selected.
func (s Selection) HasSelection() bool {
	return s.Anchor != s.Cursor
}

// Start returns the lower bound of the selection.
func (s Selection) Start() int {
	if s.Anchor <= s.Cursor {
		return s.Anchor
	}
	return s.Cursor
}

// End returns the upper bound of the selection.
func (s Selection) End() int {
	if s.Anchor >= s.Cursor {
		return s.Anchor
	}
	return s.Cursor
}

// Len returns the number of selected bytes.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// Range returns the selection as an ordered range.
func (s Selection) Range() Range {
	return Range{Start: s.Start(), End: s.End()}
}

// IsBackward reports whether the cursor sits before the anchor.
func (s Selection) IsBackward() bool {
	return s.Cursor < s.Anchor
}

// Contains reports whether offset lies inside [Start, End).
func (s Selection) Contains(offset int) bool {
	return offset >= s.Start() && offset < s.End()
}

// Text returns the selected part of text. Bounds past the end of text are
// clamped.
func (s Selection) Text(text string) string {
	start, end := s.Start(), s.End()
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return ""
	}
	return text[start:end]
}

// SetCursor moves the cursor to pos. Unless extend is set the anchor
// follows, leaving a bare caret.
func (s *Selection) SetCursor(pos int, extend bool) {
	s.Cursor = pos
	if !extend {
		s.Anchor = pos
	}
}

// Select sets both ends explicitly.
func (s *Selection) Select(anchor, cursor int) {
	s.Anchor = anchor
	s.Cursor = cursor
}

// SelectAll selects [0, textLen) with the cursor at the end.
func (s *Selection) SelectAll(textLen int) {
	s.Anchor = 0
	s.Cursor = textLen
}

// Collapse drops the selection, keeping the cursor where it is.
func (s *Selection) Collapse() {
	s.Anchor = s.Cursor
}

// CollapseTo places a bare caret at pos.
func (s *Selection) CollapseTo(pos int) {
	s.Anchor = pos
	s.Cursor = pos
}

// Clamp limits both ends to [0, maxOffset].
func (s *Selection) Clamp(maxOffset int) {
	s.Anchor = clamp(s.Anchor, maxOffset)
	s.Cursor = clamp(s.Cursor, maxOffset)
}

func clamp(v, maxOffset int) int {
	if v < 0 {
		return 0
	}
	if v > maxOffset {
		return maxOffset
	}
	return v
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if !s.HasSelection() {
		return fmt.Sprintf("Caret(%d)", s.Cursor)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%d%s%d)", s.Anchor, dir, s.Cursor)
}
