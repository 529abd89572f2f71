// Package lineindex maps byte offsets to (row, column) positions and back.
//
// An Index is derived from a text snapshot and replaced wholesale on
// rebuild. Callers are expected to gate rebuilds with Sync, which compares a
// fingerprint of the current text against the one the index was built from,
// so calling it every frame with unchanged content costs one hash pass and
// no allocation.
//
// Out-of-range rows and columns clamp rather than fail:
//
//	PositionToOffset(row >= LineCount(), _)   -> TextSize()
//	PositionToOffset(row, col > LineLength)   -> LineEnd(row)
//	LineStart/LineEnd(row >= LineCount())     -> TextSize()
package lineindex

import (
	"sort"

	"github.com/dshills/textcore/internal/engine/utf8nav"
)

// Index holds the start offset of every line.
type Index struct {
	starts      []int // strictly increasing; starts[0] == 0
	textSize    int
	fingerprint uint64
	built       bool
}

// New creates an index for text.
func New(text string) *Index {
	idx := &Index{}
	idx.Rebuild(text)
	return idx
}

// Rebuild replaces the index with one built from text.
func (idx *Index) Rebuild(text string) {
	starts := idx.starts[:0]
	starts = append(starts, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	idx.starts = starts
	idx.textSize = len(text)
	idx.fingerprint = utf8nav.Fingerprint(text)
	idx.built = true
}

// NeedsRebuild reports whether text differs from the text the index was
// last built from.
func (idx *Index) NeedsRebuild(text string) bool {
	if !idx.built || len(text) != idx.textSize {
		return true
	}
	return utf8nav.Fingerprint(text) != idx.fingerprint
}

// Sync rebuilds the index if text has changed and reports whether it did.
func (idx *Index) Sync(text string) bool {
	if !idx.NeedsRebuild(text) {
		return false
	}
	idx.Rebuild(text)
	return true
}

// Fingerprint returns the fingerprint of the text the index was built from.
func (idx *Index) Fingerprint() uint64 {
	return idx.fingerprint
}

// LineCount returns the number of lines. Empty text has one line.
func (idx *Index) LineCount() int {
	if len(idx.starts) == 0 {
		return 1
	}
	return len(idx.starts)
}

// TextSize returns the length of the text the index was built from.
func (idx *Index) TextSize() int {
	return idx.textSize
}

// OffsetToPosition returns the row and byte column of offset. Offsets past
// the end of the text are clamped to it.
func (idx *Index) OffsetToPosition(offset int) (row, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > idx.textSize {
		offset = idx.textSize
	}
	if len(idx.starts) == 0 {
		return 0, offset
	}
	// Greatest start <= offset.
	row = sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	}) - 1
	return row, offset - idx.starts[row]
}

// PositionToOffset returns the byte offset of (row, col). Rows past the last
// line clamp to the end of the text; columns clamp to the row's length.
func (idx *Index) PositionToOffset(row, col int) int {
	if row < 0 {
		row = 0
	}
	if row >= idx.LineCount() {
		return idx.textSize
	}
	if col < 0 {
		col = 0
	}
	if n := idx.LineLength(row); col > n {
		col = n
	}
	return idx.LineStart(row) + col
}

// LineStart returns the offset of the first byte of row.
func (idx *Index) LineStart(row int) int {
	if row < 0 {
		return 0
	}
	if row >= len(idx.starts) {
		if row == 0 {
			return 0
		}
		return idx.textSize
	}
	return idx.starts[row]
}

// LineEnd returns the offset just before row's line break (or the end of
// the text for the last line).
func (idx *Index) LineEnd(row int) int {
	if row < 0 {
		row = 0
	}
	if row >= len(idx.starts) {
		return idx.textSize
	}
	if row+1 < len(idx.starts) {
		return idx.starts[row+1] - 1
	}
	return idx.textSize
}

// LineLength returns the length of row in bytes, excluding the line break.
func (idx *Index) LineLength(row int) int {
	if row < 0 || row >= idx.LineCount() {
		return 0
	}
	return idx.LineEnd(row) - idx.LineStart(row)
}

// LineText returns the text of row from text, which must be the snapshot
// the index was built from.
func (idx *Index) LineText(text string, row int) string {
	start, end := idx.LineStart(row), idx.LineEnd(row)
	if end > len(text) || start > end {
		return ""
	}
	return text[start:end]
}
