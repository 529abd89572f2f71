package edit

import (
	"strings"

	"github.com/dshills/textcore/internal/engine/cursor"
	"github.com/dshills/textcore/internal/engine/layout"
	"github.com/dshills/textcore/internal/engine/lineindex"
)

// Area is the editing state of a multi-line text area. It embeds a Field
// for storage, selection, blink, clipboard and history, and adds line
// navigation on top.
type Area struct {
	*Field

	index  *lineindex.Index
	layout *layout.Cache

	// preferredCol is the column vertical moves aim for. 0 means unset.
	preferredCol int

	lineHeight float64
	wrapWidth  float64
	scroll     float64
	measure    layout.Measurer
}

// NewArea creates a multi-line editing state.
func NewArea(opts ...Option) *Area {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	a := &Area{
		Field:      newField(o, true),
		layout:     layout.New(),
		lineHeight: o.lineHeight,
		wrapWidth:  o.wrapWidth,
	}
	a.index = lineindex.New(a.Text())
	a.Field.onEdit = a.edited
	a.Field.onMove = a.resetPreferredColumn
	return a
}

func (a *Area) edited(structural bool) {
	if structural {
		a.index.Rebuild(a.Text())
	}
	a.preferredCol = 0
}

func (a *Area) resetPreferredColumn() {
	a.preferredCol = 0
}

// lines returns the line index, rebuilt first if the text changed since
// the last build.
func (a *Area) lines() *lineindex.Index {
	a.index.Sync(a.Text())
	return a.index
}

// PreferredColumn returns the column remembered across vertical moves.
func (a *Area) PreferredColumn() int {
	return a.preferredCol
}

// MaxLines returns the line limit, 0 meaning unlimited.
func (a *Area) MaxLines() int {
	return a.maxLines
}

// LineCount returns the number of lines.
func (a *Area) LineCount() int {
	return a.lines().LineCount()
}

// Line returns the text of row without its line break.
func (a *Area) Line(row int) string {
	idx := a.lines()
	return a.store.Slice(idx.LineStart(row), idx.LineEnd(row))
}

// Lines returns every line without line breaks.
func (a *Area) Lines() []string {
	return strings.Split(a.Text(), "\n")
}

// CursorPosition returns the cursor as a (row, column) position.
func (a *Area) CursorPosition() cursor.Position {
	row, col := a.lines().OffsetToPosition(a.sel.Cursor)
	return cursor.Position{Line: row, Column: col}
}

// SelectionSpan returns the selection in position form.
func (a *Area) SelectionSpan() cursor.Span {
	idx := a.lines()
	ar, ac := idx.OffsetToPosition(a.sel.Anchor)
	cr, cc := idx.OffsetToPosition(a.sel.Cursor)
	return cursor.NewSpan(cursor.Position{Line: ar, Column: ac}, cursor.Position{Line: cr, Column: cc})
}

// SetCursorPosition places the cursor at (row, col), clamped to the text
// and snapped to a character boundary.
func (a *Area) SetCursorPosition(row, col int, extend bool) {
	a.SetCursor(a.lines().PositionToOffset(row, col), extend)
}

// InsertNewline replaces the selection with a line break. It is rejected
// when the result would exceed the max line count.
func (a *Area) InsertNewline() bool {
	return a.replaceSelection("\n")
}

// MoveUp moves the cursor to the previous row, aiming for the preferred
// column. It fails on the first row.
func (a *Area) MoveUp(extend bool) bool {
	return a.moveVertical(-1, extend)
}

// MoveDown moves the cursor to the next row, aiming for the preferred
// column. It fails on the last row.
func (a *Area) MoveDown(extend bool) bool {
	return a.moveVertical(1, extend)
}

func (a *Area) moveVertical(delta int, extend bool) bool {
	idx := a.lines()
	row, col := idx.OffsetToPosition(a.sel.Cursor)
	target := row + delta
	if target < 0 || target >= idx.LineCount() {
		return false
	}
	if a.preferredCol < col {
		a.preferredCol = col
	}
	pos := a.snap(idx.PositionToOffset(target, a.preferredCol))
	a.sel.SetCursor(pos, extend)
	a.ResetBlink()
	return true
}

// MoveToLineStart moves to the first byte of the cursor's row.
func (a *Area) MoveToLineStart(extend bool) bool {
	idx := a.lines()
	row, _ := idx.OffsetToPosition(a.sel.Cursor)
	a.sel.SetCursor(idx.LineStart(row), extend)
	a.preferredCol = 0
	a.ResetBlink()
	return true
}

// MoveToLineEnd moves to the end of the cursor's row.
func (a *Area) MoveToLineEnd(extend bool) bool {
	idx := a.lines()
	row, _ := idx.OffsetToPosition(a.sel.Cursor)
	a.sel.SetCursor(idx.LineEnd(row), extend)
	a.preferredCol = idx.LineLength(row)
	a.ResetBlink()
	return true
}

// LineHeight returns the uniform line height.
func (a *Area) LineHeight() float64 {
	return a.lineHeight
}

// WrapWidth returns the layout wrap width.
func (a *Area) WrapWidth() float64 {
	return a.wrapWidth
}

// SetWrapWidth changes the wrap width, for example after a resize.
func (a *Area) SetWrapWidth(w float64) {
	if w < 0 {
		w = 0
	}
	a.wrapWidth = w
}

// Layout brings the layout cache up to date using measure and returns it.
// Once Layout has been called, scrolling works in visual lines.
func (a *Area) Layout(measure layout.Measurer) *layout.Cache {
	a.measure = measure
	a.layout.Sync(a.Text(), a.wrapWidth, a.lineHeight, measure)
	return a.layout
}

// SetMeasurer switches the measurer and rebuilds the layout. Layout alone
// only notices text and geometry changes.
func (a *Area) SetMeasurer(measure layout.Measurer) {
	a.measure = measure
	a.layout.Rebuild(a.Text(), a.wrapWidth, a.lineHeight, measure)
}

// ScrollOffset returns the vertical scroll offset.
func (a *Area) ScrollOffset() float64 {
	return a.scroll
}

// SetScrollOffset sets the vertical scroll offset, clamped at 0.
func (a *Area) SetScrollOffset(y float64) {
	a.scroll = max(y, 0)
}

// EnsureCursorVisible scrolls so the cursor's line lies within
// [scroll, scroll+viewportHeight), then clamps the offset to
// [0, max(0, contentHeight-viewportHeight)].
func (a *Area) EnsureCursorVisible(viewportHeight float64) float64 {
	y, content := a.cursorGeometry()
	if y < a.scroll {
		a.scroll = y
	}
	if y+a.lineHeight > a.scroll+viewportHeight {
		a.scroll = y + a.lineHeight - viewportHeight
	}
	maxScroll := max(0, content-viewportHeight)
	a.scroll = min(max(a.scroll, 0), maxScroll)
	return a.scroll
}

// cursorGeometry returns the top of the cursor's line and the content
// height, in visual lines when a layout is available and source rows
// otherwise.
func (a *Area) cursorGeometry() (y, height float64) {
	if a.measure != nil {
		c := a.Layout(a.measure)
		return c.YForOffset(a.sel.Cursor), c.TotalHeight()
	}
	idx := a.lines()
	row, _ := idx.OffsetToPosition(a.sel.Cursor)
	return float64(row) * a.lineHeight, float64(idx.LineCount()) * a.lineHeight
}
