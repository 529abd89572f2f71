package host

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/textcore/internal/engine/edit"
	"github.com/dshills/textcore/internal/engine/layout"
)

// Styles used when drawing.
var (
	styleText      = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// View draws one editing state onto a screen. The last screen row is a
// status line.
type View struct {
	field *edit.Field
	area  *edit.Area // nil for a single-line field

	measure layout.Measurer
	wrap    float64 // configured wrap width; 0 wraps at the screen edge

	// single-line fields keep their own layout and scroll horizontally
	cache   *layout.Cache
	hscroll float64

	// what the last Draw showed, for hit testing
	shown *layout.Cache
	first int
	rows  int
}

// NewAreaView creates a view over a multi-line area.
func NewAreaView(a *edit.Area, measure layout.Measurer) *View {
	return &View{field: a.Field, area: a, measure: measure, wrap: a.WrapWidth()}
}

// NewFieldView creates a view over a single-line field.
func NewFieldView(f *edit.Field, measure layout.Measurer) *View {
	return &View{field: f, measure: measure, cache: layout.New()}
}

// SetMeasurer replaces the measurer, for example after a config reload.
func (v *View) SetMeasurer(m layout.Measurer) {
	v.measure = m
	if v.area != nil {
		v.area.SetMeasurer(m)
		return
	}
	v.cache = layout.New()
}

// SetWrapWidth sets the configured wrap width. 0 wraps at the screen edge.
func (v *View) SetWrapWidth(w float64) {
	v.wrap = w
}

// Draw renders the text, selection, caret and status line.
func (v *View) Draw(s tcell.Screen) {
	s.Clear()
	width, height := s.Size()
	if width <= 0 || height <= 1 {
		s.Show()
		return
	}
	rows := height - 1

	text := v.field.Text()
	var (
		cache *layout.Cache
		first int
	)
	if v.area != nil {
		wrap := v.wrap
		if wrap <= 0 || wrap > float64(width-1) {
			wrap = float64(width - 1)
		}
		v.area.SetWrapWidth(wrap)
		cache = v.area.Layout(v.measure)
		scroll := v.area.EnsureCursorVisible(float64(rows) * v.area.LineHeight())
		first = cache.LineAtY(scroll)
	} else {
		cache = v.cache
		cache.Sync(text, 0, 1, v.measure)
		v.scrollField(text, float64(width-1))
	}

	v.shown, v.first, v.rows = cache, first, rows

	sel := v.field.Selection()
	for row := 0; row < rows && first+row < cache.LineCount(); row++ {
		vl, _ := cache.Line(first + row)
		v.drawLine(s, text, vl, row, width, sel.Start(), sel.End())
	}

	cur := v.field.Cursor()
	curLine := cache.LineAtOffset(cur)
	cx := int(cache.OffsetToX(text, cur, v.measure) - v.hscroll)
	cy := curLine - first
	if v.field.Focused() && v.field.CursorVisible() && cy >= 0 && cy < rows && cx >= 0 && cx < width {
		s.ShowCursor(cx, cy)
	} else {
		s.HideCursor()
	}

	v.drawStatus(s, width, height-1)
	s.Show()
}

// OffsetAt maps a screen cell to the nearest text offset, using the layout
// of the last Draw. It reports false for cells outside the text rows.
func (v *View) OffsetAt(x, y int) (int, bool) {
	if v.shown == nil || v.shown.LineCount() == 0 || y < 0 || y >= v.rows {
		return 0, false
	}
	i := min(v.first+y, v.shown.LineCount()-1)
	vl, _ := v.shown.Line(i)
	text := v.field.Text()
	return v.shown.OffsetAtPoint(text, float64(x)+v.hscroll, vl.Y, v.measure), true
}

// scrollField keeps the caret of a single-line field inside the visible
// columns.
func (v *View) scrollField(text string, visible float64) {
	x := v.cache.OffsetToX(text, v.field.Cursor(), v.measure)
	if x < v.hscroll {
		v.hscroll = x
	}
	if x > v.hscroll+visible {
		v.hscroll = x - visible
	}
}

func (v *View) drawLine(s tcell.Screen, text string, vl layout.VisualLine, y, width, selStart, selEnd int) {
	line := text[vl.SourceOffset:vl.End()]
	for i, r := range line {
		x := int(v.measure(line[:i]) - v.hscroll)
		if x >= width {
			return
		}
		style := styleText
		if off := vl.SourceOffset + i; off >= selStart && off < selEnd {
			style = styleSelection
		}
		if r == '\t' {
			end := int(v.measure(line[:i+1]) - v.hscroll)
			for cx := max(x, 0); cx < end && cx < width; cx++ {
				s.SetContent(cx, y, ' ', nil, style)
			}
			continue
		}
		if x < 0 || r == utf8.RuneError {
			continue
		}
		if runewidth.RuneWidth(r) == 0 {
			continue
		}
		s.SetContent(x, y, r, nil, style)
	}
}

func (v *View) drawStatus(s tcell.Screen, width, y int) {
	var status string
	if v.area != nil {
		pos := v.area.CursorPosition()
		status = fmt.Sprintf(" Ln %d, Col %d  lines %d", pos.Line+1, pos.Column+1, v.area.LineCount())
	} else {
		status = fmt.Sprintf(" Col %d", v.field.Cursor()+1)
	}
	status += fmt.Sprintf("  %d bytes", v.field.Len())
	if limit := v.field.MaxLength(); limit > 0 {
		status += fmt.Sprintf("/%d", limit)
	}
	if v.field.ReadOnly() {
		status += "  [read-only]"
	}
	if v.field.Changed() {
		status += "  [modified]"
	}

	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		s.SetContent(x, y, r, nil, styleStatus)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', nil, styleStatus)
	}
}
