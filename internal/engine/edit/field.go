package edit

import (
	"strings"
	"time"

	"github.com/dshills/textcore/internal/engine/cursor"
	"github.com/dshills/textcore/internal/engine/history"
	"github.com/dshills/textcore/internal/engine/storage"
	"github.com/dshills/textcore/internal/engine/utf8nav"
)

// Field is the editing state of a single-line text field.
type Field struct {
	store     storage.Storage
	sel       cursor.Selection
	maxLength int // bytes; 0 means unlimited
	maxLines  int // 0 means unlimited
	multiline bool
	readOnly  bool

	changed bool
	focused bool

	blinkRate  time.Duration
	blinkTimer time.Duration

	sink    Sink
	history *history.History
	saved   history.State // state at the last checkpoint

	// Set by Area.
	onEdit func(structural bool)
	onMove func()
}

// NewField creates a single-line editing state. Line breaks in the initial
// text are removed.
func NewField(opts ...Option) *Field {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newField(o, false)
}

func newField(o options, multiline bool) *Field {
	f := &Field{
		maxLength: o.maxLength,
		maxLines:  o.maxLines,
		multiline: multiline,
		readOnly:  o.readOnly,
		blinkRate: o.blinkRate,
		sink:      o.sink,
		history:   history.New(o.historyLimit),
	}
	if !multiline {
		f.maxLines = 1
	}
	text := f.sanitize(o.text)
	f.store = storage.New(o.storageKind, text)
	f.sel = cursor.Caret(len(text))
	f.saved = f.state()
	return f
}

// Text returns the current content.
func (f *Field) Text() string {
	return f.store.String()
}

// Len returns the content size in bytes.
func (f *Field) Len() int {
	return f.store.Len()
}

// SetText replaces the content, places the cursor at its end and clears
// the undo history. It is meant for hosts loading a value; it is not
// subject to read-only mode or the max length.
func (f *Field) SetText(text string) {
	text = f.sanitize(text)
	storage.SetText(f.store, text)
	f.sel = cursor.Caret(len(text))
	f.history.Clear()
	f.saved = f.state()
	f.commit(true)
}

// Cursor returns the cursor byte offset.
func (f *Field) Cursor() int {
	return f.sel.Cursor
}

// Selection returns the current selection.
func (f *Field) Selection() cursor.Selection {
	return f.sel
}

// HasSelection reports whether any text is selected.
func (f *Field) HasSelection() bool {
	return f.sel.HasSelection()
}

// SelectedText returns the selected text.
func (f *Field) SelectedText() string {
	if !f.sel.HasSelection() {
		return ""
	}
	return f.store.Slice(f.sel.Start(), f.sel.End())
}

// ReadOnly reports whether mutations are rejected.
func (f *Field) ReadOnly() bool {
	return f.readOnly
}

// SetReadOnly toggles read-only mode.
func (f *Field) SetReadOnly(readOnly bool) {
	f.readOnly = readOnly
}

// MaxLength returns the byte budget, 0 meaning unlimited.
func (f *Field) MaxLength() int {
	return f.maxLength
}

// Changed reports whether the text changed since the last ClearChanged.
func (f *Field) Changed() bool {
	return f.changed
}

// ClearChanged acknowledges the current text.
func (f *Field) ClearChanged() {
	f.changed = false
}

// SetSink attaches a notification sink; nil detaches it.
func (f *Field) SetSink(s Sink) {
	f.sink = s
}

// History returns the undo history.
func (f *Field) History() *history.History {
	return f.history
}

func (f *Field) state() history.State {
	return history.State{Text: f.store.String(), Selection: f.sel}
}

// commit records a successful mutation.
func (f *Field) commit(structural bool) {
	f.changed = true
	f.ResetBlink()
	if f.onEdit != nil {
		f.onEdit(structural)
	}
	if f.sink != nil {
		f.sink.TextChanged(f.store.String())
	}
}

func (f *Field) moved() {
	f.ResetBlink()
	if f.onMove != nil {
		f.onMove()
	}
}

// sanitize drops bytes a field cannot hold: invalid UTF-8, control
// characters other than tab, and line breaks in single-line fields.
func (f *Field) sanitize(text string) string {
	text = strings.ToValidUTF8(text, "")
	if f.multiline {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return r
		case r == '\n' && f.multiline:
			return r
		case r < 0x20:
			return -1
		}
		return r
	}, text)
}

// replaceSelection replaces the selection (or inserts at the caret) with
// text. The edit is applied whole or not at all.
func (f *Field) replaceSelection(text string) bool {
	if f.readOnly {
		return false
	}
	start, end := f.sel.Start(), f.sel.End()
	if text == "" && start == end {
		return false
	}
	if f.maxLength > 0 && f.store.Len()-(end-start)+len(text) > f.maxLength {
		return false
	}
	removed := f.store.Slice(start, end)
	addedLines := strings.Count(text, "\n") - strings.Count(removed, "\n")
	if f.maxLines > 0 && addedLines > 0 && f.lineCount()+addedLines > f.maxLines {
		return false
	}
	if err := storage.Replace(f.store, start, end, text); err != nil {
		return false
	}
	f.sel.CollapseTo(start + len(text))
	f.commit(strings.Contains(removed, "\n") || strings.Contains(text, "\n"))
	return true
}

func (f *Field) lineCount() int {
	return strings.Count(f.store.String(), "\n") + 1
}

// InsertChar inserts the character cp at the cursor, replacing any
// selection. Control characters other than tab, unencodable codepoints and
// inserts that would exceed the max length are rejected.
func (f *Field) InsertChar(cp rune) bool {
	if cp < 0x20 && cp != '\t' {
		return false
	}
	b := utf8nav.Encode(int(cp))
	if len(b) == 0 {
		return false
	}
	return f.replaceSelection(string(b))
}

// InsertText inserts text at the cursor, replacing any selection. The text
// is sanitized first; the insert is rejected whole if it would exceed the
// max length.
func (f *Field) InsertText(text string) bool {
	text = f.sanitize(text)
	if text == "" {
		return false
	}
	return f.replaceSelection(text)
}

// DeleteSelection removes the selected text.
func (f *Field) DeleteSelection() bool {
	if !f.sel.HasSelection() {
		return false
	}
	return f.replaceSelection("")
}

// DeleteBeforeCursor removes the selection, or the character before the
// cursor. It fails at the start of the text.
func (f *Field) DeleteBeforeCursor() bool {
	if f.readOnly {
		return false
	}
	if f.sel.HasSelection() {
		return f.DeleteSelection()
	}
	pos := f.sel.Cursor
	if pos == 0 {
		return false
	}
	return f.erase(f.prevBoundary(pos), pos)
}

// DeleteAtCursor removes the selection, or the character at the cursor. It
// fails at the end of the text.
func (f *Field) DeleteAtCursor() bool {
	if f.readOnly {
		return false
	}
	if f.sel.HasSelection() {
		return f.DeleteSelection()
	}
	pos := f.sel.Cursor
	if pos >= f.store.Len() {
		return false
	}
	return f.erase(pos, f.nextBoundary(pos))
}

func (f *Field) erase(start, end int) bool {
	removed := f.store.Slice(start, end)
	if err := f.store.Erase(start, end); err != nil {
		return false
	}
	f.sel.CollapseTo(start)
	f.commit(strings.Contains(removed, "\n"))
	return true
}

// prevBoundary returns the start of the character before pos, looking at
// no more than one character's worth of bytes.
func (f *Field) prevBoundary(pos int) int {
	from := max(pos-utf8MaxLen, 0)
	window := f.store.Slice(from, pos)
	return from + utf8nav.PrevCharStart(window, len(window))
}

// nextBoundary returns the offset after the character at pos.
func (f *Field) nextBoundary(pos int) int {
	window := f.store.Slice(pos, pos+utf8MaxLen)
	return pos + utf8nav.NextCharStart(window, 0)
}

const utf8MaxLen = 4

// snap clamps pos to the text and moves it back onto a character boundary.
func (f *Field) snap(pos int) int {
	n := f.store.Len()
	if pos <= 0 {
		return 0
	}
	if pos >= n {
		return n
	}
	if b := f.store.Slice(pos, pos+1); b[0]&0xC0 == 0x80 {
		return f.prevBoundary(pos)
	}
	return pos
}

// MoveLeft moves the cursor one character left. Without extend, an
// existing selection collapses to its start instead.
func (f *Field) MoveLeft(extend bool) bool {
	if f.sel.HasSelection() && !extend {
		f.sel.CollapseTo(f.sel.Start())
		f.moved()
		return true
	}
	pos := f.sel.Cursor
	if pos == 0 {
		return false
	}
	f.sel.SetCursor(f.prevBoundary(pos), extend)
	f.moved()
	return true
}

// MoveRight moves the cursor one character right. Without extend, an
// existing selection collapses to its end instead.
func (f *Field) MoveRight(extend bool) bool {
	if f.sel.HasSelection() && !extend {
		f.sel.CollapseTo(f.sel.End())
		f.moved()
		return true
	}
	pos := f.sel.Cursor
	if pos >= f.store.Len() {
		return false
	}
	f.sel.SetCursor(f.nextBoundary(pos), extend)
	f.moved()
	return true
}

// MoveWordLeft moves to the start of the previous word.
func (f *Field) MoveWordLeft(extend bool) bool {
	pos := utf8nav.FindWordStart(f.store.String(), f.sel.Cursor)
	return f.moveTo(pos, extend)
}

// MoveWordRight moves to the end of the next word.
func (f *Field) MoveWordRight(extend bool) bool {
	pos := utf8nav.FindWordEnd(f.store.String(), f.sel.Cursor)
	return f.moveTo(pos, extend)
}

// MoveHome moves to the start of the text.
func (f *Field) MoveHome(extend bool) bool {
	return f.moveTo(0, extend)
}

// MoveEnd moves to the end of the text.
func (f *Field) MoveEnd(extend bool) bool {
	return f.moveTo(f.store.Len(), extend)
}

func (f *Field) moveTo(pos int, extend bool) bool {
	if pos == f.sel.Cursor && (extend || !f.sel.HasSelection()) {
		return false
	}
	f.sel.SetCursor(pos, extend)
	f.moved()
	return true
}

// SetCursor places the cursor at pos, snapped to a character boundary.
func (f *Field) SetCursor(pos int, extend bool) {
	f.sel.SetCursor(f.snap(pos), extend)
	f.moved()
}

// Select selects from anchor to cursor, both snapped to character
// boundaries.
func (f *Field) Select(anchor, cur int) {
	f.sel.Select(f.snap(anchor), f.snap(cur))
	f.moved()
}

// SelectAll selects the whole text.
func (f *Field) SelectAll() bool {
	f.sel.SelectAll(f.store.Len())
	f.moved()
	return true
}

// SelectWordAt selects the word at pos (double-click) and returns its
// range. On a separator only that byte is selected.
func (f *Field) SelectWordAt(pos int) (start, end int) {
	start, end = utf8nav.SelectWordAt(f.store.String(), f.snap(pos))
	f.sel.Select(start, end)
	f.moved()
	return start, end
}

// Focus marks the field focused and shows the caret.
func (f *Field) Focus() {
	f.focused = true
	f.ResetBlink()
}

// Blur marks the field unfocused and checkpoints pending edits.
func (f *Field) Blur() {
	f.focused = false
	f.Checkpoint(history.KindEdit)
}

// Focused reports whether the field has focus.
func (f *Field) Focused() bool {
	return f.focused
}

// UpdateBlink advances the blink timer by dt and reports whether the caret
// is visible. The timer wraps to zero after two blink periods; the caret is
// visible during the first.
func (f *Field) UpdateBlink(dt time.Duration) bool {
	f.blinkTimer += dt
	if f.blinkTimer >= 2*f.blinkRate {
		f.blinkTimer = 0
	}
	return f.CursorVisible()
}

// ResetBlink restarts the blink cycle with the caret visible.
func (f *Field) ResetBlink() {
	f.blinkTimer = 0
}

// CursorVisible reports whether the caret is in the visible half of the
// blink cycle.
func (f *Field) CursorVisible() bool {
	return f.blinkTimer < f.blinkRate
}

// Submit notifies the sink that the user submitted the current text.
func (f *Field) Submit() bool {
	f.Checkpoint(history.KindEdit)
	if f.sink != nil {
		f.sink.Submitted(f.store.String())
	}
	return true
}
