package edit

import (
	"testing"

	"github.com/dshills/textcore/internal/engine/cursor"
	"github.com/dshills/textcore/internal/engine/layout"
	"github.com/dshills/textcore/internal/input/key"
	"github.com/google/go-cmp/cmp"
)

func TestAreaMoveUpDown(t *testing.T) {
	a := NewArea(WithText("hello\nworld"))
	if a.Cursor() != 11 {
		t.Fatalf("Cursor() = %d, want 11", a.Cursor())
	}
	if !a.MoveUp(false) {
		t.Fatal("MoveUp failed")
	}
	if a.Cursor() != 5 {
		t.Errorf("after MoveUp Cursor() = %d, want 5", a.Cursor())
	}
	if a.MoveUp(false) {
		t.Error("MoveUp on first row should fail")
	}
	if !a.MoveDown(false) || a.Cursor() != 11 {
		t.Errorf("after MoveDown Cursor() = %d, want 11", a.Cursor())
	}
	if a.MoveDown(false) {
		t.Error("MoveDown on last row should fail")
	}
}

func TestAreaPreferredColumn(t *testing.T) {
	a := NewArea(WithText("long line\nab\nanother line"))
	a.SetCursorPosition(0, 7, false)

	a.MoveDown(false)
	if got := a.CursorPosition(); got != (cursor.Position{Line: 1, Column: 2}) {
		t.Errorf("CursorPosition() = %v, want 1:2", got)
	}
	if a.PreferredColumn() != 7 {
		t.Errorf("PreferredColumn() = %d, want 7", a.PreferredColumn())
	}
	a.MoveDown(false)
	if got := a.CursorPosition(); got != (cursor.Position{Line: 2, Column: 7}) {
		t.Errorf("CursorPosition() = %v, want 2:7", got)
	}

	// Horizontal movement forgets the preferred column.
	a.MoveLeft(false)
	if a.PreferredColumn() != 0 {
		t.Errorf("PreferredColumn() = %d after MoveLeft, want 0", a.PreferredColumn())
	}
	a.MoveUp(false)
	if got := a.CursorPosition(); got != (cursor.Position{Line: 1, Column: 2}) {
		t.Errorf("CursorPosition() = %v, want 1:2", got)
	}
}

func TestAreaMoveSnapsToCharBoundary(t *testing.T) {
	a := NewArea(WithText("abcd\n中文"))
	a.SetCursorPosition(0, 2, false)
	a.MoveDown(false)
	// Column 2 falls inside 中; the cursor backs up to its start.
	if got := a.CursorPosition(); got != (cursor.Position{Line: 1, Column: 0}) {
		t.Errorf("CursorPosition() = %v, want 1:0", got)
	}
}

func TestAreaLineStartEnd(t *testing.T) {
	a := NewArea(WithText("first\nsecond\nthird"))
	a.SetCursorPosition(1, 3, false)
	a.MoveToLineStart(false)
	if a.Cursor() != 6 {
		t.Errorf("Cursor() = %d, want 6", a.Cursor())
	}
	a.MoveToLineEnd(true)
	if a.SelectedText() != "second" {
		t.Errorf("SelectedText() = %q, want %q", a.SelectedText(), "second")
	}

	// After End, vertical moves stick to line ends.
	a.MoveToLineEnd(false)
	a.MoveUp(false)
	if got := a.CursorPosition(); got != (cursor.Position{Line: 0, Column: 5}) {
		t.Errorf("CursorPosition() = %v, want 0:5", got)
	}
}

func TestAreaInsertNewline(t *testing.T) {
	a := NewArea(WithText("ab"))
	a.SetCursor(1, false)
	if !a.InsertNewline() {
		t.Fatal("InsertNewline failed")
	}
	if diff := cmp.Diff([]string{"a", "b"}, a.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
	if a.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", a.LineCount())
	}
	if got := a.CursorPosition(); got != (cursor.Position{Line: 1, Column: 0}) {
		t.Errorf("CursorPosition() = %v, want 1:0", got)
	}
}

func TestAreaMaxLines(t *testing.T) {
	a := NewArea(WithMaxLines(1), WithText("only"))
	if a.InsertNewline() {
		t.Error("newline accepted with max lines 1")
	}
	if a.InsertText("x\ny") {
		t.Error("multi-line paste accepted with max lines 1")
	}
	if a.Text() != "only" {
		t.Errorf("Text() = %q, want unchanged", a.Text())
	}

	b := NewArea(WithMaxLines(2), WithText("a\nb"))
	b.Select(0, 3)
	if !b.InsertNewline() {
		t.Error("replacing a line break with a line break should fit")
	}
}

func TestAreaLineIndexStaysCurrent(t *testing.T) {
	a := NewArea(WithText("one\ntwo"))
	a.MoveToLineStart(false)
	a.InsertText("x\n")
	if a.Line(1) != "x" || a.Line(2) != "two" {
		t.Errorf("lines = %q", a.Lines())
	}
	a.Undo()
	if a.LineCount() != 2 || a.Line(1) != "two" {
		t.Errorf("after undo lines = %q", a.Lines())
	}
	a.SetText("a\nb\nc\nd")
	if a.LineCount() != 4 {
		t.Errorf("after SetText LineCount() = %d, want 4", a.LineCount())
	}
}

func TestAreaSelectionSpan(t *testing.T) {
	a := NewArea(WithText("ab\ncd\nef"))
	a.Select(7, 1)
	want := cursor.Span{
		Start: cursor.Position{Line: 0, Column: 1},
		End:   cursor.Position{Line: 2, Column: 1},
	}
	if got := a.SelectionSpan(); got != want {
		t.Errorf("SelectionSpan() = %v, want %v", got, want)
	}
	if got := a.SelectedText(); got != "b\ncd\ne" {
		t.Errorf("SelectedText() = %q", got)
	}
}

func TestAreaEnsureCursorVisible(t *testing.T) {
	a := NewArea(WithText("0\n1\n2\n3\n4\n5\n6\n7\n8\n9"), WithLineHeight(10))

	// Cursor on row 9, viewport of 3 rows.
	if got := a.EnsureCursorVisible(30); got != 70 {
		t.Errorf("EnsureCursorVisible() = %v, want 70", got)
	}
	a.MoveHome(false)
	if got := a.EnsureCursorVisible(30); got != 0 {
		t.Errorf("EnsureCursorVisible() = %v, want 0", got)
	}

	// A viewport taller than the content pins the offset at 0.
	a.SetScrollOffset(50)
	if got := a.EnsureCursorVisible(500); got != 0 {
		t.Errorf("EnsureCursorVisible() = %v, want 0", got)
	}
}

func TestAreaLayoutScroll(t *testing.T) {
	a := NewArea(WithText("aaaa bbbb cccc"), WithWrapWidth(5), WithLineHeight(1))
	c := a.Layout(layout.FixedMeasurer(1))
	if c.LineCount() != 3 {
		t.Fatalf("LineCount() = %d, want 3", c.LineCount())
	}
	if got := a.EnsureCursorVisible(1); got != 2 {
		t.Errorf("EnsureCursorVisible() = %v, want 2", got)
	}

	a.InsertText(" dddd")
	if got := a.EnsureCursorVisible(1); got != 3 {
		t.Errorf("after edit EnsureCursorVisible() = %v, want 3", got)
	}
}

func TestAreaSetMeasurerRebuilds(t *testing.T) {
	a := NewArea(WithText("ab cd"), WithWrapWidth(4), WithLineHeight(1))
	if n := a.Layout(layout.FixedMeasurer(1)).LineCount(); n != 2 {
		t.Fatalf("LineCount() = %d, want 2", n)
	}

	wide := layout.FixedMeasurer(2)
	a.SetMeasurer(wide)
	c := a.Layout(wide)
	if c.LineCount() != 3 {
		t.Errorf("after SetMeasurer LineCount() = %d, want 3", c.LineCount())
	}
	if c.Rebuilds() != 2 {
		t.Errorf("Rebuilds() = %d, want 2", c.Rebuilds())
	}
	if got := a.EnsureCursorVisible(1); got != 2 {
		t.Errorf("EnsureCursorVisible() = %v, want 2", got)
	}
}

func TestAreaHandle(t *testing.T) {
	a := NewArea()
	km := key.DefaultKeymap()
	events := []key.Event{
		key.NewRuneEvent('a', key.ModNone),
		key.NewSpecialEvent(key.KeyEnter, key.ModNone),
		key.NewRuneEvent('b', key.ModNone),
		key.NewSpecialEvent(key.KeyUp, key.ModNone),
		key.NewSpecialEvent(key.KeyEnd, key.ModNone),
		key.NewRuneEvent('c', key.ModNone),
	}
	for _, ev := range events {
		in, ok := km.Resolve(ev)
		if !ok {
			t.Fatalf("Resolve(%v) found nothing", ev)
		}
		a.Handle(in, nil)
	}
	if a.Text() != "ac\nb" {
		t.Errorf("Text() = %q, want %q", a.Text(), "ac\nb")
	}
}
