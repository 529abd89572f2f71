package cursor

import "testing"

func TestCaret(t *testing.T) {
	s := Caret(7)
	if s.HasSelection() {
		t.Error("caret should have no selection")
	}
	if s.Start() != 7 || s.End() != 7 || s.Len() != 0 {
		t.Errorf("caret bounds = [%d,%d) len %d", s.Start(), s.End(), s.Len())
	}
}

func TestSelectionOrdering(t *testing.T) {
	forward := NewSelection(2, 9)
	backward := NewSelection(9, 2)

	for _, s := range []Selection{forward, backward} {
		if !s.HasSelection() {
			t.Errorf("%v should have a selection", s)
		}
		if s.Start() != 2 || s.End() != 9 || s.Len() != 7 {
			t.Errorf("%v: bounds [%d,%d) len %d", s, s.Start(), s.End(), s.Len())
		}
		if r := s.Range(); r.Start != 2 || r.End != 9 || r.Len() != 7 {
			t.Errorf("%v: Range() = %+v", s, r)
		}
	}
	if forward.IsBackward() || !backward.IsBackward() {
		t.Error("direction not preserved")
	}
	if backward.Cursor != 2 {
		t.Error("ordering must be computed, not stored")
	}
}

func TestSetCursor(t *testing.T) {
	var s Selection
	s.SetCursor(5, false)
	if s.Anchor != 5 || s.Cursor != 5 {
		t.Fatalf("SetCursor(5,false) = %v", s)
	}
	s.SetCursor(9, true)
	if s.Anchor != 5 || s.Cursor != 9 {
		t.Fatalf("SetCursor(9,true) = %v", s)
	}
	s.SetCursor(1, true)
	if s.Start() != 1 || s.End() != 5 {
		t.Fatalf("extend backward = %v", s)
	}
	s.SetCursor(3, false)
	if s.HasSelection() || s.Cursor != 3 {
		t.Fatalf("SetCursor(3,false) should collapse: %v", s)
	}
}

func TestSelectAllText(t *testing.T) {
	text := "héllo\nwörld"
	var s Selection
	s.SelectAll(len(text))
	if got := s.Text(text); got != text {
		t.Errorf("Text() = %q, want %q", got, text)
	}
	if s.Cursor != len(text) {
		t.Errorf("cursor = %d, want end of text", s.Cursor)
	}
}

func TestSelectionTextClamps(t *testing.T) {
	s := NewSelection(3, 50)
	if got := s.Text("abcdef"); got != "def" {
		t.Errorf("Text() = %q, want %q", got, "def")
	}
	if got := NewSelection(10, 20).Text("abc"); got != "" {
		t.Errorf("out of range Text() = %q", got)
	}
}

func TestCollapseAndClamp(t *testing.T) {
	s := NewSelection(2, 8)
	s.Collapse()
	if s.HasSelection() || s.Cursor != 8 {
		t.Errorf("Collapse() = %v", s)
	}
	s.CollapseTo(4)
	if s.Anchor != 4 || s.Cursor != 4 {
		t.Errorf("CollapseTo(4) = %v", s)
	}
	s = NewSelection(-3, 40)
	s.Clamp(10)
	if s.Anchor != 0 || s.Cursor != 10 {
		t.Errorf("Clamp(10) = %v", s)
	}
}

func TestSelectionContains(t *testing.T) {
	s := NewSelection(6, 3)
	for off, want := range map[int]bool{2: false, 3: true, 5: true, 6: false} {
		if got := s.Contains(off); got != want {
			t.Errorf("Contains(%d) = %v, want %v", off, got, want)
		}
	}
}

func TestSelectionString(t *testing.T) {
	tests := []struct {
		s    Selection
		want string
	}{
		{Caret(3), "Caret(3)"},
		{NewSelection(1, 4), "Selection(1→4)"},
		{NewSelection(4, 1), "Selection(4←1)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
