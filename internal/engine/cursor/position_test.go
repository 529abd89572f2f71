package cursor

import "testing"

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 5}, Position{1, 0}, -1},
		{Position{2, 0}, Position{1, 9}, 1},
		{Position{1, 3}, Position{1, 4}, -1},
		{Position{1, 4}, Position{1, 3}, 1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNewSpanNormalizes(t *testing.T) {
	s := NewSpan(Position{3, 1}, Position{1, 4})
	if s.Start != (Position{1, 4}) || s.End != (Position{3, 1}) {
		t.Errorf("NewSpan not normalized: %+v", s)
	}

	raw := Span{Start: Position{2, 0}, End: Position{0, 0}}
	if raw.Min() != (Position{0, 0}) || raw.Max() != (Position{2, 0}) {
		t.Errorf("Min/Max on reversed span = %v/%v", raw.Min(), raw.Max())
	}
	raw.Normalize()
	if raw.Start != (Position{0, 0}) {
		t.Errorf("Normalize() = %+v", raw)
	}
}

func TestSpanText(t *testing.T) {
	lines := []string{"first line", "second", "third row", ""}
	tests := []struct {
		name string
		span Span
		want string
	}{
		{"same line", NewSpan(Position{0, 6}, Position{0, 10}), "line"},
		{"empty", NewSpan(Position{1, 2}, Position{1, 2}), ""},
		{"two lines", NewSpan(Position{0, 6}, Position{1, 3}), "line\nsec"},
		{"full middle", NewSpan(Position{0, 6}, Position{2, 5}), "line\nsecond\nthird"},
		{"reversed input", NewSpan(Position{2, 5}, Position{0, 6}), "line\nsecond\nthird"},
		{"to empty last line", NewSpan(Position{2, 6}, Position{3, 0}), "row\n"},
		{"clamped", NewSpan(Position{1, 99}, Position{9, 9}), "\nthird row\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Text(lines, "\n"); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
	if got := NewSpan(Position{}, Position{0, 1}).Text(nil, "\n"); got != "" {
		t.Errorf("Text(nil) = %q", got)
	}
}
