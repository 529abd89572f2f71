package lineindex

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRebuild(t *testing.T) {
	tests := []struct {
		text   string
		starts []int
	}{
		{"", []int{0}},
		{"abc", []int{0}},
		{"abc\n", []int{0, 4}},
		{"a\nbc\n\ndef", []int{0, 2, 5, 6}},
		{"\n\n", []int{0, 1, 2}},
	}
	for _, tt := range tests {
		idx := New(tt.text)
		if diff := cmp.Diff(tt.starts, idx.starts); diff != "" {
			t.Errorf("New(%q) starts mismatch (-want +got):\n%s", tt.text, diff)
		}
		if idx.LineCount() != len(tt.starts) {
			t.Errorf("LineCount() = %d, want %d", idx.LineCount(), len(tt.starts))
		}
		if idx.TextSize() != len(tt.text) {
			t.Errorf("TextSize() = %d, want %d", idx.TextSize(), len(tt.text))
		}
	}
}

func TestOffsetToPosition(t *testing.T) {
	idx := New("hello\nworld\n\nend")
	tests := []struct {
		offset   int
		row, col int
	}{
		{0, 0, 0},
		{5, 0, 5},
		{6, 1, 0},
		{11, 1, 5},
		{12, 2, 0},
		{13, 3, 0},
		{16, 3, 3},
		{99, 3, 3},
		{-4, 0, 0},
	}
	for _, tt := range tests {
		row, col := idx.OffsetToPosition(tt.offset)
		if row != tt.row || col != tt.col {
			t.Errorf("OffsetToPosition(%d) = (%d,%d), want (%d,%d)", tt.offset, row, col, tt.row, tt.col)
		}
	}
}

func TestPositionToOffsetClamps(t *testing.T) {
	idx := New("hello\nhi\nworld")
	tests := []struct {
		row, col int
		want     int
	}{
		{0, 0, 0},
		{0, 3, 3},
		{0, 99, 5},
		{1, 1, 7},
		{1, 5, 8},
		{2, 5, 14},
		{3, 0, 14},
		{50, 2, 14},
		{-1, 2, 2},
		{1, -3, 6},
	}
	for _, tt := range tests {
		if got := idx.PositionToOffset(tt.row, tt.col); got != tt.want {
			t.Errorf("PositionToOffset(%d,%d) = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	text := "first line\n\nthird 中文\nx"
	idx := New(text)
	for row := 0; row < idx.LineCount(); row++ {
		for col := 0; col < 20; col++ {
			off := idx.PositionToOffset(row, col)
			gotRow, gotCol := idx.OffsetToPosition(off)
			wantCol := col
			if n := idx.LineLength(row); wantCol > n {
				wantCol = n
			}
			if gotRow != row || gotCol != wantCol {
				t.Fatalf("round trip (%d,%d) -> %d -> (%d,%d), want (%d,%d)",
					row, col, off, gotRow, gotCol, row, wantCol)
			}
		}
	}
}

func TestLineBounds(t *testing.T) {
	text := "ab\ncde\n"
	idx := New(text)
	tests := []struct {
		row                int
		start, end, length int
		line               string
	}{
		{0, 0, 2, 2, "ab"},
		{1, 3, 6, 3, "cde"},
		{2, 7, 7, 0, ""},
		{3, 7, 7, 0, ""},
	}
	for _, tt := range tests {
		if got := idx.LineStart(tt.row); got != tt.start {
			t.Errorf("LineStart(%d) = %d, want %d", tt.row, got, tt.start)
		}
		if got := idx.LineEnd(tt.row); got != tt.end {
			t.Errorf("LineEnd(%d) = %d, want %d", tt.row, got, tt.end)
		}
		if got := idx.LineLength(tt.row); got != tt.length {
			t.Errorf("LineLength(%d) = %d, want %d", tt.row, got, tt.length)
		}
		if got := idx.LineText(text, tt.row); got != tt.line {
			t.Errorf("LineText(%d) = %q, want %q", tt.row, got, tt.line)
		}
	}
}

func TestSync(t *testing.T) {
	idx := New("one\ntwo")
	if idx.Sync("one\ntwo") {
		t.Error("Sync with identical text should not rebuild")
	}
	if !idx.NeedsRebuild("one\ntwo\nthree") {
		t.Error("NeedsRebuild should detect appended line")
	}
	if !idx.Sync("one\ntwx") {
		t.Error("Sync should rebuild on same-length change")
	}
	if idx.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", idx.LineCount())
	}
	if !idx.Sync("a\nb\nc") || idx.LineCount() != 3 {
		t.Errorf("Sync did not pick up new lines, LineCount() = %d", idx.LineCount())
	}
}

func TestZeroIndex(t *testing.T) {
	var idx Index
	if idx.LineCount() != 1 {
		t.Errorf("zero Index LineCount() = %d, want 1", idx.LineCount())
	}
	if !idx.NeedsRebuild("") {
		t.Error("zero Index must need a rebuild")
	}
	if off := idx.PositionToOffset(0, 5); off != 0 {
		t.Errorf("zero Index PositionToOffset = %d, want 0", off)
	}
}

func BenchmarkSyncUnchanged(b *testing.B) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog\n", 2000)
	idx := New(text)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.Sync(text)
	}
}

func BenchmarkRebuild(b *testing.B) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog\n", 2000)
	idx := New("")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.Rebuild(text)
	}
}
