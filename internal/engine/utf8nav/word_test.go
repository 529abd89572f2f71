package utf8nav

import "testing"

func TestIsWordSeparator(t *testing.T) {
	for _, b := range []byte(" \t\n.,;:!?()[]{}<>\"'`~-+=*/\\|@#$%^&") {
		if !IsWordSeparator(b) {
			t.Errorf("%q should be a separator", b)
		}
	}
	for _, b := range []byte("azAZ09_") {
		if b == '_' {
			// Underscore is ASCII punctuation.
			if !IsWordSeparator(b) {
				t.Errorf("%q should be a separator", b)
			}
			continue
		}
		if IsWordSeparator(b) {
			t.Errorf("%q should not be a separator", b)
		}
	}
	if IsWordSeparator(0xE4) {
		t.Error("multi-byte lead bytes belong to words")
	}
}

func TestSelectWordAt(t *testing.T) {
	text := "foo, bar"
	tests := []struct {
		pos        int
		start, end int
	}{
		{0, 0, 3},
		{1, 0, 3},
		{3, 3, 4}, // comma
		{4, 4, 5}, // space
		{5, 5, 8},
		{7, 5, 8},
		{8, 8, 8}, // end of text
	}
	for _, tt := range tests {
		s, e := SelectWordAt(text, tt.pos)
		if s != tt.start || e != tt.end {
			t.Errorf("SelectWordAt(%d) = (%d,%d), want (%d,%d)", tt.pos, s, e, tt.start, tt.end)
		}
	}
}

func TestSelectWordAtMultibyte(t *testing.T) {
	text := "go 中文 ok"
	s, e := SelectWordAt(text, 4)
	if text[s:e] != "中文" {
		t.Errorf("got %q, want %q", text[s:e], "中文")
	}
}

func TestFindWordStartEnd(t *testing.T) {
	text := "hello, big world"
	tests := []struct {
		pos       int
		wantStart int
		wantEnd   int
	}{
		{0, 0, 5},
		{3, 0, 5},
		{5, 0, 10},
		{7, 0, 10},
		{8, 7, 10},
		{11, 7, 16},
		{16, 11, 16},
	}
	for _, tt := range tests {
		if got := FindWordStart(text, tt.pos); got != tt.wantStart {
			t.Errorf("FindWordStart(%d) = %d, want %d", tt.pos, got, tt.wantStart)
		}
		if got := FindWordEnd(text, tt.pos); got != tt.wantEnd {
			t.Errorf("FindWordEnd(%d) = %d, want %d", tt.pos, got, tt.wantEnd)
		}
	}
}
