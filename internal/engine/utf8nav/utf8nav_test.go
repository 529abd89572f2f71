package utf8nav

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func TestCharLen(t *testing.T) {
	text := "aé中\U0001F600"
	tests := []struct {
		pos  int
		want int
	}{
		{0, 1},
		{1, 2},
		{3, 3},
		{6, 4},
		{2, 1},  // continuation byte
		{-1, 1}, // out of range
		{99, 1},
	}
	for _, tt := range tests {
		if got := CharLen(text, tt.pos); got != tt.want {
			t.Errorf("CharLen(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
	if got := CharLen("\xff", 0); got != 1 {
		t.Errorf("malformed leading byte: got %d, want 1", got)
	}
}

func TestPrevCharStart(t *testing.T) {
	text := "aé中\U0001F600"
	tests := []struct {
		pos  int
		want int
	}{
		{0, 0},
		{1, 0},
		{3, 1},
		{6, 3},
		{10, 6},
		{50, 6},
	}
	for _, tt := range tests {
		if got := PrevCharStart(text, tt.pos); got != tt.want {
			t.Errorf("PrevCharStart(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
	// Only continuation bytes: must still terminate at 0.
	if got := PrevCharStart("\x80\x80\x80", 3); got != 0 {
		t.Errorf("continuation-only text: got %d, want 0", got)
	}
}

func TestNextCharStartClampsTruncated(t *testing.T) {
	// Leading byte claims 3 bytes but only 2 exist.
	if got := NextCharStart("\xe4\xb8", 0); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if got := NextCharStart("ab", 2); got != 2 {
		t.Errorf("at end: got %d, want 2", got)
	}
}

func TestIsCharBoundary(t *testing.T) {
	text := "a中b"
	want := []bool{true, true, false, false, true, true}
	for pos, w := range want {
		if got := IsCharBoundary(text, pos); got != w {
			t.Errorf("IsCharBoundary(%d) = %v, want %v", pos, got, w)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		cp   int
		want []byte
	}{
		{'A', []byte("A")},
		{0x7F, []byte{0x7F}},
		{0x80, []byte("\u0080")},
		{0x7FF, []byte("\u07ff")},
		{0x800, []byte("\u0800")},
		{0x4E2D, []byte("中")},
		{0xFFFF, []byte("\uffff")},
		{0x10000, []byte("\U00010000")},
		{0x10FFFF, []byte("\U0010ffff")},
		{0x110000, nil},
		{-1, nil},
	}
	for _, tt := range tests {
		if got := Encode(tt.cp); !bytes.Equal(got, tt.want) {
			t.Errorf("Encode(%#x) = % x, want % x", tt.cp, got, tt.want)
		}
	}
}

func TestFingerprint(t *testing.T) {
	if Fingerprint("hello") != Fingerprint("hello") {
		t.Error("fingerprint must be deterministic")
	}
	if Fingerprint("hello") == Fingerprint("hellp") {
		t.Error("single byte change should alter fingerprint")
	}
	if Fingerprint("") == Fingerprint("\x00") {
		t.Error("empty and NUL should differ")
	}
	if Fingerprint("ab") == Fingerprint("ba") {
		t.Error("fingerprint should be order sensitive")
	}
}

func FuzzCharRoundTrip(f *testing.F) {
	f.Add("hello")
	f.Add("aé中\U0001F600z")
	f.Add("")
	f.Fuzz(func(t *testing.T, text string) {
		if !utf8.ValidString(text) {
			t.Skip()
		}
		for p := 0; p < len(text); p = NextCharStart(text, p) {
			next := NextCharStart(text, p)
			if next <= p {
				t.Fatalf("no progress at %d", p)
			}
			if back := PrevCharStart(text, next); back != p {
				t.Fatalf("PrevCharStart(%d) = %d, want %d", next, back, p)
			}
			if _, size := utf8.DecodeRuneInString(text[p:]); size != CharLen(text, p) {
				t.Fatalf("CharLen(%d) = %d, want %d", p, CharLen(text, p), size)
			}
		}
	})
}

func FuzzEncodeMatchesStdlib(f *testing.F) {
	f.Add(int32('x'))
	f.Add(int32(0x4E2D))
	f.Add(int32(0x1F600))
	f.Fuzz(func(t *testing.T, cp int32) {
		r := rune(cp)
		if r < 0 || r > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
			t.Skip()
		}
		if got, want := Encode(int(r)), []byte(string(r)); !bytes.Equal(got, want) {
			t.Fatalf("Encode(%#x) = % x, want % x", r, got, want)
		}
	})
}
