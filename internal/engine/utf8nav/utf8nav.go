// Package utf8nav provides stateless UTF-8 boundary and word navigation over
// text snapshots.
//
// All offsets are byte offsets. Functions never read out of bounds and always
// make progress on malformed input: an unrecognized leading byte is treated
// as a one-byte character.
package utf8nav

// CharLen returns the byte length (1..4) of the character starting at pos,
// judged by the leading byte's bit pattern. Malformed leading bytes and
// out-of-range positions report 1.
func CharLen(text string, pos int) int {
	if pos < 0 || pos >= len(text) {
		return 1
	}
	b := text[pos]
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// NextCharStart returns the offset just past the character at pos, clamped
// to len(text).
func NextCharStart(text string, pos int) int {
	if pos >= len(text) {
		return len(text)
	}
	if pos < 0 {
		return 0
	}
	next := pos + CharLen(text, pos)
	if next > len(text) {
		return len(text)
	}
	return next
}

// PrevCharStart returns the start of the character before pos. It walks
// back over continuation bytes (10xxxxxx) and stops at 0.
func PrevCharStart(text string, pos int) int {
	if pos > len(text) {
		pos = len(text)
	}
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && isContinuation(text[pos]) {
		pos--
	}
	return pos
}

// IsCharBoundary reports whether pos is a valid place to split text.
func IsCharBoundary(text string, pos int) bool {
	if pos == 0 || pos == len(text) {
		return true
	}
	if pos < 0 || pos > len(text) {
		return false
	}
	return !isContinuation(text[pos])
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// Encode returns the UTF-8 encoding of cp. Negative codepoints and values at
// or above 0x110000 encode to nil.
func Encode(cp int) []byte {
	switch {
	case cp < 0:
		return nil
	case cp < 0x80:
		return []byte{byte(cp)}
	case cp < 0x800:
		return []byte{
			0xC0 | byte(cp>>6),
			0x80 | byte(cp&0x3F),
		}
	case cp < 0x10000:
		return []byte{
			0xE0 | byte(cp>>12),
			0x80 | byte((cp>>6)&0x3F),
			0x80 | byte(cp&0x3F),
		}
	case cp < 0x110000:
		return []byte{
			0xF0 | byte(cp>>18),
			0x80 | byte((cp>>12)&0x3F),
			0x80 | byte((cp>>6)&0x3F),
			0x80 | byte(cp&0x3F),
		}
	default:
		return nil
	}
}
