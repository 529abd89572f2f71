package utf8nav

// IsWordSeparator reports whether b is ASCII whitespace or punctuation.
// Bytes >= 0x80 (parts of multi-byte characters) are word bytes.
func IsWordSeparator(b byte) bool {
	switch {
	case b == ' ', b == '\t', b == '\n', b == '\r', b == '\v', b == '\f':
		return true
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	}
	return false
}

// FindWordStart returns the start of the word at or before pos: separators
// immediately before pos are skipped, then word bytes.
func FindWordStart(text string, pos int) int {
	pos = clamp(pos, len(text))
	for pos > 0 && IsWordSeparator(text[pos-1]) {
		pos--
	}
	for pos > 0 && !IsWordSeparator(text[pos-1]) {
		pos--
	}
	return pos
}

// FindWordEnd returns the end of the word at or after pos: separators at pos
// are skipped, then word bytes.
func FindWordEnd(text string, pos int) int {
	pos = clamp(pos, len(text))
	for pos < len(text) && IsWordSeparator(text[pos]) {
		pos++
	}
	for pos < len(text) && !IsWordSeparator(text[pos]) {
		pos++
	}
	return pos
}

// SelectWordAt returns the byte range of the word containing pos. If pos
// sits on a separator, only that separator byte is selected. At the end of
// text the range is empty.
func SelectWordAt(text string, pos int) (start, end int) {
	pos = clamp(pos, len(text))
	if pos == len(text) {
		return pos, pos
	}
	if IsWordSeparator(text[pos]) {
		return pos, pos + 1
	}
	start, end = pos, pos
	for start > 0 && !IsWordSeparator(text[start-1]) {
		start--
	}
	for end < len(text) && !IsWordSeparator(text[end]) {
		end++
	}
	return start, end
}

func clamp(pos, n int) int {
	if pos < 0 {
		return 0
	}
	if pos > n {
		return n
	}
	return pos
}
