package storage

const minGap = 64

// Gap is a byte gap buffer. The contents are buf[:gapStart] followed by
// buf[gapEnd:].
type Gap struct {
	buf      []byte
	gapStart int
	gapEnd   int
}

// NewGap creates an empty gap buffer with the given initial capacity.
func NewGap(capacity int) *Gap {
	if capacity < 1 {
		capacity = minGap
	}
	return &Gap{buf: make([]byte, capacity), gapEnd: capacity}
}

// NewGapFromString creates a gap buffer holding s with the gap at the end.
func NewGapFromString(s string) *Gap {
	g := NewGap(len(s) + minGap)
	copy(g.buf, s)
	g.gapStart = len(s)
	return g
}

// Len returns the size in bytes.
func (g *Gap) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// Slice returns the text in [start, end).
func (g *Gap) Slice(start, end int) string {
	start, end = clampRange(g.Len(), start, end)
	if end <= g.gapStart {
		return string(g.buf[start:end])
	}
	gapLen := g.gapEnd - g.gapStart
	if start >= g.gapStart {
		return string(g.buf[start+gapLen : end+gapLen])
	}
	out := make([]byte, 0, end-start)
	out = append(out, g.buf[start:g.gapStart]...)
	out = append(out, g.buf[g.gapEnd:end+gapLen]...)
	return string(out)
}

// String returns the full contents.
func (g *Gap) String() string {
	return g.Slice(0, g.Len())
}

// Insert inserts text at offset, moving the gap there first.
func (g *Gap) Insert(offset int, text string) error {
	if err := checkOffset(g.Len(), offset); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	g.moveGap(offset)
	g.ensureGap(len(text))
	copy(g.buf[g.gapStart:], text)
	g.gapStart += len(text)
	return nil
}

// Erase removes [start, end) by widening the gap.
func (g *Gap) Erase(start, end int) error {
	if err := checkRange(g.Len(), start, end); err != nil {
		return err
	}
	g.moveGap(start)
	g.gapEnd += end - start
	return nil
}

// moveGap moves the gap so that gapStart == pos.
func (g *Gap) moveGap(pos int) {
	switch {
	case pos < g.gapStart:
		n := g.gapStart - pos
		copy(g.buf[g.gapEnd-n:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart -= n
		g.gapEnd -= n
	case pos > g.gapStart:
		n := pos - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+n], g.buf[g.gapEnd:g.gapEnd+n])
		g.gapStart += n
		g.gapEnd += n
	}
}

// ensureGap grows the buffer so the gap holds at least n bytes.
func (g *Gap) ensureGap(n int) {
	if g.gapEnd-g.gapStart >= n {
		return
	}
	newCap := len(g.buf)*2 + n
	buf := make([]byte, newCap)
	copy(buf, g.buf[:g.gapStart])
	suffix := len(g.buf) - g.gapEnd
	copy(buf[newCap-suffix:], g.buf[g.gapEnd:])
	g.gapEnd = newCap - suffix
	g.buf = buf
}
