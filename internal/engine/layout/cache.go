package layout

import (
	"github.com/dshills/textcore/internal/engine/utf8nav"
)

// Measurer returns the rendered width of a span of text in pixels. It must
// be pure for a given font and size.
type Measurer func(span string) float64

// VisualLine is one rendered line after wrapping.
type VisualLine struct {
	SourceOffset int     // byte offset of the first byte in the text
	Length       int     // length in bytes, excluding any line break
	Y            float64 // top of the line
	Width        float64 // measured width of the span
	SourceLine   int     // row of the source line this span belongs to
}

// End returns the offset just past the span.
func (v VisualLine) End() int {
	return v.SourceOffset + v.Length
}

// Cache holds the visual lines of one text snapshot.
type Cache struct {
	lines       []VisualLine
	totalHeight float64
	maxWidth    float64
	lineHeight  float64
	wrapWidth   float64

	fingerprint uint64
	textSize    int
	built       bool
	rebuilds    int
}

// New creates an empty cache. Call Rebuild or Sync before querying it.
func New() *Cache {
	return &Cache{}
}

// Rebuild replaces the cached lines with a layout of text.
func (c *Cache) Rebuild(text string, wrapWidth, lineHeight float64, measure Measurer) {
	lines := c.lines[:0]
	row := 0
	lineStart := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != '\n' {
			continue
		}
		lines = c.appendSourceLine(lines, text[lineStart:i], lineStart, row, wrapWidth, measure)
		lineStart = i + 1
		row++
	}

	var maxWidth float64
	for i := range lines {
		lines[i].Y = float64(i) * lineHeight
		if lines[i].Width > maxWidth {
			maxWidth = lines[i].Width
		}
	}

	c.lines = lines
	c.totalHeight = float64(len(lines)) * lineHeight
	c.maxWidth = maxWidth
	c.lineHeight = lineHeight
	c.wrapWidth = wrapWidth
	c.fingerprint = utf8nav.Fingerprint(text)
	c.textSize = len(text)
	c.built = true
	c.rebuilds++
}

// Sync rebuilds the cache when the text or geometry differ from the last
// build and reports whether it rebuilt. The measurer is assumed unchanged;
// call Rebuild directly after switching fonts.
func (c *Cache) Sync(text string, wrapWidth, lineHeight float64, measure Measurer) bool {
	if c.built && c.wrapWidth == wrapWidth && c.lineHeight == lineHeight &&
		c.textSize == len(text) && c.fingerprint == utf8nav.Fingerprint(text) {
		return false
	}
	c.Rebuild(text, wrapWidth, lineHeight, measure)
	return true
}

func (c *Cache) appendSourceLine(lines []VisualLine, line string, base, row int, wrapWidth float64, measure Measurer) []VisualLine {
	emit := func(start, end int) {
		lines = append(lines, VisualLine{
			SourceOffset: base + start,
			Length:       end - start,
			Width:        measure(line[start:end]),
			SourceLine:   row,
		})
	}

	if wrapWidth <= 0 || line == "" {
		emit(0, len(line))
		return lines
	}

	begin := 0 // start of the visual line being filled
	pos := 0   // end of the words accepted so far
	for pos < len(line) {
		wordEnd := nextWord(line, pos)
		if measure(line[begin:wordEnd]) <= wrapWidth {
			pos = wordEnd
			continue
		}
		if pos > begin {
			emit(begin, pos)
			begin = pos
			continue
		}
		// The word alone is too wide: break it at the last fitting character.
		end := utf8nav.NextCharStart(line, begin)
		for end < wordEnd {
			next := utf8nav.NextCharStart(line, end)
			if measure(line[begin:next]) > wrapWidth {
				break
			}
			end = next
		}
		emit(begin, end)
		begin, pos = end, end
	}
	if begin < len(line) {
		emit(begin, len(line))
	}
	return lines
}

// nextWord returns the end of the word starting at pos: a run of non-space
// bytes followed by its trailing spaces. A run of leading spaces is a word
// of its own.
func nextWord(line string, pos int) int {
	end := pos
	for end < len(line) && !isSpace(line[end]) {
		end++
	}
	for end < len(line) && isSpace(line[end]) {
		end++
	}
	return end
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// Lines returns the cached visual lines. The slice is owned by the cache.
func (c *Cache) Lines() []VisualLine {
	return c.lines
}

// LineCount returns the number of visual lines.
func (c *Cache) LineCount() int {
	return len(c.lines)
}

// Line returns visual line i.
func (c *Cache) Line(i int) (VisualLine, bool) {
	if i < 0 || i >= len(c.lines) {
		return VisualLine{}, false
	}
	return c.lines[i], true
}

// TotalHeight returns the height of all visual lines.
func (c *Cache) TotalHeight() float64 {
	return c.totalHeight
}

// MaxWidth returns the widest visual line.
func (c *Cache) MaxWidth() float64 {
	return c.maxWidth
}

// LineHeight returns the line height used by the last build.
func (c *Cache) LineHeight() float64 {
	return c.lineHeight
}

// Rebuilds returns how many times the cache has been rebuilt.
func (c *Cache) Rebuilds() int {
	return c.rebuilds
}

// LineAtOffset returns the index of the visual line containing offset. An
// offset on a wrap boundary belongs to the line that starts there.
func (c *Cache) LineAtOffset(offset int) int {
	found := 0
	for i, l := range c.lines {
		if l.SourceOffset > offset {
			break
		}
		found = i
	}
	return found
}

// LineAtY returns the index of the visual line covering y.
func (c *Cache) LineAtY(y float64) int {
	if len(c.lines) == 0 || c.lineHeight <= 0 || y < 0 {
		return 0
	}
	i := int(y / c.lineHeight)
	if i >= len(c.lines) {
		i = len(c.lines) - 1
	}
	return i
}

// YForOffset returns the top of the visual line containing offset.
func (c *Cache) YForOffset(offset int) float64 {
	if len(c.lines) == 0 {
		return 0
	}
	return c.lines[c.LineAtOffset(offset)].Y
}

// OffsetToX returns the horizontal position of offset within its visual
// line. text must be the snapshot the cache was built from.
func (c *Cache) OffsetToX(text string, offset int, measure Measurer) float64 {
	if len(c.lines) == 0 {
		return 0
	}
	l := c.lines[c.LineAtOffset(offset)]
	if offset > l.End() {
		offset = l.End()
	}
	if offset > len(text) || offset <= l.SourceOffset {
		return 0
	}
	return measure(text[l.SourceOffset:offset])
}

// OffsetAtPoint returns the character boundary nearest to (x, y).
func (c *Cache) OffsetAtPoint(text string, x, y float64, measure Measurer) int {
	if len(c.lines) == 0 {
		return 0
	}
	l := c.lines[c.LineAtY(y)]
	if l.End() > len(text) {
		return len(text)
	}
	span := text[l.SourceOffset:l.End()]
	prevX := 0.0
	for pos := 0; pos < len(span); {
		next := utf8nav.NextCharStart(span, pos)
		nextX := measure(span[:next])
		if x < (prevX+nextX)/2 {
			return l.SourceOffset + pos
		}
		pos, prevX = next, nextX
	}
	return l.End()
}
