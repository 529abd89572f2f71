// Package layout maps source lines to word-wrapped visual lines with pixel
// geometry.
//
// A Cache is rebuilt in full from a text snapshot, a wrap width, a uniform
// line height and a Measurer supplied by the rendering side. Rebuilding is
// the expensive path; Sync skips it when neither the text fingerprint nor
// the geometry inputs changed. Lookups (LineAtOffset, LineAtY, YForOffset)
// serve a single cursor per frame and work directly on the cached lines.
//
// Wrapping:
//
// With a positive wrap width each source line is packed greedily with whole
// words, where a word is a run of non-space bytes plus its trailing spaces.
// Trailing spaces hang past the wrap edge and never force a break on their
// own. A word that does not fit on an empty visual line is broken at the
// last character boundary that fits, and at least one character is always
// placed, so unbreakable content cannot stall the layout.
//
// With a wrap width <= 0 every source line maps to exactly one visual line.
//
// Measurers:
//
//   - CellMeasurer counts terminal cells with go-runewidth.
//   - GraphemeMeasurer counts cells per grapheme cluster with uniseg.
//
// Both expand tabs to tab stops measured from the start of the span, which
// matches how the cache measures spans (always from a visual line start).
package layout
