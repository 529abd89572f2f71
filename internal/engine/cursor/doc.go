// Package cursor provides the selection types of the editing engine.
//
// Two forms are provided:
//
//   - Selection: an anchor/cursor pair of byte offsets, used by the editing
//     states that sit on top of a Storage.
//   - Span: an ordered pair of (line, column) Positions, used by hosts that
//     keep text as an explicit slice of lines.
//
// Selection Model:
//
// The anchor is where the selection started and the cursor is where typing
// occurs. When Anchor == Cursor there is no selection, only a caret. Order
// is computed on demand (Start, End) and never stored, so a selection may
// extend backward without losing its direction.
//
// Basic usage:
//
//	var sel cursor.Selection
//	sel.SetCursor(5, false)  // caret at 5
//	sel.SetCursor(9, true)   // selects [5, 9)
//	sel.SetCursor(2, true)   // selects [2, 5), cursor at 2
//	sel.SelectAll(len(text)) // selects everything
//
// Thread Safety:
//
// Selection and Span are plain values and are not synchronized.
package cursor
