// Package edit implements the editing states: a single-line Field and a
// multi-line Area.
//
// An editing state owns a Storage, a Selection, a change flag, blink state
// and an undo History. Mutators run synchronously, return false instead of
// failing, and leave everything untouched when they reject an edit:
//
//   - rejected edits: read-only, max length or max lines reached
//   - boundary no-ops: moving or deleting past either end of the text
//
// Every successful mutation sets the Changed flag and calls the Sink, if
// one is attached, exactly once with the full text.
//
// Area adds a line index, a layout cache, vertical navigation with a
// preferred column, and scroll-to-cursor. Derived structures are rebuilt on
// structural edits and re-validated by fingerprint before every query, so
// they never serve stale rows.
//
// Basic usage:
//
//	f := edit.NewField(edit.WithMaxLength(64))
//	f.InsertChar('h')
//	f.InsertChar('i')
//	f.MoveLeft(false)
//	f.DeleteAtCursor() // "h"
//
//	a := edit.NewArea(edit.WithText("hello\nworld"))
//	a.MoveUp(false)
//
// Thread Safety:
//
// Editing states are not safe for concurrent use. A host with several
// fields gives each its own state.
package edit
