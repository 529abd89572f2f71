// Package history provides linear undo/redo for the editing states.
//
// History stores inspectable data, not behavior: every entry is a
// before/after pair of whole-buffer snapshots (text plus selection) tagged
// with the kind of edit that produced it. Undoing restores the "before"
// snapshot on a Target; redoing restores the "after" snapshot.
//
// # History Stack
//
//	h := history.New(100) // keep at most 100 entries
//
//	h.Push(history.Entry{Kind: history.KindEdit, Before: b, After: a})
//	h.Undo(target) // target.Restore(b)
//	h.Redo(target) // target.Restore(a)
//
// Pushing clears the redo stack, so an undone branch becomes unreachable
// once a new edit is recorded.
//
// # Granularity
//
// Snapshots are whole-buffer text. Callers choose when to checkpoint (on
// blur, on an explicit save point, at the end of a typing burst) rather
// than recording every keystroke.
//
// # Grouping
//
// Entries pushed between BeginGroup and EndGroup collapse into a single
// entry spanning the first Before and the last After. Transaction wraps
// the pair and drops the group when its function fails:
//
//	err := h.Transaction(history.KindPaste, func() error {
//		return insertLines(lines)
//	})
package history
