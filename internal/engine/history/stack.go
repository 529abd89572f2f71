package history

import "time"

// DefaultMaxEntries bounds the undo stack when no limit is given.
const DefaultMaxEntries = 1000

// History manages undo/redo stacks for one editing state.
type History struct {
	undoStack []Entry
	redoStack []Entry

	grouping   bool
	groupKind  Kind
	groupFirst Entry
	groupLast  Entry
	groupCount int

	maxEntries int
	now        func() time.Time
}

// New creates a history keeping at most maxEntries undo entries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Push records an entry and clears the redo stack. Entries that do not
// change the text are dropped. Reports whether the entry was recorded.
func (h *History) Push(e Entry) bool {
	if e.IsNoop() {
		return false
	}
	if e.Time.IsZero() {
		e.Time = h.now()
	}

	if h.grouping {
		if h.groupCount == 0 {
			h.groupFirst = e
		}
		h.groupLast = e
		h.groupCount++
		return true
	}

	h.push(e)
	return true
}

func (h *History) push(e Entry) {
	h.undoStack = append(h.undoStack, e)
	h.redoStack = nil

	if excess := len(h.undoStack) - h.maxEntries; excess > 0 {
		h.undoStack = append(h.undoStack[:0], h.undoStack[excess:]...)
	}
}

// Undo reverts the most recent entry on t. It is a no-op returning false
// when there is nothing to undo.
func (h *History) Undo(t Target) bool {
	if len(h.undoStack) == 0 {
		return false
	}
	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	e.Revert(t)
	h.redoStack = append(h.redoStack, e)
	return true
}

// Redo re-applies the most recently undone entry on t. It is a no-op
// returning false when there is nothing to redo.
func (h *History) Redo(t Target) bool {
	if len(h.redoStack) == 0 {
		return false
	}
	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	e.Apply(t)
	h.undoStack = append(h.undoStack, e)
	return true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// PeekUndo returns the entry the next Undo would revert.
func (h *History) PeekUndo() (Entry, bool) {
	if len(h.undoStack) == 0 {
		return Entry{}, false
	}
	return h.undoStack[len(h.undoStack)-1], true
}

// PeekRedo returns the entry the next Redo would apply.
func (h *History) PeekRedo() (Entry, bool) {
	if len(h.redoStack) == 0 {
		return Entry{}, false
	}
	return h.redoStack[len(h.redoStack)-1], true
}

// UndoInfo returns descriptions of the undo stack, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	return info(h.undoStack)
}

// RedoInfo returns descriptions of the redo stack, oldest first.
func (h *History) RedoInfo() []OperationInfo {
	return info(h.redoStack)
}

func info(entries []Entry) []OperationInfo {
	result := make([]OperationInfo, len(entries))
	for i, e := range entries {
		result[i] = OperationInfo{
			Description: e.Description(),
			Timestamp:   e.Time,
		}
	}
	return result
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.groupCount = 0
}

// SetMaxEntries changes the maximum number of undo entries, dropping the
// oldest ones if the stack is larger.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	h.maxEntries = max
	if excess := len(h.undoStack) - max; excess > 0 {
		h.undoStack = append(h.undoStack[:0], h.undoStack[excess:]...)
	}
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	return h.maxEntries
}
