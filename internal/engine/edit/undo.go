package edit

import (
	"errors"

	"github.com/dshills/textcore/internal/engine/history"
	"github.com/dshills/textcore/internal/engine/storage"
)

// Checkpoint records the edits since the previous checkpoint as one undo
// entry of the given kind. It reports whether an entry was recorded; with
// no text change there is nothing to record.
func (f *Field) Checkpoint(kind history.Kind) bool {
	cur := f.state()
	entry := history.Entry{Kind: kind, Before: f.saved, After: cur}
	f.saved = cur
	return f.history.Push(entry)
}

// errGroupRejected aborts a grouped edit whose function failed.
var errGroupRejected = errors.New("grouped edit rejected")

// Group runs fn as a single undo entry of the given kind. Edits made before
// the call get their own entry first, and checkpoints taken inside fn fold
// into the group. When fn reports failure, any text it already changed is
// rolled back and nothing is recorded.
func (f *Field) Group(kind history.Kind, fn func() bool) bool {
	f.Checkpoint(history.KindEdit)
	before := f.saved
	err := f.history.Transaction(kind, func() error {
		if !fn() {
			return errGroupRejected
		}
		f.Checkpoint(kind)
		return nil
	})
	if err == nil {
		return true
	}
	if f.store.String() != before.Text {
		f.Restore(before)
	}
	f.saved = before
	return false
}

// Undo checkpoints pending edits and reverts the most recent entry.
func (f *Field) Undo() bool {
	if f.readOnly {
		return false
	}
	f.Checkpoint(history.KindEdit)
	if !f.history.Undo(f) {
		return false
	}
	f.saved = f.state()
	return true
}

// Redo re-applies the most recently undone entry. Edits made since the
// undo are checkpointed first, which discards the redo branch.
func (f *Field) Redo() bool {
	if f.readOnly {
		return false
	}
	f.Checkpoint(history.KindEdit)
	if !f.history.Redo(f) {
		return false
	}
	f.saved = f.state()
	return true
}

// Restore replaces the text and selection with a snapshot. It implements
// history.Target.
func (f *Field) Restore(s history.State) {
	storage.SetText(f.store, s.Text)
	f.sel = s.Selection
	f.sel.Clamp(f.store.Len())
	f.commit(true)
}
