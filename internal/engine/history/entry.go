package history

import (
	"time"

	"github.com/dshills/textcore/internal/engine/cursor"
)

// Kind tags the edit that produced an entry.
type Kind uint8

// Entry kinds.
const (
	KindEdit Kind = iota
	KindPaste
	KindCut
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPaste:
		return "Paste"
	case KindCut:
		return "Cut"
	default:
		return "Edit"
	}
}

// State is a whole-buffer snapshot.
type State struct {
	Text      string
	Selection cursor.Selection
}

// Target is anything whose buffer state can be restored from a snapshot.
type Target interface {
	Restore(State)
}

// Entry is one reversible edit.
type Entry struct {
	Kind   Kind
	Before State
	After  State
	Time   time.Time
}

// Apply re-applies the edit by restoring the after snapshot.
func (e Entry) Apply(t Target) {
	t.Restore(e.After)
}

// Revert undoes the edit by restoring the before snapshot.
func (e Entry) Revert(t Target) {
	t.Restore(e.Before)
}

// Description returns a human-readable description.
func (e Entry) Description() string {
	return e.Kind.String()
}

// IsNoop reports whether the entry leaves the text unchanged.
func (e Entry) IsNoop() bool {
	return e.Before.Text == e.After.Text
}

// OperationInfo describes an entry for display in an undo list.
type OperationInfo struct {
	Description string
	Timestamp   time.Time
}
