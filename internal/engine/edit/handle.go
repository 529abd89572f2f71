package edit

import (
	"github.com/dshills/textcore/internal/clipboard"
	"github.com/dshills/textcore/internal/input/key"
)

// Handle applies one decoded input to the field and reports whether it had
// an effect. clip may be nil when no clipboard is available.
func (f *Field) Handle(in key.Input, clip clipboard.Clipboard) bool {
	switch in.Action {
	case key.ActionInsert:
		return f.InsertChar(in.Rune)
	case key.ActionLeft:
		return f.MoveLeft(in.Extend)
	case key.ActionRight:
		return f.MoveRight(in.Extend)
	case key.ActionWordLeft:
		return f.MoveWordLeft(in.Extend)
	case key.ActionWordRight:
		return f.MoveWordRight(in.Extend)
	case key.ActionHome:
		return f.MoveHome(in.Extend)
	case key.ActionEnd:
		return f.MoveEnd(in.Extend)
	case key.ActionBackspace:
		return f.DeleteBeforeCursor()
	case key.ActionDelete:
		return f.DeleteAtCursor()
	case key.ActionNewline, key.ActionSubmit:
		return f.Submit()
	case key.ActionSelectAll:
		return f.SelectAll()
	case key.ActionCopy:
		return f.Copy(clip)
	case key.ActionCut:
		return f.Cut(clip)
	case key.ActionPaste:
		return f.Paste(clip)
	case key.ActionUndo:
		return f.Undo()
	case key.ActionRedo:
		return f.Redo()
	}
	return false
}

// Handle applies one decoded input to the area. Vertical movement, line
// start/end and Enter get their multi-line meaning; everything else behaves
// as in a Field.
func (a *Area) Handle(in key.Input, clip clipboard.Clipboard) bool {
	switch in.Action {
	case key.ActionUp:
		return a.MoveUp(in.Extend)
	case key.ActionDown:
		return a.MoveDown(in.Extend)
	case key.ActionHome:
		return a.MoveToLineStart(in.Extend)
	case key.ActionEnd:
		return a.MoveToLineEnd(in.Extend)
	case key.ActionNewline:
		return a.InsertNewline()
	case key.ActionInsert:
		if in.Rune == '\n' {
			return a.InsertNewline()
		}
	}
	return a.Field.Handle(in, clip)
}
