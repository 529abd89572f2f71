package edit

import (
	"github.com/dshills/textcore/internal/clipboard"
	"github.com/dshills/textcore/internal/engine/history"
)

// Copy puts the selected text on the clipboard.
func (f *Field) Copy(clip clipboard.Clipboard) bool {
	if clip == nil || !f.sel.HasSelection() {
		return false
	}
	return clip.SetText(f.SelectedText()) == nil
}

// Cut copies the selection to the clipboard and deletes it as one undo
// entry.
func (f *Field) Cut(clip clipboard.Clipboard) bool {
	if f.readOnly || !f.Copy(clip) {
		return false
	}
	return f.Group(history.KindCut, f.DeleteSelection)
}

// Paste inserts the clipboard text at the cursor as one undo entry. A
// single-line field drops line breaks; the whole paste is rejected if it
// would exceed the max length or max lines.
func (f *Field) Paste(clip clipboard.Clipboard) bool {
	if f.readOnly || clip == nil {
		return false
	}
	text, err := clip.Text()
	if err != nil {
		return false
	}
	return f.Group(history.KindPaste, func() bool {
		return f.InsertText(text)
	})
}
