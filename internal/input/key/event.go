package key

import (
	"fmt"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPrintable reports whether the event types a visible character: a
// printable rune with no Ctrl, Alt or Meta.
func (e Event) IsPrintable() bool {
	if !e.IsRune() || e.Modifiers.Has(ModCtrl|ModAlt|ModMeta) {
		return false
	}
	return unicode.IsPrint(e.Rune)
}

// binding normalizes an event for keymap lookup. Rune events are
// lower-cased and Shift is kept explicit.
func (e Event) binding() Event {
	if e.Key == KeyRune {
		if unicode.IsUpper(e.Rune) {
			e.Modifiers = e.Modifiers.With(ModShift)
		}
		e.Rune = unicode.ToLower(e.Rune)
	}
	return e
}

// String returns a binding string that Parse accepts.
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		switch e.Rune {
		case ' ':
			name = "Space"
		case '+':
			name = "Plus"
		default:
			name = string(e.Rune)
		}
	}
	if e.Modifiers == ModNone {
		return name
	}
	return fmt.Sprintf("%s+%s", e.Modifiers, name)
}
