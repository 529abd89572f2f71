package key

import "strings"

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is a character key; the character is in Event.Rune.
	KeyRune

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
}

var keyAliases = map[string]Key{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"tab":       KeyTab,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
}

// String returns the name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// KeyFromName returns the key for a name such as "enter" or "PgUp",
// or KeyNone if the name is unknown.
func KeyFromName(name string) Key {
	return keyAliases[strings.ToLower(strings.TrimSpace(name))]
}
