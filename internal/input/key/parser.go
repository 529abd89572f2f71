package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification such as "Ctrl+Z", "Shift+Left" or "a".
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	parts := strings.Split(spec, "+")
	keyPart := strings.TrimSpace(parts[len(parts)-1])

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	switch strings.ToLower(keyPart) {
	case "":
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "plus":
		return NewRuneEvent('+', mods), nil
	}
	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	if r, size := utf8.DecodeRuneInString(keyPart); size == len(keyPart) && r != utf8.RuneError {
		// Letters in specs are case-insensitive; Shift must be explicit.
		return NewRuneEvent(unicode.ToLower(r), mods), nil
	}
	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// MustParse is like Parse but panics on error. It is meant for static
// binding tables.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return ev
}
