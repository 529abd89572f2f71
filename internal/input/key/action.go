package key

import (
	"fmt"
	"strings"
)

// Action is a named editing action.
type Action uint8

// Editing actions.
const (
	ActionNone Action = iota
	ActionInsert
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionHome
	ActionEnd
	ActionWordLeft
	ActionWordRight
	ActionBackspace
	ActionDelete
	ActionNewline
	ActionSubmit
	ActionSelectAll
	ActionCopy
	ActionCut
	ActionPaste
	ActionUndo
	ActionRedo
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionInsert:    "insert",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionUp:        "up",
	ActionDown:      "down",
	ActionHome:      "home",
	ActionEnd:       "end",
	ActionWordLeft:  "word-left",
	ActionWordRight: "word-right",
	ActionBackspace: "backspace",
	ActionDelete:    "delete",
	ActionNewline:   "newline",
	ActionSubmit:    "submit",
	ActionSelectAll: "select-all",
	ActionCopy:      "copy",
	ActionCut:       "cut",
	ActionPaste:     "paste",
	ActionUndo:      "undo",
	ActionRedo:      "redo",
}

// String returns the action name used in configuration files.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", a)
}

// ActionFromName returns the action with the given name.
func ActionFromName(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return ActionNone, false
}

// Input is one decoded input event delivered to an editing state.
type Input struct {
	Action Action
	Rune   rune // for ActionInsert
	Extend bool // extend the selection instead of moving the caret
}

// Keymap binds key events to actions.
type Keymap struct {
	bindings map[Event]Action
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[Event]Action)}
}

// DefaultKeymap returns the standard text-field bindings.
func DefaultKeymap() *Keymap {
	km := NewKeymap()
	for spec, a := range map[string]Action{
		"Left":         ActionLeft,
		"Right":        ActionRight,
		"Up":           ActionUp,
		"Down":         ActionDown,
		"Home":         ActionHome,
		"End":          ActionEnd,
		"Ctrl+Left":    ActionWordLeft,
		"Ctrl+Right":   ActionWordRight,
		"Alt+Left":     ActionWordLeft,
		"Alt+Right":    ActionWordRight,
		"Backspace":    ActionBackspace,
		"Delete":       ActionDelete,
		"Enter":        ActionNewline,
		"Ctrl+Enter":   ActionSubmit,
		"Tab":          ActionInsert,
		"Ctrl+A":       ActionSelectAll,
		"Ctrl+C":       ActionCopy,
		"Ctrl+X":       ActionCut,
		"Ctrl+V":       ActionPaste,
		"Ctrl+Z":       ActionUndo,
		"Ctrl+Y":       ActionRedo,
		"Ctrl+Shift+Z": ActionRedo,
	} {
		km.bindings[MustParse(spec)] = a
	}
	return km
}

// Bind binds a key specification to an action, replacing any previous
// binding for the same keys.
func (km *Keymap) Bind(spec string, a Action) error {
	ev, err := Parse(spec)
	if err != nil {
		return err
	}
	km.bindings[ev] = a
	return nil
}

// Unbind removes the binding for a key specification.
func (km *Keymap) Unbind(spec string) error {
	ev, err := Parse(spec)
	if err != nil {
		return err
	}
	delete(km.bindings, ev)
	return nil
}

// Len returns the number of bindings.
func (km *Keymap) Len() int {
	return len(km.bindings)
}

// Resolve decodes ev into an Input. Exact bindings win; otherwise Shift
// is stripped and, if the remaining keys are bound, the action is resolved
// with Extend set. Unbound printable runes resolve to ActionInsert.
func (km *Keymap) Resolve(ev Event) (Input, bool) {
	b := ev.binding()
	if a, ok := km.bindings[b]; ok {
		return km.input(a, ev, false), true
	}
	if b.Modifiers.Has(ModShift) {
		if a, ok := km.bindings[Event{Key: b.Key, Rune: b.Rune, Modifiers: b.Modifiers.Without(ModShift)}]; ok && b.Key != KeyRune {
			return km.input(a, ev, true), true
		}
	}
	if ev.IsPrintable() {
		return Input{Action: ActionInsert, Rune: ev.Rune}, true
	}
	return Input{}, false
}

func (km *Keymap) input(a Action, ev Event, extend bool) Input {
	in := Input{Action: a, Extend: extend}
	if a == ActionInsert {
		switch {
		case ev.Key == KeyTab:
			in.Rune = '\t'
		case ev.Key == KeyEnter:
			in.Rune = '\n'
		default:
			in.Rune = ev.Rune
		}
	}
	return in
}
