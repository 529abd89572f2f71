package host

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textcore/internal/input/key"
)

// DecodeKey converts a tcell key event into a key.Event. It reports false
// for keys the editor has no use for (function keys, Ctrl+\ and so on).
func DecodeKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := decodeMods(ev.Modifiers())
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods.With(key.ModCtrl)), true
	case k == tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl)), true
	}

	special, ok := specialKeys[k]
	if !ok {
		return key.Event{}, false
	}
	return key.NewSpecialEvent(special, mods), true
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyLF:         key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

func decodeMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
