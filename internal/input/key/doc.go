// Package key turns raw key presses into the named editing actions the
// engine consumes.
//
// This package defines:
//
//   - Key: identifies a keyboard key (special keys or runes)
//   - Modifier: modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press with modifiers
//   - Action: a named editing action (Left, Backspace, Undo, ...)
//   - Input: an Action resolved from an Event, ready for an editing state
//   - Keymap: bindings from key specifications to actions
//
// # Key Specifications
//
// Bindings are written as "a", "Enter", "Ctrl+Z", "Ctrl+Shift+Z" or
// "Alt+Left". Names are case-insensitive.
//
// Printable runes without Ctrl/Alt/Meta resolve to ActionInsert; Shift on a
// navigation key resolves to the same action with Extend set, so one
// binding covers both plain and selecting movement.
package key
