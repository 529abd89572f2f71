// Package host runs a textcore editing state in a terminal.
//
// It decodes tcell key events into key.Event values, resolves them through
// a key.Keymap and renders the text, selection and blinking caret with the
// layout cache. It is the only layer that talks to the terminal, the
// system clipboard and the logger; the engine packages stay free of I/O.
package host
