// Package clipboard provides the get/set text capability the editing states
// use for copy, cut and paste.
//
// The clipboard is the only resource shared between independent fields. The
// engine assumes nothing beyond "last set wins": another program may change
// the system clipboard between any two calls.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates the system clipboard cannot be used (no display,
// missing xclip/xsel/wl-clipboard, and so on).
var ErrUnavailable = errors.New("system clipboard unavailable")

// Clipboard reads and writes plain text.
type Clipboard interface {
	Text() (string, error)
	SetText(text string) error
}

// Memory is an in-process clipboard. It is safe for concurrent use so that
// several fields in one host can share it.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Text returns the last text set.
func (m *Memory) Text() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// SetText replaces the clipboard contents.
func (m *Memory) SetText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// System is the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard, or ErrUnavailable if the
// platform has no usable clipboard.
func NewSystem() (*System, error) {
	if clipboard.Unsupported {
		return nil, ErrUnavailable
	}
	return &System{}, nil
}

// Text reads the system clipboard.
func (System) Text() (string, error) {
	return clipboard.ReadAll()
}

// SetText writes the system clipboard.
func (System) SetText(text string) error {
	return clipboard.WriteAll(text)
}

// Default returns the system clipboard when available and an in-process
// clipboard otherwise.
func Default() Clipboard {
	if sys, err := NewSystem(); err == nil {
		return sys
	}
	return NewMemory()
}
