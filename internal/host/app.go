package host

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textcore/internal/clipboard"
	"github.com/dshills/textcore/internal/config"
	"github.com/dshills/textcore/internal/engine/edit"
	"github.com/dshills/textcore/internal/engine/history"
	"github.com/dshills/textcore/internal/input/key"
)

// ErrCanceled is returned by Run when the user leaves with Escape.
var ErrCanceled = errors.New("editing canceled")

const (
	// blinkTick is how often the caret blink timer advances.
	blinkTick = 50 * time.Millisecond
	// doubleClick is the longest gap between two presses on the same cell
	// that still selects a word.
	doubleClick = 400 * time.Millisecond
)

// Options configures an App.
type Options struct {
	Config     *config.Editor
	ConfigPath string // watched for changes when set
	Single     bool   // single-line field instead of a text area
	Text       string // initial content
	Clipboard  clipboard.Clipboard
	Logger     *slog.Logger
}

// App drives one editing state on a terminal screen until the user submits
// or cancels.
type App struct {
	screen tcell.Screen
	field  *edit.Field
	area   *edit.Area
	view   *View
	keymap *key.Keymap
	clip   clipboard.Clipboard
	logger *slog.Logger

	configPath string
	reloads    chan *config.Editor

	// bracketed paste in progress
	pasting bool
	paste   strings.Builder

	// mouse state for click and double-click detection
	buttons        tcell.ButtonMask
	clickAt        time.Time
	clickX, clickY int

	submitted bool
	done      bool
	result    string
}

// New creates an App on screen. The screen must not be initialized yet.
func New(screen tcell.Screen, opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	km, err := hostKeymap(cfg)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.Default()
	}

	a := &App{
		screen:     screen,
		keymap:     km,
		clip:       clip,
		logger:     logger,
		configPath: opts.ConfigPath,
		reloads:    make(chan *config.Editor, 1),
	}

	editOpts := append(cfg.Options(), edit.WithText(opts.Text), edit.WithSink(edit.SinkFuncs{
		OnSubmit: a.submit,
	}))
	if opts.Single {
		a.field = edit.NewField(editOpts...)
		a.view = NewFieldView(a.field, cfg.Measurer())
	} else {
		a.area = edit.NewArea(editOpts...)
		a.field = a.area.Field
		a.view = NewAreaView(a.area, cfg.Measurer())
	}
	a.field.Focus()
	return a, nil
}

func (a *App) submit(text string) {
	a.logger.Info("text submitted", "bytes", len(text))
	a.submitted = true
	a.done = true
	a.result = text
}

// Field returns the editing state. For a text area it is the embedded
// field.
func (a *App) Field() *edit.Field {
	return a.field
}

// Run initializes the screen and processes events until the user submits
// (the submitted text is returned) or cancels (ErrCanceled). The screen is
// finalized before Run returns.
func (a *App) Run(ctx context.Context) (string, error) {
	if err := a.screen.Init(); err != nil {
		return "", err
	}
	defer a.screen.Fini()
	a.screen.EnablePaste()
	a.screen.EnableMouse(tcell.MouseButtonEvents)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.configPath != "" {
		go func() {
			err := config.Watch(ctx, a.configPath, a.logger, func(c *config.Editor) {
				select {
				case a.reloads <- c:
				default:
				}
			})
			if err != nil {
				a.logger.Warn("config watch stopped", "err", err)
			}
		}()
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(blinkTick)
	defer ticker.Stop()
	last := time.Now()

	a.view.Draw(a.screen)
	for !a.done {
		select {
		case <-ctx.Done():
			return "", ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return "", ErrCanceled
			}
			if a.HandleEvent(ev) {
				a.view.Draw(a.screen)
			}

		case now := <-ticker.C:
			visible := a.field.CursorVisible()
			if a.field.UpdateBlink(now.Sub(last)) != visible {
				a.view.Draw(a.screen)
			}
			last = now

		case c := <-a.reloads:
			a.applyConfig(c)
			a.view.Draw(a.screen)
		}
	}

	if !a.submitted {
		return "", ErrCanceled
	}
	return a.result, nil
}

// HandleEvent processes one terminal event and reports whether the screen
// needs redrawing.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		return a.handleMouse(ev)
	case *tcell.EventPaste:
		if ev.Start() {
			a.pasting = true
			a.paste.Reset()
			return false
		}
		a.pasting = false
		return a.insertPaste(a.paste.String())
	case *tcell.EventResize:
		a.screen.Sync()
		return true
	case *tcell.EventFocus:
		if ev.Focused {
			a.field.Focus()
		} else {
			a.field.Blur()
		}
		return true
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if a.pasting {
		switch ev.Key() {
		case tcell.KeyRune:
			a.paste.WriteRune(ev.Rune())
		case tcell.KeyEnter, tcell.KeyLF:
			a.paste.WriteByte('\n')
		case tcell.KeyTab:
			a.paste.WriteByte('\t')
		}
		return false
	}

	kev, ok := DecodeKey(ev)
	if !ok {
		return false
	}
	if kev.Key == key.KeyEscape {
		a.logger.Debug("editing canceled")
		a.done = true
		return false
	}
	in, ok := a.keymap.Resolve(kev)
	if !ok {
		a.logger.Debug("unbound key", "key", kev.String())
		return false
	}
	if a.area != nil {
		return a.area.Handle(in, a.clip)
	}
	return a.field.Handle(in, a.clip)
}

// handleMouse moves the cursor on a primary button press and selects the
// word under the pointer on a double click. Shift+click extends the
// selection.
func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasPressed := a.buttons&tcell.Button1 != 0
	a.buttons = ev.Buttons()
	if !pressed || wasPressed {
		return false
	}

	x, y := ev.Position()
	off, ok := a.view.OffsetAt(x, y)
	if !ok {
		return false
	}
	now := ev.When()
	double := x == a.clickX && y == a.clickY && !a.clickAt.IsZero() && now.Sub(a.clickAt) <= doubleClick
	a.clickX, a.clickY, a.clickAt = x, y, now

	if double {
		a.clickAt = time.Time{}
		start, end := a.field.SelectWordAt(off)
		a.logger.Debug("word selected", "start", start, "end", end)
		return true
	}
	a.field.SetCursor(off, ev.Modifiers()&tcell.ModShift != 0)
	a.field.ResetBlink()
	return true
}

// insertPaste inserts bracketed paste text as one undo entry.
func (a *App) insertPaste(text string) bool {
	if text == "" {
		return false
	}
	ok := a.field.Group(history.KindPaste, func() bool {
		return a.field.InsertText(text)
	})
	if !ok {
		a.logger.Debug("paste rejected", "bytes", len(text))
		_ = a.screen.Beep()
	}
	return ok
}

// submitKey submits a text area. Most terminals cannot report Ctrl+Enter.
const submitKey = "Ctrl+D"

// hostKeymap is the configured keymap plus the terminal submit key, unless
// the settings bind that key themselves.
func hostKeymap(c *config.Editor) (*key.Keymap, error) {
	km, err := c.Keymap()
	if err != nil {
		return nil, err
	}
	if _, ok := c.Keys[submitKey]; !ok {
		if err := km.Bind(submitKey, key.ActionSubmit); err != nil {
			return nil, err
		}
	}
	return km, nil
}

// applyConfig applies reloaded settings that can change on a live editor.
func (a *App) applyConfig(c *config.Editor) {
	km, err := hostKeymap(c)
	if err != nil {
		a.logger.Warn("keymap reload failed", "err", err)
	} else {
		a.keymap = km
	}
	a.field.SetReadOnly(c.ReadOnly)
	a.view.SetMeasurer(c.Measurer())
	a.view.SetWrapWidth(c.WrapWidth)
	a.logger.Info("settings applied", "read_only", c.ReadOnly, "wrap_width", c.WrapWidth)
}
