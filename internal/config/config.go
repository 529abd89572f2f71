package config

import (
	"errors"
	"time"

	"github.com/dshills/textcore/internal/engine/edit"
	"github.com/dshills/textcore/internal/engine/layout"
	"github.com/dshills/textcore/internal/engine/storage"
	"github.com/dshills/textcore/internal/input/key"
)

// Editor holds the settings a host applies to its editing state.
type Editor struct {
	// MaxLength caps the text size in bytes. 0 means unlimited.
	MaxLength int `toml:"max_length" yaml:"max_length"`
	// MaxLines caps the line count of a text area. 0 means unlimited.
	MaxLines int `toml:"max_lines" yaml:"max_lines"`

	BlinkRate    Duration `toml:"blink_rate" yaml:"blink_rate"`
	WrapWidth    float64  `toml:"wrap_width" yaml:"wrap_width"`
	LineHeight   float64  `toml:"line_height" yaml:"line_height"`
	CellWidth    float64  `toml:"cell_width" yaml:"cell_width"`
	TabWidth     int      `toml:"tab_width" yaml:"tab_width"`
	HistoryLimit int      `toml:"history_limit" yaml:"history_limit"`
	ReadOnly     bool     `toml:"read_only" yaml:"read_only"`

	// Backend selects the text storage: "bytes" or "gap".
	Backend string `toml:"backend" yaml:"backend"`

	// Measure selects how text width is counted: "cells" per rune, or
	// "graphemes" so combining marks and emoji sequences count once.
	Measure string `toml:"measure" yaml:"measure"`

	// Keys maps key specifications ("Ctrl+S") to action names ("submit").
	// The action "none" removes a default binding.
	Keys map[string]string `toml:"keys" yaml:"keys"`
}

// Width measurement modes.
const (
	MeasureCells     = "cells"
	MeasureGraphemes = "graphemes"
)

// Default returns the built-in settings.
func Default() *Editor {
	return &Editor{
		BlinkRate:    Duration(edit.DefaultBlinkRate),
		LineHeight:   edit.DefaultLineHeight,
		CellWidth:    1,
		TabWidth:     layout.DefaultTabWidth,
		HistoryLimit: edit.DefaultHistoryLimit,
		Backend:      string(storage.KindBytes),
		Measure:      MeasureCells,
	}
}

// Validate checks every setting and returns all problems joined.
func (c *Editor) Validate() error {
	var errs []error
	if c.MaxLength < 0 {
		errs = append(errs, invalid("max_length", "must not be negative, got %d", c.MaxLength))
	}
	if c.MaxLines < 0 {
		errs = append(errs, invalid("max_lines", "must not be negative, got %d", c.MaxLines))
	}
	if c.BlinkRate <= 0 {
		errs = append(errs, invalid("blink_rate", "must be positive, got %s", c.BlinkRate))
	}
	if c.WrapWidth < 0 {
		errs = append(errs, invalid("wrap_width", "must not be negative, got %g", c.WrapWidth))
	}
	if c.LineHeight <= 0 {
		errs = append(errs, invalid("line_height", "must be positive, got %g", c.LineHeight))
	}
	if c.CellWidth <= 0 {
		errs = append(errs, invalid("cell_width", "must be positive, got %g", c.CellWidth))
	}
	if c.TabWidth <= 0 {
		errs = append(errs, invalid("tab_width", "must be positive, got %d", c.TabWidth))
	}
	if c.HistoryLimit <= 0 {
		errs = append(errs, invalid("history_limit", "must be positive, got %d", c.HistoryLimit))
	}
	switch storage.Kind(c.Backend) {
	case storage.KindBytes, storage.KindGap:
	default:
		errs = append(errs, invalid("backend", "unknown backend %q", c.Backend))
	}
	switch c.Measure {
	case MeasureCells, MeasureGraphemes:
	default:
		errs = append(errs, invalid("measure", "unknown mode %q", c.Measure))
	}
	for spec, name := range c.Keys {
		if _, err := key.Parse(spec); err != nil {
			errs = append(errs, invalid("keys", "%v", err))
		}
		if _, ok := key.ActionFromName(name); !ok {
			errs = append(errs, invalid("keys", "unknown action %q for %s", name, spec))
		}
	}
	return errors.Join(errs...)
}

// Options converts the settings into editing state options.
func (c *Editor) Options() []edit.Option {
	opts := []edit.Option{
		edit.WithMaxLength(c.MaxLength),
		edit.WithMaxLines(c.MaxLines),
		edit.WithBlinkRate(time.Duration(c.BlinkRate)),
		edit.WithHistoryLimit(c.HistoryLimit),
		edit.WithLineHeight(c.LineHeight),
		edit.WithWrapWidth(c.WrapWidth),
		edit.WithStorage(storage.Kind(c.Backend)),
	}
	if c.ReadOnly {
		opts = append(opts, edit.WithReadOnly())
	}
	return opts
}

// Measurer returns the width measurer selected by Measure.
func (c *Editor) Measurer() layout.Measurer {
	if c.Measure == MeasureGraphemes {
		return layout.GraphemeMeasurer(c.CellWidth, c.TabWidth)
	}
	return layout.CellMeasurer(c.CellWidth, c.TabWidth)
}

// Keymap returns the default keymap with the configured overrides applied.
func (c *Editor) Keymap() (*key.Keymap, error) {
	km := key.DefaultKeymap()
	for spec, name := range c.Keys {
		a, ok := key.ActionFromName(name)
		if !ok {
			return nil, invalid("keys", "unknown action %q for %s", name, spec)
		}
		var err error
		if a == key.ActionNone {
			err = km.Unbind(spec)
		} else {
			err = km.Bind(spec, a)
		}
		if err != nil {
			return nil, invalid("keys", "%v", err)
		}
	}
	return km, nil
}

// Duration is a time.Duration written as a string ("530ms") in settings
// files.
type Duration time.Duration

// String returns the duration in time.Duration notation.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
