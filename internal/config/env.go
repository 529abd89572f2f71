package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "TEXTCORE_"

// LookupFunc looks up an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(name string) (string, bool)

// envSetting binds one environment variable to a setting.
type envSetting struct {
	name string // without prefix
	set  func(c *Editor, v string) error
}

var envSettings = []envSetting{
	{"MAX_LENGTH", func(c *Editor, v string) error { return parseInt(v, &c.MaxLength) }},
	{"MAX_LINES", func(c *Editor, v string) error { return parseInt(v, &c.MaxLines) }},
	{"BLINK_RATE", func(c *Editor, v string) error { return c.BlinkRate.UnmarshalText([]byte(v)) }},
	{"WRAP_WIDTH", func(c *Editor, v string) error { return parseFloat(v, &c.WrapWidth) }},
	{"LINE_HEIGHT", func(c *Editor, v string) error { return parseFloat(v, &c.LineHeight) }},
	{"CELL_WIDTH", func(c *Editor, v string) error { return parseFloat(v, &c.CellWidth) }},
	{"TAB_WIDTH", func(c *Editor, v string) error { return parseInt(v, &c.TabWidth) }},
	{"HISTORY_LIMIT", func(c *Editor, v string) error { return parseInt(v, &c.HistoryLimit) }},
	{"READ_ONLY", func(c *Editor, v string) error { return parseBool(v, &c.ReadOnly) }},
	{"BACKEND", func(c *Editor, v string) error {
		c.Backend = strings.ToLower(v)
		return nil
	}},
	{"MEASURE", func(c *Editor, v string) error {
		c.Measure = strings.ToLower(v)
		return nil
	}},
}

// ApplyEnv overrides settings from TEXTCORE_ environment variables.
// Note: Empty values are ignored.
func (c *Editor) ApplyEnv(lookup LookupFunc) error {
	for _, s := range envSettings {
		v, ok := lookup(EnvPrefix + s.name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if err := s.set(c, strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("environment %s%s: %w", EnvPrefix, s.name, err)
		}
	}
	return nil
}

func parseInt(s string, dst *int) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func parseFloat(s string, dst *float64) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// parseBool accepts the spellings the settings files allow plus yes/no and
// on/off.
func parseBool(s string, dst *bool) error {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		*dst = true
	case "false", "no", "off", "0":
		*dst = false
	default:
		return fmt.Errorf("invalid boolean %q", s)
	}
	return nil
}
