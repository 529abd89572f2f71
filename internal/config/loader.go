package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a settings file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format for a file path by its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Load resolves the settings: defaults, then the file at path (if given
// and present), then TEXTCORE_ environment variables. The result is
// validated.
func Load(path string) (*Editor, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Editor) loadFile(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, not an error
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return c.Decode(format, path, data)
}

// Decode reads settings from data over the current values. Settings absent
// from data keep their values. source names the data in errors.
func (c *Editor) Decode(format Format, source string, data []byte) error {
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, c); err != nil {
			return tomlParseError(source, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return &ParseError{Source: source, Format: FormatYAML, Err: err}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}

func tomlParseError(source string, err error) error {
	pe := &ParseError{Source: source, Format: FormatTOML, Err: err}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		pe.Line, pe.Column = de.Position()
	}
	return pe
}

// Encode writes the settings in the given format.
func (c *Editor) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(c)
	case FormatYAML:
		return yaml.Marshal(c)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
