package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a setting holds an unusable value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnsupportedFormat indicates a settings file with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// ParseError is a settings file the decoder rejected. Line and Column are
// 1-based; zero means the decoder did not report a position.
type ParseError struct {
	Source       string
	Format       Format
	Line, Column int
	Err          error
}

func (e *ParseError) Error() string {
	where := e.Source
	if e.Line > 0 {
		where += ":" + strconv.Itoa(e.Line)
		if e.Column > 0 {
			where += ":" + strconv.Itoa(e.Column)
		}
	}
	return fmt.Sprintf("%s: bad %s: %v", where, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// invalid wraps ErrValidationFailed with a setting name.
func invalid(setting, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrValidationFailed, setting, fmt.Sprintf(format, args...))
}
