package storage

import "errors"

// Errors returned by storage operations.
var (
	// ErrOffsetOutOfRange indicates an offset outside [0, Len()].
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid indicates a range with end < start or end > Len().
	ErrRangeInvalid = errors.New("invalid range")
)

// Storage is a mutable sequence of bytes holding UTF-8 text.
type Storage interface {
	// Len returns the size of the contents in bytes.
	Len() int

	// Slice returns the text in [start, end). Out-of-range bounds are
	// clamped to the buffer.
	Slice(start, end int) string

	// String returns the full contents.
	String() string

	// Insert inserts text at offset.
	Insert(offset int, text string) error

	// Erase removes the bytes in [start, end).
	Erase(start, end int) error
}

// Kind names a storage backend.
type Kind string

// Known backends.
const (
	KindBytes Kind = "bytes"
	KindGap   Kind = "gap"
)

// New returns an empty backend of the given kind.
// Unknown kinds fall back to Bytes.
func New(kind Kind, initial string) Storage {
	switch kind {
	case KindGap:
		return NewGapFromString(initial)
	default:
		return NewBytesFromString(initial)
	}
}

// Replace erases [start, end) and inserts text at start.
// Either both steps succeed or the storage is left unchanged.
func Replace(s Storage, start, end int, text string) error {
	if err := checkRange(s.Len(), start, end); err != nil {
		return err
	}
	if err := s.Erase(start, end); err != nil {
		return err
	}
	return s.Insert(start, text)
}

// SetText replaces the full contents of s.
func SetText(s Storage, text string) {
	// Whole-buffer bounds are always valid.
	_ = Replace(s, 0, s.Len(), text)
}

func checkOffset(size, offset int) error {
	if offset < 0 || offset > size {
		return ErrOffsetOutOfRange
	}
	return nil
}

func checkRange(size, start, end int) error {
	if start < 0 || end > size || end < start {
		return ErrRangeInvalid
	}
	return nil
}

func clampRange(size, start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > size {
		end = size
	}
	if start > end {
		start = end
	}
	return start, end
}
