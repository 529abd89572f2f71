package edit

import (
	"time"

	"github.com/dshills/textcore/internal/engine/history"
	"github.com/dshills/textcore/internal/engine/storage"
)

// Default configuration values.
const (
	DefaultBlinkRate    = 530 * time.Millisecond
	DefaultLineHeight   = 1.0
	DefaultHistoryLimit = history.DefaultMaxEntries
)

type options struct {
	text         string
	maxLength    int
	maxLines     int
	blinkRate    time.Duration
	readOnly     bool
	storageKind  storage.Kind
	sink         Sink
	historyLimit int
	lineHeight   float64
	wrapWidth    float64
}

func defaultOptions() options {
	return options{
		blinkRate:    DefaultBlinkRate,
		storageKind:  storage.KindBytes,
		historyLimit: DefaultHistoryLimit,
		lineHeight:   DefaultLineHeight,
	}
}

// Option configures an editing state during creation.
type Option func(*options)

// WithText sets the initial content. The cursor starts at its end.
func WithText(text string) Option {
	return func(o *options) {
		o.text = text
	}
}

// WithMaxLength limits the content to max bytes. 0 means unlimited.
func WithMaxLength(max int) Option {
	return func(o *options) {
		if max >= 0 {
			o.maxLength = max
		}
	}
}

// WithMaxLines limits an Area to max lines. 0 means unlimited.
// Fields are always one line.
func WithMaxLines(max int) Option {
	return func(o *options) {
		if max >= 0 {
			o.maxLines = max
		}
	}
}

// WithBlinkRate sets the duration of each half of the caret blink cycle.
func WithBlinkRate(rate time.Duration) Option {
	return func(o *options) {
		if rate > 0 {
			o.blinkRate = rate
		}
	}
}

// WithReadOnly rejects every mutation. Navigation, selection and copy
// still work.
func WithReadOnly() Option {
	return func(o *options) {
		o.readOnly = true
	}
}

// WithStorage selects the storage backend.
func WithStorage(kind storage.Kind) Option {
	return func(o *options) {
		o.storageKind = kind
	}
}

// WithSink attaches a change/submit notification sink.
func WithSink(s Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithHistoryLimit sets the maximum number of undo entries.
func WithHistoryLimit(max int) Option {
	return func(o *options) {
		if max > 0 {
			o.historyLimit = max
		}
	}
}

// WithLineHeight sets the uniform line height used for layout and
// scrolling.
func WithLineHeight(h float64) Option {
	return func(o *options) {
		if h > 0 {
			o.lineHeight = h
		}
	}
}

// WithWrapWidth sets the layout wrap width. 0 disables wrapping.
func WithWrapWidth(w float64) Option {
	return func(o *options) {
		if w >= 0 {
			o.wrapWidth = w
		}
	}
}
