package edit

// Sink receives push-style notifications from an editing state. Calls are
// synchronous and happen exactly once per qualifying event.
type Sink interface {
	// TextChanged is called with the full text after every successful
	// mutation.
	TextChanged(text string)

	// Submitted is called with the full text when the user submits.
	Submitted(text string)
}

// SinkFuncs adapts plain functions to a Sink. Nil functions are skipped.
type SinkFuncs struct {
	OnChange func(text string)
	OnSubmit func(text string)
}

// TextChanged calls OnChange.
func (s SinkFuncs) TextChanged(text string) {
	if s.OnChange != nil {
		s.OnChange(text)
	}
}

// Submitted calls OnSubmit.
func (s SinkFuncs) Submitted(text string) {
	if s.OnSubmit != nil {
		s.OnSubmit(text)
	}
}
