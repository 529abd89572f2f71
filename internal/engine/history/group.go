package history

// BeginGroup starts collecting pushed entries into a single entry of the
// given kind. Nested calls are ignored.
func (h *History) BeginGroup(kind Kind) {
	if h.grouping {
		return
	}
	h.grouping = true
	h.groupKind = kind
	h.groupCount = 0
}

// EndGroup closes the group and records one entry from the first Before
// to the last After snapshot.
func (h *History) EndGroup() {
	if !h.grouping {
		return
	}
	h.grouping = false
	if h.groupCount == 0 {
		return
	}
	h.groupCount = 0

	e := Entry{
		Kind:   h.groupKind,
		Before: h.groupFirst.Before,
		After:  h.groupLast.After,
		Time:   h.groupLast.Time,
	}
	if !e.IsNoop() {
		h.push(e)
	}
}

// CancelGroup drops the collected entries. The edits they describe remain
// applied; restoring them is up to the caller.
func (h *History) CancelGroup() {
	h.grouping = false
	h.groupCount = 0
}

// Transaction runs fn inside a group of the given kind. The group is
// dropped when fn fails. Inside an open group fn simply joins it.
func (h *History) Transaction(kind Kind, fn func() error) error {
	if h.grouping {
		return fn()
	}
	h.BeginGroup(kind)
	if err := fn(); err != nil {
		h.CancelGroup()
		return err
	}
	h.EndGroup()
	return nil
}
