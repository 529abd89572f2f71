// Package storage defines the mutable byte-sequence contract that every
// text backend of the editing engine satisfies, along with two concrete
// backends.
//
// The contract is deliberately small:
//
//	Len()                 total size in bytes
//	Slice(start, end)     text in [start, end)
//	String()              full contents
//	Insert(offset, text)  insert at a byte offset
//	Erase(start, end)     remove [start, end)
//
// Storage never inspects the bytes it holds. Keeping offsets on UTF-8
// character boundaries is the caller's job (see package utf8nav); a backend
// only rejects offsets that fall outside the buffer.
//
// Backends:
//
//   - Bytes: a single contiguous growable slice. Best for short fields.
//   - Gap: a gap buffer. Edits clustered around the cursor are amortized
//     O(1), which suits multi-line areas where typing happens in one spot.
//
// Backends are interchangeable: the editing states, line index and layout
// cache only ever talk to the Storage interface.
//
// Thread Safety:
//
// Backends are not safe for concurrent use. Each editing state owns its own
// storage instance.
package storage
