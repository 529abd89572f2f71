package storage

// Bytes is a contiguous, growable byte buffer.
type Bytes struct {
	data []byte
}

// NewBytes creates an empty buffer.
func NewBytes() *Bytes {
	return &Bytes{}
}

// NewBytesFromString creates a buffer holding s.
func NewBytesFromString(s string) *Bytes {
	return &Bytes{data: []byte(s)}
}

// Len returns the size in bytes.
func (b *Bytes) Len() int {
	return len(b.data)
}

// Slice returns the text in [start, end).
func (b *Bytes) Slice(start, end int) string {
	start, end = clampRange(len(b.data), start, end)
	return string(b.data[start:end])
}

// String returns the full contents.
func (b *Bytes) String() string {
	return string(b.data)
}

// Insert inserts text at offset.
func (b *Bytes) Insert(offset int, text string) error {
	if err := checkOffset(len(b.data), offset); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	n := len(text)
	b.data = append(b.data, text...) // grow by n
	copy(b.data[offset+n:], b.data[offset:len(b.data)-n])
	copy(b.data[offset:], text)
	return nil
}

// Erase removes [start, end).
func (b *Bytes) Erase(start, end int) error {
	if err := checkRange(len(b.data), start, end); err != nil {
		return err
	}
	b.data = append(b.data[:start], b.data[end:]...)
	return nil
}
