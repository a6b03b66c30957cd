package chunk

import (
	"unicode/utf8"
)

// Chunk is one fragment of a strand's text.
//
// A chunk is immutable once created: it holds a Go string and nothing else,
// so copying a Chunk value never shares mutable state. Chains link chunks by
// their position in a chunk slice.
type Chunk struct {
	text string
}

// New creates a chunk holding text. The text is not checked against any
// alphabet and may be empty.
func New(text string) Chunk {
	return Chunk{text: text}
}

// Len returns the text length in bytes.
func (c Chunk) Len() int {
	return len(c.text)
}

// IsEmpty reports whether the chunk has no bytes.
func (c Chunk) IsEmpty() bool {
	return len(c.text) == 0
}

// String returns the chunk text.
func (c Chunk) String() string {
	return c.text
}

// Slice returns a chunk for the byte range [start,end) of c. The new chunk
// shares the (immutable) bytes of c.
func (c Chunk) Slice(start, end int) (Chunk, error) {
	if start < 0 || end < start || end > len(c.text) {
		return Chunk{}, ErrIndexOutOfBounds
	}
	return Chunk{text: c.text[start:end]}, nil
}

// Reverse returns a new chunk with the runes of c in reverse order.
func (c Chunk) Reverse() Chunk {
	return Chunk{text: Reverse(c.text)}
}

// Reverse returns s with its runes in reverse order. Every rune keeps its
// own byte order; bytes which are not valid UTF-8 are moved as single units.
//
// The result is written into one buffer of len(s) bytes.
func Reverse(s string) string {
	n := len(s)
	if n < 2 {
		return s
	}
	buf := make([]byte, n)
	for i := 0; i < n; {
		_, w := utf8.DecodeRuneInString(s[i:])
		copy(buf[n-i-w:], s[i:i+w])
		i += w
	}
	return string(buf)
}

// RuneCut returns the length of the longest prefix of s which does not end
// within an incomplete UTF-8 sequence. Bytes which cannot start a valid
// sequence count as complete.
func RuneCut(s string) int {
	for i := len(s) - 1; i >= 0 && i >= len(s)-utf8.UTFMax; i-- {
		if utf8.RuneStart(s[i]) {
			if utf8.FullRuneInString(s[i:]) {
				return len(s)
			}
			return i
		}
	}
	return len(s)
}
