package strands

import (
	"fmt"
	"strings"

	"github.com/npillmayer/strands/chunk"
)

// Flat is a strand stored in one contiguous buffer.
//
// Flat serves as the baseline representation: appending may have to copy all
// of the text held so far, but String is cheap. Its chunk cursor yields the
// complete text as a single chunk.
//
// Flat implements Strand.
type Flat struct {
	buf     []byte
	appends int
}

// NewFlat creates a contiguous strand representing source.
func NewFlat(source string) *Flat {
	f := &Flat{}
	f.Initialize(source)
	return f
}

// Initialize resets f so that it represents the value of source.
func (f *Flat) Initialize(source string) {
	f.buf = []byte(source)
	f.appends = 0
}

// Append appends text to the buffer.
func (f *Flat) Append(text string) {
	f.buf = append(f.buf, text...)
	f.appends++
}

// AppendStrand appends the text of other and counts as one append call.
func (f *Flat) AppendStrand(other Strand) error {
	if other == nil {
		return ErrIllegalArguments
	}
	if isNilStrand(other) {
		return fmt.Errorf("%w: cannot append nil %s", ErrUnsupportedShape, other.Info())
	}
	f.buf = append(f.buf, other.String()...)
	f.appends++
	return nil
}

// CutAndSplice returns a new contiguous strand with every non-overlapping
// occurrence of pattern replaced by replacement.
func (f *Flat) CutAndSplice(pattern, replacement string) (Strand, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	return NewFlat(strings.ReplaceAll(string(f.buf), pattern, replacement)), nil
}

// Reverse returns a new contiguous strand with the runes of f in reverse order.
func (f *Flat) Reverse() Strand {
	return NewFlat(chunk.Reverse(string(f.buf)))
}

// Len returns the strand's length in bytes.
func (f *Flat) Len() uint64 {
	return uint64(len(f.buf))
}

// String returns the text of f.
func (f *Flat) String() string {
	return string(f.buf)
}

// Stats returns a string revealing how often f has been appended to.
func (f *Flat) Stats() string {
	return fmt.Sprintf(statsFormat, f.appends)
}

// Info returns a string identifying the strand implementation.
func (f *Flat) Info() string {
	return fmt.Sprintf("%T", f)
}

// Chunks returns a cursor yielding the text of f as one chunk.
func (f *Flat) Chunks() *ChunkCursor {
	return newChunkCursor([]chunk.Chunk{chunk.New(string(f.buf))})
}

var _ Strand = (*Flat)(nil)
