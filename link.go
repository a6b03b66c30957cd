package strands

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/strands/chunk"
)

// Link is a strand stored as a chain of immutable chunks.
//
// Every append adds one chunk at the tail of the chain, without touching
// the text already held. Strands created by
//
//	New(source)
//
// start with a chain of exactly one chunk (which may be empty). A Link
// created by
//
//	Link{}
//
// is valid as well and behaves like the empty strand, but holds no chunk.
//
// Link implements Strand.
type Link struct {
	chain chain
}

// chain is the chunk list backing a Link. The head is chunks[0], the tail is
// the last element. The backing array of chunks belongs to exactly one chain.
type chain struct {
	chunks  []chunk.Chunk
	length  uint64 // sum of all chunk lengths
	appends int    // number of append calls
}

func (c *chain) push(ch chunk.Chunk) {
	c.chunks = append(c.chunks, ch)
	c.length += uint64(ch.Len())
}

// New creates a strand representing source. No check is done whether source
// is drawn from any particular alphabet.
func New(source string) *Link {
	l := &Link{}
	l.Initialize(source)
	return l
}

// Initialize resets l so that it represents the value of source, as a
// single chunk. The append count is reset to zero.
func (l *Link) Initialize(source string) {
	// a fresh slice keeps cursors on the previous chain valid
	l.chain = chain{chunks: make([]chunk.Chunk, 1, 4)}
	l.chain.chunks[0] = chunk.New(source)
	l.chain.length = uint64(len(source))
}

// Append appends text as a new chunk at the tail of the chain.
// Appending the empty string is legal and counts as an append call.
func (l *Link) Append(text string) {
	l.chain.push(chunk.New(text))
	l.chain.appends++
}

// AppendStrand appends the text of other to l and counts as one append call.
//
// If other is a *Link, its chunks are copied into l's own chain; chunks are
// immutable, so l and other do not share anything that either of them may
// change later. Other strand types are appended as a single chunk.
// AppendStrand(l) is legal and doubles the text of l.
func (l *Link) AppendStrand(other Strand) error {
	if other == nil {
		return ErrIllegalArguments
	}
	if isNilStrand(other) {
		return fmt.Errorf("%w: cannot append nil %s", ErrUnsupportedShape, other.Info())
	}
	switch o := other.(type) {
	case *Link:
		src := o.chain.chunks
		length := o.chain.length
		l.chain.chunks = append(l.chain.chunks, src...)
		l.chain.length += length
	default:
		l.chain.push(chunk.New(other.String()))
	}
	l.chain.appends++
	tracer().Debugf("strand: appended %s, now %d chunks", other.Info(), len(l.chain.chunks))
	return nil
}

// Len returns the strand's length in bytes.
func (l *Link) Len() uint64 {
	return l.chain.length
}

// String returns the complete strand as a Go string. This will allocate a
// buffer for all the bytes of the strand and collect all chunks into it.
func (l *Link) String() string {
	var sb strings.Builder
	sb.Grow(int(l.chain.length))
	for _, c := range l.chain.chunks {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Summary returns aggregate byte/rune/line counts for the strand.
func (l *Link) Summary() chunk.Summary {
	m := chunk.Monoid{}
	sum := m.Zero()
	for _, c := range l.chain.chunks {
		sum = m.Add(sum, c.Summary())
	}
	return sum
}

// CharCount returns the number of UTF-8 runes in the strand.
func (l *Link) CharCount() uint64 {
	return l.Summary().Chars
}

// FragmentCount returns the number of chunks in the chain.
func (l *Link) FragmentCount() int {
	return len(l.chain.chunks)
}

// AppendCount returns the number of append calls l has seen since it has
// been initialized.
func (l *Link) AppendCount() int {
	return l.chain.appends
}

// Stats returns a string revealing how often l has been appended to.
func (l *Link) Stats() string {
	return fmt.Sprintf(statsFormat, l.chain.appends)
}

// Info returns a string identifying the strand implementation.
func (l *Link) Info() string {
	return fmt.Sprintf("%T", l)
}

// Chunks returns a new cursor positioned at the head of the chain.
func (l *Link) Chunks() *ChunkCursor {
	return newChunkCursor(l.chain.chunks)
}

// Check verifies the chain invariants of l. A violation is reported as an
// ErrUnsupportedShape error describing the offending shape.
func (l *Link) Check() error {
	if l == nil {
		return fmt.Errorf("%w: strand has no chain", ErrUnsupportedShape)
	}
	var total uint64
	for _, c := range l.chain.chunks {
		total += uint64(c.Len())
	}
	if total != l.chain.length {
		return fmt.Errorf("%w: length %d does not match chunk total %d",
			ErrUnsupportedShape, l.chain.length, total)
	}
	return nil
}

var _ Strand = (*Link)(nil)
