package strands

import (
	"github.com/npillmayer/strands/chunk"
)

// Builder incrementally stages text and finalizes it into a Link.
//
// Builder collects pieces of text at both ends and materializes the strand
// only when Link() is called. Empty pieces are dropped. The first piece
// becomes the strand's initial chunk, every further piece counts as one
// append call of the resulting strand.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended chunks in reverse logical order.
	front []chunk.Chunk
	// back keeps appended chunks in logical order.
	back []chunk.Chunk

	done bool
	link *Link
}

// NewBuilder creates a new and empty strand builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Link returns the strand built from all staged pieces. A builder without
// pieces produces a strand of one empty chunk.
//
// It is illegal to continue adding pieces after Link has been called, but
// Link may be called multiple times. Every call returns a strand of its own.
func (b *Builder) Link() *Link {
	if b == nil {
		return New("")
	}
	if b.link == nil {
		b.link = b.buildLink()
		if b.link.Len() == 0 {
			tracer().Debugf("strand builder: strand is void")
		}
	}
	b.done = true
	return b.link.clone()
}

// Len returns the number of bytes staged so far.
func (b *Builder) Len() uint64 {
	var n uint64
	for _, c := range b.front {
		n += uint64(c.Len())
	}
	for _, c := range b.back {
		n += uint64(c.Len())
	}
	return n
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.link = nil
}

// AppendString appends a piece of text to the staged build.
func (b *Builder) AppendString(text string) error {
	return b.AppendChunk(chunk.New(text))
}

// PrependString prepends a piece of text to the staged build.
func (b *Builder) PrependString(text string) error {
	return b.PrependChunk(chunk.New(text))
}

// AppendChunk appends a pre-built chunk.
func (b *Builder) AppendChunk(c chunk.Chunk) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrStrandCompleted
	}
	if c.IsEmpty() {
		return nil
	}
	b.back = append(b.back, c)
	return nil
}

// PrependChunk prepends a pre-built chunk.
func (b *Builder) PrependChunk(c chunk.Chunk) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrStrandCompleted
	}
	if c.IsEmpty() {
		return nil
	}
	b.front = append(b.front, c)
	return nil
}

func (b *Builder) buildLink() *Link {
	parts := b.orderedChunks()
	if len(parts) == 0 {
		return New("")
	}
	l := &Link{}
	for _, c := range parts {
		l.chain.push(c)
	}
	l.chain.appends = len(parts) - 1
	assert(l.Check() == nil, "builder: inconsistent chain")
	return l
}

func (b *Builder) orderedChunks() []chunk.Chunk {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]chunk.Chunk, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}

// clone returns a copy of l with a chain of its own.
func (l *Link) clone() *Link {
	c := &Link{chain: l.chain}
	c.chain.chunks = append(make([]chunk.Chunk, 0, len(l.chain.chunks)), l.chain.chunks...)
	return c
}
