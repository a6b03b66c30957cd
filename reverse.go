package strands

import (
	"github.com/npillmayer/strands/chunk"
)

// Reverse returns a new strand holding the runes of l in reverse order,
// e.g., "TAGC" for "CGAT". l is left unchanged.
//
// Every chunk is reversed on its own, and the reversed chunks are linked in
// reverse chunk order. A UTF-8 sequence split between two chunks is carried
// over and reversed with the following chunk, so runes stay intact.
func (l *Link) Reverse() Strand {
	b := NewBuilder()
	var carry string // incomplete UTF-8 sequence at the end of the previous chunk
	for cur := l.Chunks(); cur.HasNext(); {
		text := cur.Next()
		if carry != "" {
			text = carry + text
		}
		cut := chunk.RuneCut(text)
		carry = text[cut:]
		err := b.PrependString(chunk.Reverse(text[:cut]))
		assert(err == nil, "reverse: builder rejected chunk")
	}
	if carry != "" {
		err := b.PrependString(chunk.Reverse(carry))
		assert(err == nil, "reverse: builder rejected chunk")
	}
	r := b.Link()
	tracer().Debugf("strand: reversed %d bytes into %d chunks", r.Len(), r.FragmentCount())
	return r
}
