package strands

import (
	"iter"

	"github.com/npillmayer/strands/chunk"
)

// ChunkCursor visits the chunks of a strand in order.
//
// A cursor is bound to the chunks the strand held when the cursor was
// created. It is a single forward pass and cannot be restarted; clients
// call Chunks again for another traversal. Cursors never modify the strand,
// so any number of them may read the same strand.
type ChunkCursor struct {
	chunks []chunk.Chunk
	next   int
}

func newChunkCursor(chunks []chunk.Chunk) *ChunkCursor {
	// chunk slices only ever grow at the end, so the elements of this
	// snapshot are never overwritten
	return &ChunkCursor{chunks: chunks[:len(chunks):len(chunks)]}
}

// HasNext reports whether another chunk is available.
func (cc *ChunkCursor) HasNext() bool {
	return cc != nil && cc.next < len(cc.chunks)
}

// Next returns the text of the current chunk and advances the cursor.
// Once the cursor is exhausted, Next returns "".
func (cc *ChunkCursor) Next() string {
	c, ok := cc.NextChunk()
	if !ok {
		return ""
	}
	return c.String()
}

// NextChunk returns the current chunk and advances the cursor.
//
// If the cursor is exhausted, ok is false.
func (cc *ChunkCursor) NextChunk() (c chunk.Chunk, ok bool) {
	if !cc.HasNext() {
		return chunk.Chunk{}, false
	}
	c = cc.chunks[cc.next]
	cc.next++
	return c, true
}

// Remaining returns the number of chunks not yet visited.
func (cc *ChunkCursor) Remaining() int {
	if cc == nil {
		return 0
	}
	return len(cc.chunks) - cc.next
}

// RangeChunk returns an iterator over the chunk texts of s in logical order.
// Every call of the iterator uses a fresh cursor.
func RangeChunk(s Strand) iter.Seq[string] {
	return func(yield func(string) bool) {
		for cur := s.Chunks(); cur.HasNext(); {
			if !yield(cur.Next()) {
				return
			}
		}
	}
}
