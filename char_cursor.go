package strands

import (
	"unicode/utf8"
)

// CharCursor navigates a strand by UTF-8 rune positions.
//
// The cursor is bound to the chunks the strand held when the cursor was
// created. Movement is forward in rune steps, crossing chunk boundaries
// transparently. A UTF-8 sequence split between chunks is joined with the
// following chunk's text and decoded as one rune.
type CharCursor struct {
	chunks  *ChunkCursor
	text    string // current chunk, prefixed by bytes of a split rune
	off     int    // byte offset within text
	runes   uint64 // runes consumed so far
	byteOff uint64 // bytes consumed so far
}

// NewCharCursor creates a rune-aware cursor at the start of s.
func NewCharCursor(s Strand) (*CharCursor, error) {
	if s == nil {
		return nil, ErrIllegalArguments
	}
	return &CharCursor{chunks: s.Chunks()}, nil
}

// ByteOffset returns the current cursor byte offset.
func (cc *CharCursor) ByteOffset() uint64 {
	if cc == nil {
		return 0
	}
	return cc.byteOff
}

// RuneOffset returns the number of runes the cursor has moved over.
func (cc *CharCursor) RuneOffset() uint64 {
	if cc == nil {
		return 0
	}
	return cc.runes
}

// Next returns the rune at the current cursor position and advances by one rune.
// Invalid UTF-8 bytes are returned as utf8.RuneError, advancing by one byte.
//
// If the cursor is at end-of-strand, ok is false.
func (cc *CharCursor) Next() (r rune, ok bool) {
	if cc == nil {
		return 0, false
	}
	for {
		for cc.off >= len(cc.text) {
			if !cc.chunks.HasNext() {
				return 0, false
			}
			cc.text, cc.off = cc.chunks.Next(), 0
		}
		rest := cc.text[cc.off:]
		if utf8.FullRuneInString(rest) || !cc.chunks.HasNext() {
			break
		}
		cc.text, cc.off = rest+cc.chunks.Next(), 0
	}
	r, n := utf8.DecodeRuneInString(cc.text[cc.off:])
	cc.off += n
	cc.byteOff += uint64(n)
	cc.runes++
	return r, true
}

// SeekRunes advances the cursor by n runes. It returns the number of runes
// actually skipped, which is less than n at end-of-strand.
func (cc *CharCursor) SeekRunes(n uint64) uint64 {
	var i uint64
	for ; i < n; i++ {
		if _, ok := cc.Next(); !ok {
			break
		}
	}
	return i
}
