package strands

import (
	"github.com/npillmayer/strands/chunk"
)

// CutAndSplice cuts l at every occurrence of pattern, replacing each
// occurrence with replacement. The result is a new strand; l is left
// unchanged.
//
// Occurrences are searched in the complete text of l, left to right and
// without overlap, and may span any number of chunk boundaries. If pattern
// does not occur, the result holds the same text as l.
// An empty pattern results in ErrEmptyPattern.
func (l *Link) CutAndSplice(pattern, replacement string) (Strand, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	b := NewBuilder()
	sp := splicer{
		m:           newMatcher(pattern),
		replacement: replacement,
		out:         b,
	}
	for cur := l.Chunks(); cur.HasNext(); {
		sp.feed(cur.Next())
	}
	sp.finish()
	r := b.Link()
	tracer().Debugf("strand: spliced %d occurrences of %q, %d → %d bytes",
		sp.matches, pattern, l.Len(), r.Len())
	return r, nil
}

// Find returns the byte offsets of all occurrences of pattern in s, searched
// left to right and without overlap, exactly as CutAndSplice does.
// An empty pattern results in ErrEmptyPattern.
func Find(s Strand, pattern string) ([]uint64, error) {
	if s == nil {
		return nil, ErrIllegalArguments
	}
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	m := newMatcher(pattern)
	var locs []uint64
	var pos uint64
	for cur := s.Chunks(); cur.HasNext(); {
		text := cur.Next()
		for i := 0; i < len(text); i++ {
			if m.step(text[i]) {
				locs = append(locs, pos+uint64(i+1-len(pattern)))
			}
		}
		pos += uint64(len(text))
	}
	return locs, nil
}

// --- Pattern matching ------------------------------------------------------

// matcher is a Knuth-Morris-Pratt automaton for one pattern. Its state is the
// length of the longest prefix of the pattern which is a suffix of the bytes
// consumed so far. After a complete match the state restarts at 0, so that
// matches never overlap.
type matcher struct {
	pattern string
	fail    []int // fail[q] is the longest proper border of pattern[:q+1]
	state   int
}

func newMatcher(pattern string) *matcher {
	assert(pattern != "", "matcher needs a pattern")
	fail := make([]int, len(pattern))
	k := 0
	for q := 1; q < len(pattern); q++ {
		for k > 0 && pattern[k] != pattern[q] {
			k = fail[k-1]
		}
		if pattern[k] == pattern[q] {
			k++
		}
		fail[q] = k
	}
	return &matcher{pattern: pattern, fail: fail}
}

// step consumes byte c and reports whether a match ends with it.
func (m *matcher) step(c byte) bool {
	for m.state > 0 && m.pattern[m.state] != c {
		m.state = m.fail[m.state-1]
	}
	if m.pattern[m.state] == c {
		m.state++
	}
	if m.state == len(m.pattern) {
		m.state = 0
		return true
	}
	return false
}

// --- Splicing --------------------------------------------------------------

// splicer streams chunk texts through a matcher and emits the result pieces
// to a builder.
//
// Bytes of a partial match pending at the end of a chunk are not buffered:
// they are always equal to pattern[:carry], so the splicer remembers only
// their count.
type splicer struct {
	m           *matcher
	replacement string
	out         *Builder
	carry       int // pending bytes from previous chunks, equal to pattern[:carry]
	matches     int
}

// feed scans the text of one chunk.
func (sp *splicer) feed(text string) {
	lit := 0 // start of text not yet emitted
	for i := 0; i < len(text); i++ {
		if !sp.m.step(text[i]) {
			continue
		}
		sp.flush(text, lit, i+1, len(sp.m.pattern))
		sp.emit(sp.replacement)
		sp.matches++
		sp.carry = 0
		lit = i + 1
	}
	sp.flush(text, lit, len(text), sp.m.state)
	sp.carry = sp.m.state
}

// flush emits the pending bytes, pattern[:carry] followed by text[lit:end],
// except for the last keep bytes.
func (sp *splicer) flush(text string, lit, end, keep int) {
	n := sp.carry + end - lit - keep
	assert(n >= 0, "splice: pending match longer than pending text")
	if n <= sp.carry {
		sp.emit(sp.m.pattern[:n])
		return
	}
	sp.emit(sp.m.pattern[:sp.carry])
	sp.emit(text[lit : lit+n-sp.carry])
}

// finish emits a partial match left over at the end of the strand.
func (sp *splicer) finish() {
	sp.emit(sp.m.pattern[:sp.carry])
	sp.carry = 0
}

func (sp *splicer) emit(s string) {
	if s == "" {
		return
	}
	err := sp.out.AppendChunk(chunk.New(s))
	assert(err == nil, "splice: builder rejected chunk")
}
