package metrics

import (
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/strands"
)

// Span is a byte-range descriptor inside a strand.
//
// Pos is the start byte offset, Len is the span length in bytes.
type Span struct {
	Pos uint64
	Len uint64
}

// End returns the byte offset right after the span.
func (s Span) End() uint64 {
	return s.Pos + s.Len
}

// Count returns the number of non-overlapping occurrences of pattern in s,
// i.e., the number of cuts CutAndSplice would perform.
func Count(s strands.Strand, pattern string) (int, error) {
	locs, err := strands.Find(s, pattern)
	if err != nil {
		return -1, fmt.Errorf("metrics.Count could not be applied: %w", err)
	}
	return len(locs), nil
}

// Find returns the spans of all non-overlapping occurrences of pattern in s.
func Find(s strands.Strand, pattern string) ([]Span, error) {
	locs, err := strands.Find(s, pattern)
	if err != nil {
		return []Span{}, fmt.Errorf("metrics.Find could not be applied: %w", err)
	}
	spans := make([]Span, len(locs))
	for i, pos := range locs {
		spans[i] = Span{Pos: pos, Len: uint64(len(pattern))}
	}
	tracer().Debugf("metrics: %d occurrences of %q", len(spans), pattern)
	return spans, nil
}

// ---------------------------------------------------------------------------

// Composition counts the occurrences of every rune in a strand.
type Composition struct {
	counts map[rune]uint64
	total  uint64
}

// Compose computes the composition of s, chunk by chunk.
func Compose(s strands.Strand) Composition {
	comp := Composition{counts: make(map[rune]uint64)}
	if s == nil {
		return comp
	}
	cc, err := strands.NewCharCursor(s)
	if err != nil {
		return comp
	}
	for r, ok := cc.Next(); ok; r, ok = cc.Next() {
		comp.counts[r]++
		comp.total++
	}
	return comp
}

// Total returns the number of runes counted.
func (c Composition) Total() uint64 {
	return c.total
}

// Count returns how often r occurs.
func (c Composition) Count(r rune) uint64 {
	return c.counts[r]
}

// Symbols returns all runes counted, in ascending order.
func (c Composition) Symbols() []rune {
	syms := make([]rune, 0, len(c.counts))
	for r := range c.counts {
		syms = append(syms, r)
	}
	slices.Sort(syms)
	return syms
}

// Share returns the fraction of runes which are one of symbols, e.g.,
//
//	comp.Share("GC")
//
// is the GC content of a DNA strand. An empty composition has share 0.
func (c Composition) Share(symbols string) float64 {
	if c.total == 0 {
		return 0
	}
	var n uint64
	seen := make(map[rune]bool)
	for _, r := range symbols {
		if !seen[r] {
			n += c.counts[r]
			seen[r] = true
		}
	}
	return float64(n) / float64(c.total)
}

// String formats the composition as a list of rune counts.
func (c Composition) String() string {
	var sb strings.Builder
	for i, r := range c.Symbols() {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%q:%d", r, c.counts[r])
	}
	return sb.String()
}
