package chunk

import (
	"strings"
	"unicode/utf8"
)

// Summary aggregates chunk-level text metrics.
type Summary struct {
	Bytes uint64
	Chars uint64
	Lines uint64
}

// Summary returns aggregate metrics for this chunk.
func (c Chunk) Summary() Summary {
	return Summary{
		Bytes: uint64(len(c.text)),
		Chars: uint64(utf8.RuneCountInString(c.text)),
		Lines: uint64(strings.Count(c.text, "\n")),
	}
}

// Monoid aggregates chunk summaries along a chain.
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() Summary { return Summary{} }

// Add combines two summaries.
func (Monoid) Add(left, right Summary) Summary {
	return Summary{
		Bytes: left.Bytes + right.Bytes,
		Chars: left.Chars + right.Chars,
		Lines: left.Lines + right.Lines,
	}
}
