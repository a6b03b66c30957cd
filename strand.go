package strands

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Strand is the capability shared by all strand representations.
//
// Reverse and CutAndSplice never modify the receiver; they return a new
// strand of the same representation. Len is measured in bytes, so for every
// strand s
//
//	s.Len() == uint64(len(s.String()))
//
// holds.
type Strand interface {
	// Initialize resets the strand to represent source.
	Initialize(source string)
	// Append appends text to the strand.
	Append(text string)
	// AppendStrand appends the text of another strand.
	AppendStrand(other Strand) error
	// CutAndSplice replaces every occurrence of pattern with replacement.
	CutAndSplice(pattern, replacement string) (Strand, error)
	// Reverse returns the character-wise reverse of the strand.
	Reverse() Strand
	// Len returns the number of bytes in the strand.
	Len() uint64
	// String returns the complete text of the strand.
	String() string
	// Stats reports how often the strand has been appended to.
	Stats() string
	// Info returns a tag identifying the strand's implementation.
	Info() string
	// Chunks returns a fresh cursor over the strand's chunks.
	Chunks() *ChunkCursor
}

// statsFormat is the format of Strand.Stats.
const statsFormat = "# append calls = %d"

// isNilStrand reports whether s is a nil pointer of one of the strand types
// of this package.
func isNilStrand(s Strand) bool {
	switch o := s.(type) {
	case *Link:
		return o == nil
	case *Flat:
		return o == nil
	}
	return false
}
