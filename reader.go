package strands

import "io"

// Reader returns a reader for the bytes of s. The reader walks the chunks of
// s with its own cursor.
func Reader(s Strand) io.Reader {
	return &strandReader{cursor: s.Chunks()}
}

// Reader returns a reader for the bytes of l.
func (l *Link) Reader() io.Reader {
	return Reader(l)
}

type strandReader struct {
	cursor *ChunkCursor
	rest   string // unread part of the current chunk
}

func (sr *strandReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	for n < len(p) {
		for sr.rest == "" {
			if !sr.cursor.HasNext() {
				if n == 0 {
					return 0, io.EOF
				}
				return n, nil
			}
			sr.rest = sr.cursor.Next()
		}
		c := copy(p[n:], sr.rest)
		sr.rest = sr.rest[c:]
		n += c
	}
	return n, nil
}
