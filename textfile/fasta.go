package textfile

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/strands"
)

// maxLineLength limits the length of a single line in a FASTA file.
const maxLineLength = 16 * oneMb

// Record is one sequence of a FASTA file.
type Record struct {
	Header string        // header line without the leading '>'
	Seq    *strands.Link // sequence, one chunk per line
}

// LoadFASTA reads all records of a FASTA file.
func LoadFASTA(ctx context.Context, name string) ([]Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFASTA(ctx, f)
}

// ReadFASTA reads FASTA records from r. Lines beginning with '>' denote
// headers, lines beginning with ';' are comments. Every sequence line is
// appended as a chunk of its record's strand, without line breaks or
// surrounding white space. Sequence lines before the first header form a
// record with an empty header.
func ReadFASTA(ctx context.Context, r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	var records []Record
	var header string
	var b *strands.Builder
	flush := func() {
		if b != nil {
			records = append(records, Record{Header: header, Seq: b.Link()})
		}
	}
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, ">"):
			flush()
			header = strings.TrimSpace(line[1:])
			b = strands.NewBuilder()
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		default:
			if b == nil {
				b = strands.NewBuilder()
			}
			if err := b.AppendString(line); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	tracer().Debugf("textfile: read %d FASTA records", len(records))
	return records, nil
}

// IsFASTA reports whether a file looks like FASTA: it either has a FASTA
// file suffix or starts with a header line.
func IsFASTA(name string) (bool, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".fa", ".fasta", ".fna", ".ffn", ".faa":
		return true, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()
	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return false, err
	}
	return bytes.HasPrefix(bytes.TrimSpace(head[:n]), []byte(">")), nil
}
