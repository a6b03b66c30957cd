package main

import (
	"context"
	"fmt"
	"io"

	"github.com/npillmayer/strands"
	"github.com/npillmayer/strands/display"
	"github.com/npillmayer/strands/textfile"
)

// loadInput returns the input records for a command: the --text flag, or the
// records of a FASTA file, or a single record for any other file.
func loadInput(ctx context.Context, opts *rootOpts, args []string) ([]textfile.Record, error) {
	if len(args) == 0 {
		if opts.text == "" {
			return nil, fmt.Errorf("%w: no input, need a file argument or --text", strands.ErrIllegalArguments)
		}
		return []textfile.Record{{Seq: strands.New(opts.text)}}, nil
	}
	name := args[0]
	fasta, err := textfile.IsFASTA(name)
	if err != nil {
		return nil, err
	}
	if fasta {
		return textfile.LoadFASTA(ctx, name)
	}
	s, err := textfile.Load(ctx, name, opts.frag)
	if err != nil {
		return nil, err
	}
	return []textfile.Record{{Seq: s}}, nil
}

// printRecord writes an optional header line followed by the text of s.
func printRecord(w io.Writer, opts *rootOpts, header string, s strands.Strand) error {
	if header != "" {
		if _, err := fmt.Fprintf(w, ">%s\n", header); err != nil {
			return err
		}
	}
	return display.NewConsole(opts.width).Output(s, w)
}
