package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/npillmayer/strands"
	"github.com/spf13/cobra"
)

type benchOpts struct {
	appends int    // number of append calls per strand
	piece   string // text appended with every call
	enzyme  string
}

func newBenchCmd(opts *rootOpts) *cobra.Command {
	bopts := benchOpts{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "compare timings of strand representations",
		Long: `bench builds strands by repeated appends and times append, cut-and-splice
and reverse for the chunk chain (Link) and the contiguous buffer (Flat).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bopts.appends <= 0 || bopts.piece == "" {
				return fmt.Errorf("%w: need positive --appends and non-empty --piece", strands.ErrIllegalArguments)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-16s %12s %12s %12s %10s\n", "strand", "append", "splice", "reverse", "bytes")
			for _, mk := range []func() strands.Strand{
				func() strands.Strand { return strands.New("") },
				func() strands.Strand { return strands.NewFlat("") },
			} {
				if err := bench(out, mk(), bopts); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&bopts.appends, "appends", 10000, "number of appends")
	cmd.Flags().StringVar(&bopts.piece, "piece", "AAGAATTCGG", "text to append")
	cmd.Flags().StringVar(&bopts.enzyme, "enzyme", EcoRI, "pattern to cut out")
	return cmd
}

func bench(out io.Writer, s strands.Strand, opts benchOpts) error {
	start := time.Now()
	for i := 0; i < opts.appends; i++ {
		s.Append(opts.piece)
	}
	appendTime := time.Since(start)
	start = time.Now()
	spliced, err := s.CutAndSplice(opts.enzyme, strings.ToLower(opts.enzyme))
	if err != nil {
		return err
	}
	spliceTime := time.Since(start)
	start = time.Now()
	s.Reverse()
	reverseTime := time.Since(start)
	tracer().Debugf("bench: %s spliced to %d bytes", s.Info(), spliced.Len())
	_, err = fmt.Fprintf(out, "%-16s %12v %12v %12v %10d\n", s.Info(),
		appendTime.Round(time.Microsecond), spliceTime.Round(time.Microsecond),
		reverseTime.Round(time.Microsecond), s.Len())
	return err
}
