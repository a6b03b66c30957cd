package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/strands"
	"github.com/npillmayer/strands/display"
	"github.com/npillmayer/strands/html"
	"github.com/npillmayer/strands/metrics"
	"github.com/spf13/cobra"
)

// EcoRI is the recognition site of restriction enzyme EcoRI.
const EcoRI = "GAATTC"

func newSpliceCmd(opts *rootOpts) *cobra.Command {
	var enzyme, splicee string
	cmd := &cobra.Command{
		Use:     "splice [file]",
		Short:   "cut out every occurrence of an enzyme and splice in new material",
		Args:    cobra.MaximumNArgs(1),
		Example: `strands splice --text AAGAATTCGG --splicee TTT`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadInput(cmd.Context(), opts, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, rec := range records {
				n, err := metrics.Count(rec.Seq, enzyme)
				if err != nil {
					return err
				}
				spliced, err := rec.Seq.CutAndSplice(enzyme, splicee)
				if err != nil {
					return err
				}
				if err := printRecord(out, opts, rec.Header, spliced); err != nil {
					return err
				}
				fmt.Fprintf(out, "# %d cuts, %s\n", n, spliced.Stats())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&enzyme, "enzyme", EcoRI, "pattern to cut out")
	cmd.Flags().StringVar(&splicee, "splicee", "", "replacement to splice in")
	return cmd
}

func newReverseCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [file]",
		Short: "reverse the input character by character",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadInput(cmd.Context(), opts, args)
			if err != nil {
				return err
			}
			for _, rec := range records {
				if err := printRecord(cmd.OutOrStdout(), opts, rec.Header, rec.Seq.Reverse()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newStatsCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "print size, chunk organization and composition of the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadInput(cmd.Context(), opts, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, rec := range records {
				if rec.Header != "" {
					fmt.Fprintf(out, ">%s\n", rec.Header)
				}
				if err := display.Summary(rec.Seq, out); err != nil {
					return err
				}
				comp := metrics.Compose(rec.Seq)
				fmt.Fprintf(out, "%v\n", comp)
				if comp.Total() > 0 {
					fmt.Fprintf(out, "GC content %.2f%%\n", 100*comp.Share("GCgc"))
				}
			}
			return nil
		},
	}
}

func newDotCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "dot [file]",
		Short: "write the chunk chain of the input in Graphviz DOT format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadInput(cmd.Context(), opts, args)
			if err != nil {
				return err
			}
			for _, rec := range records {
				strands.Strand2Dot(rec.Seq, cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newHTMLCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "html <file>",
		Short: "extract the text of an HTML file as a strand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			s, err := html.TextFromHTML(f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := printRecord(out, opts, "", s); err != nil {
				return err
			}
			return display.Summary(s, out)
		},
	}
}
