package main

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	trace string // trace level
	width int    // output line width, 0 for terminal width
	text  string // literal input text
	frag  int64  // fragment size for loading files
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}
	rootCmd := &cobra.Command{
		Use:           "strands",
		Short:         "operate on long character sequences",
		Long:          `strands loads texts, typically genomic sequences, as chains of chunks and cuts, splices, reverses and inspects them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(opts.trace)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.trace, "trace", "error", "trace level (error, info, debug)")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 0, "line width of output (default is terminal width)")
	rootCmd.PersistentFlags().StringVar(&opts.text, "text", "", "use text as input instead of a file")
	rootCmd.PersistentFlags().Int64Var(&opts.frag, "fragment", 0, "fragment size for loading files (default is by file size)")
	rootCmd.DisableAutoGenTag = true
	rootCmd.AddCommand(
		newSpliceCmd(opts),
		newReverseCmd(opts),
		newStatsCmd(opts),
		newDotCmd(opts),
		newHTMLCmd(opts),
		newBenchCmd(opts),
	)
	return rootCmd
}

// tracer writes to trace with key 'strands'
func tracer() tracing.Trace {
	return tracing.Select("strands")
}

// setupTracing routes tracing to a Go logger on stderr.
func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("strands").SetTraceLevel(tracing.TraceLevelFromString(level))
}
