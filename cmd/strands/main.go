/*
Command strands loads long character sequences as strands and applies strand
operations to them.

	strands [--trace level] [--width n] [--text s] <command> [file]

Commands are splice, reverse, stats, dot, html and bench. Input is read from
a file argument or from flag --text. Files starting with a '>' header line or
carrying a FASTA suffix are read record by record.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
