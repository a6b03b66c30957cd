/*
Package textfile provides API helpers to load text files as strands.

Files are read in fragments, and every fragment becomes one chunk of the
resulting strand. Reading is done by a background goroutine which broadcasts
loaded fragments; the strand is assembled by the caller's goroutine, which
keeps `Load` a synchronous API. Clients may observe loading progress.

FASTA files are loaded record by record with LoadFASTA, using one chunk per
sequence line.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strands'
func tracer() tracing.Trace {
	return tracing.Select("strands")
}
