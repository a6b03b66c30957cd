/*
Package metrics provides some pre-manufactured metrics on strands.

Metrics read strands through chunk cursors, so they never materialize the
complete text of a strand.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strands'
func tracer() tracing.Trace {
	return tracing.Select("strands")
}
