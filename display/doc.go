/*
Package display renders strands on a console with a fixed width font.

Chunks of a strand are printed in alternating colors, which makes the chunk
organization of a strand visible. Lines are wrapped at a target width,
measured in fixed width positions (“en”s). East Asian wide characters count
as two positions, as determined by UAX#11.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strands'
func tracer() tracing.Trace {
	return tracing.Select("strands")
}
