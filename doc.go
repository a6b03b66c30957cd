/*
Package strands models long character sequences as chains of text chunks.

Strands

A strand is a long sequence of characters, typically a genomic sequence,
which is built incrementally. Instead of keeping one contiguous buffer, a
strand keeps an ordered chain of immutable chunks, one for each piece of text
appended. Appending is therefore (amortized) O(1) and never copies text
already held by the strand.

Operations which would rewrite a contiguous buffer create new strands
instead:

	Operation       |  Link (chain)  |  Flat (buffer)
	----------------+----------------+---------------
	Append          |  O(1)          |  O(n) worst case
	Reverse         |  O(n)          |  O(n)
	CutAndSplice    |  O(n)          |  O(n)
	String          |  O(n)          |  O(1)

Cut-and-splice replaces every occurrence of a pattern, like a restriction
enzyme cutting a DNA strand and splicing in new material. Occurrences may
straddle any number of chunk boundaries.

Chunks of a strand are visited with a ChunkCursor. Every call to Chunks
returns a fresh cursor, so independent readers never disturb each other.

Strands are not safe for concurrent mutation.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package strands

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strands'
func tracer() tracing.Trace {
	return tracing.Select("strands")
}

// StrandError is an error type for the strands module
type StrandError string

func (e StrandError) Error() string {
	return string(e)
}

// ErrStrandCompleted signals that a strand builder has already completed a strand
// and it's illegal to further add fragments.
const ErrStrandCompleted = StrandError("forbidden to add fragments; strand has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = StrandError("illegal arguments")

// ErrEmptyPattern is flagged when searching for or cutting out an empty pattern.
const ErrEmptyPattern = StrandError("pattern must not be empty")

// ErrUnsupportedShape is flagged whenever a chain has a structure the strand
// operations cannot work with. Errors of this kind are wrapped with a message
// describing the offending shape.
const ErrUnsupportedShape = StrandError("unsupported chain shape")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
