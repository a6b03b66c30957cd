package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/strands"
)

/*
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

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// queueLen is the channel capacity of every subscriber to loaded fragments.
const queueLen = 16

// errBroadcastClosed is flagged if fragments cannot be published any more.
var errBroadcastClosed = errors.New("textfile: fragment broadcast closed")

// Progress describes one loaded fragment of a file.
type Progress struct {
	Fragment int   // sequence number of the fragment, starting at 0
	Bytes    int   // number of bytes in this fragment
	Loaded   int64 // number of bytes loaded so far, including this fragment
	Total    int64 // size of the file
}

// Observer is called for every fragment loaded. Observers run on goroutines
// of their own, but every observer sees fragments in file order.
type Observer func(Progress)

// fragment is broadcast for every piece of text read.
type fragment struct {
	Progress
	text string
}

// loadDone is broadcast after the last fragment.
type loadDone struct {
	err error
}

// textFile represents an OS file which will be loaded as a strand.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a text file, and loads it as a strand,
// one chunk per fragment. Clients may indicate a recommended fragment length;
// fragSize ≤ 0 lets Load use sensible defaults. Fragment ends are moved so
// that no UTF-8 sequence is split between two chunks.
//
// Reading happens on a background goroutine; Load returns when the strand is
// complete and all observers have seen the last fragment. If ctx is
// cancelled, Load stops reading and returns the context's error.
func Load(ctx context.Context, name string, fragSize int64, observers ...Observer) (*strands.Link, error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	fragSize = fragmentSize(tf.info.Size(), fragSize)
	tracer().Debugf("textfile: loading %s (%d bytes) in fragments of %d", name, tf.info.Size(), fragSize)
	tf.cast = caster.New(context.Background()) // we will broadcast messages when fragments are loaded
	defer tf.cast.Close()
	frags, ok := tf.cast.Sub(context.Background(), queueLen)
	if !ok {
		return nil, errBroadcastClosed
	}
	var wg sync.WaitGroup
	for _, observe := range observers {
		ch, ok := tf.cast.Sub(context.Background(), queueLen)
		if !ok {
			return nil, errBroadcastClosed
		}
		wg.Add(1)
		go func(ch <-chan interface{}, observe Observer) {
			defer wg.Done()
			for msg := range ch {
				switch m := msg.(type) {
				case fragment:
					observe(m.Progress)
				case loadDone:
					return
				}
			}
		}(ch, observe)
	}
	go tf.loadFragments(ctx, fragSize)
	b := strands.NewBuilder()
	err = assemble(frags, b)
	wg.Wait()
	if err != nil {
		tracer().Errorf("textfile: loading %s failed: %v", name, err)
		return nil, err
	}
	return b.Link(), nil
}

// assemble appends broadcast fragments to b, until loading is done.
func assemble(frags <-chan interface{}, b *strands.Builder) error {
	for msg := range frags {
		switch m := msg.(type) {
		case fragment:
			if err := b.AppendString(m.text); err != nil {
				return err
			}
		case loadDone:
			return m.err
		}
	}
	return errBroadcastClosed
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
	}
	return tf, nil
}

// fragmentSize chooses a fragment length for a file of the given size.
func fragmentSize(size int64, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	switch {
	case size < 64:
		fragSize = size
	case size < 1024:
		fragSize = 64
	case size < tenKb:
		fragSize = 256
	case size < hundredKb:
		fragSize = 512
	case size < oneMb:
		fragSize = twoKb
	default:
		fragSize = sixKb
	}
	return max(fragSize, 1)
}

// --- File loading goroutine ------------------------------------------------

// loadFragments reads the file front to back and publishes every fragment,
// followed by a loadDone message.
func (tf *textFile) loadFragments(ctx context.Context, fragSize int64) {
	var err error
	progress := Progress{Total: tf.info.Size()}
	defer func() {
		tf.cast.Pub(loadDone{err: err})
	}()
	publish := func(text string) bool {
		if text == "" {
			return true
		}
		progress.Bytes = len(text)
		progress.Loaded += int64(len(text))
		ok := tf.cast.Pub(fragment{Progress: progress, text: text})
		progress.Fragment++
		return ok
	}
	buf := make([]byte, fragSize)
	var carry []byte // incomplete UTF-8 sequence at the end of the previous fragment
	var pos int64
	for pos < tf.info.Size() {
		if err = ctx.Err(); err != nil {
			return
		}
		n, rerr := tf.file.ReadAt(buf, pos)
		if rerr != nil && rerr != io.EOF {
			err = fmt.Errorf("error loading text fragment at %d: %w", pos, rerr)
			return
		}
		if n == 0 {
			break // file has been truncated in the meantime
		}
		pos += int64(n)
		data := append(carry, buf[:n]...)
		cut := len(data)
		if pos < tf.info.Size() {
			cut = runeCut(data)
		}
		carry = append([]byte(nil), data[cut:]...)
		if !publish(string(data[:cut])) {
			err = errBroadcastClosed
			return
		}
	}
	if !publish(string(carry)) {
		err = errBroadcastClosed
	}
}

// runeCut returns the length of the longest prefix of data which does not
// end within an incomplete UTF-8 sequence.
func runeCut(data []byte) int {
	for i := len(data) - 1; i >= 0 && i >= len(data)-utf8.UTFMax; i-- {
		if utf8.RuneStart(data[i]) {
			if utf8.FullRune(data[i:]) {
				return len(data)
			}
			return i
		}
	}
	return len(data)
}
