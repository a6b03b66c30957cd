package display

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/strands"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DefaultWidth is the line width used if no terminal is attached.
const DefaultWidth = 65

var setupGraphemes sync.Once

// Console outputs strands to a console with a fixed width font.
type Console struct {
	Width   int            // target line length in ‘en’s
	Context *uax11.Context // context for measuring character widths
	palette []*color.Color
	col     int // number of positions already printed for current line
}

// NewConsole creates a console renderer for a line width. If width is not
// positive, the width is derived from the terminal (see WidthFromTerminal) and
// the context for measuring character widths from the user's environment.
// Otherwise uax11.LatinContext is used.
// Chunks cycle through palette; if palette is empty, a default palette of
// blue and red is used.
func NewConsole(width int, palette ...*color.Color) *Console {
	c := &Console{
		Width:   width,
		Context: uax11.LatinContext,
		palette: palette,
	}
	if width <= 0 {
		c.Width = WidthFromTerminal()
		c.Context = uax11.ContextFromEnvironment()
	}
	if len(c.palette) == 0 {
		c.palette = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgRed),
	}
}

// Print outputs the text of s to stdout, see Output.
func (c *Console) Print(s strands.Strand) error {
	return c.Output(s, os.Stdout)
}

// Output writes the text of s to w. Every chunk is printed in the next color
// of the palette, and lines are wrapped at the console's width. Line breaks
// contained in the text start a new line as well.
func (c *Console) Output(s strands.Strand, w io.Writer) error {
	if s == nil || w == nil {
		return strands.ErrIllegalArguments
	}
	c.col = 0
	n := 0
	for cur := s.Chunks(); cur.HasNext(); n++ {
		pen := c.palette[n%len(c.palette)]
		if err := c.chunk(cur.Next(), pen, w); err != nil {
			return err
		}
	}
	tracer().Debugf("display: printed %d chunks with width %d", n, c.Width)
	if c.col > 0 {
		return c.newline(w)
	}
	return nil
}

func (c *Console) chunk(text string, pen *color.Color, w io.Writer) error {
	start := 0
	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if r == '\n' {
			if err := c.colored(text[start:pos], pen, w); err != nil {
				return err
			}
			if err := c.newline(w); err != nil {
				return err
			}
			pos += size
			start = pos
			continue
		}
		rw := c.width(text[pos : pos+size])
		if c.col > 0 && c.col+rw > c.Width {
			if err := c.colored(text[start:pos], pen, w); err != nil {
				return err
			}
			if err := c.newline(w); err != nil {
				return err
			}
			start = pos
		}
		c.col += rw
		pos += size
	}
	return c.colored(text[start:], pen, w)
}

func (c *Console) colored(s string, pen *color.Color, w io.Writer) error {
	if s == "" {
		return nil
	}
	_, err := pen.Fprint(w, s)
	return err
}

func (c *Console) newline(w io.Writer) error {
	c.col = 0
	_, err := w.Write([]byte{'\n'})
	return err
}

func (c *Console) width(s string) int {
	ctx := c.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	return StringWidth(s, ctx)
}

// StringWidth returns the number of fixed width positions s occupies on a
// console.
func StringWidth(s string, ctx *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// Summary writes a short description of s to w: its implementation, its
// length, the number of chunks and its append statistics.
func Summary(s strands.Strand, w io.Writer) error {
	if s == nil || w == nil {
		return strands.ErrIllegalArguments
	}
	chunks := s.Chunks().Remaining()
	_, err := fmt.Fprintf(w, "%s: %d bytes in %d chunks, %s\n",
		s.Info(), s.Len(), chunks, s.Stats())
	return err
}

// --- Config for terminals --------------------------------------------------

// WidthFromTerminal is a simple helper for finding a line width.
// It checks wether stdin is a terminal, and if so it reads the terminal's width
// and derives a line width from it. Otherwise DefaultWidth is returned.
func WidthFromTerminal() int {
	width := DefaultWidth
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil {
			width = widthFor(w)
		}
	}
	tracer().Infof("setting line length to %d en", width)
	return width
}

func widthFor(w int) int {
	if w > 65 {
		return w - 10
	} else if w > 30 {
		return w - 5
	} else if w > 10 {
		return w
	}
	return 10
}
