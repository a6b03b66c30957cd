package strands

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("CGAT")
	r := s.Reverse()
	if r.String() != "TAGC" {
		t.Errorf("expected reverse to be 'TAGC', is %q", r.String())
	}
	if s.String() != "CGAT" {
		t.Errorf("original strand changed to %q", s.String())
	}
}

func TestReverseChunkOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("AAC")
	s.Append("GT")
	s.Append("TTG")
	r := s.Reverse().(*Link)
	if r.String() != "GTTTGCAA" {
		t.Errorf("unexpected reverse %q", r.String())
	}
	got := collect(r.Chunks())
	if !slices.Equal(got, []string{"GTT", "TG", "CAA"}) {
		t.Errorf("reversed chunks should be linked in reverse order, have %v", got)
	}
	if err := r.Check(); err != nil {
		t.Error(err)
	}
}

func TestReverseEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	r := New("").Reverse().(*Link)
	if r.Len() != 0 || r.String() != "" {
		t.Errorf("reverse of empty strand should be empty, is %q", r.String())
	}
	if r.FragmentCount() != 1 {
		t.Errorf("reverse of empty strand should hold one chunk, has %d", r.FragmentCount())
	}
}

func TestReverseTwice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	inputs := [][]string{
		{"GATTACA"},
		{"", "A", "", "CG"},
		{"über", "😀", "ab"},
	}
	for _, pieces := range inputs {
		s := New(pieces[0])
		for _, p := range pieces[1:] {
			s.Append(p)
		}
		rr := s.Reverse().Reverse()
		if rr.String() != s.String() {
			t.Errorf("reverse(reverse(%q)) = %q", s.String(), rr.String())
		}
		if rr.Len() != s.Len() {
			t.Errorf("reverse changed length of %q", s.String())
		}
	}
}

func TestReverseRuneAcrossChunks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	tests := [][]string{
		{"a\xc3", "\xa9b"},                // "aéb"
		{"\xf0", "\x9f", "", "\x98\x80G"}, // "😀G", emoji spread over three chunks
		{"AC\xe2\x82", "\xac"},            // "AC€"
		{"T\xc3"},                         // incomplete sequence at the end
		{"\xc3", "A"},                     // lead byte without continuation
	}
	for _, parts := range tests {
		l := strandOf(parts...)
		f := NewFlat(l.String())
		r := l.Reverse()
		if r.String() != f.Reverse().String() {
			t.Errorf("reverse of %q is %q, want %q", l.String(), r.String(), f.Reverse().String())
		}
		if r.Reverse().String() != l.String() {
			t.Errorf("double reverse of %q is %q", l.String(), r.Reverse().String())
		}
		if err := r.(*Link).Check(); err != nil {
			t.Error(err)
		}
	}
	if r := strandOf("a\xc3", "\xa9b").Reverse(); r.String() != "béa" {
		t.Errorf("expected 'béa', have %q", r.String())
	}
}
