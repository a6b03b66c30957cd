package strands

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewStrand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("GATTACA")
	if s.String() != "GATTACA" {
		t.Errorf("expected strand to be 'GATTACA', is %q", s.String())
	}
	if s.Len() != 7 {
		t.Errorf("expected length 7, is %d", s.Len())
	}
	if s.FragmentCount() != 1 {
		t.Errorf("expected one chunk, have %d", s.FragmentCount())
	}
	if s.Stats() != "# append calls = 0" {
		t.Errorf("unexpected stats %q", s.Stats())
	}
}

func TestEmptyStrand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("")
	if s.Len() != 0 || s.String() != "" {
		t.Errorf("expected empty strand, have %q", s.String())
	}
	if s.FragmentCount() != 1 {
		t.Errorf("expected empty strand to hold one chunk, has %d", s.FragmentCount())
	}
	var zero Link
	if zero.Len() != 0 || zero.String() != "" || zero.FragmentCount() != 0 {
		t.Errorf("zero Link should behave like the empty strand")
	}
	zero.Append("AC")
	if zero.String() != "AC" || zero.Len() != 2 {
		t.Errorf("append to zero Link failed, have %q", zero.String())
	}
}

func TestAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("AAGA")
	s.Append("ATTCGG")
	s.Append("")
	if s.String() != "AAGAATTCGG" {
		t.Errorf("unexpected strand %q", s.String())
	}
	if s.Len() != 10 {
		t.Errorf("expected length 10, is %d", s.Len())
	}
	if s.AppendCount() != 2 {
		t.Errorf("expected 2 append calls, have %d", s.AppendCount())
	}
	if s.FragmentCount() != 3 {
		t.Errorf("expected 3 chunks, have %d", s.FragmentCount())
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}

func TestInitializeResets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("AA")
	s.Append("CC")
	cur := s.Chunks()
	s.Initialize("TT")
	if s.String() != "TT" || s.AppendCount() != 0 || s.FragmentCount() != 1 {
		t.Errorf("Initialize did not reset strand: %q, %s", s.String(), s.Stats())
	}
	var got []string
	for cur.HasNext() {
		got = append(got, cur.Next())
	}
	if len(got) != 2 || got[0] != "AA" || got[1] != "CC" {
		t.Errorf("cursor created before Initialize should keep old chunks, has %v", got)
	}
}

func TestAppendStrand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	a := New("GG")
	a.Append("TT")
	b := New("CC")
	b.Append("AA")
	if err := b.AppendStrand(a); err != nil {
		t.Fatal(err)
	}
	if b.String() != "CCAAGGTT" {
		t.Errorf("unexpected strand %q", b.String())
	}
	if b.Len() != 8 {
		t.Errorf("expected length 8, have %d", b.Len())
	}
	if b.AppendCount() != 2 {
		t.Errorf("appending a strand should count as one append, have %d", b.AppendCount())
	}
	if err := b.Check(); err != nil {
		t.Error(err)
	}
}

func TestAppendStrandDoesNotAlias(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	a := New("GG")
	b := New("CC")
	if err := b.AppendStrand(a); err != nil {
		t.Fatal(err)
	}
	a.Append("TTTT")
	if b.String() != "CCGG" {
		t.Errorf("appending to a changed b to %q", b.String())
	}
	b.Append("AA")
	if a.String() != "GGTTTT" {
		t.Errorf("appending to b changed a to %q", a.String())
	}
	if a.Len() != 6 || b.Len() != 6 {
		t.Errorf("unexpected lengths a=%d b=%d", a.Len(), b.Len())
	}
}

func TestAppendStrandShareBackingArray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	// a has spare capacity after its last chunk; b must not write into it
	a := New("A")
	a.Append("C")
	b := New("G")
	if err := b.AppendStrand(a); err != nil {
		t.Fatal(err)
	}
	b.Append("X")
	a.Append("Y")
	if a.String() != "ACY" || b.String() != "GACX" {
		t.Errorf("strands interfere: a=%q b=%q", a.String(), b.String())
	}
}

func TestAppendSelf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("AC")
	s.Append("GT")
	if err := s.AppendStrand(s); err != nil {
		t.Fatal(err)
	}
	if s.String() != "ACGTACGT" || s.Len() != 8 {
		t.Errorf("unexpected self-append result %q (len %d)", s.String(), s.Len())
	}
	if s.FragmentCount() != 4 {
		t.Errorf("expected 4 chunks, have %d", s.FragmentCount())
	}
}

func TestAppendOtherStrandType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("AC")
	if err := s.AppendStrand(NewFlat("GTTA")); err != nil {
		t.Fatal(err)
	}
	if s.String() != "ACGTTA" {
		t.Errorf("unexpected strand %q", s.String())
	}
	if s.Len() != 6 {
		t.Errorf("cross-type append should add the true length, have %d", s.Len())
	}
	if s.AppendCount() != 1 {
		t.Errorf("expected 1 append call, have %d", s.AppendCount())
	}
}

func TestAppendStrandRejectsNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("AC")
	if err := s.AppendStrand(nil); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
	var nilLink *Link
	if err := s.AppendStrand(nilLink); !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("expected ErrUnsupportedShape, got %v", err)
	}
	var nilFlat *Flat
	if err := s.AppendStrand(nilFlat); !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("expected ErrUnsupportedShape for nil *Flat, got %v", err)
	}
	if s.AppendCount() != 0 || s.String() != "AC" {
		t.Errorf("failed appends must not change the strand")
	}
}

func TestCheckReportsShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("ACGT")
	s.chain.length = 3
	err := s.Check()
	if !errors.Is(err, ErrUnsupportedShape) {
		t.Fatalf("expected ErrUnsupportedShape, got %v", err)
	}
	t.Logf("error message: %v", err)
	var nilLink *Link
	if err := nilLink.Check(); !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("expected ErrUnsupportedShape for nil strand, got %v", err)
	}
}

func TestSummaryAndInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("a\n")
	s.Append("😀b")
	sum := s.Summary()
	if sum.Bytes != 7 || sum.Chars != 4 || sum.Lines != 1 {
		t.Errorf("unexpected summary %+v", sum)
	}
	if s.CharCount() != 4 {
		t.Errorf("expected 4 runes, have %d", s.CharCount())
	}
	if s.Info() != "*strands.Link" {
		t.Errorf("unexpected info %q", s.Info())
	}
}
