package strands

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func threeChunks() *Link {
	s := New("")
	s.Append("AA")
	s.Append("BB")
	s.Append("CC")
	return s
}

func collect(cur *ChunkCursor) []string {
	var out []string
	for cur.HasNext() {
		out = append(out, cur.Next())
	}
	return out
}

func TestChunkCursorOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("AA")
	s.Append("BB")
	s.Append("CC")
	got := collect(s.Chunks())
	if !slices.Equal(got, []string{"AA", "BB", "CC"}) {
		t.Errorf("unexpected chunk sequence %v", got)
	}
}

func TestChunkCursorsAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := threeChunks()
	first := s.Chunks()
	first.Next()
	first.Next()
	second := s.Chunks()
	got := collect(second)
	if !slices.Equal(got, []string{"", "AA", "BB", "CC"}) {
		t.Errorf("second cursor disturbed by first: %v", got)
	}
	if rest := collect(first); !slices.Equal(rest, []string{"BB", "CC"}) {
		t.Errorf("first cursor disturbed by second: %v", rest)
	}
}

func TestChunkCursorExhausted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("AC")
	cur := s.Chunks()
	if cur.Remaining() != 1 {
		t.Errorf("expected 1 remaining chunk, have %d", cur.Remaining())
	}
	if cur.Next() != "AC" {
		t.Fatalf("unexpected first chunk")
	}
	if cur.HasNext() {
		t.Errorf("cursor should be exhausted")
	}
	if cur.Next() != "" {
		t.Errorf("exhausted cursor should yield empty string")
	}
	if _, ok := cur.NextChunk(); ok {
		t.Errorf("exhausted cursor should not yield chunks")
	}
	var nilCursor *ChunkCursor
	if nilCursor.HasNext() || nilCursor.Remaining() != 0 {
		t.Errorf("nil cursor should be exhausted")
	}
}

func TestChunkCursorIgnoresLaterAppends(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := New("AA")
	cur := s.Chunks()
	s.Append("BB")
	if got := collect(cur); !slices.Equal(got, []string{"AA"}) {
		t.Errorf("cursor should be bound to chunks at creation, has %v", got)
	}
}

func TestRangeChunk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := threeChunks()
	var got []string
	for text := range RangeChunk(s) {
		if text == "BB" {
			break
		}
		got = append(got, text)
	}
	if !slices.Equal(got, []string{"", "AA"}) {
		t.Errorf("unexpected range result %v", got)
	}
	got = slices.Collect(RangeChunk(s))
	if len(got) != 4 {
		t.Errorf("range should restart with a fresh cursor, have %v", got)
	}
}
