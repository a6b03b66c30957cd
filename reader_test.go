package strands

import (
	"bytes"
	"io"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := strandOf("", "Hello", "", " ", "World")
	b, err := io.ReadAll(s.Reader())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "Hello World" {
		t.Errorf("unexpected reader output %q", string(b))
	}
}

func TestReaderSmallBuffer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strands")
	defer teardown()
	//
	s := strandOf("ACG", "TTAGC", "A")
	r := Reader(s)
	var out bytes.Buffer
	p := make([]byte, 2)
	for {
		n, err := r.Read(p)
		out.Write(p[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if n == 0 {
			t.Fatalf("reader returned no bytes without error")
		}
	}
	if out.String() != "ACGTTAGCA" {
		t.Errorf("unexpected reader output %q", out.String())
	}
}
