package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/bytepacket/bytepacket"
	"github.com/bytepacket/bytepacket/bytebuffer"
)

func compareGolden(t *testing.T, golden string, actual []byte) {
	expected, err := os.ReadFile(golden)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(expected, actual) {
		t.Fatalf(`
Failed for %s,
expected
-------------------------------------------
%s
-------------------------------------------
got
-------------------------------------------
%s
-------------------------------------------

			`, golden, string(expected), string(actual))
	}
}

func TestDemo(t *testing.T) {
	var b = new(bytes.Buffer)
	demo(b)
	compareGolden(t, "testdata/demo.golden", b.Bytes())
}

func TestDump(t *testing.T) {
	for _, c := range []struct {
		input, output string
		n             int
	}{
		{"testdata/query.pkt", "testdata/query.golden", 16},
		{"testdata/query.pkt", "testdata/query.golden", 1000},
	} {
		p, err := bytepacket.Open(c.input)
		if err != nil {
			t.Fatal(err)
		}

		var b = new(bytes.Buffer)
		if err = dump(b, p, c.n); err != nil {
			t.Fatal(err)
		}

		compareGolden(t, c.output, b.Bytes())
	}
}

func TestDumpEmpty(t *testing.T) {
	p := &bytepacket.Packet{Name: "empty", Loc: "empty", Buffer: bytebuffer.NewPacketBuffer()}

	var b = new(bytes.Buffer)
	if err := dump(b, p, 16); err != nil {
		t.Fatal(err)
	}

	if e := "\nFile      = empty\nSize      = 0\n"; b.String() != e {
		t.Errorf("expected %q, got %q", e, b.String())
	}
}
