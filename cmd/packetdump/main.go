package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bytepacket/bytepacket"
	"github.com/bytepacket/bytepacket/bytebuffer"
)

var (
	verbose = flag.Bool("v", false, "log packet loading to stderr")
	count   = flag.Int("n", 16, "number of bytes to dump from each packet")
)

// demo walks a fresh buffer through every operation, including the ones
// that are expected to fail
func demo(w io.Writer) {
	b := bytebuffer.NewPacketBuffer()

	fmt.Fprintf(w, "Initial position: %v\n", b.Pos())

	report(w, "Position after advance(10)", b.Advance(10), b.Pos())
	report(w, "Position after seek(152)", b.SetPos(152), b.Pos())

	v, err := b.Peek(256)
	report(w, "Byte at position 256", err, v)

	report(w, "seek(512)", b.SetPos(512), b.Pos())

	b.MustSetPos(140)
	v, err = b.ReadByte()
	report(w, "Read byte at position 140", err, v)
	fmt.Fprintf(w, "Position after read: %v\n", b.Pos())

	b.MustSetPos(0)
	report(w, "advance(600)", b.Advance(600), b.Pos())

	r, err := b.Range(0, 10)
	report(w, "Range from 0 to 9", err, r)

	u16, err := b.ReadUint16()
	report(w, "Read u16", err, u16)

	u32, err := b.ReadUint32()
	report(w, "Read u32", err, u32)

	fmt.Fprintf(w, "Final position: %v\n", b.Pos())
}

func report(w io.Writer, what string, err error, val interface{}) {
	if err != nil {
		fmt.Fprintf(w, "%v: error: %v\n", what, err)
		return
	}

	fmt.Fprintf(w, "%v: %v\n", what, val)
}

func dump(w io.Writer, p *bytepacket.Packet, n int) error {
	fmt.Fprintf(w, "\nFile      = %v\nSize      = %v\n", p.Loc, p.Size)

	// a range cannot reach the last byte of a buffer
	switch {
	case n < 0:
		n = 0
	case n > p.Size:
		n = p.Size
	}
	if n >= bytebuffer.Capacity {
		n = bytebuffer.Capacity - 1
	}

	data, err := p.Buffer.Range(0, n)
	if err != nil {
		return err
	}

	for off := 0; off < len(data); off += 8 {
		end := off + 8
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(w, "\t[%04x] % x\n", off, data[off:end])
	}

	if p.Size >= 2 {
		v, err := p.Buffer.ReadUint16()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "u16[0]    = 0x%04x (%v)\n", v, v)
	}

	if p.Size >= 6 {
		v, err := p.Buffer.ReadUint32()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "u32[2]    = 0x%08x (%v)\n", v, v)
	}

	return nil
}

func main() {
	flag.Parse()

	if *verbose {
		bytepacket.SetLogWriters(os.Stderr)
		bytepacket.EnableLogging(true)
	}

	if flag.NArg() == 0 {
		demo(os.Stdout)
		return
	}

	stats := bytepacket.NewSizeStats()

	for _, name := range flag.Args() {
		p, err := bytepacket.Open(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if err := dump(os.Stdout, p, *count); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if err := stats.RecordPacket(p); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if stats.Count() > 1 {
		fmt.Printf("\nSizes     = %v\n", stats)
	}
}
