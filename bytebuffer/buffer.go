// Package bytebuffer implements a fixed capacity packet buffer for decoding
// binary wire formats
//
// a received packet (a DNS message for instance) is copied once into a
// PacketBuffer, after which a decoder walks it with a cursor, reading single
// bytes, byte ranges and big endian integers, and jumping around when the
// format points somewhere else in the packet (name compression pointers being
// the usual suspect)
//
// every access is validated against the fixed capacity *before* it touches
// memory, and a failed validation never moves the cursor. Failures are
// reported as *OutOfBoundsError values that match ErrOutOfBounds, so decoders
// can do a series of reads and branch on the kind of failure without parsing
// messages
package bytebuffer

import "io"

// Capacity is the fixed size in bytes of every PacketBuffer
const Capacity = 512

// Reader defines the read surface of a fixed capacity buffer with a cursor
type Reader interface {
	io.ByteReader
	Pos() int
	SetPos(int) error
	Advance(int) error
	Len() int
	Peek(int) (byte, error)
	Range(start, n int) ([]byte, error)
	ReadUint16() (uint16, error)
	ReadUint32() (uint32, error)
}
