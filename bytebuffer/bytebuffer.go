package bytebuffer

import (
	"io"

	"github.com/pkg/errors"
)

var (
	_ Reader        = (*PacketBuffer)(nil)
	_ io.ReaderFrom = (*PacketBuffer)(nil)
)

// PacketBuffer is a fixed capacity byte array with a read cursor
//
// the zero value is an empty (all zero) buffer with the cursor at 0, ready to use
type PacketBuffer struct {
	buf [Capacity]byte
	pos int
}

// NewPacketBuffer creates a new zero filled PacketBuffer
func NewPacketBuffer() *PacketBuffer {
	return &PacketBuffer{}
}

// NewPacketBufferBytes creates a new PacketBuffer holding a copy of data
func NewPacketBufferBytes(data []byte) (*PacketBuffer, error) {
	b := NewPacketBuffer()
	if _, err := b.Load(data); err != nil {
		return nil, err
	}
	return b, nil
}

// Pos returns the current read position of the PacketBuffer
func (b *PacketBuffer) Pos() int { return b.pos }

// Len returns the capacity of the PacketBuffer
func (b *PacketBuffer) Len() int { return Capacity }

// Bytes returns the internal storage of the PacketBuffer
//
// the returned slice is borrowed, it must not be written to and
// it is only valid for as long as the buffer is
func (b *PacketBuffer) Bytes() []byte { return b.buf[:] }

// Advance moves the cursor forward by steps
//
// the cursor has to land strictly inside the buffer, so advancing
// onto Capacity fails
func (b *PacketBuffer) Advance(steps int) error {
	if steps < 0 || steps >= Capacity-b.pos {
		return b.outOfBounds(OpAdvance, steps)
	}

	b.pos += steps
	return nil
}

// MustAdvance will try to advance the cursor and panic on error
func (b *PacketBuffer) MustAdvance(steps int) {
	if err := b.Advance(steps); err != nil {
		panic(err)
	}
}

// SetPos sets the read position of the PacketBuffer to the specified position
func (b *PacketBuffer) SetPos(position int) error {
	if position < 0 || position >= Capacity {
		return b.outOfBounds(OpSetPos, position)
	}

	b.pos = position
	return nil
}

// MustSetPos will try to set the position inside the buffer and panic on error
func (b *PacketBuffer) MustSetPos(position int) {
	if err := b.SetPos(position); err != nil {
		panic(err)
	}
}

// Peek returns the byte at position without moving the cursor
func (b *PacketBuffer) Peek(position int) (byte, error) {
	return b.get(OpPeek, position)
}

func (b *PacketBuffer) get(op Op, position int) (byte, error) {
	if position < 0 || position >= Capacity {
		return 0, b.outOfBounds(op, position)
	}

	return b.buf[position], nil
}

// ReadByte returns the byte under the cursor and advances the cursor by one
func (b *PacketBuffer) ReadByte() (byte, error) {
	v, err := b.get(OpRead, b.pos)
	if err != nil {
		return 0, err
	}

	b.pos++
	return v, nil
}

// Range returns n bytes starting at start without moving the cursor
//
// the returned slice aliases the buffer storage, it is not a copy.
// Like Advance, a range may not reach the last byte of the buffer
func (b *PacketBuffer) Range(start, n int) ([]byte, error) {
	if start < 0 || n < 0 || start >= Capacity || n >= Capacity-start {
		return nil, &OutOfBoundsError{Op: OpRange, Value: start, Length: n, Pos: b.pos, Capacity: Capacity}
	}

	return b.buf[start : start+n : start+n], nil
}

// ReadUint16 reads a big endian uint16 from the cursor
//
// if the second byte cannot be read, the cursor stays advanced past the first
func (b *PacketBuffer) ReadUint16() (uint16, error) {
	var res uint16

	for i := 0; i < 2; i++ {
		v, err := b.ReadByte()
		if err != nil {
			return 0, err
		}
		res = res<<8 | uint16(v)
	}

	return res, nil
}

// ReadUint32 reads a big endian uint32 from the cursor, with the same
// partial advance on failure as ReadUint16
func (b *PacketBuffer) ReadUint32() (uint32, error) {
	var res uint32

	for i := 0; i < 4; i++ {
		v, err := b.ReadByte()
		if err != nil {
			return 0, err
		}
		res = res<<8 | uint32(v)
	}

	return res, nil
}

// Load copies data into the start of the buffer, zeroes the rest
// and resets the cursor
//
// a payload larger than Capacity is rejected and leaves the buffer untouched
func (b *PacketBuffer) Load(data []byte) (int, error) {
	if len(data) > Capacity {
		return 0, b.outOfBounds(OpLoad, len(data))
	}

	b.buf = [Capacity]byte{}
	n := copy(b.buf[:], data)
	b.pos = 0

	return n, nil
}

// MustLoad panics if Load fails
func (b *PacketBuffer) MustLoad(data []byte) {
	if _, err := b.Load(data); err != nil {
		panic(err)
	}
}

// ReadFrom fills the buffer with at most Capacity bytes from r, zeroes
// the rest and resets the cursor
//
// a short payload is not an error, anything past Capacity is left unread in r.
// On a read error the buffer is left untouched
func (b *PacketBuffer) ReadFrom(r io.Reader) (int64, error) {
	var buf [Capacity]byte

	n, err := io.ReadFull(r, buf[:])
	switch err {
	case nil, io.EOF, io.ErrUnexpectedEOF:
	default:
		return int64(n), errors.Wrap(err, "cannot read packet")
	}

	b.buf = buf
	b.pos = 0

	return int64(n), nil
}
