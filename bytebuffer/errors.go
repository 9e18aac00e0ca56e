package bytebuffer

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfBounds is matched by every *OutOfBoundsError through errors.Is
var ErrOutOfBounds = errors.New("out of bounds")

// Op identifies the buffer operation that failed a bounds check
type Op string

// values for Op
const (
	OpAdvance Op = "advance"
	OpSetPos  Op = "seek"
	OpPeek    Op = "peek"
	OpRead    Op = "read"
	OpRange   Op = "range"
	OpLoad    Op = "load"
)

// OutOfBoundsError is returned when a position, step count, range or payload
// would touch or exceed the capacity of a buffer
type OutOfBoundsError struct {
	Op       Op
	Value    int // attempted steps, position, range start or payload size
	Length   int // range length, only set for OpRange
	Pos      int // cursor at the time of the failure
	Capacity int
}

func (e *OutOfBoundsError) Error() string {
	switch e.Op {
	case OpAdvance:
		return fmt.Sprintf("the number of steps %d exceeded from position %d the maximum capacity of the buffer (%d)",
			e.Value, e.Pos, e.Capacity)
	case OpSetPos:
		return fmt.Sprintf("the position %d is not valid because the maximum position is %d", e.Value, e.Capacity-1)
	case OpRange:
		return fmt.Sprintf("the range starting from %d with length %d exceeded the limit (%d)", e.Value, e.Length, e.Capacity)
	case OpLoad:
		return fmt.Sprintf("the payload of %d bytes exceeded the maximum capacity of the buffer (%d)", e.Value, e.Capacity)
	}

	return fmt.Sprintf("maximum position reached, no byte can be read at position %d (maximum position is %d)",
		e.Value, e.Capacity-1)
}

// Is makes every OutOfBoundsError match ErrOutOfBounds
func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

func (b *PacketBuffer) outOfBounds(op Op, val int) error {
	return &OutOfBoundsError{Op: op, Value: val, Pos: b.pos, Capacity: Capacity}
}
