package bytebuffer

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// LoadFile maps the packet file at loc read only and copies its contents
// into a new PacketBuffer, returning the buffer and the payload size
func LoadFile(loc string) (*PacketBuffer, int, error) {
	f, err := os.Open(loc)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "cannot open packet file %v", loc)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, 0, errors.Wrapf(err, "cannot stat packet file %v", loc)
	}

	b := NewPacketBuffer()

	size := fi.Size()
	if size == 0 {
		// an empty file cannot be mapped
		return b, 0, nil
	}

	if size > Capacity {
		return nil, 0, errors.Wrapf(b.outOfBounds(OpLoad, int(size)), "cannot load packet file %v", loc)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "cannot map packet file %v", loc)
	}

	n, err := b.Load(m)
	if uerr := m.Unmap(); uerr != nil && err == nil {
		err = errors.Wrapf(uerr, "cannot unmap packet file %v", loc)
	}
	if err != nil {
		return nil, 0, err
	}

	return b, n, nil
}
