package bytepacket

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bytepacket/bytepacket/bytebuffer"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Packet is a captured packet loaded into a PacketBuffer
type Packet struct {
	Name   string                   // name the packet was opened with
	Loc    string                   // resolved location of the packet file
	Size   int                      // payload size in bytes, the rest of the buffer is zero
	Buffer *bytebuffer.PacketBuffer // the loaded buffer, with the cursor at 0
}

// packetFileLocation resolves name to a file location
//
// names containing a path separator are used as they are, bare names
// are looked up in PacketDir
func packetFileLocation(name string) (string, error) {
	if name == "" {
		return "", errors.New("packet name cannot be empty")
	}

	if strings.ContainsRune(name, os.PathSeparator) {
		return filepath.Clean(name), nil
	}

	return filepath.Join(PacketDir(), name), nil
}

// Open resolves name and loads the packet file into a new buffer
func Open(name string) (*Packet, error) {
	loc, err := packetFileLocation(name)
	if err != nil {
		return nil, err
	}

	if logging {
		logger.Info("deduced location of the packet file",
			zap.String("module", "packet"),
			zap.String("name", name),
			zap.String("location", loc),
		)
	}

	b, n, err := bytebuffer.LoadFile(loc)
	if err != nil {
		if logging {
			logger.Error("cannot load packet",
				zap.String("module", "packet"),
				zap.String("location", loc),
				zap.Error(err),
			)
		}
		return nil, errors.Wrapf(err, "cannot open packet %v", name)
	}

	if logging {
		logger.Info("loaded packet",
			zap.String("module", "packet"),
			zap.String("location", loc),
			zap.Int("size", n),
		)
	}

	return &Packet{Name: name, Loc: loc, Size: n, Buffer: b}, nil
}

// MustOpen is an Open that panics
func MustOpen(name string) *Packet {
	p, err := Open(name)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Packet) String() string {
	return "Packet: " + p.Name
}
