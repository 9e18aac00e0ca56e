package bytepacket

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bytepacket/bytepacket/bytebuffer"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePacketFile(t *testing.T, dir, name string, data []byte) string {
	loc := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(loc, data, 0644))
	return loc
}

func TestPacketFileLocation(t *testing.T) {
	withConfig(t, "BYTEPACKET_PACKET_DIR=/srv/packets\n")

	cases := []struct {
		name, loc string
	}{
		{"query.pkt", "/srv/packets/query.pkt"},
		{"/tmp/query.pkt", "/tmp/query.pkt"},
		{"./query.pkt", "query.pkt"},
		{"captures/../query.pkt", "query.pkt"},
	}

	for _, c := range cases {
		loc, err := packetFileLocation(c.name)
		require.NoError(t, err)
		assert.Equal(t, c.loc, loc, c.name)
	}

	_, err := packetFileLocation("")
	assert.Error(t, err)
}

func TestOpenPath(t *testing.T) {
	// given
	loc := writePacketFile(t, t.TempDir(), "response.pkt", []byte{0xab, 0xcd, 0x81, 0x80})

	// when
	p, err := Open(loc)

	// then
	require.NoError(t, err)
	assert.Equal(t, loc, p.Name)
	assert.Equal(t, loc, p.Loc)
	assert.Equal(t, 4, p.Size)
	assert.Equal(t, "Packet: "+loc, p.String())

	id, err := p.Buffer.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xabcd), id)
}

func TestOpenBareName(t *testing.T) {
	dir := t.TempDir()
	withConfig(t, "BYTEPACKET_PACKET_DIR="+dir+"\n")

	writePacketFile(t, dir, "query.pkt", []byte{0, 1})

	p := MustOpen("query.pkt")
	assert.Equal(t, filepath.Join(dir, "query.pkt"), p.Loc)
	assert.Equal(t, 2, p.Size)
}

func TestOpenTooLarge(t *testing.T) {
	loc := writePacketFile(t, t.TempDir(), "jumbo.pkt", make([]byte, bytebuffer.Capacity*2))

	_, err := Open(loc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bytebuffer.ErrOutOfBounds))
}

func TestMustOpenPanics(t *testing.T) {
	assert.Panics(t, func() { MustOpen(filepath.Join(t.TempDir(), "missing.pkt")) })
}
