package tilemap

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/platformer/tiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawMap hand-assembles a MAP buffer so the decoder is checked against the
// format itself rather than against Encode.
func rawMap(magic string, ver uint8, w, h uint32, ids ...uint16) []byte {
	var buf bytes.Buffer
	buf.WriteString(magic)
	buf.WriteByte(ver)
	_ = binary.Write(&buf, binary.LittleEndian, w)
	_ = binary.Write(&buf, binary.LittleEndian, h)
	for _, id := range ids {
		_ = binary.Write(&buf, binary.LittleEndian, id)
	}
	return buf.Bytes()
}

func testTileSet(t *testing.T) *tiles.TileSet {
	t.Helper()
	ts, err := tiles.NewTileSet(32, []tiles.TileInfo{{}, {Solid: true, Friction: 1}, {Solid: true, Friction: 0.5}})
	require.NoError(t, err)
	return ts
}

func TestDecodeSyntheticMap(t *testing.T) {
	w, h, ids, err := Decode(bytes.NewReader(rawMap("MAP", 1, 2, 2, 0, 1, 2, 1)))
	require.NoError(t, err)

	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, []uint16{0, 1, 2, 1}, ids)
}

func TestLoadRoundTrip(t *testing.T) {
	want := []uint16{0, 1, 2, 1}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, 2, 2, want))
	assert.Equal(t, rawMap("MAP", 1, 2, 2, want...), buf.Bytes())

	m, err := Load(&buf, testTileSet(t))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, want, m.IDs())
	assert.Equal(t, uint16(2), m.TileAt(0, 1))
	assert.Equal(t, uint16(1), m.TileAt(1, 1))
}

func TestDecodeErrors(t *testing.T) {
	full := rawMap("MAP", 1, 2, 2, 0, 1, 2, 1)

	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"bad_magic", rawMap("PAM", 1, 2, 2, 0, 0, 0, 0), ErrBadMagic},
		{"bad_version", rawMap("MAP", 2, 2, 2, 0, 0, 0, 0), ErrBadVersion},
		{"zero_width", rawMap("MAP", 1, 0, 2), ErrDimensions},
		{"empty", nil, ErrTruncated},
		{"short_header", full[:6], ErrTruncated},
		{"short_tiles", full[:len(full)-1], ErrTruncated},
		{"missing_row", rawMap("MAP", 1, 2, 2, 0, 1), ErrTruncated},
		{"huge_header", rawMap("MAP", 1, 0xFFFFFFFF, 0xFFFFFFFF), ErrDimensions},
		{"over_tile_limit", rawMap("MAP", 1, 0x10000, 0x10000), ErrDimensions},
		{"large_but_short", rawMap("MAP", 1, 4096, 4096, 1, 2, 3), ErrTruncated},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, _, err := Decode(bytes.NewReader(c.data))
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestDecodeAcrossChunks(t *testing.T) {
	const w, h = 100, 90
	ids := make([]uint16, w*h)
	for i := range ids {
		ids[i] = uint16(i % 3)
	}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, w, h, ids))

	gotW, gotH, got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, w, gotW)
	assert.Equal(t, h, gotH)
	assert.Equal(t, ids, got)
}

func TestLoadRejectsUnknownTileID(t *testing.T) {
	_, err := Load(bytes.NewReader(rawMap("MAP", 1, 2, 1, 0, 7)), testTileSet(t))
	assert.ErrorIs(t, err, ErrInvalidTile)
}

func TestEncodeRejectsMismatchedLength(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, 3, 3, []uint16{0, 1}), ErrDimensions)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.map")
	require.NoError(t, os.WriteFile(path, rawMap("MAP", 1, 3, 1, 1, 0, 1), 0o644))

	m, err := LoadFile(path, testTileSet(t))
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 0, 1}, m.IDs())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.map"), testTileSet(t))
	assert.Error(t, err)
}

func TestFromASCII(t *testing.T) {
	src := "#..#\n#..#\n####\n"
	w, h, ids, err := FromASCII(strings.NewReader(src), nil)
	require.NoError(t, err)

	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, []uint16{1, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1}, ids)
}

func TestFromASCIIErrors(t *testing.T) {
	_, _, _, err := FromASCII(strings.NewReader("#..\n#.\n"), nil)
	assert.ErrorIs(t, err, ErrDimensions)

	_, _, _, err = FromASCII(strings.NewReader("#x#\n"), nil)
	assert.Error(t, err)

	_, _, _, err = FromASCII(strings.NewReader(""), nil)
	assert.ErrorIs(t, err, ErrDimensions)
}
