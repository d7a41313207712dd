package tilemap

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/platformer/tiles"
)

const (
	magic   = "MAP"
	version = 1

	// maxTiles bounds width*height so a corrupt header cannot demand an
	// enormous allocation.
	maxTiles = 1 << 24
	// readChunk is how many ids are decoded per read.
	readChunk = 4096
)

var (
	ErrBadMagic    = errors.New("bad magic")
	ErrBadVersion  = errors.New("unsupported version")
	ErrTruncated   = errors.New("truncated map data")
	ErrDimensions  = errors.New("invalid dimensions")
	ErrInvalidTile = errors.New("tile id not in tile-info table")
)

type header struct {
	Magic   [3]byte
	Version uint8
	Width   uint32
	Height  uint32
}

// Decode reads a little-endian MAP stream: "MAP", version byte, u32 width,
// u32 height, then width*height u16 tile ids.
func Decode(r io.Reader) (width, height int, ids []uint16, err error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return 0, 0, nil, fmt.Errorf("tilemap: read header: %w", truncated(err))
	}
	if string(h.Magic[:]) != magic {
		return 0, 0, nil, fmt.Errorf("tilemap: magic %q: %w", h.Magic[:], ErrBadMagic)
	}
	if h.Version != version {
		return 0, 0, nil, fmt.Errorf("tilemap: version %d: %w", h.Version, ErrBadVersion)
	}
	if h.Width == 0 || h.Height == 0 {
		return 0, 0, nil, fmt.Errorf("tilemap: %dx%d: %w", h.Width, h.Height, ErrDimensions)
	}

	n := uint64(h.Width) * uint64(h.Height)
	if n > maxTiles {
		return 0, 0, nil, fmt.Errorf("tilemap: %dx%d exceeds %d tiles: %w", h.Width, h.Height, maxTiles, ErrDimensions)
	}

	ids, err = readTiles(r, int(n))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("tilemap: read %d tiles: %w", n, truncated(err))
	}
	return int(h.Width), int(h.Height), ids, nil
}

// readTiles decodes n ids in chunks, so a short stream fails before the
// whole grid is allocated.
func readTiles(r io.Reader, n int) ([]uint16, error) {
	ids := make([]uint16, 0, min(n, readChunk))
	buf := make([]uint16, min(n, readChunk))
	for len(ids) < n {
		chunk := buf[:min(readChunk, n-len(ids))]
		if err := binary.Read(r, binary.LittleEndian, chunk); err != nil {
			return nil, err
		}
		ids = append(ids, chunk...)
	}
	return ids, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// Encode writes ids in the MAP format.
func Encode(w io.Writer, width, height int, ids []uint16) error {
	if width <= 0 || height <= 0 || len(ids) != width*height {
		return fmt.Errorf("tilemap: %d ids for %dx%d map: %w", len(ids), width, height, ErrDimensions)
	}
	h := header{Version: version, Width: uint32(width), Height: uint32(height)}
	copy(h.Magic[:], magic)

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("tilemap: write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, ids); err != nil {
		return fmt.Errorf("tilemap: write tiles: %w", err)
	}
	return bw.Flush()
}

func Load(r io.Reader, ts *tiles.TileSet) (*Map, error) {
	width, height, ids, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return New(width, height, ids, ts)
}

func LoadFile(path string, ts *tiles.TileSet) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Load(bufio.NewReader(f), ts)
	if err != nil {
		return nil, fmt.Errorf("tilemap: load %s: %w", path, err)
	}
	return m, nil
}
