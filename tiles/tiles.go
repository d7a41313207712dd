package tiles

import (
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// TileInfo describes how a tile id behaves. Row n of a tile-info table
// describes tile id n.
type TileInfo struct {
	Solid    bool    `csv:"solid"`
	Friction float32 `csv:"friction"`
}

// TileSet pairs the tile-info table with the uniform tile size in pixels.
type TileSet struct {
	TileSize int
	Info     []TileInfo
}

func NewTileSet(tileSize int, info []TileInfo) (*TileSet, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("tiles: invalid tile size %d", tileSize)
	}
	if len(info) == 0 {
		return nil, errors.New("tiles: empty tile-info table")
	}
	return &TileSet{TileSize: tileSize, Info: info}, nil
}

// Lookup returns the tile info for id. An id outside the table is a broken map
// invariant and panics.
func (ts *TileSet) Lookup(id uint16) TileInfo {
	if int(id) >= len(ts.Info) {
		panic(fmt.Sprintf("tiles: tile id %d outside table of %d entries", id, len(ts.Info)))
	}
	return ts.Info[id]
}

// Contains reports whether id has an entry in the table.
func (ts *TileSet) Contains(id uint16) bool {
	return int(id) < len(ts.Info)
}

// ReadCSV reads a tile-info table with a `solid,friction` header.
func ReadCSV(r io.Reader) ([]TileInfo, error) {
	var info []TileInfo
	if err := gocsv.Unmarshal(r, &info); err != nil {
		return nil, fmt.Errorf("tiles: unmarshal table: %w", err)
	}
	if len(info) == 0 {
		return nil, errors.New("tiles: empty tile-info table")
	}
	return info, nil
}

func WriteCSV(w io.Writer, info []TileInfo) error {
	if err := gocsv.Marshal(info, w); err != nil {
		return fmt.Errorf("tiles: marshal table: %w", err)
	}
	return nil
}
