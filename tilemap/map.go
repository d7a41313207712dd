package tilemap

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/platformer/tiles"
)

// Map is the tile grid a level is played on. It is read-only once built.
type Map struct {
	width   int
	height  int
	tiles   []uint16
	tileset *tiles.TileSet
}

// New builds a map from row-major tile ids (index x + y*width). Every id must
// have an entry in the tileset's info table.
func New(width, height int, ids []uint16, ts *tiles.TileSet) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tilemap: %dx%d: %w", width, height, ErrDimensions)
	}
	if len(ids) != width*height {
		return nil, fmt.Errorf("tilemap: %d ids for %dx%d map: %w", len(ids), width, height, ErrDimensions)
	}
	if ts == nil {
		return nil, fmt.Errorf("tilemap: nil tileset")
	}
	for i, id := range ids {
		if !ts.Contains(id) {
			return nil, fmt.Errorf("tilemap: tile %d at (%d,%d): %w", id, i%width, i/width, ErrInvalidTile)
		}
	}
	return &Map{width: width, height: height, tiles: ids, tileset: ts}, nil
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

func (m *Map) TileSize() int {
	return m.tileset.TileSize
}

// Size returns the map size in pixels.
func (m *Map) Size() mgl32.Vec2 {
	ts := float32(m.TileSize())
	return mgl32.Vec2{float32(m.width) * ts, float32(m.height) * ts}
}

// InBounds reports whether (x, y) is a valid tile coordinate.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// TileAt returns the tile id at (x, y). Coordinates outside the grid are a
// caller bug and panic.
func (m *Map) TileAt(x, y int) uint16 {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("tilemap: tile (%d,%d) outside %dx%d map", x, y, m.width, m.height))
	}
	return m.tiles[x+y*m.width]
}

func (m *Map) TileInfoAt(x, y int) tiles.TileInfo {
	return m.tileset.Lookup(m.TileAt(x, y))
}

// IDs returns a copy of the row-major tile ids.
func (m *Map) IDs() []uint16 {
	out := make([]uint16, len(m.tiles))
	copy(out, m.tiles)
	return out
}
