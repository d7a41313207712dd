package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/tiles"
)

const tileSize = 32

// rowGrid is a tile grid drawn as text, '#' solid and anything else empty.
type rowGrid []string

func (g rowGrid) Width() int    { return len(g[0]) }
func (g rowGrid) Height() int   { return len(g) }
func (g rowGrid) TileSize() int { return tileSize }

func (g rowGrid) TileInfoAt(x, y int) tiles.TileInfo {
	if x < 0 || y < 0 || x >= g.Width() || y >= g.Height() {
		panic("tile out of range")
	}
	if g[y][x] == '#' {
		return tiles.TileInfo{Solid: true, Friction: 1}
	}
	return tiles.TileInfo{}
}

func openGrid(w, h int) rowGrid {
	row := make([]byte, w)
	for i := range row {
		row[i] = '.'
	}
	g := make(rowGrid, h)
	for i := range g {
		g[i] = string(row)
	}
	return g
}

// floorGrid is an open grid whose last row is solid.
func floorGrid(w, h int) rowGrid {
	g := openGrid(w, h)
	row := make([]byte, w)
	for i := range row {
		row[i] = '#'
	}
	g[h-1] = string(row)
	return g
}

// wallGrid is an open grid with column col solid top to bottom.
func wallGrid(w, h, col int) rowGrid {
	g := openGrid(w, h)
	for y := range g {
		row := []byte(g[y])
		row[col] = '#'
		g[y] = string(row)
	}
	return g
}

var player = Properties{
	DragCoefficient: 0.47,
	Mass:            70,
	CrossArea:       0.76,
	MaxVelX:         9,
	StopBonus:       6,
}

// frictionless has no drag and no practical speed cap.
var frictionless = Properties{Mass: 1, MaxVelX: 100, StopBonus: 1}

// box is a one tile body whose position is its top-left corner.
func box(x, y float32, props Properties) *State {
	s := NewState(mgl32.Vec2{x, y}, common.NewRect(0, 0, tileSize, tileSize), props)
	return &s
}
