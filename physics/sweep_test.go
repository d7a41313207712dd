package physics

import (
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/stretchr/testify/assert"
)

func TestSweepZeroMoveSkipsScan(t *testing.T) {
	// A grid that panics on any lookup.
	var g rowGrid
	r := common.NewRect(10, 10, 20, 20)
	assert.Zero(t, SweepX(r, g, 0))
	assert.Zero(t, SweepY(r, g, 0))
}

func TestSweepFindsNearestSolid(t *testing.T) {
	g := rowGrid{
		"..........",
		"..#....#..",
		"..........",
		"..........",
	}
	r := common.NewRect(4*tileSize+5, tileSize, 20, 20)

	assert.Equal(t, float32(7*tileSize-(4*tileSize+25)), SweepX(r, g, 100))
	assert.Equal(t, float32(3*tileSize-(4*tileSize+5)), SweepX(r, g, -100))
}

func TestSweepIgnoresRowsOutsideBody(t *testing.T) {
	g := rowGrid{
		"..#.......",
		"..........",
		"..#.......",
	}
	r := common.NewRect(5*tileSize, tileSize, tileSize, tileSize)

	// Only the map edge at column 0 stops it.
	assert.Equal(t, float32(tileSize-5*tileSize), SweepX(r, g, -500))
}

func TestSweepMapEdgeActsAsWall(t *testing.T) {
	g := openGrid(10, 10)
	r := common.NewRect(5*tileSize, 5*tileSize, tileSize, tileSize)

	assert.Equal(t, float32(9*tileSize-6*tileSize), SweepX(r, g, 1000))
	assert.Equal(t, float32(tileSize-5*tileSize), SweepX(r, g, -1000))
	assert.Equal(t, float32(9*tileSize-6*tileSize), SweepY(r, g, 1000))
	assert.Equal(t, float32(tileSize-5*tileSize), SweepY(r, g, -1000))
}

func TestSweepOutsideGridBlocks(t *testing.T) {
	g := openGrid(4, 4)

	beyond := common.NewRect(20*tileSize, 20*tileSize, tileSize, tileSize)
	assert.NotPanics(t, func() {
		assert.Zero(t, SweepX(beyond, g, 10))
		assert.Zero(t, SweepY(beyond, g, 10))
	})

	before := common.NewRect(-10*tileSize, -10*tileSize, tileSize, tileSize)
	assert.NotPanics(t, func() {
		assert.Zero(t, SweepX(before, g, -10))
		assert.Zero(t, SweepY(before, g, -10))
	})
}

func TestSweepTouchingBodyIsNotInsideNeighbour(t *testing.T) {
	g := rowGrid{
		"....",
		"....",
		"####",
	}
	// Resting on the floor with a little float noise on the bottom edge.
	r := common.NewRect(tileSize, tileSize-0.0002, tileSize, tileSize)

	// The floor row is not part of the body's horizontal strip.
	assert.Equal(t, float32(3*tileSize)-r.Right(), SweepX(r, g, 100))
	assert.InDelta(t, 0, SweepY(r, g, 1), 1e-3)
}
