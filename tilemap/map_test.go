package tilemap

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileInfoAt(t *testing.T) {
	m, err := New(3, 2, []uint16{0, 1, 0, 2, 2, 2}, testTileSet(t))
	require.NoError(t, err)

	assert.Equal(t, 32, m.TileSize())
	assert.Equal(t, mgl32.Vec2{96, 64}, m.Size())
	assert.False(t, m.TileInfoAt(0, 0).Solid)
	assert.True(t, m.TileInfoAt(1, 0).Solid)
	assert.Equal(t, float32(0.5), m.TileInfoAt(2, 1).Friction)
}

func TestTileInfoAtOutOfRangePanics(t *testing.T) {
	m, err := New(3, 2, make([]uint16, 6), testTileSet(t))
	require.NoError(t, err)

	cases := []struct {
		name string
		x, y int
	}{
		{"x_equals_width", 3, 0},
		{"y_equals_height", 0, 2},
		{"negative_x", -1, 0},
		{"negative_y", 0, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Panics(t, func() { m.TileInfoAt(c.x, c.y) })
		})
	}
}

func TestNewValidates(t *testing.T) {
	ts := testTileSet(t)

	_, err := New(0, 2, nil, ts)
	assert.ErrorIs(t, err, ErrDimensions)

	_, err = New(2, 2, []uint16{0, 0, 0}, ts)
	assert.ErrorIs(t, err, ErrDimensions)

	_, err = New(2, 1, []uint16{0, 3}, ts)
	assert.ErrorIs(t, err, ErrInvalidTile)

	_, err = New(1, 1, []uint16{0}, nil)
	assert.Error(t, err)
}
