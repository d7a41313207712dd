package physics

import "github.com/milk9111/platformer/common"

// contactEpsilon absorbs float32 drift left over after a body is clamped to
// a tile edge, so a resting body never reads as overlapping the row or column
// it touches.
const contactEpsilon float32 = 0.001

func floorTile(v, ts float32) int { return common.Floor((v + contactEpsilon) / ts) }
func ceilTile(v, ts float32) int  { return common.Ceil((v - contactEpsilon) / ts) }

// span returns the half-open tile range [lo, hi) covered by the pixel
// interval [from, to], clamped to [0, n).
func span(from, to, ts float32, n int) (lo, hi int) {
	return max(floorTile(from, ts), 0), min(ceilTile(to, ts), n)
}

// scan walks tile indices along the movement axis from start toward end and
// returns the first index whose perpendicular strip [lo, hi) holds a solid
// tile. If none does, end is returned: the outermost tiles act as a wall.
func scan(start, end, dir, lo, hi int, solid func(along, across int) bool) int {
	for i := start; (dir > 0 && i <= end) || (dir < 0 && i >= end); i += dir {
		for j := lo; j < hi; j++ {
			if solid(i, j) {
				return i
			}
		}
	}
	return end
}

// towards drops a limit pointing against the motion. That only happens when
// the body already sits on or past the boundary, so it may not move at all.
func towards(limit, move float32) float32 {
	if limit*move < 0 {
		return 0
	}
	return limit
}

// SweepX returns the horizontal displacement bounds may make in the direction
// of move before touching a solid tile or the map edge. A zero move skips the
// scan.
func SweepX(bounds common.Rect, g Grid, move float32) float32 {
	if move == 0 {
		return 0
	}
	ts := float32(g.TileSize())
	rowLo, rowHi := span(bounds.Top(), bounds.Bottom(), ts, g.Height())
	solid := func(col, row int) bool { return g.TileInfoAt(col, row).Solid }

	if move < 0 {
		start := min(floorTile(bounds.Left(), ts), g.Width()-1)
		col := scan(start, 0, -1, rowLo, rowHi, solid)
		return towards(float32(col+1)*ts-bounds.Left(), move)
	}
	start := max(ceilTile(bounds.Right(), ts), 0)
	col := scan(start, g.Width()-1, 1, rowLo, rowHi, solid)
	return towards(float32(col)*ts-bounds.Right(), move)
}

// SweepY is SweepX for the vertical axis.
func SweepY(bounds common.Rect, g Grid, move float32) float32 {
	if move == 0 {
		return 0
	}
	ts := float32(g.TileSize())
	colLo, colHi := span(bounds.Left(), bounds.Right(), ts, g.Width())
	solid := func(row, col int) bool { return g.TileInfoAt(col, row).Solid }

	if move < 0 {
		start := min(floorTile(bounds.Top(), ts), g.Height()-1)
		row := scan(start, 0, -1, colLo, colHi, solid)
		return towards(float32(row+1)*ts-bounds.Top(), move)
	}
	start := max(ceilTile(bounds.Bottom(), ts), 0)
	row := scan(start, g.Height()-1, 1, colLo, colHi, solid)
	return towards(float32(row)*ts-bounds.Bottom(), move)
}
