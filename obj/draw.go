package obj

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/tilemap"
)

// DrawMap draws the visible tiles of m. Tile id n is the n-th square of the
// horizontal tileset strip.
func DrawMap(dst *ebiten.Image, m *tilemap.Map, tileset *ebiten.Image, cam *Camera) {
	if m == nil || tileset == nil {
		return
	}
	ts := m.TileSize()
	fts := float32(ts)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	x0 := max(common.Floor(cam.Pos.X()/fts), 0)
	y0 := max(common.Floor(cam.Pos.Y()/fts), 0)
	x1 := min(common.Ceil((cam.Pos.X()+float32(w))/fts), m.Width())
	y1 := min(common.Ceil((cam.Pos.Y()+float32(h))/fts), m.Height())

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			id := int(m.TileAt(x, y))
			src := image.Rect(id*ts, 0, (id+1)*ts, ts)
			if !src.In(tileset.Bounds()) {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			sx, sy := cam.ToScreen(mgl32.Vec2{float32(x * ts), float32(y * ts)})
			op.GeoM.Translate(sx, sy)
			op.Filter = ebiten.FilterNearest
			dst.DrawImage(tileset.SubImage(src).(*ebiten.Image), op)
		}
	}
}

// DrawSprite draws the current frame of anim with its top-left at pos.
func DrawSprite(dst, sheet *ebiten.Image, anim *component.AnimationPlayer, pos mgl32.Vec2, cam *Camera) {
	if sheet == nil {
		return
	}
	src := anim.Source()
	x, y := cam.ToScreen(pos)
	op := &ebiten.DrawImageOptions{}
	if anim.Flipped() {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(src.Dx()), 0)
	}
	op.GeoM.Translate(float64(common.Round(float32(x))), float64(common.Round(float32(y))))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(sheet.SubImage(src).(*ebiten.Image), op)
}
