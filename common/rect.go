package common

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle in pixels. X/Y is the top-left corner.
type Rect struct {
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) Left() float32   { return r.X }
func (r Rect) Right() float32  { return r.X + r.Width }
func (r Rect) Top() float32    { return r.Y }
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// Offset returns r translated by v.
func (r Rect) Offset(v mgl32.Vec2) Rect {
	return Rect{X: r.X + v.X(), Y: r.Y + v.Y(), Width: r.Width, Height: r.Height}
}

func (r Rect) Center() mgl32.Vec2 {
	return mgl32.Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
