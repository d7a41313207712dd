package common

import "github.com/go-gl/mathgl/mgl32"

// ViewOrigin returns the top-left corner of a view of size screen centred on
// target, clamped to [0, world] and rounded to whole pixels.
func ViewOrigin(target, screen, world mgl32.Vec2) mgl32.Vec2 {
	o := target.Sub(screen.Mul(0.5))
	return mgl32.Vec2{
		Round(Clamp(o.X(), 0, world.X())),
		Round(Clamp(o.Y(), 0, world.Y())),
	}
}
