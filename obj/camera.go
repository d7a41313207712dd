package obj

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
)

// Camera tracks the world-space top-left of the visible area.
type Camera struct {
	Pos mgl32.Vec2

	screenW int
	screenH int
	off     *ebiten.Image

	// smoothing factor (0..1). higher -> faster follow. 0 snaps.
	smooth float32
	// world size in pixels
	world mgl32.Vec2
}

// NewCamera creates a camera for the given logical screen size.
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{screenW: screenW, screenH: screenH}
}

// SetWorldBounds sets the world pixel dimensions the camera is clamped to.
func (c *Camera) SetWorldBounds(size mgl32.Vec2) {
	c.world = size
}

func (c *Camera) SetSmooth(f float32) {
	c.smooth = common.Clamp(f, 0, 1)
}

func (c *Camera) screen() mgl32.Vec2 {
	return mgl32.Vec2{float32(c.screenW), float32(c.screenH)}
}

// Follow moves the view toward one centred on target.
func (c *Camera) Follow(target mgl32.Vec2) {
	want := common.ViewOrigin(target, c.screen(), c.world)
	if c.smooth <= 0 {
		c.Pos = want
		return
	}
	c.Pos = mgl32.Vec2{
		common.Round(common.Lerp(c.Pos.X(), want.X(), c.smooth)),
		common.Round(common.Lerp(c.Pos.Y(), want.Y(), c.smooth)),
	}
}

// SnapTo centres the view on target immediately, ignoring smoothing. Use it
// after a spawn so the first frame is not a long pan.
func (c *Camera) SnapTo(target mgl32.Vec2) {
	c.Pos = common.ViewOrigin(target, c.screen(), c.world)
}

// ToScreen converts a world position to screen coordinates.
func (c *Camera) ToScreen(p mgl32.Vec2) (float64, float64) {
	return float64(p.X() - c.Pos.X()), float64(p.Y() - c.Pos.Y())
}

// Render lets drawWorld paint into an offscreen image sized to the screen,
// then copies it onto screen.
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}

	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
