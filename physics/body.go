// Package physics advances bodies under gravity, air drag and ground friction
// and resolves their movement against a solid tile grid, one axis at a time.
package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/tiles"
)

const (
	// Gravity in m/s^2.
	Gravity float32 = 9.8
	// PixelScale converts metres to pixels.
	PixelScale float32 = 52.0
	// AirDensity in kg/m^3.
	AirDensity float32 = 1.2
)

// Properties holds the physical constants of a body. They are copied into the
// body when it is built and never change afterwards.
type Properties struct {
	DragCoefficient float32 `yaml:"drag_coefficient"`
	// Mass in kg.
	Mass float32 `yaml:"mass"`
	// CrossArea in m^2.
	CrossArea float32 `yaml:"cross_section_area"`
	// MaxVelX in m/s.
	MaxVelX float32 `yaml:"max_horizontal_speed"`
	// StopBonus scales ground friction so bodies come to rest quickly.
	StopBonus float32 `yaml:"stop_bonus"`
}

// Body is anything the integrator can move.
type Body interface {
	Acceleration() mgl32.Vec2
	SetAcceleration(mgl32.Vec2)
	Velocity() mgl32.Vec2
	SetVelocity(mgl32.Vec2)
	Position() mgl32.Vec2
	SetPosition(mgl32.Vec2)
	// Bounds is the hitbox in world pixels for the current position.
	Bounds() common.Rect
	OnGround() bool
	SetOnGround(bool)
	SetHitWall(bool)
	Properties() Properties
}

// Grid is the read-only tile grid bodies collide with.
type Grid interface {
	Width() int
	Height() int
	TileSize() int
	TileInfoAt(x, y int) tiles.TileInfo
}

// State is the plain Body implementation embedded by game entities.
type State struct {
	Accel mgl32.Vec2
	Vel   mgl32.Vec2
	// Pos is the top-left reference point the bounds offset is relative to.
	Pos          mgl32.Vec2
	BoundsOffset common.Rect
	Grounded     bool
	HitWall      bool
	Props        Properties
}

// NewState returns a body at rest with gravity as its only acceleration.
func NewState(pos mgl32.Vec2, boundsOffset common.Rect, props Properties) State {
	return State{
		Accel:        mgl32.Vec2{0, Gravity},
		Pos:          pos,
		BoundsOffset: boundsOffset,
		Props:        props,
	}
}

func (s *State) Acceleration() mgl32.Vec2     { return s.Accel }
func (s *State) SetAcceleration(a mgl32.Vec2) { s.Accel = a }
func (s *State) Velocity() mgl32.Vec2         { return s.Vel }
func (s *State) SetVelocity(v mgl32.Vec2)     { s.Vel = v }
func (s *State) Position() mgl32.Vec2         { return s.Pos }
func (s *State) SetPosition(p mgl32.Vec2)     { s.Pos = p }
func (s *State) Bounds() common.Rect          { return s.BoundsOffset.Offset(s.Pos) }
func (s *State) OnGround() bool               { return s.Grounded }
func (s *State) SetOnGround(v bool)           { s.Grounded = v }
func (s *State) IsHittingWall() bool          { return s.HitWall }
func (s *State) SetHitWall(v bool)            { s.HitWall = v }
func (s *State) Properties() Properties       { return s.Props }
