package controller

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/platformer/physics"
)

// Actions is the player input a Keyboard reads.
type Actions interface {
	Left() bool
	Right() bool
	// JumpPressed is true only on the frame the jump key went down.
	JumpPressed() bool
}

// Keyboard drives a body from player input.
type Keyboard struct {
	Actions   Actions
	MoveAccel float32
	JumpAccel float32
	// AirControl scales MoveAccel while airborne.
	AirControl float32
}

func (k *Keyboard) Update(b physics.Body, dt float32) {
	scale := float32(1)
	if !b.OnGround() {
		scale = k.AirControl
	}

	var ax float32
	switch {
	case k.Actions.Left():
		ax = -k.MoveAccel * scale
	case k.Actions.Right():
		ax = k.MoveAccel * scale
	}
	b.SetAcceleration(mgl32.Vec2{ax, b.Acceleration().Y()})

	if b.OnGround() && k.Actions.JumpPressed() {
		b.SetVelocity(b.Velocity().Add(mgl32.Vec2{0, -k.JumpAccel}))
	}
}
