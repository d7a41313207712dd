// Package entity composes bodies, controllers and animations into the things
// that live in a level.
package entity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/physics"
)

// Animations are the clips a creature switches between.
type Animations struct {
	Idle component.Clip
	Walk component.Clip
	Jump component.Clip
	Fall component.Clip
}

// Creature is a physical body that picks its own animation from its motion.
type Creature struct {
	physics.State

	Name       string
	Animations Animations
	Anim       *component.AnimationPlayer
}

func NewCreature(name string, pos mgl32.Vec2, bounds common.Rect, props physics.Properties, anims Animations) *Creature {
	return &Creature{
		State:      physics.NewState(pos, bounds, props),
		Name:       name,
		Animations: anims,
		Anim:       component.NewAnimationPlayer(anims.Idle),
	}
}

// Update steps the body then the animation.
func (c *Creature) Update(integ physics.Integrator, g physics.Grid, dt float32) {
	integ.Advance(c, g, dt)
	c.animate()
	c.Anim.Update(dt)
}

func (c *Creature) animate() {
	if c.Accel.X() != 0 {
		c.Anim.Flip(c.Accel.X() < 0)
	}

	if !c.Grounded {
		if c.Vel.Y() > 0 {
			c.Anim.Play(c.Animations.Fall)
		} else {
			c.Anim.Play(c.Animations.Jump)
		}
		return
	}

	if c.Accel.X() == 0 && c.Vel.X() == 0 {
		c.Anim.Play(c.Animations.Idle)
		return
	}
	c.Anim.Play(c.Animations.Walk)
	// Slow walkers play the cycle slower.
	if c.Vel.X() != 0 {
		c.Anim.SpeedUp = 1 / common.Abs(c.Vel.X())
	} else {
		c.Anim.SpeedUp = 1
	}
}

// Center is the middle of the hitbox.
func (c *Creature) Center() mgl32.Vec2 {
	return c.Bounds().Center()
}
