package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/platformer/common"
)

const (
	// dragThreshold is the squared speed at or below which drag is zero.
	dragThreshold float32 = 0.1
	// groundFriction is the friction coefficient against the floor.
	groundFriction float32 = 0.9
)

// AirResistance returns the deceleration air drag applies to a body moving at
// vel, pointing against the direction of motion.
//
// See http://en.wikipedia.org/wiki/Drag_(physics).
func AirResistance(vel mgl32.Vec2, props Properties) mgl32.Vec2 {
	speedSq := vel.Dot(vel)
	if speedSq <= dragThreshold {
		return mgl32.Vec2{}
	}
	force := 0.5 * AirDensity * speedSq * props.DragCoefficient * props.CrossArea
	return vel.Normalize().Mul(-force / props.Mass)
}

// FrictionApplies reports whether ground friction should slow a body with the
// given horizontal acceleration and velocity. Friction never works against an
// active input: it only applies when coasting or when the input opposes the
// current motion.
func FrictionApplies(accelX, velX float32) bool {
	if accelX == 0 {
		return true
	}
	return velX != 0 && (velX > 0) != (accelX > 0)
}

// FrictionAmount is the speed ground friction removes over dt.
func FrictionAmount(props Properties, dt float32) float32 {
	return groundFriction * Gravity * props.StopBonus * dt
}

// ApplyFriction moves velX toward zero by amount without crossing it.
func ApplyFriction(velX, amount float32) float32 {
	if velX < 0 {
		return min(velX+amount, 0)
	}
	return max(velX-amount, 0)
}

// ClampSpeed clamps speed to [-limit, limit].
func ClampSpeed(speed, limit float32) float32 {
	return common.Clamp(speed, -limit, limit)
}
