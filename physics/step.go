package physics

import "github.com/milk9111/platformer/common"

// Step advances b by dt seconds against grid g.
//
// Velocity is integrated first (acceleration, then air drag, then ground
// friction and the horizontal speed cap). Movement is then resolved on the x
// axis and, with the corrected x position, on the y axis. Drag and the
// friction check use the velocity b had when the step began.
func Step(b Body, g Grid, dt float32) {
	props := b.Properties()
	accel := b.Acceleration()
	start := b.Velocity()

	vel := start.Add(accel.Mul(dt))
	vel = vel.Add(AirResistance(start, props).Mul(dt))
	if b.OnGround() && FrictionApplies(accel.X(), start.X()) {
		vel[0] = ApplyFriction(vel[0], FrictionAmount(props, dt))
	}
	vel[0] = ClampSpeed(vel[0], props.MaxVelX)
	b.SetVelocity(vel)

	pos := b.Position()

	moveX := vel.X() * dt * PixelScale
	limitX := SweepX(b.Bounds(), g, moveX)
	if common.Abs(moveX) > common.Abs(limitX) {
		pos[0] += limitX
		vel[0] = 0
		b.SetHitWall(true)
	} else {
		pos[0] += moveX
		b.SetHitWall(false)
	}
	b.SetPosition(pos)

	moveY := vel.Y() * dt * PixelScale
	limitY := SweepY(b.Bounds(), g, moveY)
	if common.Abs(moveY) > common.Abs(limitY) {
		pos[1] += limitY
		vel[1] = 0
		// Only a floor grounds the body; a ceiling just stops it. This
		// departs from grounding on any blocked vertical move.
		b.SetOnGround(moveY > 0)
	} else {
		pos[1] += moveY
		b.SetOnGround(false)
	}
	b.SetPosition(pos)
	b.SetVelocity(vel)
}

// Integrator runs Step, splitting long frames into sub-steps no longer than
// MaxStep seconds. Drag and friction are integrated explicitly and overshoot
// on a long frame, so a hitch should not be fed to Step in one piece. A zero
// MaxStep never splits.
type Integrator struct {
	MaxStep float32
}

// Steps returns how many sub-steps Advance takes for dt.
func (in Integrator) Steps(dt float32) int {
	if dt <= 0 {
		return 0
	}
	if in.MaxStep <= 0 || dt <= in.MaxStep {
		return 1
	}
	return common.Ceil(dt / in.MaxStep)
}

// Advance moves b forward by dt seconds. Non-positive dt does nothing.
func (in Integrator) Advance(b Body, g Grid, dt float32) {
	n := in.Steps(dt)
	if n == 0 {
		return
	}
	h := dt / float32(n)
	for range n {
		Step(b, g, h)
	}
}
