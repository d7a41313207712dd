package controller

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/platformer/physics"
)

// Policy turns a roll in [0, 1) into a walking direction: -1, 0 or 1.
type Policy interface {
	Direction(roll float64) int
}

type PolicyFunc func(roll float64) int

func (f PolicyFunc) Direction(roll float64) int { return f(roll) }

// DefaultPolicy stands still half the time and otherwise walks right or
// left with equal odds.
var DefaultPolicy = PolicyFunc(func(roll float64) int {
	switch {
	case roll < 0.5:
		return 0
	case roll < 0.75:
		return 1
	}
	return -1
})

// RandomWalker picks a new horizontal acceleration every MoveTime seconds.
type RandomWalker struct {
	MoveAccel float32
	MoveTime  float32
	Policy    Policy

	rng  *rand.Rand
	wait float32
}

func NewRandomWalker(moveAccel, moveTime float32, policy Policy, seed int64) *RandomWalker {
	if policy == nil {
		policy = DefaultPolicy
	}
	return &RandomWalker{
		MoveAccel: moveAccel,
		MoveTime:  moveTime,
		Policy:    policy,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (w *RandomWalker) Update(b physics.Body, dt float32) {
	w.wait += dt
	if w.wait <= w.MoveTime {
		return
	}

	dir := w.Policy.Direction(w.rng.Float64())
	b.SetAcceleration(mgl32.Vec2{float32(dir) * w.MoveAccel, b.Acceleration().Y()})
	w.wait -= w.MoveTime
}
