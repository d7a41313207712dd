package component

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func walkClip() Clip {
	return NewClip("player", 0, 128, 64, 128, 4, 0.1, true)
}

func TestClipIDsAreUnique(t *testing.T) {
	a, b := walkClip(), walkClip()
	assert.NotEqual(t, a.ID, b.ID)
}

func TestClipSource(t *testing.T) {
	c := walkClip()
	assert.Equal(t, image.Rect(0, 128, 64, 256), c.Source(0))
	assert.Equal(t, image.Rect(192, 128, 256, 256), c.Source(3))
	assert.Panics(t, func() { c.Source(4) })
	assert.Panics(t, func() { c.Source(-1) })
}

func TestAnimationPlayerAdvances(t *testing.T) {
	p := NewAnimationPlayer(walkClip())

	p.Update(0.05)
	assert.Equal(t, 0, p.Frame())
	p.Update(0.06)
	assert.Equal(t, 1, p.Frame())

	// Several frames in one long update, wrapping around.
	p.Update(0.3)
	assert.Equal(t, 0, p.Frame())
}

func TestAnimationPlayerStopsOnLastFrame(t *testing.T) {
	c := walkClip()
	c.Repeat = false
	p := NewAnimationPlayer(c)

	p.Update(10)
	assert.Equal(t, 3, p.Frame())
	assert.True(t, p.Stopped())

	p.Update(10)
	assert.Equal(t, 3, p.Frame())
}

func TestAnimationPlayerZeroFrameTimeFreezes(t *testing.T) {
	c := walkClip()
	c.FrameTime = 0
	p := NewAnimationPlayer(c)

	p.Update(5)
	assert.Equal(t, 0, p.Frame())
	assert.False(t, p.Stopped())
}

func TestAnimationPlayerSpeedUpSlowsPlayback(t *testing.T) {
	p := NewAnimationPlayer(walkClip())
	p.SpeedUp = 2

	p.Update(0.15)
	assert.Equal(t, 0, p.Frame())
	p.Update(0.1)
	assert.Equal(t, 1, p.Frame())
}

func TestAnimationPlayerPlay(t *testing.T) {
	walk := walkClip()
	idle := NewClip("player", 0, 0, 64, 128, 2, 0.2, true)
	p := NewAnimationPlayer(walk)
	p.SpeedUp = 0.5
	p.Update(0.12)
	frame := p.Frame()
	assert.NotZero(t, frame)

	p.Play(walk)
	assert.Equal(t, frame, p.Frame())
	assert.Equal(t, float32(0.5), p.SpeedUp)

	p.Play(idle)
	assert.Equal(t, idle.ID, p.Clip().ID)
	assert.Equal(t, 0, p.Frame())
	assert.Equal(t, float32(1), p.SpeedUp)
}

func TestAnimationPlayerFlip(t *testing.T) {
	p := NewAnimationPlayer(walkClip())
	assert.False(t, p.Flipped())
	p.Flip(true)
	assert.True(t, p.Flipped())
}
