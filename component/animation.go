package component

import (
	"fmt"
	"image"
	"sync/atomic"
)

var clipIDs atomic.Uint64

// NextClipID returns an id no other clip in the process has.
func NextClipID() uint64 {
	return clipIDs.Add(1)
}

// Clip is one animation: a horizontal strip of frames on a spritesheet.
// Frames are laid out left-to-right starting at OffsetX/OffsetY.
type Clip struct {
	ID      uint64
	Sheet   string
	OffsetX int
	OffsetY int
	FrameW  int
	FrameH  int
	Frames  int
	// FrameTime is seconds per frame. Zero holds the first frame.
	FrameTime float32
	Repeat    bool
}

// NewClip returns a clip with a fresh id.
func NewClip(sheet string, offsetX, offsetY, frameW, frameH, frames int, frameTime float32, repeat bool) Clip {
	return Clip{
		ID:        NextClipID(),
		Sheet:     sheet,
		OffsetX:   offsetX,
		OffsetY:   offsetY,
		FrameW:    frameW,
		FrameH:    frameH,
		Frames:    frames,
		FrameTime: frameTime,
		Repeat:    repeat,
	}
}

// Source returns the sheet region of frame. It panics if frame is outside
// the clip.
func (c Clip) Source(frame int) image.Rectangle {
	if frame < 0 || frame >= c.Frames {
		panic(fmt.Sprintf("component: frame %d outside clip of %d frames", frame, c.Frames))
	}
	x := c.OffsetX + frame*c.FrameW
	return image.Rect(x, c.OffsetY, x+c.FrameW, c.OffsetY+c.FrameH)
}

// AnimationPlayer steps through the frames of the clip it is playing.
type AnimationPlayer struct {
	// SpeedUp scales the frame time; above 1 plays slower. Reset to 1 when a
	// new clip starts.
	SpeedUp float32

	clip    Clip
	frame   int
	wait    float32
	stopped bool
	flip    bool
}

func NewAnimationPlayer(clip Clip) *AnimationPlayer {
	return &AnimationPlayer{clip: clip, SpeedUp: 1}
}

// Play switches to clip. Playing the clip that is already running keeps its
// progress.
func (p *AnimationPlayer) Play(clip Clip) {
	if p.clip.ID == clip.ID {
		return
	}
	p.clip = clip
	p.Reset()
}

// Reset rewinds to the first frame.
func (p *AnimationPlayer) Reset() {
	p.frame = 0
	p.wait = 0
	p.SpeedUp = 1
	p.stopped = false
}

// Update advances the animation by dt seconds. A clip that does not repeat
// stops on its last frame.
func (p *AnimationPlayer) Update(dt float32) {
	if p.stopped || p.clip.FrameTime == 0 {
		return
	}
	p.wait += dt
	for step := p.clip.FrameTime * p.SpeedUp; p.wait > step; {
		p.wait -= step
		if p.frame+1 < p.clip.Frames {
			p.frame++
			continue
		}
		if !p.clip.Repeat {
			p.stopped = true
			return
		}
		p.frame = 0
	}
}

// Flip mirrors the sprite horizontally when drawn.
func (p *AnimationPlayer) Flip(flip bool) { p.flip = flip }

func (p *AnimationPlayer) Flipped() bool { return p.flip }
func (p *AnimationPlayer) Clip() Clip    { return p.clip }
func (p *AnimationPlayer) Frame() int    { return p.frame }
func (p *AnimationPlayer) Stopped() bool { return p.stopped }

// Source is the sheet region of the current frame.
func (p *AnimationPlayer) Source() image.Rectangle {
	return p.clip.Source(p.frame)
}
