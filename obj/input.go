package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}
	jumpKeys  = []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeySpace}
	pauseKeys = []ebiten.Key{ebiten.KeyEscape}
)

// Input holds this frame's keyboard actions.
type Input struct {
	left  bool
	right bool
	// jump and pause are true only on the frame their key went down.
	jump  bool
	pause bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard. Call once per frame before reading.
func (i *Input) Update() {
	i.poll(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

func (i *Input) poll(held, justPressed func(ebiten.Key) bool) {
	i.left = anyKey(leftKeys, held)
	i.right = anyKey(rightKeys, held)
	i.jump = anyKey(jumpKeys, justPressed)
	i.pause = anyKey(pauseKeys, justPressed)
}

func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

func (i *Input) Left() bool         { return i.left }
func (i *Input) Right() bool        { return i.right }
func (i *Input) JumpPressed() bool  { return i.jump }
func (i *Input) PausePressed() bool { return i.pause }
