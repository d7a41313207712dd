package entity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
)

// Block is an animated hazard fixed in place. It takes no part in physics.
type Block struct {
	Rect   common.Rect
	Damage float32
	Anim   *component.AnimationPlayer
}

func NewBlock(rect common.Rect, damage float32, clip component.Clip) *Block {
	return &Block{Rect: rect, Damage: damage, Anim: component.NewAnimationPlayer(clip)}
}

func (b *Block) Update(dt float32) { b.Anim.Update(dt) }

func (b *Block) Position() mgl32.Vec2 { return mgl32.Vec2{b.Rect.X, b.Rect.Y} }

// Touches reports whether r overlaps the block.
func (b *Block) Touches(r common.Rect) bool { return b.Rect.Intersects(r) }
