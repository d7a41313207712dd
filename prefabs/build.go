package prefabs

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/entity"
)

// Clip cuts the strip c out of this sheet. Every call yields a new clip id.
func (s SpriteSpec) Clip(c ClipSpec) component.Clip {
	return component.NewClip(s.Sheet, c.Col*s.FrameW, c.Row*s.FrameH, s.FrameW, s.FrameH, c.Frames, c.FrameTime, c.Repeat)
}

func (s *CreatureSpec) Animations() entity.Animations {
	return entity.Animations{
		Idle: s.Sprite.Clip(s.Animation["idle"]),
		Walk: s.Sprite.Clip(s.Animation["walk"]),
		Jump: s.Sprite.Clip(s.Animation["jump"]),
		Fall: s.Sprite.Clip(s.Animation["fall"]),
	}
}

func (s *CreatureSpec) SpawnPoint() mgl32.Vec2 {
	return mgl32.Vec2{s.Spawn.X, s.Spawn.Y}
}

// Build creates the creature at pos with its controller. actions is only
// read by keyboard controllers.
func (s *CreatureSpec) Build(pos mgl32.Vec2, actions controller.Actions) (*entity.Entity, error) {
	cfg := controller.Config{
		Actions:    actions,
		MoveAccel:  s.Controller.MoveAccel,
		JumpAccel:  s.Controller.JumpAccel,
		AirControl: s.Controller.AirControl,
		MoveTime:   s.Controller.MoveTime,
		Seed:       s.Controller.Seed,
	}
	if s.Controller.Script != "" {
		script, err := LoadScript(s.Controller.Script)
		if err != nil {
			return nil, err
		}
		cfg.Script = script
	}

	ctrl, err := controller.New(s.Controller.Kind, cfg)
	if err != nil {
		return nil, err
	}
	c := entity.NewCreature(s.Name, pos, s.Bounds, s.Physics, s.Animations())
	return entity.New(c, ctrl), nil
}

func (s *BlockSpec) Build(at PlaceSpec) *entity.Block {
	rect := common.NewRect(at.X, at.Y, s.Width, s.Height)
	return entity.NewBlock(rect, s.Damage, s.Sprite.Clip(s.Animation))
}
