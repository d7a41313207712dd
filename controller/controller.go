// Package controller sets a body's acceleration and velocity each frame,
// before the body is stepped.
package controller

import (
	"fmt"

	"github.com/milk9111/platformer/physics"
)

// Controller steers a body. Update runs once per frame, ahead of the physics
// step of the same body.
type Controller interface {
	Update(b physics.Body, dt float32)
}

// Kind names a controller variant in prefab specs.
type Kind string

const (
	KindKeyboard Kind = "keyboard"
	KindWander   Kind = "wander"
	KindNone     Kind = "none"
)

// Config carries everything the variants need. Fields a kind does not use
// are ignored.
type Config struct {
	Actions    Actions
	MoveAccel  float32
	JumpAccel  float32
	AirControl float32
	MoveTime   float32
	// Script is tengo source for the wander policy. Empty uses DefaultPolicy.
	Script []byte
	Seed   int64
}

// New builds the controller for kind.
func New(kind Kind, cfg Config) (Controller, error) {
	switch kind {
	case KindKeyboard:
		if cfg.Actions == nil {
			return nil, fmt.Errorf("controller: keyboard needs actions")
		}
		return &Keyboard{
			Actions:    cfg.Actions,
			MoveAccel:  cfg.MoveAccel,
			JumpAccel:  cfg.JumpAccel,
			AirControl: cfg.AirControl,
		}, nil
	case KindWander:
		var policy Policy = DefaultPolicy
		if len(cfg.Script) > 0 {
			sp, err := NewScriptPolicy(cfg.Script)
			if err != nil {
				return nil, err
			}
			policy = sp
		}
		return NewRandomWalker(cfg.MoveAccel, cfg.MoveTime, policy, cfg.Seed), nil
	case KindNone, "":
		return Inert{}, nil
	}
	return nil, fmt.Errorf("controller: unknown kind %q", kind)
}

// Inert leaves the body alone.
type Inert struct{}

func (Inert) Update(physics.Body, float32) {}
