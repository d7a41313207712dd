package system

import (
	"github.com/milk9111/platformer/entity"
)

// Contact is an actor touching a hazard block.
type Contact struct {
	Actor *Actor
	Block *entity.Block
}

type contact struct {
	actor *Actor
	block *entity.Block
}

// resolveHazards returns contacts that were not present on the previous
// step. An actor standing in lava reports once until it leaves.
func (w *World) resolveHazards() []Contact {
	if w.touching == nil {
		w.touching = make(map[contact]bool)
	}
	now := make(map[contact]bool)
	var entered []Contact
	for _, a := range w.Actors() {
		bounds := a.Bounds()
		for _, h := range w.Hazards {
			if !h.Touches(bounds) {
				continue
			}
			key := contact{actor: a, block: h}
			now[key] = true
			if !w.touching[key] {
				entered = append(entered, Contact{Actor: a, Block: h})
			}
		}
	}
	w.touching = now
	return entered
}
