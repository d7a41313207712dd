package entity

import (
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/physics"
)

// Entity is a creature and whatever steers it.
type Entity struct {
	*Creature
	Controller controller.Controller
}

func New(c *Creature, ctrl controller.Controller) *Entity {
	if ctrl == nil {
		ctrl = controller.Inert{}
	}
	return &Entity{Creature: c, Controller: ctrl}
}

// Update runs the controller, then physics and animation.
func (e *Entity) Update(integ physics.Integrator, g physics.Grid, dt float32) {
	e.Controller.Update(e.Creature, dt)
	e.Creature.Update(integ, g, dt)
}
