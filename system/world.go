package system

import (
	"errors"
	"fmt"
	"path"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/entity"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/tilemap"
)

// ErrRestartRequired is returned by Reload for edits it cannot apply to a
// running world, such as game.yaml.
var ErrRestartRequired = errors.New("system: change needs a restart")

// World owns the level and everything spawned into it.
type World struct {
	Level     *tilemap.Map
	Integ     physics.Integrator
	Player    *Actor
	Creatures []*Actor
	Hazards   []*entity.Block

	actions    controller.Actions
	placements []prefabs.PlaceSpec
	touching   map[contact]bool
}

// NewWorld loads the level named by spec and spawns its player, creatures
// and hazards. actions feeds keyboard controllers.
func NewWorld(spec *prefabs.GameSpec, actions controller.Actions) (*World, error) {
	w := &World{actions: actions}
	if err := w.Load(spec); err != nil {
		return nil, err
	}
	return w, nil
}

// Load replaces the level and respawns everything from spec.
func (w *World) Load(spec *prefabs.GameSpec) error {
	if w == nil {
		return fmt.Errorf("world is nil")
	}
	lvl, err := levels.Load(spec.Level, spec.TileInfo, spec.TileSize)
	if err != nil {
		return err
	}

	player, err := w.spawnCreature(spec.Player, nil)
	if err != nil {
		return err
	}
	creatures := make([]*Actor, 0, len(spec.Creatures))
	for _, name := range spec.Creatures {
		c, err := w.spawnCreature(name, nil)
		if err != nil {
			return err
		}
		creatures = append(creatures, c)
	}
	hazards, err := spawnHazards(spec.Hazards)
	if err != nil {
		return err
	}

	w.Level = lvl
	w.Integ = physics.Integrator{MaxStep: spec.MaxStep}
	w.Player = player
	w.Creatures = creatures
	w.Hazards = hazards
	w.placements = spec.Hazards
	w.touching = make(map[contact]bool)
	log.Info("world loaded", "level", spec.Level, "creatures", len(creatures), "hazards", len(hazards))
	return nil
}

// Actors returns the player followed by the other creatures.
func (w *World) Actors() []*Actor {
	actors := make([]*Actor, 0, len(w.Creatures)+1)
	if w.Player != nil {
		actors = append(actors, w.Player)
	}
	return append(actors, w.Creatures...)
}

// Step advances every actor and hazard by dt and returns the hazard contacts
// that began during this step.
func (w *World) Step(dt float32) []Contact {
	for _, a := range w.Actors() {
		a.Update(w.Integ, w.Level, dt)
	}
	for _, h := range w.Hazards {
		h.Update(dt)
	}
	return w.resolveHazards()
}

// Reload applies an on-disk edit. Actors built from the changed prefab or
// script are rebuilt in place with a fresh body; hazards are re-placed when
// their block prefab changes. It returns how many things were rebuilt.
func (w *World) Reload(change prefabs.Change) (int, error) {
	if !change.Script && change.Name == "game.yaml" {
		return 0, ErrRestartRequired
	}

	rebuilt := 0
	if w.Player != nil && w.Player.uses(change) {
		fresh, err := w.respawn(w.Player)
		if err != nil {
			return rebuilt, err
		}
		w.Player = fresh
		rebuilt++
	}
	for i, c := range w.Creatures {
		if !c.uses(change) {
			continue
		}
		fresh, err := w.respawn(c)
		if err != nil {
			return rebuilt, err
		}
		w.Creatures[i] = fresh
		rebuilt++
	}

	if !change.Script && w.placesBlock(change.Name) {
		hazards, err := spawnHazards(w.placements)
		if err != nil {
			return rebuilt, err
		}
		w.Hazards = hazards
		w.touching = make(map[contact]bool)
		rebuilt += len(hazards)
	}
	return rebuilt, nil
}

func (w *World) respawn(a *Actor) (*Actor, error) {
	pos := a.Pos
	fresh, err := w.spawnCreature(a.Prefab, &pos)
	if err != nil {
		return nil, err
	}
	log.Info("respawned", "prefab", a.Prefab, "x", pos.X(), "y", pos.Y())
	return fresh, nil
}

func (w *World) placesBlock(name string) bool {
	for _, p := range w.placements {
		if p.Prefab == name {
			return true
		}
	}
	return false
}

// Actor is a spawned creature and the prefab it came from.
type Actor struct {
	Prefab string
	Spec   *prefabs.CreatureSpec
	*entity.Entity
}

func (a *Actor) uses(change prefabs.Change) bool {
	if change.Script {
		script := a.Spec.Controller.Script
		return script != "" && path.Base(script) == path.Base(change.Name)
	}
	return a.Prefab == change.Name
}

// spawnCreature builds prefab at its spawn point, or at pos when given.
func (w *World) spawnCreature(prefab string, pos *mgl32.Vec2) (*Actor, error) {
	spec, err := prefabs.LoadCreatureSpec(prefab)
	if err != nil {
		return nil, err
	}
	at := spec.SpawnPoint()
	if pos != nil {
		at = *pos
	}
	e, err := spec.Build(at, w.actions)
	if err != nil {
		return nil, fmt.Errorf("system: spawn %s: %w", prefab, err)
	}
	return &Actor{Prefab: prefab, Spec: spec, Entity: e}, nil
}

func spawnHazards(placements []prefabs.PlaceSpec) ([]*entity.Block, error) {
	specs := make(map[string]*prefabs.BlockSpec)
	blocks := make([]*entity.Block, 0, len(placements))
	for _, p := range placements {
		spec, ok := specs[p.Prefab]
		if !ok {
			var err error
			spec, err = prefabs.LoadBlockSpec(p.Prefab)
			if err != nil {
				return nil, err
			}
			specs[p.Prefab] = spec
		}
		blocks = append(blocks, spec.Build(p))
	}
	return blocks, nil
}
