package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/system"
	"golang.org/x/image/colornames"
)

const reloadDebounce = 250 * time.Millisecond

type Options struct {
	Debug bool
	// Watch reloads prefabs and scripts edited under prefabs/ while running.
	Watch bool
}

type Game struct {
	spec  *prefabs.GameSpec
	world *system.World

	input    *obj.Input
	camera   *obj.Camera
	registry *assets.Registry
	tileset  *ebiten.Image
	watcher  *prefabs.Watcher

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
	debug   bool

	last     time.Time
	logTimer float32
}

func NewGame(spec *prefabs.GameSpec, opts Options) (*Game, error) {
	input := obj.NewInput()
	world, err := system.NewWorld(spec, input)
	if err != nil {
		return nil, err
	}

	g := &Game{
		spec:     spec,
		world:    world,
		input:    input,
		camera:   obj.NewCamera(spec.Width, spec.Height),
		registry: assets.NewRegistry("assets"),
		debug:    opts.Debug,
		last:     time.Now(),
	}
	g.pauseUI = NewPauseUI(g)

	tileset, err := g.registry.Sheet(spec.Tileset.Sheet, sheetSpec(spec.Tileset, true))
	if err != nil {
		return nil, err
	}
	g.tileset = tileset
	if err := g.loadSheets(); err != nil {
		return nil, err
	}

	g.camera.SetWorldBounds(world.Level.Size())
	g.camera.SetSmooth(spec.Smoothness)
	g.camera.SnapTo(world.Player.Center())

	if opts.Watch {
		w, err := prefabs.NewWatcher(reloadDebounce, "prefabs", "prefabs/scripts")
		if err != nil {
			return nil, fmt.Errorf("watch prefabs: %w", err)
		}
		g.watcher = w
		log.Info("watching prefabs for changes")
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func sheetSpec(s prefabs.SpriteSpec, blankFirst bool) assets.SheetSpec {
	return assets.SheetSpec{
		FrameW:     s.FrameW,
		FrameH:     s.FrameH,
		Cols:       s.Cols,
		Rows:       s.Rows,
		Color:      s.Color.Or(colornames.Magenta),
		BlankFirst: blankFirst,
	}
}

// loadSheets makes sure every sprite in the world has an image registered
// under its sheet name.
func (g *Game) loadSheets() error {
	for _, a := range g.world.Actors() {
		if _, err := g.registry.Sheet(a.Spec.Sprite.Sheet, sheetSpec(a.Spec.Sprite, false)); err != nil {
			return err
		}
	}
	seen := map[string]bool{}
	for _, p := range g.spec.Hazards {
		if seen[p.Prefab] {
			continue
		}
		seen[p.Prefab] = true
		block, err := prefabs.LoadBlockSpec(p.Prefab)
		if err != nil {
			return err
		}
		if _, err := g.registry.Sheet(block.Sprite.Sheet, sheetSpec(block.Sprite, false)); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) sheet(name string) *ebiten.Image {
	img, err := g.registry.Sheet(name, assets.SheetSpec{})
	if err != nil {
		return nil
	}
	return img
}

func (g *Game) Update() error {
	now := time.Now()
	dt := float32(now.Sub(g.last).Seconds())
	g.last = now

	g.input.Update()
	g.reload()

	if g.input.PausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		if g.quit {
			return ebiten.Termination
		}
		return nil
	}

	for _, c := range g.world.Step(dt) {
		log.Info("hazard touched", "creature", c.Actor.Name, "damage", c.Block.Damage)
	}
	g.camera.Follow(g.world.Player.Center())

	g.logTimer += dt
	if g.logTimer >= 1 {
		g.logTimer = 0
		p := g.world.Player
		log.Debug("player", "vel", p.Vel, "pos", p.Pos, "on_ground", p.Grounded)
	}
	return nil
}

// reload applies any prefab edits reported since the last frame.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			n, err := g.world.Reload(change)
			switch {
			case errors.Is(err, system.ErrRestartRequired):
				log.Warn("restart to apply", "file", change.Name)
			case err != nil:
				log.Error("reload failed", "file", change.Name, "err", err)
			case n > 0:
				if err := g.loadSheets(); err != nil {
					log.Error("reload sheets", "err", err)
				}
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Error("prefab watcher", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.spec.Background.Or(colornames.Skyblue))

	g.camera.Render(screen, func(world *ebiten.Image) {
		obj.DrawMap(world, g.world.Level, g.tileset, g.camera)
		for _, h := range g.world.Hazards {
			obj.DrawSprite(world, g.sheet(h.Anim.Clip().Sheet), h.Anim, h.Position(), g.camera)
		}
		for _, a := range g.world.Creatures {
			obj.DrawSprite(world, g.sheet(a.Anim.Clip().Sheet), a.Anim, a.Pos, g.camera)
		}
		p := g.world.Player
		obj.DrawSprite(world, g.sheet(p.Anim.Clip().Sheet), p.Anim, p.Pos, g.camera)
	})

	if g.debug {
		p := g.world.Player
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f\npos: %.1f, %.1f\nvel: %.2f, %.2f\nground: %v wall: %v",
			ebiten.ActualFPS(), p.Pos.X(), p.Pos.Y(), p.Vel.X(), p.Vel.Y(), p.Grounded, p.HitWall,
		))
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Width, g.spec.Height
}
