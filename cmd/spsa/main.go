// Command spsa previews the animation clips of a creature prefab.
//
// Left and right cycle clips, space mirrors the sprite.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

const size = 512

type previewGame struct {
	spec    *prefabs.CreatureSpec
	names   []string
	clips   map[string]component.Clip
	current int

	sheet  *ebiten.Image
	anim   *component.AnimationPlayer
	camera *obj.Camera
	speed  float32
}

func (g *previewGame) play(i int) {
	g.current = (i + len(g.names)) % len(g.names)
	g.anim.Play(g.clips[g.names[g.current]])
	g.anim.SpeedUp = g.speed
}

func (g *previewGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.play(g.current - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.play(g.current + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.anim.Flip(!g.anim.Flipped())
	}
	g.anim.Update(1.0 / float32(ebiten.TPS()))
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	src := g.anim.Source()
	pos := mgl32.Vec2{float32(size-src.Dx()) / 2, float32(size-src.Dy()) / 2}
	obj.DrawSprite(screen, g.sheet, g.anim, pos, g.camera)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s: %s  frame %d/%d",
		g.spec.Name, g.names[g.current], g.anim.Frame()+1, g.anim.Clip().Frames))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return size, size
}

func main() {
	prefab := flag.String("prefab", "player.yaml", "creature prefab to preview")
	speed := flag.Float64("speed", 1, "frame time multiplier; larger is slower")
	flag.Parse()

	spec, err := prefabs.LoadCreatureSpec(*prefab)
	if err != nil {
		log.Fatal("load prefab", "err", err)
	}

	registry := assets.NewRegistry("assets")
	sheet, err := registry.Sheet(spec.Sprite.Sheet, assets.SheetSpec{
		FrameW: spec.Sprite.FrameW,
		FrameH: spec.Sprite.FrameH,
		Cols:   spec.Sprite.Cols,
		Rows:   spec.Sprite.Rows,
		Color:  spec.Sprite.Color.Or(colornames.Magenta),
	})
	if err != nil {
		log.Fatal("load sheet", "sheet", spec.Sprite.Sheet, "err", err)
	}

	g := &previewGame{
		spec:   spec,
		clips:  map[string]component.Clip{},
		sheet:  sheet,
		camera: obj.NewCamera(size, size),
		speed:  float32(*speed),
	}
	for name, c := range spec.Animation {
		g.names = append(g.names, name)
		g.clips[name] = spec.Sprite.Clip(c)
	}
	sort.Strings(g.names)
	g.anim = component.NewAnimationPlayer(g.clips[g.names[0]])
	g.play(0)

	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle("Clip preview: " + spec.Name)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
