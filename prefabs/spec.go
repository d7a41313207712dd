package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/physics"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is the top-level game configuration in game.yaml.
type GameSpec struct {
	Title      string      `yaml:"title"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Level      string      `yaml:"level"`
	TileInfo   string      `yaml:"tile_info"`
	TileSize   int         `yaml:"tile_size"`
	Tileset    SpriteSpec  `yaml:"tileset"`
	MaxStep    float32     `yaml:"max_step"`
	LogLevel   string      `yaml:"log_level"`
	Smoothness float32     `yaml:"camera_smoothness"`
	Background *YAMLColor  `yaml:"background"`
	Player     string      `yaml:"player"`
	Creatures  []string    `yaml:"creatures"`
	Hazards    []PlaceSpec `yaml:"hazards"`
}

// PlaceSpec puts a prefab at a world position.
type PlaceSpec struct {
	Prefab string  `yaml:"prefab"`
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: game.yaml: %w", err)
	}
	return &spec, nil
}

func (s *GameSpec) applyDefaults() {
	if s.Width <= 0 || s.Height <= 0 {
		s.Width, s.Height = common.BaseWidth, common.BaseHeight
	}
	if s.TileSize == 0 {
		s.TileSize = common.TileSize
	}
}

func (s *GameSpec) Validate() error {
	switch {
	case s.TileSize <= 0:
		return fmt.Errorf("tile_size must be positive")
	case s.Level == "" || s.TileInfo == "":
		return fmt.Errorf("level and tile_info are required")
	case s.Player == "":
		return fmt.Errorf("player is required")
	case s.MaxStep < 0:
		return fmt.Errorf("max_step must not be negative")
	}
	return nil
}

// CreatureSpec describes a creature prefab such as player.yaml.
type CreatureSpec struct {
	Name       string              `yaml:"name"`
	Controller ControllerSpec      `yaml:"controller"`
	Spawn      PointSpec           `yaml:"spawn"`
	Bounds     common.Rect         `yaml:"bounds"`
	Physics    physics.Properties  `yaml:"physics"`
	Sprite     SpriteSpec          `yaml:"sprite"`
	Animation  map[string]ClipSpec `yaml:"animation"`
}

// Clip names every creature must define.
var creatureClips = []string{"idle", "walk", "jump", "fall"}

func LoadCreatureSpec(filename string) (*CreatureSpec, error) {
	spec, err := LoadSpec[CreatureSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

func (s *CreatureSpec) Validate() error {
	for _, name := range creatureClips {
		if _, ok := s.Animation[name]; !ok {
			return fmt.Errorf("missing %q animation", name)
		}
	}
	if s.Controller.Kind == controller.KindWander && s.Controller.MoveTime <= 0 {
		return fmt.Errorf("wander controller needs a positive move_time")
	}
	if s.Sprite.FrameW <= 0 || s.Sprite.FrameH <= 0 {
		return fmt.Errorf("sprite frame size must be positive")
	}
	return nil
}

type ControllerSpec struct {
	Kind       controller.Kind `yaml:"kind"`
	MoveAccel  float32         `yaml:"move_accel"`
	JumpAccel  float32         `yaml:"jump_accel"`
	AirControl float32         `yaml:"air_control"`
	MoveTime   float32         `yaml:"move_time"`
	Script     string          `yaml:"script"`
	Seed       int64           `yaml:"seed"`
}

type PointSpec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// SpriteSpec names a sheet and its frame grid. Cols, Rows and Color only
// shape the placeholder drawn when the sheet has no image file.
type SpriteSpec struct {
	Sheet  string     `yaml:"sheet"`
	FrameW int        `yaml:"frame_w"`
	FrameH int        `yaml:"frame_h"`
	Cols   int        `yaml:"cols"`
	Rows   int        `yaml:"rows"`
	Color  *YAMLColor `yaml:"color"`
}

// ClipSpec is one animation strip. Col and Row are in frames.
type ClipSpec struct {
	Col       int     `yaml:"col"`
	Row       int     `yaml:"row"`
	Frames    int     `yaml:"frames"`
	FrameTime float32 `yaml:"frame_time"`
	Repeat    bool    `yaml:"repeat"`
}

// BlockSpec describes a hazard block prefab such as lava.yaml.
type BlockSpec struct {
	Name      string     `yaml:"name"`
	Width     float32    `yaml:"width"`
	Height    float32    `yaml:"height"`
	Damage    float32    `yaml:"damage"`
	Sprite    SpriteSpec `yaml:"sprite"`
	Animation ClipSpec   `yaml:"animation"`
}

func LoadBlockSpec(filename string) (*BlockSpec, error) {
	spec, err := LoadSpec[BlockSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: block size must be positive", filename)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.RGBA = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the colour, or fallback when c is nil.
func (c *YAMLColor) Or(fallback color.RGBA) color.RGBA {
	if c == nil {
		return fallback
	}
	return c.RGBA
}
