package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/killenemies/common"
	"github.com/milk9111/killenemies/component"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

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

type GameSpec struct {
	Title       string      `yaml:"title"`
	Width       int         `yaml:"width"`
	Height      int         `yaml:"height"`
	TPS         int         `yaml:"tps"`
	MusicVolume float64     `yaml:"music_volume"`
	Background  SpriteSpec  `yaml:"background"`
	Music       []AudioSpec `yaml:"music"`
	Sounds      []AudioSpec `yaml:"sounds"`
}

// Audio returns the named entry from Music or Sounds.
func (g *GameSpec) Audio(name string) (AudioSpec, bool) {
	if g == nil {
		return AudioSpec{}, false
	}
	for _, list := range [][]AudioSpec{g.Music, g.Sounds} {
		for _, a := range list {
			if a.Name == name {
				return a, true
			}
		}
	}
	return AudioSpec{}, false
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("%w: game.yaml: screen %dx%d", ErrInvalidSpec, spec.Width, spec.Height)
	}
	if spec.TPS <= 0 {
		spec.TPS = 30
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name            string        `yaml:"name"`
	MoveSpeed       float64       `yaml:"move_speed"`
	Gravity         float64       `yaml:"gravity"`
	JumpSpeed       float64       `yaml:"jump_speed"`
	GroundTolerance float64       `yaml:"ground_tolerance"`
	Collider        ColliderSpec  `yaml:"collider"`
	Sprite          SpriteSpec    `yaml:"sprite"`
	Animation       AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Collider.validate("player.yaml"); err != nil {
		return nil, err
	}
	if spec.JumpSpeed >= 0 {
		return nil, fmt.Errorf("%w: player.yaml: jump_speed must be negative, got %g", ErrInvalidSpec, spec.JumpSpeed)
	}
	if err := spec.Animation.validate("player.yaml", ClipIdle, ClipWalk, ClipJump); err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name         string        `yaml:"name"`
	MoveSpeed    float64       `yaml:"move_speed"`
	PatrolOffset float64       `yaml:"patrol_offset"`
	Collider     ColliderSpec  `yaml:"collider"`
	Sprite       SpriteSpec    `yaml:"sprite"`
	Animation    AnimationSpec `yaml:"animation"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Collider.validate("enemy.yaml"); err != nil {
		return nil, err
	}
	if spec.PatrolOffset <= 0 {
		return nil, fmt.Errorf("%w: enemy.yaml: patrol_offset must be positive", ErrInvalidSpec)
	}
	if err := spec.Animation.validate("enemy.yaml", ClipWalk); err != nil {
		return nil, err
	}
	return &spec, nil
}

type BulletSpec struct {
	Name      string       `yaml:"name"`
	MoveSpeed float64      `yaml:"move_speed"`
	Collider  ColliderSpec `yaml:"collider"`
	Sprite    SpriteSpec   `yaml:"sprite"`
}

func LoadBulletSpec() (*BulletSpec, error) {
	spec, err := LoadSpec[BulletSpec]("bullet.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Collider.validate("bullet.yaml"); err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlatformSpec struct {
	Name   string     `yaml:"name"`
	Sprite SpriteSpec `yaml:"sprite"`
}

func LoadPlatformSpec() (*PlatformSpec, error) {
	spec, err := LoadSpec[PlatformSpec]("platform.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Specs bundles every prefab the game reads at startup.
type Specs struct {
	Game     *GameSpec
	Player   *PlayerSpec
	Enemy    *EnemySpec
	Bullet   *BulletSpec
	Platform *PlatformSpec
}

// LoadAll loads every prefab, stopping at the first failure.
func LoadAll() (*Specs, error) {
	var (
		s   Specs
		err error
	)
	if s.Game, err = LoadGameSpec(); err != nil {
		return nil, err
	}
	if s.Player, err = LoadPlayerSpec(); err != nil {
		return nil, err
	}
	if s.Enemy, err = LoadEnemySpec(); err != nil {
		return nil, err
	}
	if s.Bullet, err = LoadBulletSpec(); err != nil {
		return nil, err
	}
	if s.Platform, err = LoadPlatformSpec(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Reload loads every prefab again for a running game. Screen size, tick
// rate and audio are fixed once the window and audio players exist, so the
// game spec of current is kept and only entity tuning changes.
func Reload(current *Specs) (*Specs, error) {
	next, err := LoadAll()
	if err != nil {
		return nil, err
	}
	if current != nil && current.Game != nil {
		next.Game = current.Game
	}
	return next, nil
}

// Sprites maps every sprite id the prefabs reference to its placeholder colour.
func (s *Specs) Sprites() map[string]color.Color {
	out := make(map[string]color.Color)
	if s == nil {
		return out
	}
	add := func(id string, c *YAMLColor) {
		if id == "" {
			return
		}
		if c == nil || c.Color == nil {
			out[id] = color.White
			return
		}
		out[id] = c.Color
	}
	if s.Game != nil {
		add(s.Game.Background.Image, s.Game.Background.Placeholder)
	}
	if s.Player != nil {
		for _, id := range s.Player.Animation.FrameIDs() {
			add(id, s.Player.Sprite.Placeholder)
		}
	}
	if s.Enemy != nil {
		for _, id := range s.Enemy.Animation.FrameIDs() {
			add(id, s.Enemy.Sprite.Placeholder)
		}
	}
	if s.Bullet != nil {
		add(s.Bullet.Sprite.Image, s.Bullet.Sprite.Placeholder)
	}
	if s.Platform != nil {
		add(s.Platform.Sprite.Image, s.Platform.Sprite.Placeholder)
	}
	return out
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (c ColliderSpec) validate(file string) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %s: collider %gx%g", ErrInvalidSpec, file, c.Width, c.Height)
	}
	return nil
}

type SpriteSpec struct {
	Image       string     `yaml:"image"`
	Placeholder *YAMLColor `yaml:"placeholder"`
}

// Clip names the game plays. Player prefabs need all three, enemies walk.
const (
	ClipIdle = "idle"
	ClipWalk = "walk"
	ClipJump = "jump"
)

// AnimationSpec lists named clips, each with per-facing frame ids.
type AnimationSpec struct {
	Current       string              `yaml:"current"`
	TicksPerFrame int                 `yaml:"ticks_per_frame"`
	Defs          map[string]ClipSpec `yaml:"defs"`
}

type ClipSpec struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

// Clips converts the clip definitions into animator clips.
func (a AnimationSpec) Clips() map[string]component.Clip {
	out := make(map[string]component.Clip, len(a.Defs))
	for name, def := range a.Defs {
		out[name] = component.Clip{
			common.Left:  append([]string(nil), def.Left...),
			common.Right: append([]string(nil), def.Right...),
		}
	}
	return out
}

// Animator builds a validated animator from the clip definitions.
func (a AnimationSpec) Animator() (*component.Animator, error) {
	anim, err := component.NewAnimator(a.Clips(), a.Current, a.TicksPerFrame)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %w", err)
	}
	return anim, nil
}

// validate builds the animator once and checks that every clip in required
// is defined, so a broken prefab is rejected at load time.
func (a AnimationSpec) validate(file string, required ...string) error {
	if _, err := component.NewAnimator(a.Clips(), a.Current, a.TicksPerFrame); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidSpec, file, err)
	}
	for _, name := range required {
		if _, ok := a.Defs[name]; !ok {
			return fmt.Errorf("%w: %s: missing animation clip %q", ErrInvalidSpec, file, name)
		}
	}
	return nil
}

// FrameIDs returns every frame id referenced by the clips.
func (a AnimationSpec) FrameIDs() []string {
	var ids []string
	for _, def := range a.Defs {
		ids = append(ids, def.Left...)
		ids = append(ids, def.Right...)
	}
	return ids
}

type YAMLColor struct {
	color.Color
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

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
