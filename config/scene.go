// Package config loads scene documents: world bounds, character spawn, walls, boxes
// and controller tuning. Documents are YAML, checked against an embedded JSON schema
// and then semantically
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScene wraps every schema and semantic validation failure
var ErrInvalidScene = errors.New("invalid scene")

// Vec is a YAML [x, y, z] triple
type Vec [3]float64

func (v Vec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// Scene is one loadable world
type Scene struct {
	Name      string        `yaml:"name" json:"name"`
	Bounds    BoundsSpec    `yaml:"bounds" json:"bounds"`
	Character CharacterSpec `yaml:"character" json:"character"`
	Walls     []ObjectSpec  `yaml:"walls,omitempty" json:"walls,omitempty"`
	Boxes     []ObjectSpec  `yaml:"boxes,omitempty" json:"boxes,omitempty"`
	Tuning    Tuning        `yaml:"tuning" json:"tuning"`
}

// BoundsSpec is the traversable region; only X and Z are used
type BoundsSpec struct {
	Min Vec `yaml:"min" json:"min"`
	Max Vec `yaml:"max" json:"max"`
}

// CharacterSpec is the spawn transform and fixed collider size
type CharacterSpec struct {
	Position Vec     `yaml:"position" json:"position"`
	Yaw      float64 `yaml:"yaw" json:"yaw"`
	Collider Vec     `yaml:"collider" json:"collider"` // width, height, depth
}

// ObjectSpec is a wall or box: a Size box rising from Position, rotated by Yaw radians
type ObjectSpec struct {
	Name     string  `yaml:"name,omitempty" json:"name,omitempty"`
	Position Vec     `yaml:"position" json:"position"`
	Size     Vec     `yaml:"size" json:"size"`
	Yaw      float64 `yaml:"yaw,omitempty" json:"yaw,omitempty"`
}

// Tuning overrides the controller and animation rates
type Tuning struct {
	MoveSpeed          float64 `yaml:"move_speed" json:"move_speed"`
	SprintSpeed        float64 `yaml:"sprint_speed" json:"sprint_speed"`
	RotationSpeed      float64 `yaml:"rotation_speed" json:"rotation_speed"`
	SprintPlaybackRate float64 `yaml:"sprint_playback_rate" json:"sprint_playback_rate"`
	CrossFadeSeconds   float64 `yaml:"cross_fade_seconds" json:"cross_fade_seconds"`
}

// Load reads a scene file; an empty path returns the default scene
func Load(path string) (Scene, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	sc, err := Parse(raw)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML scene document over the defaults and validates it
// Omitted sections keep their default values
func Parse(raw []byte) (Scene, error) {
	if err := validateSchema(raw); err != nil {
		return Scene{}, err
	}

	// Lists present in the document replace the defaults
	sc := Default()
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return Scene{}, fmt.Errorf("scene yaml: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return Scene{}, err
	}
	return sc, nil
}

// Validate checks what the schema cannot: finite values, ordered bounds, a spawn
// inside the bounds and positive sizes
func (s Scene) Validate() error {
	if !finiteVec(s.Bounds.Min) || !finiteVec(s.Bounds.Max) {
		return fmt.Errorf("%w: bounds are not finite", ErrInvalidScene)
	}
	if s.Bounds.Min[0] > s.Bounds.Max[0] || s.Bounds.Min[2] > s.Bounds.Max[2] {
		return fmt.Errorf("%w: bounds min exceeds max", ErrInvalidScene)
	}

	p := s.Character.Position
	if !finiteVec(p) || !finite(s.Character.Yaw) {
		return fmt.Errorf("%w: character transform is not finite", ErrInvalidScene)
	}
	if p[0] < s.Bounds.Min[0] || p[0] > s.Bounds.Max[0] || p[2] < s.Bounds.Min[2] || p[2] > s.Bounds.Max[2] {
		return fmt.Errorf("%w: character spawn %v outside bounds", ErrInvalidScene, p)
	}
	if !positiveVec(s.Character.Collider) {
		return fmt.Errorf("%w: character collider must be positive", ErrInvalidScene)
	}

	for i, w := range s.Walls {
		if err := w.validate(); err != nil {
			return fmt.Errorf("%w: wall %d: %v", ErrInvalidScene, i, err)
		}
	}
	for i, b := range s.Boxes {
		if err := b.validate(); err != nil {
			return fmt.Errorf("%w: box %d: %v", ErrInvalidScene, i, err)
		}
	}

	t := s.Tuning
	for name, v := range map[string]float64{
		"move_speed":           t.MoveSpeed,
		"sprint_speed":         t.SprintSpeed,
		"rotation_speed":       t.RotationSpeed,
		"sprint_playback_rate": t.SprintPlaybackRate,
	} {
		if !finite(v) || v <= 0 {
			return fmt.Errorf("%w: tuning %s must be positive", ErrInvalidScene, name)
		}
	}
	if !finite(t.CrossFadeSeconds) || t.CrossFadeSeconds < 0 {
		return fmt.Errorf("%w: tuning cross_fade_seconds must not be negative", ErrInvalidScene)
	}
	return nil
}

func (o ObjectSpec) validate() error {
	if !finiteVec(o.Position) || !finite(o.Yaw) {
		return errors.New("transform is not finite")
	}
	if !positiveVec(o.Size) {
		return errors.New("size must be positive")
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteVec(v Vec) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}

func positiveVec(v Vec) bool {
	return finiteVec(v) && v[0] > 0 && v[1] > 0 && v[2] > 0
}
