package config

import (
	"github.com/lixenwraith/tank-pusher/parameter"
)

// Default returns the built-in scene: a 20x20 yard with a few walls and boxes to push
func Default() Scene {
	h := parameter.WorldHalfExtent
	box := Vec{parameter.BoxSize, parameter.BoxSize, parameter.BoxSize}

	return Scene{
		Name: "yard",
		Bounds: BoundsSpec{
			Min: Vec{-h, 0, -h},
			Max: Vec{h, 0, h},
		},
		Character: CharacterSpec{
			Collider: Vec{parameter.ColliderWidth, parameter.ColliderHeight, parameter.ColliderDepth},
		},
		Walls: []ObjectSpec{
			{Name: "north-wall", Position: Vec{0, 0, -6}, Size: Vec{8, parameter.WallHeight, 1}},
			{Name: "east-wall", Position: Vec{6, 0, 1}, Size: Vec{1, parameter.WallHeight, 6}},
			{Name: "pillar", Position: Vec{-5, 0, 4}, Size: Vec{2, parameter.WallHeight, 2}},
		},
		Boxes: []ObjectSpec{
			{Name: "crate-a", Position: Vec{0, 0, 3}, Size: box},
			{Name: "crate-b", Position: Vec{3, 0, -2}, Size: box},
			{Name: "crate-c", Position: Vec{-3, 0, -2}, Size: box},
		},
		Tuning: DefaultTuning(),
	}
}

// DefaultTuning returns the parameter rates
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:          parameter.MoveSpeed,
		SprintSpeed:        parameter.SprintSpeed,
		RotationSpeed:      parameter.RotationSpeed,
		SprintPlaybackRate: parameter.SprintPlaybackRate,
		CrossFadeSeconds:   parameter.CrossFadeSeconds,
	}
}
