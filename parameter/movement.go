package parameter

import "time"

// Tank-control movement
const (
	// MoveSpeed is the walk speed in world units per second
	MoveSpeed = 3.0

	// SprintSpeed is the speed while the sprint modifier is held
	SprintSpeed = 6.0

	// RotationSpeed is the turn rate in radians per second
	RotationSpeed = 4.0

	// SprintPlaybackRate multiplies the run animation rate while sprinting
	SprintPlaybackRate = 1.6
)

// Character collider, fixed at spawn
const (
	ColliderWidth  = 0.8
	ColliderHeight = 1.8
	ColliderDepth  = 0.8
)

// World defaults, matching a 20x20 ground grid centered on the origin
const (
	WorldHalfExtent = 10.0
	BoxSize         = 1.0
	WallHeight      = 2.0
)

// Frame timing
const (
	// FrameUpdateInterval drives the terminal front-end loop (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single step after stalls so a long pause cannot tunnel through walls
	MaxFrameDelta = 100 * time.Millisecond
)
