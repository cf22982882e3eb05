package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/component"
	"github.com/lixenwraith/tank-pusher/input"
	"github.com/lixenwraith/tank-pusher/parameter"
	"github.com/lixenwraith/tank-pusher/physics"
)

// MovementTuning holds the controller rates
type MovementTuning struct {
	MoveSpeed          float64 // units per second
	SprintSpeed        float64 // units per second while sprinting
	RotationSpeed      float64 // radians per second
	SprintPlaybackRate float64 // run animation multiplier while sprinting
}

// DefaultMovementTuning returns the parameter defaults
func DefaultMovementTuning() MovementTuning {
	return MovementTuning{
		MoveSpeed:          parameter.MoveSpeed,
		SprintSpeed:        parameter.SprintSpeed,
		RotationSpeed:      parameter.RotationSpeed,
		SprintPlaybackRate: parameter.SprintPlaybackRate,
	}
}

// MoveResult reports what one controller step did
type MoveResult struct {
	// Moving is true while any movement or turn key is held; drives the animation state
	Moving bool

	// Attempted is true when a translation was proposed to the resolver this frame
	Attempted bool
	Outcome   physics.Outcome
	Delta     mgl64.Vec3 // proposed translation, committed unless Outcome is Blocked

	// PlaybackRate is the run animation time scale requested by intent, 0 leaves it unchanged
	PlaybackRate float64
}

// Committed reports whether the proposed translation was applied
func (r MoveResult) Committed() bool {
	return r.Attempted && r.Outcome.Kind != physics.Blocked
}

// Pushed reports whether an obstacle moved this frame
func (r MoveResult) Pushed() bool {
	return r.Attempted && r.Outcome.Kind == physics.PushAndMove
}

// MovementSystem is the tank-control character controller
// Rotation is applied unconditionally, translation only when the resolver allows it
type MovementSystem struct {
	registry *physics.Registry
	resolver *physics.Resolver
	tuning   MovementTuning
}

// NewMovementSystem creates a controller over registry
func NewMovementSystem(registry *physics.Registry, tuning MovementTuning) *MovementSystem {
	return &MovementSystem{
		registry: registry,
		resolver: physics.NewResolver(registry),
		tuning:   tuning,
	}
}

// Tuning returns the active rates
func (s *MovementSystem) Tuning() MovementTuning {
	return s.tuning
}

// Update integrates one frame of intent into c
// dt is in seconds; a nil character is a not-ready no-op
func (s *MovementSystem) Update(c *component.CharacterState, in input.Intent, dt float64) MoveResult {
	var res MoveResult
	if c == nil {
		return res
	}
	res.Moving = in.Any()
	if dt <= 0 {
		return res
	}

	if turn := in.Turn(); turn != 0 {
		c.Turn(turn * s.tuning.RotationSpeed * dt)
	}

	sign := in.Direction()
	if sign == 0 {
		return res
	}

	speed, rate := s.tuning.MoveSpeed, 1.0
	if in.Sprint {
		speed, rate = s.tuning.SprintSpeed, s.tuning.SprintPlaybackRate
	}
	res.PlaybackRate = sign * rate

	// Environment still loading: rotation only
	if !s.registry.Ready() {
		return res
	}

	res.Attempted = true
	res.Delta = c.Facing.Mul(sign * speed * dt)
	res.Outcome = s.resolver.Resolve(physics.Query{
		Position: c.Position,
		Facing:   c.Facing,
		Delta:    res.Delta,
		Collider: c.Collider.Local(),
	})

	switch res.Outcome.Kind {
	case physics.FreeMove:
		c.Position = c.Position.Add(res.Delta)
	case physics.PushAndMove:
		s.registry.MoveObstacle(res.Outcome.Obstacle, res.Delta)
		c.Position = c.Position.Add(res.Delta)
	}
	return res
}
