package system

import (
	"time"

	"github.com/lixenwraith/tank-pusher/animation"
	"github.com/lixenwraith/tank-pusher/component"
	"github.com/lixenwraith/tank-pusher/engine/fsm"
)

const (
	StateIdle fsm.StateID = iota + 1
	StateRunning
)

// animContext is the per-tick input of the animation machine
type animContext struct {
	moving bool
}

// AnimationSystem drives the idle/run actions from movement intent
// Transitions are edge-triggered: a held key fires Idle->Running once, release fires Running->Idle once
type AnimationSystem struct {
	machine *fsm.Machine[*animContext]
	ctx     animContext

	idle animation.Action
	run  animation.Action

	fadeSeconds float64
	previous    animation.Action // action active before the last transition
}

// NewAnimationSystem builds the two-state machine and plays the idle action
func NewAnimationSystem(idle, run animation.Action, fadeSeconds float64) (*AnimationSystem, error) {
	s := &AnimationSystem{
		machine:     fsm.NewMachine[*animContext](),
		idle:        idle,
		run:         run,
		fadeSeconds: fadeSeconds,
	}

	idleNode := s.machine.AddState(StateIdle, "idle")
	runNode := s.machine.AddState(StateRunning, "running")
	idleNode.OnEnter = append(idleNode.OnEnter, func(*animContext) { s.enter(s.idle) })
	runNode.OnEnter = append(runNode.OnEnter, func(*animContext) { s.enter(s.run) })

	if err := s.machine.AddTransition(StateIdle, fsm.Transition[*animContext]{
		TargetID: StateRunning,
		Guard:    func(c *animContext) bool { return c.moving },
	}); err != nil {
		return nil, err
	}
	if err := s.machine.AddTransition(StateRunning, fsm.Transition[*animContext]{
		TargetID: StateIdle,
		Guard:    func(c *animContext) bool { return !c.moving },
	}); err != nil {
		return nil, err
	}

	if err := s.machine.Init(&s.ctx, StateIdle); err != nil {
		return nil, err
	}
	return s, nil
}

// enter activates next and crossfades from the previously active action
// The first entry has nothing to fade from and only plays
func (s *AnimationSystem) enter(next animation.Action) {
	next.SetEnabled(true)
	next.SetEffectiveTimeScale(1)
	next.SetEffectiveWeight(1)
	next.Play()
	if s.previous != nil && s.previous != next {
		s.previous.CrossFadeTo(next, s.fadeSeconds, true)
	}
	s.previous = next
}

// Update feeds one frame of controller output into the machine
// Returns true when the state changed this frame
func (s *AnimationSystem) Update(c *component.CharacterState, res MoveResult, dt time.Duration) bool {
	s.ctx.moving = res.Moving
	changed := s.machine.Update(&s.ctx, dt)

	// Applied after the transition so entering Running cannot reset a backward rate
	if res.PlaybackRate != 0 {
		s.run.SetTimeScale(res.PlaybackRate)
	}

	if c != nil {
		c.Anim = s.State()
	}
	return changed
}

// State returns the active animation state
func (s *AnimationSystem) State() component.AnimState {
	if s.machine.Active() == StateRunning {
		return component.AnimRunning
	}
	return component.AnimIdle
}

// Transitions returns how many edges fired since construction
func (s *AnimationSystem) Transitions() int {
	return s.machine.Transitions()
}
