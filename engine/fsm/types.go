package fsm

import "time"

// StateID is a unique identifier for a state
type StateID int

const StateNone StateID = 0

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)

// Node is a state in the machine
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions
	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition is a guarded edge evaluated every tick
type Transition[T any] struct {
	TargetID StateID
	Guard    GuardFunc[T] // nil = always true
}

// Machine is a flat finite state machine over context T
// Transitions are evaluated on Update, at most one per tick, so a guard that stays
// true fires once: after the transition the new state's edges are the ones evaluated
type Machine[T any] struct {
	nodes map[StateID]*Node[T]

	activeStateID StateID
	timeInState   time.Duration
	transitions   int
}
