package fsm

import "time"

// Update runs OnUpdate for the active state, then takes the first transition whose
// guard passes; returns true if the state changed
func (m *Machine[T]) Update(ctx T, dt time.Duration) bool {
	if m.activeStateID == StateNone {
		return false
	}

	m.timeInState += dt
	node := m.nodes[m.activeStateID]

	for _, action := range node.OnUpdate {
		action(ctx)
	}

	for _, trans := range node.Transitions {
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return true
		}
	}
	return false
}

// transition exits the active state and enters target
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}

	for _, action := range m.nodes[m.activeStateID].OnExit {
		action(ctx)
	}

	m.activeStateID = targetID
	m.timeInState = 0
	m.transitions++

	for _, action := range m.nodes[targetID].OnEnter {
		action(ctx)
	}
}

// Active returns the current state ID
func (m *Machine[T]) Active() StateID {
	return m.activeStateID
}

// ActiveName returns the current state name, empty before Init
func (m *Machine[T]) ActiveName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// Transitions returns how many transitions fired since Init
func (m *Machine[T]) Transitions() int {
	return m.transitions
}
