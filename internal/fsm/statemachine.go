// Package fsm provides a small finite-state machine with an explicit
// transition table, optional guard conditions, and change listeners.
package fsm

import "fmt"

// ErrInvalidTransition is returned when no registered edge permits a
// requested transition.
type ErrInvalidTransition struct {
	From, To string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// Guard is a predicate evaluated before a transition is taken.
type Guard func() bool

// Listener is invoked synchronously after a successful transition.
type Listener[S comparable] func(old, new S)

type edge[S comparable] struct {
	from  S
	to    S
	guard Guard
}

// StateMachine tracks a current state and the set of legal transitions
// between states. The zero value is not usable; use New.
type StateMachine[S comparable] struct {
	initial   S
	current   S
	edges     []edge[S]
	listeners []Listener[S]
	stringer  func(S) string
}

// New creates a state machine in the given initial state.
func New[S comparable](initial S) *StateMachine[S] {
	return &StateMachine[S]{
		initial: initial,
		current: initial,
		stringer: func(s S) string {
			return fmt.Sprintf("%v", s)
		},
	}
}

// AddTransition registers a legal edge from one state to another.
// A nil guard always permits the edge.
func (sm *StateMachine[S]) AddTransition(from, to S, guard Guard) {
	sm.edges = append(sm.edges, edge[S]{from: from, to: to, guard: guard})
}

// Current returns the current state.
func (sm *StateMachine[S]) Current() S {
	return sm.current
}

// CanTransitionTo reports whether a transition to the target state is
// currently legal, without mutating the machine.
func (sm *StateMachine[S]) CanTransitionTo(target S) bool {
	return sm.findEdge(target) != nil
}

// Transition moves to the target state if a registered edge from the
// current state permits it. Listeners fire synchronously on success.
func (sm *StateMachine[S]) Transition(target S) error {
	e := sm.findEdge(target)
	if e == nil {
		return &ErrInvalidTransition{
			From: sm.stringer(sm.current),
			To:   sm.stringer(target),
		}
	}

	old := sm.current
	sm.current = target
	for _, l := range sm.listeners {
		l(old, target)
	}
	return nil
}

// OnChange registers a listener invoked after every successful
// transition with the old and new states.
func (sm *StateMachine[S]) OnChange(l Listener[S]) {
	sm.listeners = append(sm.listeners, l)
}

// Reset returns the machine to its initial state without firing
// listeners. Intended for setup and tests, not normal play.
func (sm *StateMachine[S]) Reset() {
	sm.current = sm.initial
}

func (sm *StateMachine[S]) findEdge(target S) *edge[S] {
	for i := range sm.edges {
		e := &sm.edges[i]
		if e.from != sm.current || e.to != target {
			continue
		}
		if e.guard != nil && !e.guard() {
			continue
		}
		return e
	}
	return nil
}
