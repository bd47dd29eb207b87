package statemachine

import (
	"context"
)

// State is a node of the machine.
type State interface {
	Name() string
}

// Event triggers a transition.
type Event interface {
	Name() string
}

// Action runs during a transition, before the state changes. Returning an
// error aborts the transition.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Guard decides whether a transition may be taken.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Listener observes completed transitions.
type Listener func(ctx context.Context, from, to State, event Event)

// Transition is a registered edge of the machine.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// StateMachine is the behaviour exposed to callers.
type StateMachine interface {
	Current() State
	Is(state State) bool
	AddTransition(from, to State, event Event, guards []Guard, actions []Action) error
	Fire(ctx context.Context, event Event, data any) error
	CanFire(ctx context.Context, event Event, data any) bool
	Reset() error
}

// StringState is a State backed by its name.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is an Event backed by its name.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }
