package statemachine

import (
	"fmt"
)

// Option configures a Machine during construction.
type Option func(*Machine) error

// TransitionOption attaches guards and actions to a single transition.
type TransitionOption func(*transitionConfig)

type transitionConfig struct {
	guards  []Guard
	actions []Action
}

// New creates a machine in initialState and applies opts in order.
func New(initialState State, opts ...Option) (*Machine, error) {
	if initialState == nil {
		return nil, ErrNilInitialState
	}

	m := newMachine(initialState)
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is New that panics on error. Machines are wired at startup, so a
// broken definition should stop the process.
func MustNew(initialState State, opts ...Option) *Machine {
	m, err := New(initialState, opts...)
	if err != nil {
		panic(fmt.Sprintf("statemachine: %v", err))
	}
	return m
}

// WithTransition registers one transition.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		cfg := &transitionConfig{}
		for _, opt := range opts {
			opt(cfg)
		}
		if err := m.AddTransition(from, to, event, cfg.guards, cfg.actions); err != nil {
			return fmt.Errorf("%s --%s--> %s: %w", name(from), name(event), name(to), err)
		}
		return nil
	}
}

// WithListener registers a transition observer.
func WithListener(l Listener) Option {
	return func(m *Machine) error {
		if l != nil {
			m.listeners = append(m.listeners, l)
		}
		return nil
	}
}

// WithGuard adds a guard to a transition. Nil guards are ignored.
func WithGuard(guard Guard) TransitionOption {
	return func(cfg *transitionConfig) {
		if guard != nil {
			cfg.guards = append(cfg.guards, guard)
		}
	}
}

// WithAction adds an action to a transition. Nil actions are ignored.
func WithAction(action Action) TransitionOption {
	return func(cfg *transitionConfig) {
		if action != nil {
			cfg.actions = append(cfg.actions, action)
		}
	}
}

type named interface{ Name() string }

func name(v named) string {
	if v == nil {
		return "<nil>"
	}
	return v.Name()
}
