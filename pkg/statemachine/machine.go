package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Machine is the in-memory StateMachine implementation.
type Machine struct {
	initial     State
	current     State
	transitions map[string]map[string][]Transition
	listeners   []Listener
	mu          sync.RWMutex
}

func newMachine(initial State) *Machine {
	return &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[string]map[string][]Transition),
	}
}

func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine currently sits in state.
func (m *Machine) Is(state State) bool {
	if state == nil {
		return false
	}
	return m.Current().Name() == state.Name()
}

func (m *Machine) AddTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	byEvent, ok := m.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		m.transitions[from.Name()] = byEvent
	}

	// Several transitions per from/event pair allow guard-based branching;
	// registration order is evaluation order.
	byEvent[event.Name()] = append(byEvent[event.Name()], Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
	return nil
}

func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.current
	candidates := m.transitions[from.Name()][event.Name()]
	if len(candidates) == 0 {
		return NewErrNoTransitionAvailable(from.Name(), event.Name())
	}

	t, ok := m.pick(ctx, candidates, event, data)
	if !ok {
		return NewErrTransitionRejected(from.Name(), event.Name())
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, from, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	for _, l := range m.listeners {
		l(ctx, from, t.To, event)
	}
	return nil
}

func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	candidates := m.transitions[m.current.Name()][event.Name()]
	_, ok := m.pick(ctx, candidates, event, data)
	return ok
}

func (m *Machine) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
	return nil
}

// pick returns the first candidate whose guards all pass. Caller holds the lock.
func (m *Machine) pick(ctx context.Context, candidates []Transition, event Event, data any) (Transition, bool) {
	for _, t := range candidates {
		passed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, m.current, event, data) {
				passed = false
				break
			}
		}
		if passed {
			return t, true
		}
	}
	return Transition{}, false
}
