package statemachine

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Guard decides whether a transition may be taken for the data passed to Fire.
type Guard func(ctx context.Context, data any) bool

// Action runs before the state changes. An error aborts the transition.
type Action func(ctx context.Context, data any) error

// Hook observes a completed transition.
type Hook[S, E ~string] func(ctx context.Context, from, to S, event E)

type rule[S, E ~string] struct {
	from, to S
	event    E
	guards   []Guard
	actions  []Action
}

// Machine is a finite state machine over string-typed states and events.
// Rules are matched in registration order. It is safe for concurrent use.
type Machine[S, E ~string] struct {
	mu      sync.Mutex
	initial S
	current S
	rules   []rule[S, E]
	hooks   []Hook[S, E]
}

// Option configures a Machine.
type Option[S, E ~string] func(*Machine[S, E]) error

// New creates a machine in state initial.
func New[S, E ~string](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	if initial == "" {
		return nil, ErrEmptyState
	}

	m := &Machine[S, E]{initial: initial, current: initial}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on invalid configuration.
func MustNew[S, E ~string](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Machine[S, E]) Current() S {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Reset moves the machine back to its initial state without running hooks.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	m.current = m.initial
	m.mu.Unlock()
}

// CanFire reports whether Fire would find a transition for event.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E, data any) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, err := m.match(ctx, event, data)
	return err == nil
}

// Fire takes the first rule for the current state and event whose guards
// all pass. Actions must not call back into the same machine.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	if event == "" {
		return ErrEmptyEvent
	}

	m.mu.Lock()
	r, err := m.match(ctx, event, data)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	for _, action := range r.actions {
		if err := action(ctx, data); err != nil {
			m.mu.Unlock()
			return errors.Join(ErrActionFailed, err)
		}
	}
	from := m.current
	m.current = r.to
	hooks := m.hooks
	m.mu.Unlock()

	for _, hook := range hooks {
		hook(ctx, from, r.to, event)
	}
	return nil
}

func (m *Machine[S, E]) match(ctx context.Context, event E, data any) (rule[S, E], error) {
	found := false
	for _, r := range m.rules {
		if r.from != m.current || r.event != event {
			continue
		}
		found = true
		if allow(ctx, r.guards, data) {
			return r, nil
		}
	}
	if found {
		return rule[S, E]{}, fmt.Errorf("%w: %q in state %q", ErrRejected, event, m.current)
	}
	return rule[S, E]{}, fmt.Errorf("%w: %q in state %q", ErrNoTransition, event, m.current)
}

func allow(ctx context.Context, guards []Guard, data any) bool {
	for _, g := range guards {
		if !g(ctx, data) {
			return false
		}
	}
	return true
}
