package statemachine

// TransitionOption attaches guards or actions to one transition.
type TransitionOption func(*transitionOptions)

type transitionOptions struct {
	guards  []Guard
	actions []Action
}

// WithTransition registers a move from one state to another on event.
func WithTransition[S, E ~string](from, to S, event E, opts ...TransitionOption) Option[S, E] {
	return func(m *Machine[S, E]) error {
		if from == "" || to == "" || event == "" {
			return ErrInvalidTransition
		}
		var o transitionOptions
		for _, opt := range opts {
			opt(&o)
		}
		m.rules = append(m.rules, rule[S, E]{from: from, to: to, event: event, guards: o.guards, actions: o.actions})
		return nil
	}
}

// WithHook registers a function called after every completed transition.
func WithHook[S, E ~string](hook Hook[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		if hook != nil {
			m.hooks = append(m.hooks, hook)
		}
		return nil
	}
}

func WithGuard(g Guard) TransitionOption {
	return func(o *transitionOptions) {
		if g != nil {
			o.guards = append(o.guards, g)
		}
	}
}

// WithAction adds actions run in order before the state changes.
func WithAction(actions ...Action) TransitionOption {
	return func(o *transitionOptions) {
		for _, a := range actions {
			if a != nil {
				o.actions = append(o.actions, a)
			}
		}
	}
}
