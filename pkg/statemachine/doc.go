// Package statemachine implements a small in-memory finite state machine over
// string-typed states and events.
//
// Several rules may share a source state and event. The first one whose
// guards pass wins, so branching is expressed by registration order:
//
//	m := statemachine.MustNew(Start,
//		statemachine.WithTransition(Start, Attempting, Dispatch, statemachine.WithGuard(configured)),
//		statemachine.WithTransition(Start, Fallback, Dispatch),
//	)
//	err := m.Fire(ctx, Dispatch, payload)
package statemachine
