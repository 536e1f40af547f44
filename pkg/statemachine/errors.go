package statemachine

import "errors"

var (
	ErrEmptyState        = errors.New("statemachine: initial state is empty")
	ErrInvalidTransition = errors.New("statemachine: transition needs from, to and event")
	ErrEmptyEvent        = errors.New("statemachine: event is empty")
	ErrNoTransition      = errors.New("statemachine: no transition for event")
	ErrRejected          = errors.New("statemachine: transition rejected by guards")
	ErrActionFailed      = errors.New("statemachine: transition action failed")
)
