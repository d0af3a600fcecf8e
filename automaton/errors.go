package automaton

import (
	"errors"
	"fmt"
)

// Predefined error types.
var (
	// ErrInvalidState indicates that a state value lies outside the set of
	// states its blueprint intends to model, e.g. it carries corrupted
	// auxiliary data. Rejected inputs are NOT errors; rejection is a normal
	// classification of a reachable dead state.
	ErrInvalidState = errors.New("state outside the blueprint's domain")
	// ErrInvalidTransition indicates that a blueprint has no valid successor
	// for a (state, symbol) pair under its intended semantics.
	ErrInvalidTransition = errors.New("no valid transition for state and symbol")
)

// StateError wraps an error with the offending state value.
type StateError struct {
	State any
	Err   error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state %v: %v", e.State, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// TransitionError wraps an error with the state and symbol that produced it.
type TransitionError struct {
	State  any
	Symbol any
	Err    error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition from %v on %v: %v", e.State, e.Symbol, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// WrapStateError wraps an error with state context.
func WrapStateError(state any, err error) error {
	if err == nil {
		return nil
	}

	return &StateError{
		State: state,
		Err:   err,
	}
}

// WrapTransitionError wraps an error with transition context.
func WrapTransitionError(state, symbol any, err error) error {
	if err == nil {
		return nil
	}

	return &TransitionError{
		State:  state,
		Symbol: symbol,
		Err:    err,
	}
}
