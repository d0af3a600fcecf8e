// Package recognize provides small reference recognizers built on the
// contracts in package automaton. They double as worked examples of the two
// execution paradigms and as fixtures for composition: Counter and Suffix
// are functional, Tally is mutation native.
package recognize

import (
	"fmt"

	"github.com/amp-labs/amp-automata/automaton"
)

// CounterPhase identifies which leg of the balanced-count language a counter
// state is on.
type CounterPhase int

const (
	// CounterOpening consumes leading occurrences of the first symbol.
	CounterOpening CounterPhase = iota
	// CounterClosing consumes trailing occurrences of the second symbol.
	CounterClosing
	// CounterDead is the permanent non-accepting trap reached on any input
	// that can no longer be balanced. It is a normal state, not an error.
	CounterDead
)

func (p CounterPhase) String() string {
	switch p {
	case CounterOpening:
		return "opening"
	case CounterClosing:
		return "closing"
	case CounterDead:
		return "dead"
	default:
		return fmt.Sprintf("CounterPhase(%d)", int(p))
	}
}

// CounterState is the counter recognizer's state: the current phase plus the
// number of first symbols not yet matched by a second symbol.
type CounterState struct {
	Phase CounterPhase
	Count int
}

// Counter recognizes the balanced-count language firstⁿ secondⁿ, n ≥ 0: some
// number of first symbols followed by exactly as many second symbols. Any
// other shape, including unknown symbols, drives the automaton to the dead
// state. The state demonstrates auxiliary data (an unbounded count) riding
// along with a finite phase.
type Counter[A comparable] struct {
	first  A
	second A
}

// NewCounter returns a recognizer for firstⁿ secondⁿ over the two given
// symbols. The symbols must be distinct.
func NewCounter[A comparable](first, second A) Counter[A] {
	return Counter[A]{
		first:  first,
		second: second,
	}
}

func (c Counter[A]) InitialState() CounterState {
	return CounterState{Phase: CounterOpening, Count: 0}
}

// Classify accepts exactly the balanced states: a live phase with a zero
// count. A negative count or unknown phase cannot be produced by valid
// transitions and is reported as an invalid state.
func (c Counter[A]) Classify(state CounterState) (automaton.Verdict, error) {
	if err := c.check(state); err != nil {
		return automaton.Reject, err
	}

	if state.Phase == CounterDead {
		return automaton.Reject, nil
	}

	if state.Count == 0 {
		return automaton.Accept, nil
	}

	return automaton.Reject, nil
}

func (c Counter[A]) Transition(state CounterState, symbol A) (CounterState, error) {
	if err := c.check(state); err != nil {
		return CounterState{}, err
	}

	switch state.Phase {
	case CounterOpening:
		if symbol == c.first {
			return CounterState{Phase: CounterOpening, Count: state.Count + 1}, nil
		}

		if symbol == c.second && state.Count > 0 {
			return CounterState{Phase: CounterClosing, Count: state.Count - 1}, nil
		}

		return CounterState{Phase: CounterDead}, nil
	case CounterClosing:
		if symbol == c.second && state.Count > 0 {
			return CounterState{Phase: CounterClosing, Count: state.Count - 1}, nil
		}

		return CounterState{Phase: CounterDead}, nil
	default:
		return CounterState{Phase: CounterDead}, nil
	}
}

func (c Counter[A]) check(state CounterState) error {
	if state.Phase < CounterOpening || state.Phase > CounterDead {
		return automaton.WrapStateError(state, automaton.ErrInvalidState)
	}

	if state.Count < 0 {
		return automaton.WrapStateError(state, automaton.ErrInvalidState)
	}

	return nil
}
