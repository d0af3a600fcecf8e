// Package either routes a run through exactly one of two blueprint
// alternatives that share a symbol type and a sort type.
//
// A Blueprint built with Left drives only the left alternative and a
// Blueprint built with Right drives only the right one; the choice is
// fixed at construction. The tagged State mirrors that choice. Feeding a
// state tagged for one side into a blueprint tagged for the other cannot
// happen when states come from the blueprint itself, but hand-built or
// zero-value states make it possible, so every operation checks the tags
// and reports ErrVariantMismatch instead of panicking.
package either

import (
	"errors"
	"fmt"

	"github.com/amp-labs/amp-automata/automaton"
)

// ErrVariantMismatch reports that a state's active side disagrees with
// its blueprint's, or that one of them is a zero value.
var ErrVariantMismatch = errors.New("state variant does not match blueprint variant")

type side int

const (
	sideNone side = iota
	sideLeft
	sideRight
)

func (s side) String() string {
	switch s {
	case sideLeft:
		return "left"
	case sideRight:
		return "right"
	case sideNone:
		return "none"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

func mismatch(blueprint, state side) error {
	return fmt.Errorf("%w: blueprint holds %s, state holds %s", ErrVariantMismatch, blueprint, state)
}

// State holds the state of whichever alternative is active. The zero
// value is tagged for neither side and mismatches every blueprint.
type State[SA, SB any] struct {
	left  SA
	right SB
	side  side
}

// LeftState wraps a left-side state. SB cannot be inferred from the
// argument, so it comes first: either.LeftState[RightStateType](value).
func LeftState[SB, SA any](state SA) State[SA, SB] {
	return State[SA, SB]{left: state, side: sideLeft}
}

// RightState wraps a right-side state. SA cannot be inferred from the
// argument, so it comes first: either.RightState[LeftStateType](value).
func RightState[SA, SB any](state SB) State[SA, SB] {
	return State[SA, SB]{right: state, side: sideRight}
}

// Left returns the left-side state and whether the left side is active.
func (s State[SA, SB]) Left() (SA, bool) {
	return s.left, s.side == sideLeft
}

// Right returns the right-side state and whether the right side is active.
func (s State[SA, SB]) Right() (SB, bool) {
	return s.right, s.side == sideRight
}

// Blueprint drives one of two functional alternatives. It implements
// automaton.Blueprint over the tagged State, so either-wrapped automata
// compose and erase like any other. The zero value mismatches every
// state; build one with Left or Right.
type Blueprint[SA, SB, A, K any] struct {
	left  automaton.Blueprint[SA, A, K]
	right automaton.Blueprint[SB, A, K]
	side  side
}

// Left builds a blueprint that drives bp and ignores the right
// alternative. SB cannot be inferred: either.Left[RightStateType](bp).
func Left[SB, SA, A, K any](bp automaton.Blueprint[SA, A, K]) Blueprint[SA, SB, A, K] {
	return Blueprint[SA, SB, A, K]{left: bp, side: sideLeft}
}

// Right builds a blueprint that drives bp and ignores the left
// alternative. SA cannot be inferred: either.Right[LeftStateType](bp).
func Right[SA, SB, A, K any](bp automaton.Blueprint[SB, A, K]) Blueprint[SA, SB, A, K] {
	return Blueprint[SA, SB, A, K]{right: bp, side: sideRight}
}

// InitialState returns the active side's initial state, tagged. The zero
// blueprint returns the zero State, which every later operation rejects.
func (bp Blueprint[SA, SB, A, K]) InitialState() State[SA, SB] {
	switch bp.side {
	case sideLeft:
		return LeftState[SB](bp.left.InitialState())
	case sideRight:
		return RightState[SA](bp.right.InitialState())
	default:
		return State[SA, SB]{}
	}
}

// Classify dispatches to the active side's Classify.
func (bp Blueprint[SA, SB, A, K]) Classify(state State[SA, SB]) (K, error) {
	switch {
	case bp.side == sideLeft && state.side == sideLeft:
		return bp.left.Classify(state.left)
	case bp.side == sideRight && state.side == sideRight:
		return bp.right.Classify(state.right)
	}

	var zero K

	return zero, mismatch(bp.side, state.side)
}

// Transition dispatches to the active side's Transition and re-tags the
// successor state.
func (bp Blueprint[SA, SB, A, K]) Transition(state State[SA, SB], symbol A) (State[SA, SB], error) {
	switch {
	case bp.side == sideLeft && state.side == sideLeft:
		next, err := bp.left.Transition(state.left, symbol)
		if err != nil {
			return State[SA, SB]{}, err
		}

		return LeftState[SB](next), nil
	case bp.side == sideRight && state.side == sideRight:
		next, err := bp.right.Transition(state.right, symbol)
		if err != nil {
			return State[SA, SB]{}, err
		}

		return RightState[SA](next), nil
	}

	return State[SA, SB]{}, mismatch(bp.side, state.side)
}

// MutableBlueprint is the mutation-paradigm twin of Blueprint. It edits
// the active side's half of the tagged State in place.
type MutableBlueprint[SA, SB, A, K any] struct {
	left  automaton.MutableBlueprint[SA, A, K]
	right automaton.MutableBlueprint[SB, A, K]
	side  side
}

// LeftMutable builds a mutation blueprint that drives bp and ignores the
// right alternative.
func LeftMutable[SB, SA, A, K any](bp automaton.MutableBlueprint[SA, A, K]) MutableBlueprint[SA, SB, A, K] {
	return MutableBlueprint[SA, SB, A, K]{left: bp, side: sideLeft}
}

// RightMutable builds a mutation blueprint that drives bp and ignores
// the left alternative.
func RightMutable[SA, SB, A, K any](bp automaton.MutableBlueprint[SB, A, K]) MutableBlueprint[SA, SB, A, K] {
	return MutableBlueprint[SA, SB, A, K]{right: bp, side: sideRight}
}

// InitialState returns the active side's initial state, tagged.
func (bp MutableBlueprint[SA, SB, A, K]) InitialState() State[SA, SB] {
	switch bp.side {
	case sideLeft:
		return LeftState[SB](bp.left.InitialState())
	case sideRight:
		return RightState[SA](bp.right.InitialState())
	default:
		return State[SA, SB]{}
	}
}

// Classify dispatches to the active side's Classify.
func (bp MutableBlueprint[SA, SB, A, K]) Classify(state State[SA, SB]) (K, error) {
	switch {
	case bp.side == sideLeft && state.side == sideLeft:
		return bp.left.Classify(state.left)
	case bp.side == sideRight && state.side == sideRight:
		return bp.right.Classify(state.right)
	}

	var zero K

	return zero, mismatch(bp.side, state.side)
}

// Apply edits the active side's half of state in place. The state is
// untouched when the tags disagree; when the underlying Apply fails the
// active half holds whatever it left there.
func (bp MutableBlueprint[SA, SB, A, K]) Apply(state *State[SA, SB], symbol A) error {
	switch {
	case bp.side == sideLeft && state.side == sideLeft:
		return bp.left.Apply(&state.left, symbol)
	case bp.side == sideRight && state.side == sideRight:
		return bp.right.Apply(&state.right, symbol)
	}

	return mismatch(bp.side, state.side)
}
