package recognize

import (
	"fmt"

	"github.com/amp-labs/amp-automata/automaton"
)

// Tally is a mutation-native recognizer over an integer state: up increments,
// down decrements, and a word is accepted when the tally ends at exactly
// zero. Unlike Counter it enforces its alphabet strictly: any other symbol is
// an invalid-transition error rather than a trip to a dead state.
type Tally[A comparable] struct {
	up   A
	down A
}

// NewTally returns a tally recognizer over the two given symbols. The
// symbols must be distinct.
func NewTally[A comparable](up, down A) Tally[A] {
	return Tally[A]{
		up:   up,
		down: down,
	}
}

func (t Tally[A]) InitialState() int {
	return 0
}

func (t Tally[A]) Classify(state int) (automaton.Verdict, error) {
	if state == 0 {
		return automaton.Accept, nil
	}

	return automaton.Reject, nil
}

// Apply edits the tally in place.
func (t Tally[A]) Apply(state *int, symbol A) error {
	switch symbol {
	case t.up:
		*state++
	case t.down:
		*state--
	default:
		return automaton.WrapTransitionError(*state, symbol,
			fmt.Errorf("%w: symbol not in tally alphabet", automaton.ErrInvalidTransition))
	}

	return nil
}
