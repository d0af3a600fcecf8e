package recognize

import (
	"fmt"

	"github.com/amp-labs/amp-automata/automaton"
)

// SuffixState is the three-valued state of the suffix recognizer.
type SuffixState int

const (
	// SuffixStart means no progress towards the suffix.
	SuffixStart SuffixState = iota
	// SuffixSawFirst means the last symbol was the first suffix symbol.
	SuffixSawFirst
	// SuffixMatched means the last two symbols were the suffix.
	SuffixMatched
)

func (s SuffixState) String() string {
	switch s {
	case SuffixStart:
		return "start"
	case SuffixSawFirst:
		return "saw-first"
	case SuffixMatched:
		return "matched"
	default:
		return fmt.Sprintf("SuffixState(%d)", int(s))
	}
}

// Suffix recognizes words ending in the two-symbol suffix first second. Every
// symbol keeps the automaton live; there is no dead state, since any word can
// still gain the suffix later. Its enum state pairs with Counter's
// counter-bearing state to exercise heterogeneous state types behind one
// erased interface.
type Suffix[A comparable] struct {
	first  A
	second A
}

// NewSuffix returns a recognizer for words ending in first second. The
// symbols must be distinct.
func NewSuffix[A comparable](first, second A) Suffix[A] {
	return Suffix[A]{
		first:  first,
		second: second,
	}
}

func (s Suffix[A]) InitialState() SuffixState {
	return SuffixStart
}

func (s Suffix[A]) Classify(state SuffixState) (automaton.Verdict, error) {
	if state < SuffixStart || state > SuffixMatched {
		return automaton.Reject, automaton.WrapStateError(state, automaton.ErrInvalidState)
	}

	if state == SuffixMatched {
		return automaton.Accept, nil
	}

	return automaton.Reject, nil
}

func (s Suffix[A]) Transition(state SuffixState, symbol A) (SuffixState, error) {
	switch state {
	case SuffixStart:
		if symbol == s.first {
			return SuffixSawFirst, nil
		}

		return SuffixStart, nil
	case SuffixSawFirst:
		if symbol == s.first {
			return SuffixSawFirst, nil
		}

		if symbol == s.second {
			return SuffixMatched, nil
		}

		return SuffixStart, nil
	case SuffixMatched:
		if symbol == s.first {
			return SuffixSawFirst, nil
		}

		return SuffixStart, nil
	default:
		return SuffixStart, automaton.WrapStateError(state, automaton.ErrInvalidState)
	}
}
