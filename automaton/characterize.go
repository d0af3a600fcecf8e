package automaton

import "iter"

// Characterize runs bp over the whole word and returns the final state's
// sort. It folds Step over the symbols in order and short-circuits on the
// first error, which is returned exactly as Step produced it; the result is
// observably identical to stepping a fresh Instance by hand.
func Characterize[S, A, K any](bp Blueprint[S, A, K], word []A) (K, error) {
	in := New(bp)
	for _, symbol := range word {
		if err := in.Step(symbol); err != nil {
			var zero K

			return zero, err
		}
	}

	return in.Sort()
}

// CharacterizeMutable is Characterize for the mutation paradigm.
func CharacterizeMutable[S, A, K any](bp MutableBlueprint[S, A, K], word []A) (K, error) {
	in := NewMutable(bp)
	for _, symbol := range word {
		if err := in.Step(symbol); err != nil {
			var zero K

			return zero, err
		}
	}

	return in.Sort()
}

// CharacterizeSeq runs bp over a symbol sequence without materializing it as
// a slice. Semantics match Characterize.
func CharacterizeSeq[S, A, K any](bp Blueprint[S, A, K], symbols iter.Seq[A]) (K, error) {
	in := New(bp)
	for symbol := range symbols {
		if err := in.Step(symbol); err != nil {
			var zero K

			return zero, err
		}
	}

	return in.Sort()
}
