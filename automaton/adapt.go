package automaton

// Adapt makes a functional blueprint usable wherever a mutable one is
// expected. Apply runs the functional Transition and overwrites the pointee
// only on success, so a failed step leaves the state untouched. InitialState
// and Classify delegate unchanged.
//
// The conversion is universal: no per-blueprint adapter is ever hand written.
// There is no inverse. Recovering functional behavior from an arbitrary
// mutable blueprint would require duplicating the state on every step, which
// the mutation paradigm exists to avoid.
func Adapt[S, A, K any](bp Blueprint[S, A, K]) MutableBlueprint[S, A, K] {
	return adapted[S, A, K]{blueprint: bp}
}

type adapted[S, A, K any] struct {
	blueprint Blueprint[S, A, K]
}

func (ad adapted[S, A, K]) InitialState() S {
	return ad.blueprint.InitialState()
}

func (ad adapted[S, A, K]) Classify(state S) (K, error) {
	return ad.blueprint.Classify(state)
}

func (ad adapted[S, A, K]) Apply(state *S, symbol A) error {
	next, err := ad.blueprint.Transition(*state, symbol)
	if err != nil {
		return err
	}

	*state = next

	return nil
}
