package automaton

// MutableInstance is a running automaton in the mutation paradigm. Steps edit
// the held state in place through the blueprint's Apply.
//
// Ownership and threading rules match Instance: one goroutine per instance,
// blueprints freely shared.
type MutableInstance[S, A, K any] struct {
	blueprint MutableBlueprint[S, A, K]
	state     S
}

// NewMutable creates an instance of bp positioned at its initial state.
func NewMutable[S, A, K any](bp MutableBlueprint[S, A, K]) *MutableInstance[S, A, K] {
	return &MutableInstance[S, A, K]{
		blueprint: bp,
		state:     bp.InitialState(),
	}
}

// Step advances the instance by one symbol. On error the held state is
// whatever Apply left in place.
func (in *MutableInstance[S, A, K]) Step(symbol A) error {
	return in.blueprint.Apply(&in.state, symbol)
}

// Sort classifies the current state without advancing.
func (in *MutableInstance[S, A, K]) Sort() (K, error) {
	return in.blueprint.Classify(in.state)
}

// StepSort advances by one symbol and classifies the resulting state.
func (in *MutableInstance[S, A, K]) StepSort(symbol A) (K, error) {
	if err := in.Step(symbol); err != nil {
		var zero K

		return zero, err
	}

	return in.Sort()
}

// State returns the current state. The returned value may share interior
// pointers (maps, slices) with the instance; callers must not mutate those
// while the instance is still in use.
func (in *MutableInstance[S, A, K]) State() S {
	return in.state
}

// Take yields the final state. The instance must not be stepped or classified
// afterwards.
func (in *MutableInstance[S, A, K]) Take() S {
	return in.state
}
