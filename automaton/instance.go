package automaton

// Instance is a running automaton in the functional paradigm. It holds the
// current state and replaces it wholesale on every successful step.
//
// An Instance exclusively owns its state and must not be used from more than
// one goroutine. The blueprint it references is never written to and may back
// any number of concurrent instances.
type Instance[S, A, K any] struct {
	blueprint Blueprint[S, A, K]
	state     S
}

// New creates an instance of bp positioned at its initial state.
func New[S, A, K any](bp Blueprint[S, A, K]) *Instance[S, A, K] {
	return &Instance[S, A, K]{
		blueprint: bp,
		state:     bp.InitialState(),
	}
}

// Step advances the instance by one symbol. On error the held state is
// unchanged.
func (in *Instance[S, A, K]) Step(symbol A) error {
	next, err := in.blueprint.Transition(in.state, symbol)
	if err != nil {
		return err
	}

	in.state = next

	return nil
}

// Sort classifies the current state without advancing.
func (in *Instance[S, A, K]) Sort() (K, error) {
	return in.blueprint.Classify(in.state)
}

// StepSort advances by one symbol and classifies the resulting state.
func (in *Instance[S, A, K]) StepSort(symbol A) (K, error) {
	if err := in.Step(symbol); err != nil {
		var zero K

		return zero, err
	}

	return in.Sort()
}

// State returns the current state. The returned value may share interior
// pointers (maps, slices) with the instance; callers must not mutate those
// while the instance is still in use.
func (in *Instance[S, A, K]) State() S {
	return in.state
}

// Take yields the final state. The instance must not be stepped or classified
// afterwards.
func (in *Instance[S, A, K]) Take() S {
	return in.state
}
