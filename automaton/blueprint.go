// Package automaton defines the contracts for deterministic state machines
// with unconstrained state representations, and the engines that run them.
//
// A blueprint is an immutable description of a machine: its initial state, a
// classification function mapping states to sorts (for example Accept or
// Reject), and a transition function. A running instance owns one mutable
// state value and a read-only reference to its blueprint. Blueprints may be
// shared across any number of instances without synchronization; an instance
// is single threaded and must not be shared.
//
// Two execution paradigms are supported. Functional blueprints return a new
// state from every transition. Mutable blueprints edit the state in place
// through a pointer, which suits states that are expensive to duplicate.
// Every functional blueprint can be used where a mutable one is expected via
// Adapt; the reverse conversion is deliberately not provided, since it would
// force a state duplication that mutable states need not support.
package automaton

// Blueprint describes a deterministic automaton in the functional paradigm:
// transitions return successor values and never modify their inputs.
//
// S is the state type, A the input symbol (alphabet) type, and K the state
// sort (classification) type. Implementations must be deterministic and
// referentially transparent: identical (state, symbol) arguments always yield
// identical results. Classify and Transition must complete in O(1) amortized
// time per processed symbol.
type Blueprint[S, A, K any] interface {
	// InitialState returns the state every new instance starts in. Each
	// call must produce a value independent of earlier calls, so states
	// holding maps or slices do not alias across instances.
	InitialState() S

	// Classify maps a state to its sort. It fails with an invalid-state
	// error if the value lies outside the states the blueprint models.
	Classify(state S) (K, error)

	// Transition computes the successor of state on symbol. It fails if the
	// state is invalid or no valid successor exists; rejection of an input
	// is expressed as a normal dead state, never as an error.
	Transition(state S, symbol A) (S, error)
}

// MutableBlueprint describes a deterministic automaton in the mutation
// paradigm: Apply edits the state through a pointer instead of returning a
// fresh value. Semantics otherwise match Blueprint exactly.
type MutableBlueprint[S, A, K any] interface {
	// InitialState returns the state every new instance starts in.
	InitialState() S

	// Classify maps a state to its sort. It fails with an invalid-state
	// error if the value lies outside the states the blueprint models.
	Classify(state S) (K, error)

	// Apply advances state in place by one symbol. If it fails, the pointee
	// holds whatever the implementation left there; callers that need the
	// prior value must copy it first.
	Apply(state *S, symbol A) error
}
