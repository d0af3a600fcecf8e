// Package dynamic erases the state type from blueprints so that automata
// over different state representations can share a collection, a registry,
// or a driver loop.
//
// An erased Blueprint exposes only the symbol type A and the sort type K.
// The concrete state lives behind the interface inside each Instance, so a
// []Blueprint[rune, Verdict] can mix an int-counting recognizer with an
// enum-driven one. Erasure costs one interface indirection per operation
// and nothing else; the underlying blueprint is not copied.
//
//nolint:ireturn // erasure returns interface types
package dynamic

import (
	"github.com/amp-labs/amp-automata/automaton"
)

// Blueprint is a state-erased automaton blueprint. Implementations remain
// immutable and shareable; each Instance call produces an independent run.
type Blueprint[A, K any] interface {
	// Instance starts a fresh run from the blueprint's initial state.
	Instance() Instance[A, K]

	// Characterize drives a fresh run over word and returns the final sort.
	// The first failing symbol aborts the run.
	Characterize(word []A) (K, error)
}

// Instance is a state-erased running automaton. Like its typed
// counterparts it is single-threaded; share the Blueprint instead.
type Instance[A, K any] interface {
	// Step consumes one symbol. When it fails the hidden state holds
	// whatever the blueprint's transition left in place.
	Step(symbol A) error

	// Sort classifies the current state without consuming anything.
	Sort() (K, error)

	// StepSort consumes one symbol and classifies the resulting state.
	StepSort(symbol A) (K, error)
}

// Erase hides the state type of a mutation blueprint. The returned
// Blueprint delegates every operation to bp.
func Erase[S, A, K any](bp automaton.MutableBlueprint[S, A, K]) Blueprint[A, K] {
	return erased[S, A, K]{blueprint: bp}
}

// EraseFunctional hides the state type of a functional blueprint by
// adapting it to the mutation paradigm first.
func EraseFunctional[S, A, K any](bp automaton.Blueprint[S, A, K]) Blueprint[A, K] {
	return Erase(automaton.Adapt(bp))
}

type erased[S, A, K any] struct {
	blueprint automaton.MutableBlueprint[S, A, K]
}

func (e erased[S, A, K]) Instance() Instance[A, K] {
	return automaton.NewMutable(e.blueprint)
}

func (e erased[S, A, K]) Characterize(word []A) (K, error) {
	return automaton.CharacterizeMutable(e.blueprint, word)
}
