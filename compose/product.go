// Package compose combines two automata into one by pairing their state
// spaces. The general product preserves both component sorts; the union and
// intersection reductions collapse binary Accept/Reject sorts with OR and
// AND. All constructions exist for both execution paradigms.
//
// Components are stepped in lockstep on the same symbol, first (left) before
// second (right). An error from the left component short-circuits the call;
// the right component is not invoked. The composite state is a pair.Of whose
// halves always share one input history; they are never stepped
// independently.
package compose

import (
	"github.com/amp-labs/amp-automata/automaton"
	"github.com/amp-labs/amp-automata/pair"
)

// Product builds the general product of two blueprints sharing an alphabet.
// The composite state is the pair of component states and the composite sort
// is the pair of component sorts, so neither classification is lost.
func Product[SA, SB, A, KA, KB any](
	first automaton.Blueprint[SA, A, KA],
	second automaton.Blueprint[SB, A, KB],
) automaton.Blueprint[pair.Of[SA, SB], A, pair.Of[KA, KB]] {
	return productBlueprint[SA, SB, A, KA, KB]{
		first:  first,
		second: second,
	}
}

type productBlueprint[SA, SB, A, KA, KB any] struct {
	first  automaton.Blueprint[SA, A, KA]
	second automaton.Blueprint[SB, A, KB]
}

func (p productBlueprint[SA, SB, A, KA, KB]) InitialState() pair.Of[SA, SB] {
	return pair.New(p.first.InitialState(), p.second.InitialState())
}

func (p productBlueprint[SA, SB, A, KA, KB]) Classify(state pair.Of[SA, SB]) (pair.Of[KA, KB], error) {
	firstSort, err := p.first.Classify(state.First)
	if err != nil {
		return pair.Of[KA, KB]{}, err
	}

	secondSort, err := p.second.Classify(state.Second)
	if err != nil {
		return pair.Of[KA, KB]{}, err
	}

	return pair.New(firstSort, secondSort), nil
}

func (p productBlueprint[SA, SB, A, KA, KB]) Transition(state pair.Of[SA, SB], symbol A) (pair.Of[SA, SB], error) {
	firstNext, err := p.first.Transition(state.First, symbol)
	if err != nil {
		return pair.Of[SA, SB]{}, err
	}

	secondNext, err := p.second.Transition(state.Second, symbol)
	if err != nil {
		return pair.Of[SA, SB]{}, err
	}

	return pair.New(firstNext, secondNext), nil
}

// MutableProduct is Product for the mutation paradigm. Apply edits both pair
// halves in place. If the left component fails the right one is not applied,
// so the halves may be one symbol apart after an error; composite instances
// are not steppable past the first failure.
func MutableProduct[SA, SB, A, KA, KB any](
	first automaton.MutableBlueprint[SA, A, KA],
	second automaton.MutableBlueprint[SB, A, KB],
) automaton.MutableBlueprint[pair.Of[SA, SB], A, pair.Of[KA, KB]] {
	return mutableProductBlueprint[SA, SB, A, KA, KB]{
		first:  first,
		second: second,
	}
}

type mutableProductBlueprint[SA, SB, A, KA, KB any] struct {
	first  automaton.MutableBlueprint[SA, A, KA]
	second automaton.MutableBlueprint[SB, A, KB]
}

func (p mutableProductBlueprint[SA, SB, A, KA, KB]) InitialState() pair.Of[SA, SB] {
	return pair.New(p.first.InitialState(), p.second.InitialState())
}

func (p mutableProductBlueprint[SA, SB, A, KA, KB]) Classify(state pair.Of[SA, SB]) (pair.Of[KA, KB], error) {
	firstSort, err := p.first.Classify(state.First)
	if err != nil {
		return pair.Of[KA, KB]{}, err
	}

	secondSort, err := p.second.Classify(state.Second)
	if err != nil {
		return pair.Of[KA, KB]{}, err
	}

	return pair.New(firstSort, secondSort), nil
}

func (p mutableProductBlueprint[SA, SB, A, KA, KB]) Apply(state *pair.Of[SA, SB], symbol A) error {
	if err := p.first.Apply(&state.First, symbol); err != nil {
		return err
	}

	return p.second.Apply(&state.Second, symbol)
}
