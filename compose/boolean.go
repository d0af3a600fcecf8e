package compose

import (
	"github.com/amp-labs/amp-automata/automaton"
	"github.com/amp-labs/amp-automata/pair"
)

// Union builds an automaton recognizing the union of the two component
// languages: it accepts when either component accepts. Both components must
// classify into automaton.Verdict. The OR reduction is symmetric in outcome,
// but error propagation is not: the left component is always classified
// first and its error suppresses evaluation of the right.
func Union[SA, SB, A any](
	first automaton.Blueprint[SA, A, automaton.Verdict],
	second automaton.Blueprint[SB, A, automaton.Verdict],
) automaton.Blueprint[pair.Of[SA, SB], A, automaton.Verdict] {
	return unionBlueprint[SA, SB, A]{
		verdictPair[SA, SB, A]{first: first, second: second},
	}
}

// Intersection builds an automaton recognizing the intersection of the two
// component languages: it accepts only when both components accept. Error
// propagation matches Union, left before right.
func Intersection[SA, SB, A any](
	first automaton.Blueprint[SA, A, automaton.Verdict],
	second automaton.Blueprint[SB, A, automaton.Verdict],
) automaton.Blueprint[pair.Of[SA, SB], A, automaton.Verdict] {
	return intersectionBlueprint[SA, SB, A]{
		verdictPair[SA, SB, A]{first: first, second: second},
	}
}

// verdictPair carries the state-space plumbing shared by the two boolean
// reductions: paired initial states, lockstep transitions, and left-first
// classification of both components.
type verdictPair[SA, SB, A any] struct {
	first  automaton.Blueprint[SA, A, automaton.Verdict]
	second automaton.Blueprint[SB, A, automaton.Verdict]
}

func (v verdictPair[SA, SB, A]) InitialState() pair.Of[SA, SB] {
	return pair.New(v.first.InitialState(), v.second.InitialState())
}

func (v verdictPair[SA, SB, A]) Transition(state pair.Of[SA, SB], symbol A) (pair.Of[SA, SB], error) {
	firstNext, err := v.first.Transition(state.First, symbol)
	if err != nil {
		return pair.Of[SA, SB]{}, err
	}

	secondNext, err := v.second.Transition(state.Second, symbol)
	if err != nil {
		return pair.Of[SA, SB]{}, err
	}

	return pair.New(firstNext, secondNext), nil
}

func (v verdictPair[SA, SB, A]) sorts(state pair.Of[SA, SB]) (automaton.Verdict, automaton.Verdict, error) {
	firstSort, err := v.first.Classify(state.First)
	if err != nil {
		return automaton.Reject, automaton.Reject, err
	}

	secondSort, err := v.second.Classify(state.Second)
	if err != nil {
		return automaton.Reject, automaton.Reject, err
	}

	return firstSort, secondSort, nil
}

type unionBlueprint[SA, SB, A any] struct {
	verdictPair[SA, SB, A]
}

func (u unionBlueprint[SA, SB, A]) Classify(state pair.Of[SA, SB]) (automaton.Verdict, error) {
	firstSort, secondSort, err := u.sorts(state)
	if err != nil {
		return automaton.Reject, err
	}

	if firstSort == automaton.Accept || secondSort == automaton.Accept {
		return automaton.Accept, nil
	}

	return automaton.Reject, nil
}

type intersectionBlueprint[SA, SB, A any] struct {
	verdictPair[SA, SB, A]
}

func (i intersectionBlueprint[SA, SB, A]) Classify(state pair.Of[SA, SB]) (automaton.Verdict, error) {
	firstSort, secondSort, err := i.sorts(state)
	if err != nil {
		return automaton.Reject, err
	}

	if firstSort == automaton.Accept && secondSort == automaton.Accept {
		return automaton.Accept, nil
	}

	return automaton.Reject, nil
}

// MutableUnion is Union for the mutation paradigm.
func MutableUnion[SA, SB, A any](
	first automaton.MutableBlueprint[SA, A, automaton.Verdict],
	second automaton.MutableBlueprint[SB, A, automaton.Verdict],
) automaton.MutableBlueprint[pair.Of[SA, SB], A, automaton.Verdict] {
	return mutableUnionBlueprint[SA, SB, A]{
		mutableVerdictPair[SA, SB, A]{first: first, second: second},
	}
}

// MutableIntersection is Intersection for the mutation paradigm.
func MutableIntersection[SA, SB, A any](
	first automaton.MutableBlueprint[SA, A, automaton.Verdict],
	second automaton.MutableBlueprint[SB, A, automaton.Verdict],
) automaton.MutableBlueprint[pair.Of[SA, SB], A, automaton.Verdict] {
	return mutableIntersectionBlueprint[SA, SB, A]{
		mutableVerdictPair[SA, SB, A]{first: first, second: second},
	}
}

type mutableVerdictPair[SA, SB, A any] struct {
	first  automaton.MutableBlueprint[SA, A, automaton.Verdict]
	second automaton.MutableBlueprint[SB, A, automaton.Verdict]
}

func (v mutableVerdictPair[SA, SB, A]) InitialState() pair.Of[SA, SB] {
	return pair.New(v.first.InitialState(), v.second.InitialState())
}

func (v mutableVerdictPair[SA, SB, A]) Apply(state *pair.Of[SA, SB], symbol A) error {
	if err := v.first.Apply(&state.First, symbol); err != nil {
		return err
	}

	return v.second.Apply(&state.Second, symbol)
}

func (v mutableVerdictPair[SA, SB, A]) sorts(state pair.Of[SA, SB]) (automaton.Verdict, automaton.Verdict, error) {
	firstSort, err := v.first.Classify(state.First)
	if err != nil {
		return automaton.Reject, automaton.Reject, err
	}

	secondSort, err := v.second.Classify(state.Second)
	if err != nil {
		return automaton.Reject, automaton.Reject, err
	}

	return firstSort, secondSort, nil
}

type mutableUnionBlueprint[SA, SB, A any] struct {
	mutableVerdictPair[SA, SB, A]
}

func (u mutableUnionBlueprint[SA, SB, A]) Classify(state pair.Of[SA, SB]) (automaton.Verdict, error) {
	firstSort, secondSort, err := u.sorts(state)
	if err != nil {
		return automaton.Reject, err
	}

	if firstSort == automaton.Accept || secondSort == automaton.Accept {
		return automaton.Accept, nil
	}

	return automaton.Reject, nil
}

type mutableIntersectionBlueprint[SA, SB, A any] struct {
	mutableVerdictPair[SA, SB, A]
}

func (i mutableIntersectionBlueprint[SA, SB, A]) Classify(state pair.Of[SA, SB]) (automaton.Verdict, error) {
	firstSort, secondSort, err := i.sorts(state)
	if err != nil {
		return automaton.Reject, err
	}

	if firstSort == automaton.Accept && secondSort == automaton.Accept {
		return automaton.Accept, nil
	}

	return automaton.Reject, nil
}
