package table

import (
	"github.com/amp-labs/amp-automata/automaton"
)

// transitionKey identifies one cell of the transition table.
type transitionKey struct {
	state  string
	symbol string
}

// Machine is a compiled definition implementing the functional blueprint
// contract over string states and string symbols.
//
// A strict machine reports a missing rule as an invalid-transition
// error. A non-strict machine moves to the reserved sink state instead,
// which absorbs every further symbol and classifies as Reject. Symbols
// outside the declared alphabet are invalid transitions in both modes.
type Machine struct {
	name     string
	strict   bool
	initial  string
	alphabet []string
	symbols  map[string]bool
	states   map[string]bool
	accept   map[string]bool
	rules    map[transitionKey]string
}

// Compile validates the definition and indexes its rules for constant
// time stepping.
func (d *Definition) Compile() (*Machine, error) {
	err := d.Validate()
	if err != nil {
		return nil, err
	}

	machine := &Machine{
		name:     d.Name,
		strict:   d.Strict,
		initial:  d.Initial,
		alphabet: make([]string, len(d.Alphabet)),
		symbols:  make(map[string]bool, len(d.Alphabet)),
		states:   make(map[string]bool, len(d.States)),
		accept:   make(map[string]bool, len(d.Accept)),
		rules:    make(map[transitionKey]string, len(d.Rules)),
	}

	copy(machine.alphabet, d.Alphabet)

	for _, symbol := range d.Alphabet {
		machine.symbols[symbol] = true
	}

	for _, state := range d.States {
		machine.states[state] = true
	}

	for _, state := range d.Accept {
		machine.accept[state] = true
	}

	for _, rule := range d.Rules {
		machine.rules[transitionKey{state: rule.From, symbol: rule.On}] = rule.To
	}

	return machine, nil
}

// Name returns the definition name the machine was compiled from.
func (m *Machine) Name() string {
	return m.name
}

// Alphabet returns the declared symbols in declaration order.
func (m *Machine) Alphabet() []string {
	alphabet := make([]string, len(m.alphabet))
	copy(alphabet, m.alphabet)

	return alphabet
}

// InitialState returns the definition's initial state.
func (m *Machine) InitialState() string {
	return m.initial
}

// Classify reports Accept for accept states and Reject for every other
// declared state, the sink included.
func (m *Machine) Classify(state string) (automaton.Verdict, error) {
	if !m.validState(state) {
		return automaton.Reject, automaton.WrapStateError(state, automaton.ErrInvalidState)
	}

	if m.accept[state] {
		return automaton.Accept, nil
	}

	return automaton.Reject, nil
}

// Transition looks up the rule for state and symbol. A missing rule is
// an error in strict mode and a move to the sink state otherwise.
func (m *Machine) Transition(state, symbol string) (string, error) {
	if !m.validState(state) {
		return "", automaton.WrapStateError(state, automaton.ErrInvalidState)
	}

	if !m.symbols[symbol] {
		return "", automaton.WrapTransitionError(state, symbol, automaton.ErrInvalidTransition)
	}

	if state == SinkState {
		return SinkState, nil
	}

	if to, ok := m.rules[transitionKey{state: state, symbol: symbol}]; ok {
		return to, nil
	}

	if m.strict {
		return "", automaton.WrapTransitionError(state, symbol, automaton.ErrInvalidTransition)
	}

	return SinkState, nil
}

// validState reports whether state belongs to the machine's domain. The
// sink state only exists in non-strict machines.
func (m *Machine) validState(state string) bool {
	if m.states[state] {
		return true
	}

	return state == SinkState && !m.strict
}
