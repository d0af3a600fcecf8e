// Package automatontest provides blueprint fixtures and a scenario
// runner for exercising automata in tests.
package automatontest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-automata/automaton"
	"github.com/amp-labs/amp-automata/dynamic"
)

// Failing is a blueprint whose operations fail on demand. Its state
// counts consumed symbols, so FailTransitionAt selects the exact symbol
// index at which stepping starts to fail.
type Failing[A any] struct {
	// FailClassify makes every Classify call fail with an
	// invalid-state error.
	FailClassify bool

	// FailTransition makes Transition fail with an invalid-transition
	// error once FailTransitionAt symbols have been consumed.
	FailTransition bool

	// FailTransitionAt is the zero-based symbol index of the first
	// failing step. Only consulted when FailTransition is set.
	FailTransitionAt int
}

// InitialState starts the consumed-symbol count at zero.
func (f Failing[A]) InitialState() int {
	return 0
}

// Classify accepts unless FailClassify is set.
func (f Failing[A]) Classify(state int) (automaton.Verdict, error) {
	if f.FailClassify {
		return automaton.Reject, automaton.WrapStateError(state, automaton.ErrInvalidState)
	}

	return automaton.Accept, nil
}

// Transition counts the symbol unless the failure point is reached.
func (f Failing[A]) Transition(state int, symbol A) (int, error) {
	if f.FailTransition && state >= f.FailTransitionAt {
		return 0, automaton.WrapTransitionError(state, symbol, automaton.ErrInvalidTransition)
	}

	return state + 1, nil
}

// Scenario describes one word driven through a blueprint and the
// expected outcome.
type Scenario[A, K any] struct {
	Name  string
	Input []A

	// Want is the expected sort. Ignored when WantErr is set.
	Want K

	// WantErr, when non-nil, expects characterization to fail with an
	// error matching it under errors.Is.
	WantErr error
}

// AcceptScenario builds a scenario expecting the Accept verdict.
func AcceptScenario[A any](name string, input []A) Scenario[A, automaton.Verdict] {
	return Scenario[A, automaton.Verdict]{Name: name, Input: input, Want: automaton.Accept}
}

// RejectScenario builds a scenario expecting the Reject verdict.
func RejectScenario[A any](name string, input []A) Scenario[A, automaton.Verdict] {
	return Scenario[A, automaton.Verdict]{Name: name, Input: input, Want: automaton.Reject}
}

// Run characterizes each scenario's input against bp and checks the
// outcome. Each scenario runs as its own subtest.
func Run[A, K any](t *testing.T, bp dynamic.Blueprint[A, K], scenarios []Scenario[A, K]) {
	t.Helper()

	for _, scenario := range scenarios {
		t.Run(scenario.Name, func(t *testing.T) {
			sort, err := bp.Characterize(scenario.Input)

			if scenario.WantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, scenario.WantErr)

				return
			}

			require.NoError(t, err)
			require.Equal(t, scenario.Want, sort)
		})
	}
}

// RunFunctional erases bp and runs the scenarios against it.
func RunFunctional[S, A, K any](t *testing.T, bp automaton.Blueprint[S, A, K], scenarios []Scenario[A, K]) {
	t.Helper()

	Run(t, dynamic.EraseFunctional(bp), scenarios)
}

// RunMutable erases bp and runs the scenarios against it.
func RunMutable[S, A, K any](t *testing.T, bp automaton.MutableBlueprint[S, A, K], scenarios []Scenario[A, K]) {
	t.Helper()

	Run(t, dynamic.Erase(bp), scenarios)
}
