package dynamic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-automata/automaton"
	"github.com/amp-labs/amp-automata/recognize"
)

func tallyBlueprint() automaton.MutableBlueprint[int, rune, automaton.Verdict] {
	return recognize.NewTally('a', 'b')
}

func counterBlueprint() automaton.Blueprint[recognize.CounterState, rune, automaton.Verdict] {
	return recognize.NewCounter('a', 'b')
}

func suffixBlueprint() automaton.Blueprint[recognize.SuffixState, rune, automaton.Verdict] {
	return recognize.NewSuffix('a', 'b')
}

func TestHeterogeneousCollection(t *testing.T) {
	t.Parallel()

	// Three recognizers with three different state representations,
	// living in one slice once erased.
	blueprints := []Blueprint[rune, automaton.Verdict]{
		Erase(tallyBlueprint()),
		EraseFunctional(counterBlueprint()),
		EraseFunctional(suffixBlueprint()),
	}

	for index, blueprint := range blueprints {
		t.Run(fmt.Sprintf("blueprint_%d", index), func(t *testing.T) {
			t.Parallel()

			sort, err := blueprint.Characterize([]rune("ab"))
			require.NoError(t, err)
			assert.Equal(t, automaton.Accept, sort)
		})
	}

	// The tally accepts any word whose counts balance; the counter also
	// demands every first symbol precede every second one.
	words := []struct {
		word    string
		tally   automaton.Verdict
		counter automaton.Verdict
	}{
		{word: "aabb", tally: automaton.Accept, counter: automaton.Accept},
		{word: "ba", tally: automaton.Accept, counter: automaton.Reject},
		{word: "abab", tally: automaton.Accept, counter: automaton.Reject},
		{word: "aab", tally: automaton.Reject, counter: automaton.Reject},
	}

	for _, tc := range words {
		sort, err := blueprints[0].Characterize([]rune(tc.word))
		require.NoError(t, err)
		assert.Equal(t, tc.tally, sort, "tally on %q", tc.word)

		sort, err = blueprints[1].Characterize([]rune(tc.word))
		require.NoError(t, err)
		assert.Equal(t, tc.counter, sort, "counter on %q", tc.word)
	}
}

func TestErasedMatchesNative(t *testing.T) {
	t.Parallel()

	native := suffixBlueprint()
	bridged := EraseFunctional(native)

	words := []string{"", "a", "b", "ab", "aab", "abab", "abba", "bab"}

	for _, word := range words {
		t.Run(fmt.Sprintf("word_%q", word), func(t *testing.T) {
			t.Parallel()

			want, err := automaton.Characterize(native, []rune(word))
			require.NoError(t, err)

			got, err := bridged.Characterize([]rune(word))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestErasedInstanceStepping(t *testing.T) {
	t.Parallel()

	var tally automaton.MutableBlueprint[int, rune, automaton.Verdict] = recognize.NewTally('+', '-')

	instance := Erase(tally).Instance()

	sort, err := instance.Sort()
	require.NoError(t, err)
	assert.Equal(t, automaton.Accept, sort, "empty word is balanced")

	sort, err = instance.StepSort('+')
	require.NoError(t, err)
	assert.Equal(t, automaton.Reject, sort)

	require.NoError(t, instance.Step('+'))
	require.NoError(t, instance.Step('-'))

	sort, err = instance.StepSort('-')
	require.NoError(t, err)
	assert.Equal(t, automaton.Accept, sort)
}

func TestErasedInstancesAreIndependent(t *testing.T) {
	t.Parallel()

	blueprint := Erase(tallyBlueprint())

	first := blueprint.Instance()
	second := blueprint.Instance()

	require.NoError(t, first.Step('a'))

	sort, err := second.Sort()
	require.NoError(t, err)
	assert.Equal(t, automaton.Accept, sort, "stepping one run must not move the other")
}

func TestErasedErrorsKeepIdentity(t *testing.T) {
	t.Parallel()

	blueprint := Erase(tallyBlueprint())

	_, err := blueprint.Characterize([]rune("axb"))
	require.Error(t, err)
	assert.ErrorIs(t, err, automaton.ErrInvalidTransition)

	var transitionErr *automaton.TransitionError

	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, 'x', transitionErr.Symbol)

	instance := blueprint.Instance()
	require.NoError(t, instance.Step('a'))
	require.Error(t, instance.Step('x'))

	// The failed step left the run where it was.
	sort, err := instance.StepSort('b')
	require.NoError(t, err)
	assert.Equal(t, automaton.Accept, sort)
}
