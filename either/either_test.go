package either

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-automata/automaton"
	"github.com/amp-labs/amp-automata/recognize"
)

// comboState pairs the balanced-count recognizer's state with the
// suffix recognizer's, giving the tests one shared alternative layout.
type comboState = State[recognize.CounterState, recognize.SuffixState]

func leftCombo() automaton.Blueprint[comboState, rune, automaton.Verdict] {
	var counter automaton.Blueprint[recognize.CounterState, rune, automaton.Verdict] = recognize.NewCounter('a', 'b')

	return Left[recognize.SuffixState](counter)
}

func rightCombo() automaton.Blueprint[comboState, rune, automaton.Verdict] {
	var suffix automaton.Blueprint[recognize.SuffixState, rune, automaton.Verdict] = recognize.NewSuffix('a', 'b')

	return Right[recognize.CounterState](suffix)
}

func TestLeftDrivesLeftAlternative(t *testing.T) {
	t.Parallel()

	blueprint := leftCombo()

	scenarios := map[string]automaton.Verdict{
		"":     automaton.Accept,
		"aabb": automaton.Accept,
		"abab": automaton.Reject,
		"ba":   automaton.Reject,
	}

	for word, want := range scenarios {
		t.Run(fmt.Sprintf("word_%q", word), func(t *testing.T) {
			t.Parallel()

			sort, err := automaton.Characterize(blueprint, []rune(word))
			require.NoError(t, err)
			assert.Equal(t, want, sort)
		})
	}
}

func TestRightDrivesRightAlternative(t *testing.T) {
	t.Parallel()

	blueprint := rightCombo()

	scenarios := map[string]automaton.Verdict{
		"":     automaton.Reject,
		"aabb": automaton.Reject,
		"abab": automaton.Accept,
		"ab":   automaton.Accept,
	}

	for word, want := range scenarios {
		t.Run(fmt.Sprintf("word_%q", word), func(t *testing.T) {
			t.Parallel()

			sort, err := automaton.Characterize(blueprint, []rune(word))
			require.NoError(t, err)
			assert.Equal(t, want, sort)
		})
	}
}

func TestSidesDisagreeOnTheSameWord(t *testing.T) {
	t.Parallel()

	left := leftCombo()
	right := rightCombo()

	// Balanced but not ending in "ab": only the left side accepts.
	sort, err := automaton.Characterize(left, []rune("aabb"))
	require.NoError(t, err)
	assert.Equal(t, automaton.Accept, sort)

	sort, err = automaton.Characterize(right, []rune("aabb"))
	require.NoError(t, err)
	assert.Equal(t, automaton.Reject, sort)
}

func TestStateAccessors(t *testing.T) {
	t.Parallel()

	left := LeftState[recognize.SuffixState](recognize.CounterState{Phase: recognize.CounterOpening, Count: 2})

	counterState, ok := left.Left()
	require.True(t, ok)
	assert.Equal(t, 2, counterState.Count)

	_, ok = left.Right()
	assert.False(t, ok)

	right := RightState[recognize.CounterState](recognize.SuffixMatched)

	suffixState, ok := right.Right()
	require.True(t, ok)
	assert.Equal(t, recognize.SuffixMatched, suffixState)

	_, ok = right.Left()
	assert.False(t, ok)
}

func TestHandBuiltStateMismatches(t *testing.T) {
	t.Parallel()

	blueprint := leftCombo()
	state := RightState[recognize.CounterState](recognize.SuffixStart)

	_, err := blueprint.Classify(state)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVariantMismatch)

	_, err = blueprint.Transition(state, 'a')
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVariantMismatch)
}

func TestZeroValuesMismatchInsteadOfPanicking(t *testing.T) {
	t.Parallel()

	t.Run("zero state", func(t *testing.T) {
		t.Parallel()

		blueprint := leftCombo()

		_, err := blueprint.Classify(comboState{})
		assert.ErrorIs(t, err, ErrVariantMismatch)
	})

	t.Run("zero blueprint", func(t *testing.T) {
		t.Parallel()

		var blueprint Blueprint[recognize.CounterState, recognize.SuffixState, rune, automaton.Verdict]

		_, err := blueprint.Classify(blueprint.InitialState())
		assert.ErrorIs(t, err, ErrVariantMismatch)

		_, err = blueprint.Transition(blueprint.InitialState(), 'a')
		assert.ErrorIs(t, err, ErrVariantMismatch)
	})

	t.Run("zero mutable blueprint", func(t *testing.T) {
		t.Parallel()

		var blueprint MutableBlueprint[int, recognize.SuffixState, rune, automaton.Verdict]

		state := blueprint.InitialState()

		err := blueprint.Apply(&state, 'a')
		assert.ErrorIs(t, err, ErrVariantMismatch)
	})
}

func TestMutableTwinEditsInPlace(t *testing.T) {
	t.Parallel()

	var tally automaton.MutableBlueprint[int, rune, automaton.Verdict] = recognize.NewTally('a', 'b')

	var blueprint automaton.MutableBlueprint[State[int, recognize.SuffixState], rune, automaton.Verdict] =
		LeftMutable[recognize.SuffixState](tally)

	instance := automaton.NewMutable(blueprint)

	require.NoError(t, instance.Step('a'))
	require.NoError(t, instance.Step('a'))

	count, ok := instance.State().Left()
	require.True(t, ok)
	assert.Equal(t, 2, count)

	sort, err := instance.StepSort('b')
	require.NoError(t, err)
	assert.Equal(t, automaton.Reject, sort)
}

func TestMutableMismatchLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	var tally automaton.MutableBlueprint[int, rune, automaton.Verdict] = recognize.NewTally('a', 'b')

	blueprint := LeftMutable[recognize.SuffixState](tally)
	state := RightState[int](recognize.SuffixSawFirst)

	err := blueprint.Apply(&state, 'a')
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVariantMismatch)

	suffixState, ok := state.Right()
	require.True(t, ok)
	assert.Equal(t, recognize.SuffixSawFirst, suffixState)
}
