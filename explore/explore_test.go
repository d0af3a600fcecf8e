package explore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-automata/table"
)

func turnstile(t *testing.T) *table.Machine {
	t.Helper()

	definition := &table.Definition{
		Name:     "turnstile",
		Alphabet: []string{"coin", "push"},
		States:   []string{"locked", "unlocked"},
		Initial:  "locked",
		Accept:   []string{"unlocked"},
		Rules: []table.Rule{
			{From: "locked", On: "coin", To: "unlocked"},
			{From: "locked", On: "push", To: "locked"},
			{From: "unlocked", On: "coin", To: "unlocked"},
			{From: "unlocked", On: "push", To: "locked"},
		},
	}

	machine, err := definition.Compile()
	require.NoError(t, err)

	return machine
}

func TestSessionMenu(t *testing.T) {
	t.Parallel()

	session := NewMachineSession(turnstile(t), Options{})

	assert.Equal(t, []string{"coin", "push", "[sort]", "[reset]", "[quit]"}, session.items())
	assert.Equal(t, "turnstile after 0 symbols", session.label())
}

func TestSessionStepping(t *testing.T) {
	t.Parallel()

	session := NewMachineSession(turnstile(t), Options{})

	output, done := session.handle("[sort]")
	assert.False(t, done)
	assert.Equal(t, "sort: Reject", output)

	output, done = session.handle("coin")
	assert.False(t, done)
	assert.Equal(t, `step "coin" -> Accept`, output)
	assert.Equal(t, "turnstile after 1 symbols", session.label())

	output, done = session.handle("push")
	assert.False(t, done)
	assert.Equal(t, `step "push" -> Reject`, output)

	output, done = session.handle("[quit]")
	assert.True(t, done)
	assert.Contains(t, output, "done after 2 symbols")
}

func TestSessionReset(t *testing.T) {
	t.Parallel()

	session := NewMachineSession(turnstile(t), Options{})

	_, done := session.handle("coin")
	require.False(t, done)

	output, done := session.handle("[reset]")
	assert.False(t, done)
	assert.Equal(t, "reset to the initial state", output)
	assert.Equal(t, "turnstile after 0 symbols", session.label())

	output, _ = session.handle("[sort]")
	assert.Equal(t, "sort: Reject", output, "back at the locked state")
}

func TestSessionReportsBadSymbols(t *testing.T) {
	t.Parallel()

	session := NewMachineSession(turnstile(t), Options{})

	output, done := session.handle("zap")
	assert.False(t, done)
	assert.Contains(t, output, `step "zap" failed`)
	assert.Equal(t, "turnstile after 0 symbols", session.label(), "failed steps do not advance the run")

	output, _ = session.handle("[sort]")
	assert.Equal(t, "sort: Reject", output, "state unchanged after the failure")
}
