// Package explore steps automata interactively from a terminal. Pick a
// symbol from the alphabet, feed it to a running instance, see the
// resulting sort. Meant for debugging table definitions and other
// string-symbol automata without writing a test first.
package explore

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/amp-labs/amp-automata/automaton"
	"github.com/amp-labs/amp-automata/dynamic"
	"github.com/amp-labs/amp-automata/table"
)

// Menu entries offered alongside the alphabet.
const (
	entrySort  = "[sort]"
	entryReset = "[reset]"
	entryQuit  = "[quit]"
)

// Options controls where the session reads and writes. Zero value means
// the process terminal.
type Options struct {
	// Stdin for the prompt. Nil means os.Stdin.
	Stdin io.ReadCloser

	// Stdout for prompt rendering and session output. Nil means os.Stdout.
	Stdout io.WriteCloser
}

// Session is one interactive run over an erased blueprint.
type Session[K any] struct {
	name      string
	blueprint dynamic.Blueprint[string, K]
	alphabet  []string
	instance  dynamic.Instance[string, K]
	steps     int
	stdin     io.ReadCloser
	stdout    io.WriteCloser
}

// NewSession starts a session over the blueprint. The alphabet supplies
// the symbol menu; it is not validated against the blueprint, symbols
// the blueprint rejects simply report their error.
func NewSession[K any](name string, blueprint dynamic.Blueprint[string, K], alphabet []string, opts Options) *Session[K] {
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Session[K]{
		name:      name,
		blueprint: blueprint,
		alphabet:  alphabet,
		instance:  blueprint.Instance(),
		stdin:     stdin,
		stdout:    stdout,
	}
}

// NewMachineSession starts a session over a compiled table machine,
// with the machine's own name and alphabet.
func NewMachineSession(machine *table.Machine, opts Options) *Session[automaton.Verdict] {
	var blueprint automaton.Blueprint[string, string, automaton.Verdict] = machine

	return NewSession(machine.Name(), dynamic.EraseFunctional(blueprint), machine.Alphabet(), opts)
}

// Run loops the symbol menu until quit or interrupt. Interrupts are a
// normal way to leave, not an error.
func (s *Session[K]) Run() error {
	for {
		sel := &promptui.Select{
			Label:  s.label(),
			Items:  s.items(),
			Stdin:  s.stdin,
			Stdout: s.stdout,
		}

		_, value, err := sel.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
				return nil
			}

			return fmt.Errorf("prompt failed: %w", err)
		}

		output, done := s.handle(value)

		fmt.Fprintln(s.stdout, output)

		if done {
			return nil
		}
	}
}

// label names the prompt with the automaton and how far the run is.
func (s *Session[K]) label() string {
	return fmt.Sprintf("%s after %d symbols", s.name, s.steps)
}

// items builds the menu: the alphabet first, then the control entries.
func (s *Session[K]) items() []string {
	items := make([]string, 0, len(s.alphabet)+3)
	items = append(items, s.alphabet...)
	items = append(items, entrySort, entryReset, entryQuit)

	return items
}

// handle applies one menu choice and renders the outcome. It reports
// whether the session is over.
func (s *Session[K]) handle(choice string) (string, bool) {
	switch choice {
	case entryQuit:
		return fmt.Sprintf("%s: done after %d symbols", s.name, s.steps), true
	case entryReset:
		s.instance = s.blueprint.Instance()
		s.steps = 0

		return "reset to the initial state", false
	case entrySort:
		sort, err := s.instance.Sort()
		if err != nil {
			return fmt.Sprintf("sort failed: %v", err), false
		}

		return fmt.Sprintf("sort: %v", sort), false
	default:
		sort, err := s.instance.StepSort(choice)
		if err != nil {
			return fmt.Sprintf("step %q failed: %v", choice, err), false
		}

		s.steps++

		return fmt.Sprintf("step %q -> %v", choice, sort), false
	}
}
