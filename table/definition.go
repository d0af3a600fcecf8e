// Package table loads finite automata from YAML definitions and compiles
// them into blueprints over string states and string symbols.
//
// A Definition is data: states, alphabet, transition rules. Validate
// enforces the structural rules a compiled machine relies on, so Compile
// and the run-time blueprint never have to re-check them. Definitions can
// come from plain files, compressed files, or any fs.FS via a Source.
package table

import (
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// SinkState is the reserved name of the implicit dead state that
// non-strict machines fall into when no rule matches. Definitions must
// not declare it.
const SinkState = "_sink"

// Definition describes a finite automaton as data.
type Definition struct {
	Name     string   `json:"name"     yaml:"name"`
	Alphabet []string `json:"alphabet" yaml:"alphabet"`
	States   []string `json:"states"   yaml:"states"`
	Initial  string   `json:"initial"  yaml:"initial"`
	Accept   []string `json:"accept"   yaml:"accept"`
	Rules    []Rule   `json:"rules"    yaml:"rules"`

	// Strict makes a missing rule an invalid-transition error instead
	// of a silent move to the sink state.
	Strict bool `json:"strict" yaml:"strict"`
}

// Rule maps one (state, symbol) pair to a successor state.
type Rule struct {
	From string `json:"from" yaml:"from"`
	On   string `json:"on"   yaml:"on"`
	To   string `json:"to"   yaml:"to"`
}

// Load reads a definition from a YAML file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Intentional path-based loading
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %q: %w", path, err)
	}

	return Parse(data)
}

// LoadFS reads a definition from a file on fsys. This is a convenience
// for loading from embed.FS.
func LoadFS(fsys fs.FS, path string) (*Definition, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition from FS: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML definition, normalizes every name to Unicode NFC
// so lookups do not depend on how the file was encoded, and validates it.
func Parse(data []byte) (*Definition, error) {
	var definition Definition

	err := yaml.Unmarshal(data, &definition)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	definition.normalize()

	err = definition.Validate()
	if err != nil {
		return nil, err
	}

	return &definition, nil
}

// normalize rewrites every name and symbol to Unicode NFC.
func (d *Definition) normalize() {
	d.Name = norm.NFC.String(d.Name)
	d.Initial = norm.NFC.String(d.Initial)

	for i, symbol := range d.Alphabet {
		d.Alphabet[i] = norm.NFC.String(symbol)
	}

	for i, state := range d.States {
		d.States[i] = norm.NFC.String(state)
	}

	for i, state := range d.Accept {
		d.Accept[i] = norm.NFC.String(state)
	}

	for i, rule := range d.Rules {
		d.Rules[i] = Rule{
			From: norm.NFC.String(rule.From),
			On:   norm.NFC.String(rule.On),
			To:   norm.NFC.String(rule.To),
		}
	}
}

// Validate checks that the definition describes a well-formed
// deterministic automaton: every name declared exactly once, every rule
// endpoint and symbol declared, at most one rule per state and symbol,
// and every state reachable from the initial state.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return ErrNameRequired
	}

	if len(d.Alphabet) == 0 {
		return ErrAlphabetRequired
	}

	if len(d.States) == 0 {
		return ErrStatesRequired
	}

	if d.Initial == "" {
		return ErrInitialRequired
	}

	symbols := make(map[string]bool, len(d.Alphabet))

	for i, symbol := range d.Alphabet {
		if symbol == "" {
			return fmt.Errorf("alphabet symbol %d: %w", i, ErrEmptyName)
		}

		if symbols[symbol] {
			return fmt.Errorf("%w: %s", ErrDuplicateSymbol, symbol)
		}

		symbols[symbol] = true
	}

	states := make(map[string]bool, len(d.States))

	for i, state := range d.States {
		if state == "" {
			return fmt.Errorf("state %d: %w", i, ErrEmptyName)
		}

		if state == SinkState {
			return fmt.Errorf("%w: %s", ErrReservedState, state)
		}

		if states[state] {
			return fmt.Errorf("%w: %s", ErrDuplicateState, state)
		}

		states[state] = true
	}

	if !states[d.Initial] {
		return fmt.Errorf("%w: %s", ErrInitialNotDeclared, d.Initial)
	}

	for _, state := range d.Accept {
		if !states[state] {
			return fmt.Errorf("%w: %s", ErrAcceptNotDeclared, state)
		}
	}

	type edge struct {
		from, on string
	}

	seen := make(map[edge]bool, len(d.Rules))

	for i, rule := range d.Rules {
		if !states[rule.From] {
			return fmt.Errorf("rule %d: %w: %s", i, ErrRuleFromNotDeclared, rule.From)
		}

		if !states[rule.To] {
			return fmt.Errorf("rule %d: %w: %s", i, ErrRuleToNotDeclared, rule.To)
		}

		if !symbols[rule.On] {
			return fmt.Errorf("rule %d: %w: %s", i, ErrRuleSymbolNotDeclared, rule.On)
		}

		key := edge{from: rule.From, on: rule.On}
		if seen[key] {
			return fmt.Errorf("rule %d: %w: %s on %s", i, ErrNondeterministicRule, rule.From, rule.On)
		}

		seen[key] = true
	}

	reachable := d.findReachableStates()

	for _, state := range d.States {
		if !reachable[state] {
			return fmt.Errorf("%w: %s", ErrUnreachableState, state)
		}
	}

	return nil
}

// findReachableStates finds all states reachable from the initial state.
func (d *Definition) findReachableStates() map[string]bool {
	reachable := make(map[string]bool)
	reachable[d.Initial] = true

	// Simple BFS
	queue := []string{d.Initial}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, rule := range d.Rules {
			if rule.From == current && !reachable[rule.To] {
				reachable[rule.To] = true
				queue = append(queue, rule.To)
			}
		}
	}

	return reachable
}
