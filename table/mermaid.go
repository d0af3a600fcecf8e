package table

import (
	"errors"
	"fmt"
	"strings"
)

// Mermaid rendering errors.
var (
	ErrDefinitionNil = errors.New("definition cannot be nil")
)

// MermaidOptions controls diagram rendering.
type MermaidOptions struct {
	// ShowSymbols labels edges with the symbols that take them
	ShowSymbols bool

	// LeftToRight lays the diagram out horizontally instead of top-down
	LeftToRight bool

	// HighlightPath highlights the states visited by a run
	HighlightPath []string
}

// DefaultMermaidOptions returns the standard rendering options.
func DefaultMermaidOptions() MermaidOptions {
	return MermaidOptions{
		ShowSymbols: true,
	}
}

// Mermaid converts a definition to a Mermaid state diagram.
func Mermaid(d *Definition) (string, error) {
	return MermaidWithOptions(d, DefaultMermaidOptions())
}

// MermaidWithOptions renders a Mermaid state diagram with custom options.
// Edges sharing a source and target are collapsed into one labelled edge.
func MermaidWithOptions(d *Definition, opts MermaidOptions) (string, error) {
	if d == nil {
		return "", ErrDefinitionNil
	}

	if d.Initial == "" {
		return "", ErrInitialRequired
	}

	var sb strings.Builder

	// Header
	sb.WriteString("```mermaid\n")
	sb.WriteString("stateDiagram-v2\n")

	if opts.LeftToRight {
		sb.WriteString("    direction LR\n")
	}

	// Initial state marker
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", d.Initial))

	// Build highlight map for quick lookup
	highlightMap := make(map[string]bool)
	for _, state := range opts.HighlightPath {
		highlightMap[state] = true
	}

	// Build accept states map for quick lookup
	acceptMap := make(map[string]bool)
	for _, state := range d.Accept {
		acceptMap[state] = true
	}

	// Group rules by source and target so one edge carries all symbols
	type edge struct {
		from, to string
	}

	edgeSymbols := make(map[edge][]string)
	edgeOrder := make(map[string][]edge)

	for _, rule := range d.Rules {
		key := edge{from: rule.From, to: rule.To}
		if _, ok := edgeSymbols[key]; !ok {
			edgeOrder[rule.From] = append(edgeOrder[rule.From], key)
		}

		edgeSymbols[key] = append(edgeSymbols[key], rule.On)
	}

	// Process each state
	for _, state := range d.States {
		switch {
		case highlightMap[state]:
			sb.WriteString(fmt.Sprintf("    class %s highlighted\n", state))
		case acceptMap[state]:
			sb.WriteString(fmt.Sprintf("    class %s acceptState\n", state))
		}

		for _, key := range edgeOrder[state] {
			label := ""
			if opts.ShowSymbols {
				label = ": " + strings.Join(edgeSymbols[key], ", ")
			}

			sb.WriteString(fmt.Sprintf("    %s --> %s%s\n", key.from, key.to, label))
		}
	}

	// Add class definitions
	sb.WriteString("\n")
	sb.WriteString("    classDef acceptState fill:#c8e6c9,stroke:#2e7d32,stroke-width:2px\n")
	sb.WriteString("    classDef highlighted fill:#fff9c4,stroke:#f57f17,stroke-width:3px\n")

	sb.WriteString("```\n")

	return sb.String(), nil
}

// MermaidFromFile loads a definition from a file and renders it.
func MermaidFromFile(path string) (string, error) {
	definition, err := Load(path)
	if err != nil {
		return "", fmt.Errorf("failed to load definition: %w", err)
	}

	return Mermaid(definition)
}
