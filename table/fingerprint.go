package table

import (
	"encoding/hex"
	"slices"
	"strings"

	"github.com/zeebo/xxh3"
)

// Field and record separators for the canonical form. Control characters
// keep user-supplied names from forging section boundaries.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// Fingerprint hashes the definition's canonical form with xxh3-128 and
// returns it hex encoded. Reordering alphabet entries, states, or rules
// does not change the fingerprint; any semantic change does. Suitable
// for cache keys and metric labels.
func (d *Definition) Fingerprint() string {
	var builder strings.Builder

	writeSection(&builder, "name", []string{d.Name})
	writeSection(&builder, "initial", []string{d.Initial})
	writeSection(&builder, "strict", []string{strictLabel(d.Strict)})
	writeSection(&builder, "alphabet", d.Alphabet)
	writeSection(&builder, "states", d.States)
	writeSection(&builder, "accept", d.Accept)

	rules := make([]string, len(d.Rules))
	for i, rule := range d.Rules {
		rules[i] = rule.From + fieldSep + rule.On + fieldSep + rule.To
	}

	writeSection(&builder, "rules", rules)

	sum := xxh3.Hash128([]byte(builder.String())).Bytes()

	return hex.EncodeToString(sum[:])
}

// writeSection appends one labelled, order-independent section to the
// canonical form.
func writeSection(builder *strings.Builder, label string, values []string) {
	sorted := make([]string, len(values))
	copy(sorted, values)
	slices.Sort(sorted)

	builder.WriteString(label)

	for _, value := range sorted {
		builder.WriteString(fieldSep)
		builder.WriteString(value)
	}

	builder.WriteString(recordSep)
}

func strictLabel(strict bool) string {
	if strict {
		return "strict"
	}

	return "sink"
}
