package observe

import (
	"fmt"

	"github.com/OneOfOne/xxhash"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric definitions with appropriate labels.
var (
	// runsTotal tracks finished runs by automaton and outcome (success/error).
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automaton_runs_total",
		Help: "Total number of automaton runs by automaton and outcome (success or error)",
	}, []string{"automaton", "outcome"})

	// symbolsTotal tracks consumed symbols per automaton.
	symbolsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automaton_symbols_total",
		Help: "Total number of symbols consumed by automaton",
	}, []string{"automaton"})

	// runDuration tracks end-to-end run time.
	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "automaton_run_duration_seconds",
		Help:    "Duration of automaton runs by automaton and outcome",
		Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
	}, []string{"automaton", "outcome"})
)

// Outcome label values.
const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// maxLabelLen bounds the automaton label so user-supplied names cannot
// blow up metric cardinality with arbitrarily long values.
const maxLabelLen = 40

// hashSuffixLen is the length of the stable hash that replaces the tail
// of an over-long label value.
const hashSuffixLen = 8

// sanitizeAutomaton keeps the label space bounded: empty names become
// "unknown" and long names are truncated with a stable hash suffix so
// distinct names stay distinct.
func sanitizeAutomaton(name string) string {
	if name == "" {
		return "unknown"
	}

	if len(name) <= maxLabelLen {
		return name
	}

	return name[:maxLabelLen-hashSuffixLen-1] + "-" + labelHash(name)
}

// labelHash buckets an unbounded value into a short stable hash.
func labelHash(value string) string {
	if value == "" {
		return "none"
	}

	sum := xxhash.ChecksumString64(value)

	return fmt.Sprintf("%016x", sum)[:hashSuffixLen]
}
