package automaton

import "fmt"

// Verdict is the canonical binary state sort. Blueprints are free to use any
// sort type; the union and intersection reductions in package compose require
// this one.
type Verdict int

const (
	// Reject marks states whose input history is not in the recognized
	// language. It is the zero value.
	Reject Verdict = iota
	// Accept marks states whose input history is in the recognized language.
	Accept
)

func (v Verdict) String() string {
	switch v {
	case Reject:
		return "Reject"
	case Accept:
		return "Accept"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}
