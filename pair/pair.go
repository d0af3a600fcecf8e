// Package pair provides an ordered pair value type.
//
// Product automata use a pair as their composite state: the First and Second
// fields hold the two component states and are stepped strictly together. The
// fields are exported because in-place (mutation paradigm) products must edit
// each component through &p.First and &p.Second without reconstructing the
// pair.
package pair

import "fmt"

// Of is an ordered pair of two values.
type Of[A, B any] struct {
	First  A
	Second B
}

// New returns the pair (first, second).
func New[A, B any](first A, second B) Of[A, B] {
	return Of[A, B]{
		First:  first,
		Second: second,
	}
}

// String returns "(first, second)".
func (p Of[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
