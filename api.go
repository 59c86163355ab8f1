// Package ngram maps n-grams, ordered sequences of comparable elements of
// any length, to values. N-grams are kept in a prefix tree so they can be
// enumerated by size, by the elements they contain or by a template with
// wildcard positions. The map also counts how many n-grams of each size it
// holds and how often each element occurs across all of them.
//
// A Map is not safe for concurrent mutation.
package ngram

// Iterator pulls the entries of a Map one at a time. The order is
// unspecified.
type Iterator[E comparable, V any] interface {
	HasNext() bool
	Next() (Entry[E, V], error)
}

func New[E comparable, V any]() *Map[E, V] {
	m := &Map[E, V]{}
	m.Clear()
	return m
}
