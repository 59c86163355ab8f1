package ngram

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Map stores values under n-grams. Use New to create one.
type Map[E comparable, V any] struct {
	root *node[E, V]

	// n-gram size -> number of n-grams of that size
	sizeFreqs map[int]int

	// element -> occurrences across all n-grams, repeats included
	elementFreqs map[E]int
}

// Insert maps key to value, overwriting the value of an existing key.
func (m *Map[E, V]) Insert(key Key[E], value V) {
	if !m.root.contains(key) {
		m.sizeFreqs[len(key)]++
		for _, e := range key {
			m.elementFreqs[e]++
		}
	}
	m.root.insert(key, value)
}

// Remove deletes key and returns its value. It fails with a *KeyError
// wrapping ErrNotFound when key is absent.
func (m *Map[E, V]) Remove(key Key[E]) (V, error) {
	value, ok := m.root.remove(key)
	if !ok {
		return value, notFound(key)
	}

	decrement(m.sizeFreqs, len(key))
	for _, e := range key {
		decrement(m.elementFreqs, e)
	}
	return value, nil
}

// Delete is Remove without the value.
func (m *Map[E, V]) Delete(key Key[E]) error {
	_, err := m.Remove(key)
	return err
}

func decrement[K comparable](freqs map[K]int, k K) {
	if freqs[k] <= 1 {
		delete(freqs, k)
		return
	}
	freqs[k]--
}

// Lookup returns the value of key, or a *KeyError wrapping ErrNotFound.
func (m *Map[E, V]) Lookup(key Key[E]) (V, error) {
	value, ok := m.root.lookup(key)
	if !ok {
		return value, notFound(key)
	}
	return value, nil
}

func (m *Map[E, V]) Contains(key Key[E]) bool {
	return m.root.contains(key)
}

// Len returns the number of n-grams in the map.
func (m *Map[E, V]) Len() int {
	n := 0
	for _, count := range m.sizeFreqs {
		n += count
	}
	return n
}

// SizeOf returns the number of n-grams with size elements, 0 if there are none.
func (m *Map[E, V]) SizeOf(size int) int {
	return m.sizeFreqs[size]
}

// Sizes returns the distinct n-gram sizes present, in ascending order.
func (m *Map[E, V]) Sizes() []int {
	return slices.Sorted(maps.Keys(m.sizeFreqs))
}

// Occurrences returns how many times e occurs across all n-grams.
func (m *Map[E, V]) Occurrences(e E) int {
	return m.elementFreqs[e]
}

// Elements returns the distinct elements present, in unspecified order.
func (m *Map[E, V]) Elements() []E {
	return slices.Collect(maps.Keys(m.elementFreqs))
}

func (m *Map[E, V]) current() *node[E, V] {
	return m.root
}

func (m *Map[E, V]) items(q query[E]) iter.Seq2[Key[E], V] {
	return walk(m.current, q)
}

// Iterator returns a pull iterator over every entry.
func (m *Map[E, V]) Iterator() Iterator[E, V] {
	return newIterator(m.root, query[E]{})
}

// NGrams returns every n-gram in the map.
func (m *Map[E, V]) NGrams() iter.Seq[Key[E]] {
	return keys(m.items(query[E]{}))
}

// SizedNGrams returns the n-grams with exactly size elements.
func (m *Map[E, V]) SizedNGrams(size int) iter.Seq[Key[E]] {
	return keys(m.items(sized[E](size)))
}

// NGramsWithElements returns the n-grams containing every target, at any
// position and in any order.
func (m *Map[E, V]) NGramsWithElements(targets ...E) iter.Seq[Key[E]] {
	return keys(m.items(withElements(query[E]{}, targets)))
}

// SizedNGramsWithElements is NGramsWithElements restricted to n-grams of
// exactly size elements.
func (m *Map[E, V]) SizedNGramsWithElements(size int, targets ...E) iter.Seq[Key[E]] {
	return keys(m.items(withElements(sized[E](size), targets)))
}

// NGramsWithElement returns the n-grams containing target.
func (m *Map[E, V]) NGramsWithElement(target E) iter.Seq[Key[E]] {
	return keys(m.items(withElement(query[E]{}, target)))
}

func (m *Map[E, V]) SizedNGramsWithElement(target E, size int) iter.Seq[Key[E]] {
	return keys(m.items(withElement(sized[E](size), target)))
}

// NGramsByPattern returns the n-grams of len(pattern) elements equal to
// pattern at every position except the placeholders, which match anything.
func (m *Map[E, V]) NGramsByPattern(pattern []E, placeholders ...int) iter.Seq[Key[E]] {
	return keys(m.items(byPattern(pattern, placeholders)))
}

func (m *Map[E, V]) Values() iter.Seq[V] {
	return values(m.items(query[E]{}))
}

// Items returns every (n-gram, value) pair.
func (m *Map[E, V]) Items() iter.Seq2[Key[E], V] {
	return m.items(query[E]{})
}

// Clear drops every n-gram and resets the counters.
func (m *Map[E, V]) Clear() {
	m.root = newNode[E, V]()
	m.sizeFreqs = make(map[int]int)
	m.elementFreqs = make(map[E]int)
}

// Merge inserts every entry of other, overwriting values of shared keys.
func (m *Map[E, V]) Merge(other *Map[E, V]) {
	if other == m {
		return
	}
	for k, v := range other.Items() {
		m.Insert(k, v)
	}
}

// Equal reports whether m and other hold the same n-grams with values
// equal under eq.
func (m *Map[E, V]) Equal(other *Map[E, V], eq func(a, b V) bool) bool {
	return m.within(other, eq) && other.within(m, eq)
}

// within reports whether every entry of m is in other.
func (m *Map[E, V]) within(other *Map[E, V], eq func(a, b V) bool) bool {
	for k, v := range m.Items() {
		w, ok := other.root.lookup(k)
		if !ok || !eq(v, w) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same n-grams with equal values.
func Equal[E, V comparable](a, b *Map[E, V]) bool {
	return a.Equal(b, func(x, y V) bool { return x == y })
}

func (m *Map[E, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k, v := range m.Items() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", k, v)
	}
	sb.WriteByte('}')
	return sb.String()
}
