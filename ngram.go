package ngram

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("n-gram not found")
	ErrNoMoreEntries = errors.New("There are no more entries in the map")
)

type (
	// Key is an n-gram: an ordered sequence of elements addressing a value.
	Key[E comparable] []E

	// Entry is a stored n-gram together with its value.
	Entry[E comparable, V any] struct {
		Key   Key[E]
		Value V
	}

	// node of the prefix tree. The root stands for the empty n-gram.
	node[E comparable, V any] struct {
		// terminal is set when the path to this node spells a stored n-gram
		terminal bool
		value    V
		children map[E]*node[E, V]
	}

	// step on the path of a removal, used to prune bottom-up
	step[E comparable, V any] struct {
		parent *node[E, V]
		label  E
	}

	// query constrains a traversal. The zero value matches every stored
	// n-gram.
	query[E comparable] struct {
		// only n-grams of exactly size elements when bounded
		bounded bool
		size    int

		// required elements, shrunk along each branch
		targets map[E]struct{}

		// single required element, tracked with a flag
		target    E
		hasTarget bool

		pattern      []E
		placeholders map[int]struct{}
	}

	// frame is one pending node of a depth-first traversal.
	frame[E comparable, V any] struct {
		node *node[E, V]
		key  Key[E]
		need map[E]struct{}
		seen bool
	}

	iterator[E comparable, V any] struct {
		query query[E]
		stack []frame[E, V]
		next  *frame[E, V]
	}
)

// KeyError reports an n-gram missing from the map. Key is always the
// n-gram the caller asked for.
type KeyError[E comparable] struct {
	Key Key[E]
}

func (e *KeyError[E]) Error() string {
	return fmt.Sprintf("ngram: %v: %s", []E(e.Key), ErrNotFound.Error())
}

func (e *KeyError[E]) Unwrap() error {
	return ErrNotFound
}

func notFound[E comparable](key Key[E]) error {
	return &KeyError[E]{Key: key.clone()}
}

func newNode[E comparable, V any]() *node[E, V] {
	return &node[E, V]{}
}

func (k Key[E]) clone() Key[E] {
	return append(make(Key[E], 0, len(k)), k...)
}

// extend returns a new key with e appended; k is never modified.
func (k Key[E]) extend(e E) Key[E] {
	next := make(Key[E], len(k)+1)
	copy(next, k)
	next[len(k)] = e
	return next
}

func (k Key[E]) String() string {
	return fmt.Sprint([]E(k))
}
