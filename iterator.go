package ngram

import "iter"

func sized[E comparable](size int) query[E] {
	return query[E]{bounded: true, size: size}
}

func withElements[E comparable](q query[E], targets []E) query[E] {
	q.targets = make(map[E]struct{}, len(targets))
	for _, t := range targets {
		q.targets[t] = struct{}{}
	}
	return q
}

func withElement[E comparable](q query[E], target E) query[E] {
	q.target = target
	q.hasTarget = true
	return q
}

func byPattern[E comparable](pattern []E, placeholders []int) query[E] {
	q := sized[E](len(pattern))
	q.pattern = append([]E(nil), pattern...)
	q.placeholders = make(map[int]struct{}, len(placeholders))
	for _, p := range placeholders {
		q.placeholders[p] = struct{}{}
	}
	return q
}

func (q *query[E]) wildcard(pos int) bool {
	_, ok := q.placeholders[pos]
	return ok
}

func newIterator[E comparable, V any](root *node[E, V], q query[E]) *iterator[E, V] {
	it := &iterator[E, V]{
		query: q,
		stack: []frame[E, V]{{node: root, key: Key[E]{}, need: q.targets}},
	}
	it.advance()
	return it
}

func (it *iterator[E, V]) HasNext() bool {
	return it != nil && it.next != nil
}

func (it *iterator[E, V]) Next() (Entry[E, V], error) {
	if !it.HasNext() {
		return Entry[E, V]{}, ErrNoMoreEntries
	}
	cur := it.next
	entry := Entry[E, V]{Key: cur.key, Value: cur.node.value}
	it.advance()
	return entry, nil
}

// advance pops frames until one is accepted. A frame's children are
// pushed before it is reported, so every node is visited before its
// descendants.
func (it *iterator[E, V]) advance() {
	for len(it.stack) > 0 {
		f := it.stack[len(it.stack)-1]
		it.stack[len(it.stack)-1] = frame[E, V]{}
		it.stack = it.stack[:len(it.stack)-1]

		it.expand(&f)
		if it.accept(&f) {
			it.next = &f
			return
		}
	}
	it.next = nil
}

// accept reports whether f ends a stored n-gram satisfying every constraint.
func (it *iterator[E, V]) accept(f *frame[E, V]) bool {
	q := &it.query
	if !f.node.terminal {
		return false
	}
	if q.bounded && len(f.key) != q.size {
		return false
	}
	if q.hasTarget && !f.seen {
		return false
	}
	return len(f.need) == 0
}

// expand pushes the children of f that may still lead to a match.
func (it *iterator[E, V]) expand(f *frame[E, V]) {
	q := &it.query
	depth := len(f.key)
	if q.bounded && depth >= q.size {
		return
	}

	if q.pattern != nil && !q.wildcard(depth) {
		e := q.pattern[depth]
		if c := f.node.child(e); c != nil {
			it.push(f, e, c)
		}
		return
	}

	for e, c := range f.node.children {
		it.push(f, e, c)
	}
}

func (it *iterator[E, V]) push(f *frame[E, V], e E, child *node[E, V]) {
	next := frame[E, V]{
		node: child,
		key:  f.key.extend(e),
		need: f.need,
		seen: f.seen || (it.query.hasTarget && e == it.query.target),
	}
	// the required set is shared by siblings, so shrink a copy
	if _, ok := f.need[e]; ok {
		need := make(map[E]struct{}, len(f.need)-1)
		for t := range f.need {
			if t != e {
				need[t] = struct{}{}
			}
		}
		next.need = need
	}
	it.stack = append(it.stack, next)
}

// walk returns a sequence starting a fresh traversal of root() on every call.
func walk[E comparable, V any](root func() *node[E, V], q query[E]) iter.Seq2[Key[E], V] {
	return func(yield func(Key[E], V) bool) {
		it := newIterator(root(), q)
		for it.HasNext() {
			entry, _ := it.Next()
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

func keys[E comparable, V any](seq iter.Seq2[Key[E], V]) iter.Seq[Key[E]] {
	return func(yield func(Key[E]) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}

func values[E comparable, V any](seq iter.Seq2[Key[E], V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
