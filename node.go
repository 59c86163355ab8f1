package ngram

// child returns the child labelled e, or nil.
func (n *node[E, V]) child(e E) *node[E, V] {
	if n.children == nil {
		return nil
	}
	return n.children[e]
}

func (n *node[E, V]) addChild(e E) *node[E, V] {
	if n.children == nil {
		n.children = make(map[E]*node[E, V])
	}
	c := newNode[E, V]()
	n.children[e] = c
	return c
}

// dead reports a node that holds no n-gram and leads to none.
func (n *node[E, V]) dead() bool {
	return !n.terminal && len(n.children) == 0
}

func (n *node[E, V]) insert(key Key[E], value V) {
	curr := n
	for i := 0; i < len(key); i++ {
		next := curr.child(key[i])
		if next == nil {
			next = curr.addChild(key[i])
		}
		curr = next
	}
	curr.terminal = true
	curr.value = value
}

// find walks key and returns the node it ends at, terminal or not.
func (n *node[E, V]) find(key Key[E]) *node[E, V] {
	curr := n
	for i := 0; i < len(key) && curr != nil; i++ {
		curr = curr.child(key[i])
	}
	return curr
}

func (n *node[E, V]) lookup(key Key[E]) (V, bool) {
	if end := n.find(key); end != nil && end.terminal {
		return end.value, true
	}
	var zero V
	return zero, false
}

func (n *node[E, V]) contains(key Key[E]) bool {
	_, ok := n.lookup(key)
	return ok
}

// remove unmarks key and prunes every node left dead on its path, bottom-up.
// n itself is never pruned.
func (n *node[E, V]) remove(key Key[E]) (V, bool) {
	var zero V

	path := make([]step[E, V], 0, len(key))
	curr := n
	for i := 0; i < len(key); i++ {
		next := curr.child(key[i])
		if next == nil {
			return zero, false
		}
		path = append(path, step[E, V]{parent: curr, label: key[i]})
		curr = next
	}
	if !curr.terminal {
		return zero, false
	}

	value := curr.value
	curr.terminal = false
	curr.value = zero

	for i := len(path) - 1; i >= 0 && curr.dead(); i-- {
		delete(path[i].parent.children, path[i].label)
		curr = path[i].parent
	}
	return value, true
}

func (n *node[E, V]) countTerminals() int {
	count := 0
	stack := []*node[E, V]{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr.terminal {
			count++
		}
		for _, c := range curr.children {
			stack = append(stack, c)
		}
	}
	return count
}
