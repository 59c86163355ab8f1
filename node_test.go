package ngram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTree fails if a non-terminal childless node hangs below root.
func checkTree[E comparable, V any](t *testing.T, root *node[E, V]) {
	t.Helper()
	stack := []*node[E, V]{root}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for e, c := range curr.children {
			require.Falsef(t, c.dead(), "dead node under label %v", e)
			stack = append(stack, c)
		}
	}
}

func TestNodeInsertLookup(t *testing.T) {
	root := newNode[string, int]()
	root.insert(Key[string]{"a", "b"}, 1)
	root.insert(Key[string]{"a"}, 2)
	root.insert(Key[string]{}, 3)

	for _, d := range []struct {
		key   Key[string]
		value int
		ok    bool
	}{
		{Key[string]{}, 3, true},
		{Key[string]{"a"}, 2, true},
		{Key[string]{"a", "b"}, 1, true},
		{Key[string]{"b"}, 0, false},
		{Key[string]{"a", "b", "c"}, 0, false},
		{Key[string]{"b", "a"}, 0, false},
	} {
		v, ok := root.lookup(d.key)
		assert.Equal(t, d.ok, ok, d.key)
		assert.Equal(t, d.value, v, d.key)
		assert.Equal(t, d.ok, root.contains(d.key), d.key)
	}

	root.insert(Key[string]{"a"}, 20)
	v, ok := root.lookup(Key[string]{"a"})
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	assert.Equal(t, 3, root.countTerminals())
}

func TestNodeContainsIntermediate(t *testing.T) {
	root := newNode[int, bool]()
	root.insert(Key[int]{1, 2, 3}, true)

	assert.False(t, root.contains(Key[int]{}))
	assert.False(t, root.contains(Key[int]{1}))
	assert.False(t, root.contains(Key[int]{1, 2}))
	assert.True(t, root.contains(Key[int]{1, 2, 3}))
	assert.NotNil(t, root.find(Key[int]{1, 2}))
	assert.Nil(t, root.find(Key[int]{2}))
}

func TestNodeRemovePrunes(t *testing.T) {
	root := newNode[int, string]()
	root.insert(Key[int]{1, 2, 3}, "long")
	root.insert(Key[int]{1, 4}, "short")

	v, ok := root.remove(Key[int]{1, 2, 3})
	require.True(t, ok)
	assert.Equal(t, "long", v)
	assert.Nil(t, root.find(Key[int]{1, 2}))
	assert.NotNil(t, root.find(Key[int]{1}))
	checkTree(t, root)

	v, ok = root.remove(Key[int]{1, 4})
	require.True(t, ok)
	assert.Equal(t, "short", v)
	assert.Empty(t, root.children)
	assert.False(t, root.terminal)
}

func TestNodeRemoveKeepsPrefixKeys(t *testing.T) {
	root := newNode[int, int]()
	root.insert(Key[int]{1}, 1)
	root.insert(Key[int]{1, 2}, 2)
	root.insert(Key[int]{1, 2, 3}, 3)

	_, ok := root.remove(Key[int]{1, 2, 3})
	require.True(t, ok)
	assert.True(t, root.contains(Key[int]{1}))
	assert.True(t, root.contains(Key[int]{1, 2}))
	assert.Empty(t, root.find(Key[int]{1, 2}).children)
	checkTree(t, root)

	// removing a prefix leaves the longer key reachable
	root.insert(Key[int]{1, 2, 3}, 3)
	_, ok = root.remove(Key[int]{1, 2})
	require.True(t, ok)
	assert.False(t, root.contains(Key[int]{1, 2}))
	assert.True(t, root.contains(Key[int]{1, 2, 3}))
	assert.True(t, root.contains(Key[int]{1}))
	checkTree(t, root)
}

func TestNodeRemoveMissing(t *testing.T) {
	root := newNode[int, int]()
	root.insert(Key[int]{1, 2}, 1)

	for _, key := range []Key[int]{{}, {1}, {2}, {1, 3}, {1, 2, 3}} {
		_, ok := root.remove(key)
		assert.False(t, ok, key)
	}
	assert.True(t, root.contains(Key[int]{1, 2}))
	checkTree(t, root)
}

func TestNodeRemoveEmptyKey(t *testing.T) {
	root := newNode[int, int]()
	root.insert(Key[int]{}, 7)
	root.insert(Key[int]{5}, 8)

	v, ok := root.remove(Key[int]{})
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.False(t, root.terminal)
	assert.True(t, root.contains(Key[int]{5}))

	_, ok = root.remove(Key[int]{})
	assert.False(t, ok)
}
