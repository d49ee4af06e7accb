package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectKeys[K comparable, V any](l *recencyList[K, V]) []K {
	var out []K
	for k := range l.all() {
		out = append(out, k)
	}
	return out
}

func TestRecencyListEmptySentinels(t *testing.T) {
	t.Parallel()

	l := newRecencyList[string, int]()
	assert.Equal(t, 0, l.len())
	assert.Nil(t, l.front())
	assert.Nil(t, l.back())
	assert.Same(t, l.tail, l.head.next)
	assert.Same(t, l.head, l.tail.prev)
}

func TestRecencyListPushFrontOrdering(t *testing.T) {
	t.Parallel()

	l := newRecencyList[string, int]()
	l.pushFront(&node[string, int]{key: "a", value: 1})
	l.pushFront(&node[string, int]{key: "b", value: 2})
	l.pushFront(&node[string, int]{key: "c", value: 3})

	assert.Equal(t, 3, l.len())
	assert.Equal(t, []string{"c", "b", "a"}, collectKeys(l))
	assert.Equal(t, "c", l.front().key)
	assert.Equal(t, "a", l.back().key)
}

func TestRecencyListUnlinkClearsLinks(t *testing.T) {
	t.Parallel()

	l := newRecencyList[string, int]()
	a := &node[string, int]{key: "a"}
	b := &node[string, int]{key: "b"}
	c := &node[string, int]{key: "c"}
	l.pushFront(a)
	l.pushFront(b)
	l.pushFront(c)

	l.unlink(b)

	assert.Equal(t, []string{"c", "a"}, collectKeys(l))
	assert.Equal(t, 2, l.len())
	assert.Nil(t, b.prev)
	assert.Nil(t, b.next)

	// A re-spliced node resumes normal participation.
	l.pushFront(b)
	assert.Equal(t, []string{"b", "c", "a"}, collectKeys(l))
}

func TestRecencyListPopBackReturnsLRU(t *testing.T) {
	t.Parallel()

	l := newRecencyList[string, int]()
	l.pushFront(&node[string, int]{key: "a"})
	l.pushFront(&node[string, int]{key: "b"})

	n := l.popBack()
	require.NotNil(t, n)
	assert.Equal(t, "a", n.key)
	assert.Equal(t, []string{"b"}, collectKeys(l))

	n = l.popBack()
	assert.Equal(t, "b", n.key)
	assert.Equal(t, 0, l.len())
	assert.Same(t, l.tail, l.head.next)
}

func TestRecencyListReset(t *testing.T) {
	t.Parallel()

	l := newRecencyList[string, int]()
	l.pushFront(&node[string, int]{key: "a"})
	l.pushFront(&node[string, int]{key: "b"})

	l.reset()

	assert.Equal(t, 0, l.len())
	assert.Nil(t, l.front())
	assert.Empty(t, collectKeys(l))
}

func TestRecencyListIterationIsRestartable(t *testing.T) {
	t.Parallel()

	l := newRecencyList[string, int]()
	l.pushFront(&node[string, int]{key: "a"})
	l.pushFront(&node[string, int]{key: "b"})

	// Abandon the first pass early; a fresh pass still sees everything.
	for range l.all() {
		break
	}
	assert.Equal(t, []string{"b", "a"}, collectKeys(l))
	assert.Equal(t, []string{"b", "a"}, collectKeys(l))
}
