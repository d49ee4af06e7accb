package cache

import "iter"

// node is one resident entry plus its position in the recency order.
// prev/next are owned by recencyList and never escape this package;
// callers only ever see keys and values.
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// recencyList is a doubly linked list ordered from most recently used
// (front) to least recently used (back).
//
// Head and tail sentinels hold no entry and bracket the real nodes,
// so splicing never special-cases an empty list: head.next == tail
// exactly when zero real nodes are linked.
type recencyList[K comparable, V any] struct {
	head, tail *node[K, V]
	size       int
}

func newRecencyList[K comparable, V any]() *recencyList[K, V] {
	head := &node[K, V]{}
	tail := &node[K, V]{}
	head.next = tail
	tail.prev = head
	return &recencyList[K, V]{head: head, tail: tail}
}

// unlink detaches n from its current position. n must be linked; the
// cache only passes nodes it just fetched from its index. n's own links
// are cleared so a detached node can never be followed back into the list.
func (l *recencyList[K, V]) unlink(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	l.size--
}

// pushFront splices n between the head sentinel and the current first
// node. Postcondition: n is the most recently used entry.
func (l *recencyList[K, V]) pushFront(n *node[K, V]) {
	n.next = l.head.next
	n.prev = l.head
	l.head.next.prev = n
	l.head.next = n
	l.size++
}

// popBack detaches and returns the least recently used node.
// Precondition: at least one real node is linked.
func (l *recencyList[K, V]) popBack() *node[K, V] {
	n := l.tail.prev
	l.unlink(n)
	return n
}

// front returns the most recently used node, or nil when empty.
func (l *recencyList[K, V]) front() *node[K, V] {
	if l.head.next == l.tail {
		return nil
	}
	return l.head.next
}

// back returns the least recently used node, or nil when empty.
func (l *recencyList[K, V]) back() *node[K, V] {
	if l.tail.prev == l.head {
		return nil
	}
	return l.tail.prev
}

func (l *recencyList[K, V]) len() int { return l.size }

// reset unlinks every node, leaving only the sentinels.
func (l *recencyList[K, V]) reset() {
	l.head.next = l.tail
	l.tail.prev = l.head
	l.size = 0
}

// all returns a lazy front-to-back traversal. The sequence is finite and
// restartable, and ranging over it does not touch recency order.
func (l *recencyList[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := l.head.next; n != l.tail; n = n.next {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
