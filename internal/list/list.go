// Package list implements the doubly linked recency list that backs the
// cache: the head is the most recently used element, the tail the least.
//
// All structural edits are O(1) given a *Node previously returned by
// PushFront. The list owns its nodes; callers keep node pointers only as
// non-owning handles and must stop using a handle once the node has been
// removed (by Remove, RemoveTail or Clear).
//
// A List is not safe for concurrent use.
package list

import "iter"

// Node is a list element holding one value of type T.
type Node[T any] struct {
	val  T
	prev *Node[T]
	next *Node[T]
}

// Value returns a pointer to the stored value, allowing in-place updates
// without re-linking the node. The pointer is valid until the node is
// removed from its list.
func (n *Node[T]) Value() *T { return &n.val }

// List is a doubly linked list with designated head (MRU) and tail (LRU)
// ends and a length counter. The zero value is an empty list ready to use.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	len  int
}

// New returns an empty list.
func New[T any]() *List[T] { return &List[T]{} }

// Len returns the number of nodes currently in the list.
func (l *List[T]) Len() int { return l.len }

// Front returns the head (most recently used) node, or nil if the list
// is empty.
func (l *List[T]) Front() *Node[T] { return l.head }

// Back returns the tail (least recently used) node, or nil if the list
// is empty.
func (l *List[T]) Back() *Node[T] { return l.tail }

// PushFront allocates a node for v, links it as the new head, and returns
// it as a handle for later Remove/MoveToFront calls. It always succeeds.
func (l *List[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{val: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
	return n
}

// Remove unlinks n from the list and returns its value. The node's links
// are cleared, so any retained handle to it is dead afterwards.
//
// n must be a live node of this list, obtained from PushFront and not yet
// removed. Passing anything else corrupts the list; this is a programming
// error, not a runtime condition, and is not checked on the hot path.
func (l *List[T]) Remove(n *Node[T]) T {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
	return n.val
}

// RemoveTail removes the least recently used node and returns its value.
// The second result is false if the list is empty.
func (l *List[T]) RemoveTail() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.Remove(l.tail), true
}

// MoveToFront promotes n to the head without disturbing the relative
// order of the other nodes. The handle stays valid. Same precondition as
// Remove.
func (l *List[T]) MoveToFront(n *Node[T]) {
	if n == l.head {
		return
	}
	// detach
	n.prev.next = n.next
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	// relink at head
	n.prev = nil
	n.next = l.head
	l.head.prev = n
	l.head = n
}

// All returns a head-to-tail iterator over the list values. Each range
// over the result starts a fresh pass. The iterator is read-only and must
// not be used while the list is being mutated.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Clear releases every node by popping the tail in a loop until the list
// is empty. The loop (rather than walking next pointers recursively)
// keeps teardown stack usage constant for arbitrarily long lists, and
// clearing each node's links invalidates outstanding handles
// deterministically.
func (l *List[T]) Clear() {
	for l.tail != nil {
		l.Remove(l.tail)
	}
}
