// Package list implements a persistent singly-linked list.
//
// A List is a value type over which Cons, Head, Tail and the derived
// traversals behave as pure functions: no operation ever mutates a list that
// has already been observed, and lists built from one another transparently
// share trailing nodes instead of copying them. Prepending and decomposing
// are O(1).
//
// Node lifetime is managed with explicit reference counting rather than by
// leaning on the garbage collector, so that sharing is observable: every
// handle owns one reference to its first node, [List.Retain] adds an owner
// and [List.Release] removes one, freeing any suffix whose count drops to
// zero. The counts are not atomic; lists must not be shared across
// goroutines without external synchronization.
package list

import (
	"strconv"

	"src.prelude.dev/prelude/pkg/errs"
)

// node is a cell in a list chain. Its value and next are fixed at
// construction; only refs is ever written afterwards. A node can only
// reference nodes created strictly before it, so chains are finite and
// acyclic.
type node[T any] struct {
	value T
	next  *node[T]
	refs  int
}

// liveNodes counts nodes that have been allocated but not yet freed. It is
// test instrumentation for verifying that releases balance acquisitions.
var liveNodes int

// newNode allocates a node holding x. The caller transfers to the node one
// reference to next (or passes nil), and receives the node with one
// reference owned by the caller.
func newNode[T any](x T, next *node[T]) *node[T] {
	liveNodes++
	return &node[T]{value: x, next: next, refs: 1}
}

// acquire registers one more owner of n. It is a no-op for nil.
func acquire[T any](n *node[T]) *node[T] {
	if n != nil {
		n.refs++
	}
	return n
}

// release drops one reference to n, freeing it when no owner remains.
// Teardown is a loop rather than recursive destruction: each freed node
// hands back the reference it held on its successor, so releasing an
// arbitrarily long chain uses constant stack.
func release[T any](n *node[T]) {
	for n != nil {
		n.refs--
		if n.refs > 0 {
			return
		}
		if n.refs < 0 {
			panic("list: refcount underflow")
		}
		next := n.next
		n.next = nil
		liveNodes--
		n = next
	}
}

// List is a handle on a persistent list: either empty (the zero value) or a
// reference to the first node of a chain.
//
// A handle owns one reference to its node. Plain assignment of a List moves
// that ownership with the value; after assigning a handle elsewhere, release
// the list through exactly one of the copies. To hold a second, independently
// released handle on the same list, use [List.Retain].
type List[T any] struct {
	head *node[T]
}

// Empty returns the empty list of element type T. It never allocates; all
// empty lists of a type are the same value.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons returns a new list with x prepended to xs. It allocates exactly one
// node, whose tail shares xs's chain.
func Cons[T any](x T, xs List[T]) List[T] {
	return List[T]{newNode(x, acquire(xs.head))}
}

// New builds a list containing the given values in order. The values are
// consed right to left so that only prepending is used.
func New[T any](xs ...T) List[T] {
	ys := Empty[T]()
	for i := len(xs) - 1; i >= 0; i-- {
		// The accumulator's reference moves into the new node.
		ys = List[T]{newNode(xs[i], ys.head)}
	}
	return ys
}

// Retain returns a new handle on the same list, registering one more owner
// of the underlying chain. O(1); no nodes are copied.
func (xs List[T]) Retain() List[T] {
	return List[T]{acquire(xs.head)}
}

// Release gives up this handle's reference. Any node whose last owner this
// was is freed, cascading down the chain. The handle becomes the empty list;
// releasing an empty list is a no-op.
func (xs *List[T]) Release() {
	release(xs.head)
	xs.head = nil
}

// Null reports whether xs is the empty list. O(1).
func Null[T any](xs List[T]) bool {
	return xs.head == nil
}

// Head returns the first element of xs. It fails with [errs.EmptyList] when
// xs is empty.
func Head[T any](xs List[T]) (T, error) {
	if xs.head == nil {
		var zero T
		return zero, errs.EmptyList{Op: "head"}
	}
	return xs.head.value, nil
}

// Tail returns the list after the first element. The result shares xs's
// chain; no nodes are copied. It fails with [errs.EmptyList] when xs is
// empty.
func Tail[T any](xs List[T]) (List[T], error) {
	if xs.head == nil {
		return List[T]{}, errs.EmptyList{Op: "tail"}
	}
	return List[T]{acquire(xs.head.next)}, nil
}

// Len returns the number of elements in xs by walking the chain. O(n).
func Len[T any](xs List[T]) int {
	n := 0
	for e := xs.head; e != nil; e = e.next {
		n++
	}
	return n
}

// Index returns the i-th element of xs, counting from 0. It fails with
// [errs.OutOfRange] when i is negative or not less than the length of xs.
func Index[T any](xs List[T], i int) (T, error) {
	if i >= 0 {
		j := i
		for e := xs.head; e != nil; e = e.next {
			if j == 0 {
				return e.value, nil
			}
			j--
		}
	}
	var zero T
	return zero, errs.OutOfRange{
		What: "list index", ValidLow: 0, ValidHigh: Len(xs) - 1,
		Actual: strconv.Itoa(i)}
}

// Last returns the final element of xs. O(n). It fails with [errs.EmptyList]
// when xs is empty.
func Last[T any](xs List[T]) (T, error) {
	e := xs.head
	if e == nil {
		var zero T
		return zero, errs.EmptyList{Op: "last"}
	}
	for e.next != nil {
		e = e.next
	}
	return e.value, nil
}

// Init returns all elements of xs except the last, as a freshly built list;
// a prefix of a singly-linked chain cannot share structure with it. It fails
// with [errs.EmptyList] when xs is empty.
func Init[T any](xs List[T]) (List[T], error) {
	from := xs.head
	if from == nil {
		return List[T]{}, errs.EmptyList{Op: "init"}
	}
	if from.next == nil {
		return List[T]{}, nil
	}
	ys := List[T]{newNode(from.value, nil)}
	to := ys.head
	for from = from.next; from.next != nil; from = from.next {
		to.next = newNode(from.value, nil)
		to = to.next
	}
	return ys, nil
}
