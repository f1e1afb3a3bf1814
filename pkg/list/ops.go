package list

// This file contains the derived algorithms. They are all written as
// explicit loops over the node chain; recursing through head/tail would
// overflow the stack on long lists.

// Map returns the list obtained by applying f to each element of xs, in
// order. The result is an entirely new chain and shares no nodes with xs.
func Map[T, U any](f func(T) U, xs List[T]) List[U] {
	from := xs.head
	if from == nil {
		return List[U]{}
	}
	ys := List[U]{newNode(f(from.value), nil)}
	to := ys.head
	for from = from.next; from != nil; from = from.next {
		to.next = newNode(f(from.value), nil)
		to = to.next
	}
	return ys
}

// Filter returns the list of elements of xs satisfying p, in order. It
// allocates one node per match.
func Filter[T any](p func(T) bool, xs List[T]) List[T] {
	var ys List[T]
	var to *node[T]
	for from := xs.head; from != nil; from = from.next {
		if !p(from.value) {
			continue
		}
		n := newNode(from.value, nil)
		if to == nil {
			ys.head = n
		} else {
			to.next = n
		}
		to = n
	}
	return ys
}

// Concat returns the concatenation of xs and ys. Every node of xs is copied,
// but ys is shared: the copied chain's last node references ys's chain
// directly. Concat of an empty xs is a retained ys, with no copying at all.
func Concat[T any](xs, ys List[T]) List[T] {
	from := xs.head
	if from == nil {
		return ys.Retain()
	}
	zs := List[T]{newNode(from.value, nil)}
	to := zs.head
	for from = from.next; from != nil; from = from.next {
		to.next = newNode(from.value, nil)
		to = to.next
	}
	to.next = acquire(ys.head)
	return zs
}

// Reverse returns the elements of xs in reverse order. The result is built
// by prepending while walking xs front to back, so it shares no nodes with
// xs.
func Reverse[T any](xs List[T]) List[T] {
	ys := Empty[T]()
	for from := xs.head; from != nil; from = from.next {
		ys = List[T]{newNode(from.value, ys.head)}
	}
	return ys
}

// Take returns the first min(k, Len(xs)) elements of xs as a fresh chain.
// Non-positive k yields the empty list; k beyond the length of xs yields a
// copy of all of xs. Take never fails.
func Take[T any](k int, xs List[T]) List[T] {
	from := xs.head
	if k <= 0 || from == nil {
		return List[T]{}
	}
	ys := List[T]{newNode(from.value, nil)}
	to := ys.head
	for k--; k > 0 && from.next != nil; k-- {
		from = from.next
		to.next = newNode(from.value, nil)
		to = to.next
	}
	return ys
}

// Drop returns the suffix of xs after its first k elements, by walking k
// links and sharing the node found there. O(k) time, zero allocation.
// Non-positive k yields all of xs (retained); k beyond the length of xs
// yields the empty list. Drop never fails.
func Drop[T any](k int, xs List[T]) List[T] {
	e := xs.head
	for ; k > 0 && e != nil; k-- {
		e = e.next
	}
	return List[T]{acquire(e)}
}

// Number constrains Sum to types folding sensibly under +.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum returns the sum of the elements of xs, or zero for the empty list.
func Sum[T Number](xs List[T]) T {
	var total T
	for e := xs.head; e != nil; e = e.next {
		total += e.value
	}
	return total
}

// Eq reports whether xs and ys contain equal elements in the same order.
// Chains are compared node by node, but a shared node proves the remaining
// suffixes identical, so comparing a list with one sharing its tail stops
// at the shared node.
func Eq[T comparable](xs, ys List[T]) bool {
	a, b := xs.head, ys.head
	for a != b {
		if a == nil || b == nil || a.value != b.value {
			return false
		}
		a, b = a.next, b.next
	}
	return true
}
