package pq

import (
	"errors"
	"iter"

	"github.com/davidvella/pq/sequence"
)

// ErrEmptyQueue is returned by Top when the queue holds no elements.
var ErrEmptyQueue = errors.New("pq: empty queue")

// Queue is a binary max-heap adaptor over a backing sequence. The comparator
// reports whether a is lower priority than b; Top returns the element the
// comparator ranks above all others.
//
// The heap property maintained after every mutating operation: no position
// is lower priority than either of its children. When both children of a
// position rank equally during repair, the left child is chosen, which fixes
// the pop order of equal-priority elements.
type Queue[T any] struct {
	seq  sequence.Sequence[T]
	less func(a, b T) bool
}

// New returns an empty queue ordered by less, backed by a fresh slice
// sequence.
func New[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{
		seq:  sequence.NewSlice[T](),
		less: less,
	}
}

// From adopts seq, with whatever elements it already holds in whatever
// order, and establishes the heap property over it in O(n). This is the
// bulk-load path: prefer it whenever a full, unordered collection changes
// hands.
func From[T any](less func(a, b T) bool, seq sequence.Sequence[T]) *Queue[T] {
	q := &Queue[T]{
		seq:  seq,
		less: less,
	}
	q.heapify()
	return q
}

// FromSlice builds a queue by reserving room for all of items and pushing
// them one at a time in order. This costs O(n log n); use From when the
// whole collection is already at hand.
func FromSlice[T any](less func(a, b T) bool, items []T) *Queue[T] {
	q := New[T](less)
	q.seq.Reserve(len(items))
	for _, v := range items {
		q.Push(v)
	}
	return q
}

// Collect builds a queue by pushing every element produced by it.
func Collect[T any](less func(a, b T) bool, it iter.Seq[T]) *Queue[T] {
	q := New[T](less)
	for v := range it {
		q.Push(v)
	}
	return q
}

// Clone returns a queue with an independent copy of the backing sequence
// and the same comparator. The source already satisfies the heap property,
// so the copy is taken as-is.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{
		seq:  q.seq.Clone(),
		less: q.less,
	}
}

// Top returns the highest-priority element without removing it. It returns
// ErrEmptyQueue when the queue is empty; either way the queue is left
// unchanged.
func (q *Queue[T]) Top() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.at(1), nil
}

// Push adds v to the queue in amortized O(log n).
func (q *Queue[T]) Push(v T) {
	q.seq.PushBack(v)

	// Bubble from the new leaf's parent toward the root, stopping at the
	// first level that needs no repair.
	for p := q.Len() / 2; p >= 1 && q.percolateDown(p); p = parentOf(p) {
	}
}

// Pop removes the highest-priority element in O(log n). Popping an empty
// queue is a no-op, not an error.
func (q *Queue[T]) Pop() {
	n := q.Len()
	if n == 0 {
		return
	}

	q.swap(1, n)
	q.seq.PopBack()
	q.percolateDown(1)
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.seq.Len()
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.seq.IsEmpty()
}

// Drain returns a single-use iterator that removes and yields elements in
// priority order, highest first. Stopping early leaves the rest in the
// queue.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for !q.IsEmpty() {
			v := q.at(1)
			q.Pop()
			if !yield(v) {
				return
			}
		}
	}
}

// Swap exchanges the backing sequences and comparators of a and b.
func Swap[T any](a, b *Queue[T]) {
	a.seq, b.seq = b.seq, a.seq
	a.less, b.less = b.less, a.less
}

// Heap positions are one-based: position p maps to sequence index p-1, its
// children sit at 2p and 2p+1 and its parent at p/2. A child position is
// valid only while it does not exceed the current size. All offset math
// lives in the helpers below.

func parentOf(p int) int {
	return p / 2
}

func childrenOf(p int) (left, right int) {
	return 2 * p, 2*p + 1
}

// at reads the element at one-based position p.
func (q *Queue[T]) at(p int) T {
	return q.seq.At(p - 1)
}

// swap exchanges the elements at one-based positions p and r.
func (q *Queue[T]) swap(p, r int) {
	a, b := q.seq.At(p-1), q.seq.At(r-1)
	q.seq.Set(p-1, b)
	q.seq.Set(r-1, a)
}

// percolateDown sinks the element at position p until it is no longer lower
// priority than any child, and reports whether a swap occurred. When both
// children exist the right child is the swap candidate only if
// less(left, right); ties go to the left child. A swap happens only when p
// is strictly lower priority than the candidate.
func (q *Queue[T]) percolateDown(p int) bool {
	n := q.Len()
	moved := false

	for {
		left, right := childrenOf(p)
		if left > n {
			return moved
		}

		candidate := left
		if right <= n && q.less(q.at(left), q.at(right)) {
			candidate = right
		}

		if !q.less(q.at(p), q.at(candidate)) {
			return moved
		}

		q.swap(p, candidate)
		moved = true
		p = candidate
	}
}

// heapify establishes the heap property over arbitrary contents by sinking
// every position that has at least one child, last first. O(n) total.
func (q *Queue[T]) heapify() {
	for p := q.Len() / 2; p >= 1; p-- {
		q.percolateDown(p)
	}
}
