// Package pq implements a generic priority-queue container adaptor: a
// binary max-heap maintained over a pluggable backing sequence, giving
// constant-time access to the highest-priority element with logarithmic
// insertion and removal.
//
// The queue owns no storage of its own; it layers the heap algorithm over a
// sequence.Sequence collaborator, so any random-access growable container
// can back it. Ordering comes from a user-provided comparator that reports
// whether its first argument is lower priority than its second, so the same
// type serves as a max-heap or a min-heap depending on the function passed.
//
// Key features:
//   - Generic implementation supporting any element type
//   - O(1) Top, O(log n) Push and Pop
//   - O(n) bulk load from an existing unordered sequence via From
//   - Iterator-based draining using Go's iter.Seq
//   - Pluggable backing storage through the sequence package
//
// Basic usage:
//
//	// Create a max-heap of ints
//	q := pq.New[int](func(a, b int) bool { return a < b })
//
//	q.Push(3)
//	q.Push(1)
//	q.Push(4)
//	q.Push(2)
//
//	for !q.IsEmpty() {
//	    v, _ := q.Top()
//	    fmt.Println(v) // 4, 3, 2, 1
//	    q.Pop()
//	}
//
// Bulk loading an existing collection is linear time and should be preferred
// whenever a full, unordered data set changes hands:
//
//	q := pq.From(less, sequence.Wrap(items))
//
// Equal-priority elements pop in a documented, implementation-defined order:
// when the repair step must choose between two equally ranked children it
// descends into the left one. See Queue for details.
//
// A Queue is not safe for concurrent use; callers coordinating access from
// multiple goroutines must synchronize externally.
package pq
