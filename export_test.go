package pq

// Privileged access for the test suite. Heap positions are an
// implementation detail and stay out of the public contract.

// PositionAt reads the element at one-based heap position p.
func (q *Queue[T]) PositionAt(p int) T {
	return q.at(p)
}

// WellFormed reports whether every position with children is at least as
// high priority as each of them.
func (q *Queue[T]) WellFormed() bool {
	n := q.Len()
	for p := 1; p <= n; p++ {
		left, right := childrenOf(p)
		if left <= n && q.less(q.at(p), q.at(left)) {
			return false
		}
		if right <= n && q.less(q.at(p), q.at(right)) {
			return false
		}
	}
	return true
}
