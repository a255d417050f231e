package topn

import (
	"iter"

	"github.com/davidvella/pq"
)

// Collector retains the n highest-priority elements offered to it. The
// comparator reports whether a is lower priority than b. A Collector is not
// safe for concurrent use.
type Collector[T any] struct {
	n    int
	less func(a, b T) bool
	q    *pq.Queue[T]
}

// NewCollector returns a collector retaining at most n elements. A
// collector with n <= 0 retains nothing.
func NewCollector[T any](n int, less func(a, b T) bool) *Collector[T] {
	return &Collector[T]{
		n:    n,
		less: less,
		// Inverted ordering keeps the weakest retained element on top so
		// Offer can test and evict it cheaply.
		q: pq.New[T](func(a, b T) bool { return less(b, a) }),
	}
}

// Offer considers v for retention, evicting the weakest retained element
// when the collector is full and v outranks it.
func (c *Collector[T]) Offer(v T) {
	if c.n <= 0 {
		return
	}

	if c.q.Len() < c.n {
		c.q.Push(v)
		return
	}

	weakest, err := c.q.Top()
	if err != nil {
		return
	}
	if c.less(weakest, v) {
		c.q.Pop()
		c.q.Push(v)
	}
}

// Len returns the number of retained elements.
func (c *Collector[T]) Len() int {
	return c.q.Len()
}

// Items returns the retained elements ordered highest priority first,
// leaving the collector unchanged.
func (c *Collector[T]) Items() []T {
	q := c.q.Clone()
	out := make([]T, q.Len())
	for i := len(out) - 1; i >= 0; i-- {
		v, err := q.Top()
		if err != nil {
			break
		}
		out[i] = v
		q.Pop()
	}
	return out
}

// Drain removes and yields the retained elements, lowest priority first.
func (c *Collector[T]) Drain() iter.Seq[T] {
	return c.q.Drain()
}
