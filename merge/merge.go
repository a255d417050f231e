package merge

import (
	"iter"

	"github.com/davidvella/pq"
)

// Sequence is any source of elements that can be iterated in order.
type Sequence[E any] interface {
	All() iter.Seq[E]
}

// head is one source's pending element plus the means to fetch the next.
type head[E any] struct {
	value E
	next  func() (E, bool)
}

// All merges the sorted sequences into a single sorted iterator. less
// reports whether a comes before b; every input must already be ordered by
// it. The iterator is single-use.
func All[E any](less func(a, b E) bool, sequences ...Sequence[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		// The queue surfaces its highest-priority element first, so the
		// head that comes first must rank highest: invert the comparator.
		q := pq.New[head[E]](func(a, b head[E]) bool {
			return less(b.value, a.value)
		})

		for _, s := range sequences {
			next, stop := iter.Pull(s.All())
			defer stop()

			if v, ok := next(); ok {
				q.Push(head[E]{value: v, next: next})
			}
		}

		for !q.IsEmpty() {
			h, _ := q.Top()
			q.Pop()

			if !yield(h.value) {
				return
			}

			if v, ok := h.next(); ok {
				q.Push(head[E]{value: v, next: h.next})
			}
		}
	}
}

// List is a Sequence over a fixed set of elements, mainly useful for tests
// and examples.
type List[E any] struct {
	items []E
}

// NewList returns a List over items.
func NewList[E any](items ...E) *List[E] {
	return &List[E]{items: items}
}

func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}
