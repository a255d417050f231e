package sequence

// Sequence is the storage contract the queue adaptor requires: an ordered,
// random-access, growable collection addressed by zero-based position.
type Sequence[T any] interface {
	// PushBack appends v, growing the sequence by one.
	PushBack(v T)
	// PopBack removes and returns the last element, reporting false when
	// the sequence is empty.
	PopBack() (T, bool)
	// At returns the element at position i. i must satisfy 0 <= i < Len().
	At(i int) T
	// Set replaces the element at position i. i must satisfy 0 <= i < Len().
	Set(i int, v T)
	// Len returns the number of elements.
	Len() int
	// IsEmpty reports whether the sequence holds no elements.
	IsEmpty() bool
	// Clear removes every element.
	Clear()
	// Reserve arranges capacity for at least n elements in total.
	Reserve(n int)
	// Clone returns an independent copy of the sequence.
	Clone() Sequence[T]
}
