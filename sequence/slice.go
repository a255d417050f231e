package sequence

// Slice is the default Sequence implementation, backed by a Go slice with
// amortized O(1) append.
type Slice[T any] struct {
	data []T
}

// NewSlice returns an empty Slice.
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{}
}

// NewSliceFrom returns a Slice holding a copy of items.
func NewSliceFrom[T any](items ...T) *Slice[T] {
	data := make([]T, len(items))
	copy(data, items)
	return &Slice[T]{data: data}
}

// Wrap returns a Slice that adopts items without copying. The caller must
// not use items afterwards.
func Wrap[T any](items []T) *Slice[T] {
	return &Slice[T]{data: items}
}

func (s *Slice[T]) PushBack(v T) {
	s.data = append(s.data, v)
}

func (s *Slice[T]) PopBack() (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}

	n := len(s.data) - 1
	v := s.data[n]

	var zero T
	s.data[n] = zero // let the GC reclaim what the popped slot referenced
	s.data = s.data[:n]

	return v, true
}

func (s *Slice[T]) At(i int) T {
	return s.data[i]
}

func (s *Slice[T]) Set(i int, v T) {
	s.data[i] = v
}

func (s *Slice[T]) Len() int {
	return len(s.data)
}

func (s *Slice[T]) IsEmpty() bool {
	return len(s.data) == 0
}

func (s *Slice[T]) Clear() {
	clear(s.data)
	s.data = s.data[:0]
}

func (s *Slice[T]) Reserve(n int) {
	if cap(s.data) >= n {
		return
	}

	data := make([]T, len(s.data), n)
	copy(data, s.data)
	s.data = data
}

func (s *Slice[T]) Clone() Sequence[T] {
	data := make([]T, len(s.data))
	copy(data, s.data)
	return &Slice[T]{data: data}
}
