package sequence_test

import (
	"testing"

	"github.com/davidvella/pq/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlicePushPopBack(t *testing.T) {
	tests := []struct {
		name    string
		push    []int
		pops    int
		want    []int
		wantLen int
	}{
		{
			name:    "push then pop in reverse order",
			push:    []int{1, 2, 3},
			pops:    3,
			want:    []int{3, 2, 1},
			wantLen: 0,
		},
		{
			name:    "partial pop keeps remaining elements",
			push:    []int{5, 6, 7, 8},
			pops:    2,
			want:    []int{8, 7},
			wantLen: 2,
		},
		{
			name:    "no pops",
			push:    []int{9},
			pops:    0,
			want:    nil,
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sequence.NewSlice[int]()
			for _, v := range tt.push {
				s.PushBack(v)
			}

			var got []int
			for i := 0; i < tt.pops; i++ {
				v, ok := s.PopBack()
				require.True(t, ok)
				got = append(got, v)
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantLen, s.Len())
			assert.Equal(t, tt.wantLen == 0, s.IsEmpty())
		})
	}
}

func TestSlicePopBackEmpty(t *testing.T) {
	s := sequence.NewSlice[string]()

	v, ok := s.PopBack()

	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.True(t, s.IsEmpty())
}

func TestSliceIndexedAccess(t *testing.T) {
	s := sequence.NewSliceFrom("a", "b", "c")

	assert.Equal(t, "a", s.At(0))
	assert.Equal(t, "c", s.At(2))

	s.Set(1, "x")
	assert.Equal(t, "x", s.At(1))
	assert.Equal(t, 3, s.Len())
}

func TestSliceNewSliceFromCopies(t *testing.T) {
	items := []int{1, 2, 3}
	s := sequence.NewSliceFrom(items...)

	items[0] = 99

	assert.Equal(t, 1, s.At(0))
}

func TestSliceWrapAdopts(t *testing.T) {
	items := []int{4, 5, 6}
	s := sequence.Wrap(items)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 4, s.At(0))

	s.Set(0, 7)
	assert.Equal(t, 7, items[0])
}

func TestSliceClear(t *testing.T) {
	s := sequence.NewSliceFrom(1, 2, 3)

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())

	s.PushBack(10)
	assert.Equal(t, 10, s.At(0))
}

func TestSliceReserve(t *testing.T) {
	s := sequence.NewSlice[int]()
	s.Reserve(100)

	for i := 0; i < 100; i++ {
		s.PushBack(i)
	}

	require.Equal(t, 100, s.Len())
	assert.Equal(t, 0, s.At(0))
	assert.Equal(t, 99, s.At(99))
}

func TestSliceReserveKeepsElements(t *testing.T) {
	s := sequence.NewSliceFrom(1, 2, 3)

	s.Reserve(50)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.At(0))
	assert.Equal(t, 3, s.At(2))
}

func TestSliceClone(t *testing.T) {
	s := sequence.NewSliceFrom(1, 2, 3)

	c := s.Clone()
	c.Set(0, 42)
	c.PushBack(4)

	assert.Equal(t, 1, s.At(0))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 42, c.At(0))
	assert.Equal(t, 4, c.Len())
}
