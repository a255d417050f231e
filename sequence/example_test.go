package sequence_test

import (
	"fmt"

	"github.com/davidvella/pq/sequence"
)

// ExampleSlice demonstrates basic stack-like use of the default sequence.
func ExampleSlice() {
	seq := sequence.NewSlice[int]()

	seq.PushBack(3)
	seq.PushBack(1)
	seq.PushBack(4)

	for !seq.IsEmpty() {
		v, _ := seq.PopBack()
		fmt.Println(v)
	}

	// Output:
	// 4
	// 1
	// 3
}

// ExampleWrap shows how to hand an existing slice to a sequence without
// copying it.
func ExampleWrap() {
	seq := sequence.Wrap([]string{"a", "b", "c"})

	seq.Set(1, "x")

	for i := 0; i < seq.Len(); i++ {
		fmt.Print(seq.At(i), " ")
	}

	// Output: a x c
}
