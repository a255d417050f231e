// Package sequence defines the backing-storage contract consumed by the
// queue adaptor in the root pq package, together with Slice, the default
// contiguous implementation.
//
// A Sequence is an ordered, resizable collection addressed by zero-based
// position. The queue adaptor owns its sequence exclusively and touches it
// through this interface alone, so any conforming implementation can be
// substituted without changing the heap algorithm.
//
// Key features:
//   - Minimal surface: append-one, remove-last, indexed read/write, size,
//     clear and a capacity hint
//   - Slice, a growable implementation with amortized O(1) append and O(1)
//     positional access
//   - Wrap, which adopts an existing slice without copying for bulk loads
//
// Basic usage:
//
//	seq := sequence.NewSliceFrom(3, 1, 4)
//	seq.PushBack(2)
//
//	for i := 0; i < seq.Len(); i++ {
//	    fmt.Println(seq.At(i))
//	}
//
//	last, ok := seq.PopBack() // 2, true
package sequence
