// Package merge combines multiple sorted sequences into a single sorted
// iterator using a priority queue of per-source heads.
//
// Each input exposes its elements through an iter.Seq. The merge keeps one
// pending element per source in a queue ordered by the caller's comparator,
// yields the winning head, refills it from the same source and repeats, so
// producing n merged elements costs O(n log k) comparisons for k sources.
//
// Key features:
//   - Generic over any element type
//   - Iterator-based interface using Go's iter.Seq
//   - Sources are consumed lazily, one element ahead at most
//   - Empty sources are allowed and skipped
//
// Basic usage:
//
//	a := merge.NewList(1, 4, 7)
//	b := merge.NewList(2, 5, 8)
//	c := merge.NewList(3, 6, 9)
//
//	for v := range merge.All(func(x, y int) bool { return x < y }, a, b, c) {
//	    fmt.Println(v) // 1 through 9 in order
//	}
//
// Each input must already be sorted by the same comparator; the merge does
// not verify this.
package merge
