// Package topn retains the n highest-priority elements of a stream in
// bounded memory.
//
// A Collector holds at most n elements in a priority queue inverted so that
// the weakest retained element sits on top. Offering an element compares it
// against that weakest element and either discards it or evicts the weakest
// in O(log n), so processing a stream of m elements costs O(m log n)
// regardless of stream length.
//
// Basic usage:
//
//	// Keep the three largest values
//	c := topn.NewCollector[int](3, func(a, b int) bool { return a < b })
//
//	for _, v := range []int{5, 1, 9, 3, 7, 2} {
//	    c.Offer(v)
//	}
//
//	fmt.Println(c.Items()) // [9 7 5]
package topn
