// Package heapsort implements a textbook in-place heapsort over ordered
// element types. It is a standalone utility with no dependency on the
// cache packages.
package heapsort

import "cmp"

// Sort sorts data in ascending order in place. The whole slice is first
// heapified bottom-up, then the root is repeatedly swapped past the end
// of the shrinking heap range. O(n log n) comparisons, O(1) extra space,
// not stable.
func Sort[T cmp.Ordered](data []T) {
	heapSort(data, cmp.Less[T])
}

// SortDescending sorts data in descending order in place.
func SortDescending[T cmp.Ordered](data []T) {
	heapSort(data, func(a, b T) bool { return b < a })
}

// heapSort builds a max-heap with respect to less and moves the root of
// the shrinking heap range to its final position one element at a time.
func heapSort[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, less)
	}
	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDown(data, 0, end, less)
	}
}

// siftDown restores the heap property for the subtree rooted at root,
// treating data[:end] as the heap.
func siftDown[T any](data []T, root, end int, less func(a, b T) bool) {
	for {
		child := 2*root + 1
		if child >= end {
			return
		}
		if child+1 < end && less(data[child], data[child+1]) {
			child++
		}
		if !less(data[root], data[child]) {
			return
		}
		data[root], data[child] = data[child], data[root]
		root = child
	}
}
