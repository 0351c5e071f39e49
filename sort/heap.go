package sort

// heapSort builds a max-heap over the whole slice, then repeatedly swaps the
// root maximum to the shrinking tail and restores the heap invariant.
//
// O(n log n) time, O(1) auxiliary space. Not stable.
func heapSort[E any, ES ~[]E](data ES, precedes Predicate[E]) {
	buildMaxHeap(data, precedes)
	for i := len(data) - 1; i >= 1; i-- {
		swapElems(data, 0, i)
		siftDown(data, 0, i, precedes)
	}
}

// buildMaxHeap establishes the max-heap invariant bottom-up by sifting down
// every internal node, last parent first. O(n).
func buildMaxHeap[E any, ES ~[]E](data ES, precedes Predicate[E]) {
	for i := len(data)/2 - 1; i >= 0; i-- {
		siftDown(data, i, len(data), precedes)
	}
}

// siftDown restores the max-heap invariant for the subtree rooted at root,
// considering only data[:size] part of the heap. A child displaces the root
// when the root precedes it, so the heap maximum under the predicate ends up
// at index 0.
func siftDown[E any, ES ~[]E](data ES, root, size int, precedes Predicate[E]) {
	for {
		child := 2*root + 1
		if child >= size {
			return
		}
		if child+1 < size && precedes(data[child], data[child+1]) {
			child++
		}
		if !precedes(data[root], data[child]) {
			return
		}
		swapElems(data, root, child)
		root = child
	}
}

// IsMaxHeap reports whether data[:heapSize] satisfies the max-heap
// invariant under precedes: no parent strictly precedes either of its
// children. Diagnostic helper for tests, not used on the sorting path.
func IsMaxHeap[E any, ES ~[]E](data ES, heapSize int, precedes Predicate[E]) bool {
	if heapSize > len(data) {
		heapSize = len(data)
	}
	for i := 0; i < heapSize/2; i++ {
		left, right := 2*i+1, 2*i+2
		if left < heapSize && precedes(data[i], data[left]) {
			return false
		}
		if right < heapSize && precedes(data[i], data[right]) {
			return false
		}
	}
	return true
}
