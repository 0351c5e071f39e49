package sort

// selectionSort repeatedly scans the unsorted suffix for its minimum under
// the predicate and swaps it into place.
//
// O(n^2) time regardless of input, O(1) auxiliary space. Not stable: the
// swap can carry an element past equals.
func selectionSort[E any, ES ~[]E](data ES, precedes Predicate[E]) {
	for i := 0; i < len(data); i++ {
		min := i
		for j := i + 1; j < len(data); j++ {
			if precedes(data[j], data[min]) {
				min = j
			}
		}
		swapElems(data, i, min)
	}
}
