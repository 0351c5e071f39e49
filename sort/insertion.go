package sort

// insertionSort grows a sorted prefix one element at a time: each key shifts
// the prefix elements it precedes one slot right and drops into the gap.
//
// O(n^2) worst and average, O(n) on already-sorted input, O(1) auxiliary
// space. Stable: the strict precedence test never shifts an equal element
// past another.
func insertionSort[E any, ES ~[]E](data ES, precedes Predicate[E]) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && precedes(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
