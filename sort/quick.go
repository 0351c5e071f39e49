package sort

// quickSortInPlace sorts data[lo:hi+1] by Lomuto partitioning around the last
// element of the range. The smaller side is handled by recursion and the
// larger by the enclosing loop, which caps the call depth at O(log n) even on
// adversarial inputs such as an already-sorted slice.
//
// Average O(n log n) time, O(n^2) worst case with the fixed last-element
// pivot. Not stable.
func quickSortInPlace[E any, ES ~[]E](data ES, lo, hi int, precedes Predicate[E]) {
	for lo < hi {
		p := partition(data, lo, hi, precedes)
		if p-lo < hi-p {
			quickSortInPlace(data, lo, p-1, precedes)
			lo = p + 1
		} else {
			quickSortInPlace(data, p+1, hi, precedes)
			hi = p - 1
		}
	}
}

// partition places data[hi] at its final position within [lo, hi] and
// returns that position. Afterwards every element left of it precedes the
// pivot and no element right of it does.
func partition[E any, ES ~[]E](data ES, lo, hi int, precedes Predicate[E]) int {
	pivot := data[hi]
	boundary := lo
	for i := lo; i < hi; i++ {
		if precedes(data[i], pivot) {
			swapElems(data, boundary, i)
			boundary++
		}
	}
	swapElems(data, boundary, hi)
	return boundary
}

// quickSortSimple is the illustrative allocating variant: it buckets every
// element except the last-element pivot into preceding/following slices,
// sorts each bucket recursively, and concatenates. It always recurses into
// itself so the variant choice made at the top-level call cannot change
// mid-sort.
//
// Same average time as the in-place variant, but O(n) fresh allocation per
// recursion level.
func quickSortSimple[E any, ES ~[]E](data ES, precedes Predicate[E]) ES {
	if len(data) < 2 {
		return data
	}

	pivot := data[len(data)-1]
	preceding := make(ES, 0, len(data)-1)
	following := make(ES, 0, len(data)-1)
	for _, e := range data[:len(data)-1] {
		if precedes(e, pivot) {
			preceding = append(preceding, e)
		} else {
			following = append(following, e)
		}
	}

	out := make(ES, 0, len(data))
	out = append(out, quickSortSimple(preceding, precedes)...)
	out = append(out, pivot)
	out = append(out, quickSortSimple(following, precedes)...)
	return out
}
