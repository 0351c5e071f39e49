package sort

// mergeSort sorts bottom-up: every element starts as a singleton run and
// adjacent run pairs are merged until a single run remains. An odd run count
// carries the last run forward unmerged for that pass. The sorted result is
// copied back into data.
//
// O(n log n) time, O(n) auxiliary space. Stable: merging prefers the left
// run whenever neither front strictly precedes the other.
func mergeSort[E any, ES ~[]E](data ES, precedes Predicate[E]) {
	runs := make([]ES, len(data))
	for i, e := range data {
		runs[i] = ES{e}
	}

	for len(runs) > 1 {
		merged := make([]ES, 0, (len(runs)+1)/2)
		for i := 0; i+1 < len(runs); i += 2 {
			merged = append(merged, mergeRuns(runs[i], runs[i+1], precedes))
		}
		if len(runs)%2 == 1 {
			merged = append(merged, runs[len(runs)-1])
		}
		runs = merged
	}

	copy(data, runs[0])
}

// mergeRuns interleaves two sorted runs into one. When neither front
// precedes the other the left element is taken first, which is what makes
// the overall sort stable.
func mergeRuns[E any, ES ~[]E](left, right ES, precedes Predicate[E]) ES {
	out := make(ES, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if precedes(right[j], left[i]) {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}
