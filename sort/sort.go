// Package sort provides comparison-based sorting of generic slices under a
// caller-supplied precedes relation. It is an educational library: every
// classic algorithm is selectable explicitly and none is picked automatically.
package sort

import (
	"github.com/pkg/errors"

	"github.com/wfusion/gosort/common/constraint"
	"github.com/wfusion/gosort/common/utils"
)

// Predicate reports whether a should come strictly before b in the output.
// It must behave as a strict weak ordering (irreflexive, asymmetric,
// transitive); the library does not validate this, a malformed predicate
// yields a deterministic but unspecified order.
type Predicate[E any] func(a, b E) bool

// Algorithm selects one of the implemented sorting algorithms.
type Algorithm uint8

const (
	Merge Algorithm = iota + 1
	Quick
	Heap
	Insertion
	Selection
)

var algorithmNames = map[Algorithm]string{
	Merge:     "merge",
	Quick:     "quick",
	Heap:      "heap",
	Insertion: "insertion",
	Selection: "selection",
}

func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}
	return "unknown"
}

// Stable reports whether the algorithm keeps elements that compare as equal
// in their original relative order.
func (a Algorithm) Stable() bool {
	return a == Merge || a == Insertion
}

// Algorithms returns every member of the enumeration in selector order.
func Algorithms() []Algorithm {
	return []Algorithm{Merge, Quick, Heap, Insertion, Selection}
}

// ParseAlgorithm resolves a selector name as printed by Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algorithmNames {
		if name == s {
			return a, nil
		}
	}
	return 0, errors.Errorf("unknown sort algorithm %q", s)
}

type option struct {
	simpleQuick bool
}

// SimpleQuickSort makes the Quick selector use the allocating
// partition-by-bucketing variant instead of the default in-place one. The
// simple variant allocates two fresh slices per recursion step and exists for
// illustration; it is strictly slower and hungrier than the default.
func SimpleQuickSort() utils.OptionExtender {
	return utils.OptionFunc[option](func(o *option) {
		o.simpleQuick = true
	})
}

// Sort orders data ascending under precedes using the selected algorithm and
// returns it. The caller's buffer always ends up holding the sorted
// permutation: in-place algorithms mutate it directly, allocating ones copy
// their result back. The input must not be read or written concurrently for
// the duration of the call.
//
// Every algorithm returns a permutation of its input. Stability is only
// guaranteed where the algorithm provides it, see Algorithm.Stable.
//
// An Algorithm value outside the enumeration is a programming error and
// panics.
func Sort[E any, ES ~[]E](algo Algorithm, data ES, precedes Predicate[E], opts ...utils.OptionExtender) ES {
	if len(data) <= 1 {
		return data
	}

	opt := utils.ApplyOptions[option](opts...)
	switch algo {
	case Merge:
		mergeSort(data, precedes)
	case Quick:
		if opt.simpleQuick {
			copy(data, quickSortSimple(data, precedes))
		} else {
			quickSortInPlace(data, 0, len(data)-1, precedes)
		}
	case Heap:
		heapSort(data, precedes)
	case Insertion:
		insertionSort(data, precedes)
	case Selection:
		selectionSort(data, precedes)
	default:
		panic(errors.Errorf("unknown sort algorithm: %d", algo))
	}
	return data
}

// SortOrdered is Sort with precedes defaulted to < for intrinsically ordered
// element types.
func SortOrdered[E constraint.Sortable, ES ~[]E](algo Algorithm, data ES, opts ...utils.OptionExtender) ES {
	return Sort(algo, data, func(a, b E) bool { return a < b }, opts...)
}

// swapElems exchanges the elements at i and j, doing nothing when the
// indices coincide.
func swapElems[E any, ES ~[]E](data ES, i, j int) {
	if i == j {
		return
	}
	data[i], data[j] = data[j], data[i]
}
