package sort

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/wfusion/gosort/common/utils"
)

func lessInt(a, b int) bool { return a < b }

// TestPermutationProperty checks output length and element multiset match the
// input for every algorithm over random duplicate-heavy data.
func TestPermutationProperty(t *testing.T) {
	rnd := utils.NewRandom(1)
	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			for _, n := range []int{0, 1, 2, 17, 128} {
				data := utils.RandomInts(rnd, n, 10) // few distinct keys, many duplicates
				counts := make(map[int]int, len(data))
				for _, v := range data {
					counts[v]++
				}

				got := Sort(algo, data, lessInt)
				require.Len(t, got, n)
				for _, v := range got {
					counts[v]--
				}
				for v, c := range counts {
					require.Zerof(t, c, "element %d count drifted", v)
				}
			}
		})
	}
}

// TestOrderProperty checks no adjacent output pair violates the predicate.
func TestOrderProperty(t *testing.T) {
	rnd := utils.NewRandom(2)
	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			data := utils.RandomInts(rnd, 256, 0)
			got := Sort(algo, data, lessInt)
			for i := 1; i < len(got); i++ {
				require.Falsef(t, lessInt(got[i], got[i-1]),
					"adjacent pair (%d, %d) at %d violates the predicate", got[i-1], got[i], i)
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	rnd := utils.NewRandom(3)
	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			data := utils.RandomInts(rnd, 100, 20)
			once := slices.Clone(Sort(algo, data, lessInt))
			twice := Sort(algo, slices.Clone(once), lessInt)
			require.Empty(t, cmp.Diff(once, twice))
		})
	}
}

// TestAgreementAcrossAlgorithms checks every algorithm and quick variant
// produces the same value sequence as the reference sort.
func TestAgreementAcrossAlgorithms(t *testing.T) {
	distinct, err := faker.RandomInt(0, 9999, 200)
	require.NoError(t, err)

	rnd := utils.NewRandom(4)
	inputs := map[string][]int{
		"distinct":   distinct,
		"duplicates": utils.RandomInts(rnd, 200, 25),
		"sorted":     {1, 2, 3, 4, 5, 6, 7, 8},
		"reversed":   {8, 7, 6, 5, 4, 3, 2, 1},
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			ref := slices.Clone(input)
			slices.Sort(ref)

			for _, algo := range Algorithms() {
				got := Sort(algo, slices.Clone(input), lessInt)
				require.Emptyf(t, cmp.Diff(ref, got), "%s disagrees with the reference", algo)
			}
			got := Sort(Quick, slices.Clone(input), lessInt, SimpleQuickSort())
			require.Empty(t, cmp.Diff(ref, got), "simple quick disagrees with the reference")
		})
	}
}

// TestStability checks the stable algorithms keep equal-key elements in
// input order, distinguishing them by a sequence number the predicate
// ignores.
func TestStability(t *testing.T) {
	type record struct {
		key, seq int
	}
	byKey := func(a, b record) bool { return a.key < b.key }

	rnd := utils.NewRandom(5)
	input := make([]record, 200)
	for i := range input {
		input[i] = record{key: rnd.Intn(8), seq: i}
	}

	for _, algo := range []Algorithm{Merge, Insertion} {
		t.Run(algo.String(), func(t *testing.T) {
			got := Sort(algo, slices.Clone(input), byKey)
			for i := 1; i < len(got); i++ {
				if got[i-1].key == got[i].key {
					require.Lessf(t, got[i-1].seq, got[i].seq,
						"equal keys reordered at %d: %+v before %+v", i, got[i-1], got[i])
				}
			}
		})
	}
}

// TestMalformedPredicate checks a non-strict-weak-ordering predicate still
// terminates with a permutation, per the documented caller contract.
func TestMalformedPredicate(t *testing.T) {
	always := func(a, b int) bool { return true }
	rnd := utils.NewRandom(6)
	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			data := utils.RandomInts(rnd, 64, 10)
			sum := 0
			for _, v := range data {
				sum += v
			}
			got := Sort(algo, data, always)
			require.Len(t, got, 64)
			for _, v := range got {
				sum -= v
			}
			require.Zero(t, sum)
		})
	}
}
