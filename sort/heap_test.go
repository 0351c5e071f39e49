package sort

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfusion/gosort/common/utils"
)

func TestBuildMaxHeap(t *testing.T) {
	rnd := utils.NewRandom(7)
	for _, n := range []int{0, 1, 2, 3, 10, 63, 64, 257} {
		data := utils.RandomInts(rnd, n, 50)
		buildMaxHeap(data, lessInt)
		require.Truef(t, IsMaxHeap(data, len(data), lessInt), "heap invariant broken for n=%d: %v", n, data)
	}
}

func TestIsMaxHeap(t *testing.T) {
	require.True(t, IsMaxHeap([]int{}, 0, lessInt))
	require.True(t, IsMaxHeap([]int{1}, 1, lessInt))
	require.True(t, IsMaxHeap([]int{9, 5, 8, 1, 4, 7}, 6, lessInt))
	require.False(t, IsMaxHeap([]int{5, 9, 8}, 3, lessInt))
	require.False(t, IsMaxHeap([]int{9, 5, 8, 6}, 4, lessInt))

	// Elements beyond heapSize are not part of the heap.
	require.True(t, IsMaxHeap([]int{9, 5, 8, 99}, 3, lessInt))
	// A heapSize past the buffer is clamped.
	require.True(t, IsMaxHeap([]int{9, 5}, 10, lessInt))
}

func TestSiftDownRestoresInvariant(t *testing.T) {
	// Valid heap everywhere except the root.
	data := []int{0, 9, 8, 5, 4, 7, 6}
	siftDown(data, 0, len(data), lessInt)
	require.True(t, IsMaxHeap(data, len(data), lessInt))
	require.EqualValues(t, 9, data[0])
}
