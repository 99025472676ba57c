package parallel

import (
	"sync/atomic"
	"testing"
)

func TestChunksCoversEveryIndexOnce(t *testing.T) {
	tests := []struct {
		name  string
		items int
	}{
		{name: "empty", items: 0},
		{name: "single item", items: 1},
		{name: "fewer items than cores", items: 3},
		{name: "many items", items: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := make([]int32, tt.items)
			Chunks(tt.items, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&counts[i], 1)
				}
			})
			for i, c := range counts {
				if c != 1 {
					t.Fatalf("index %d visited %d times, want exactly once", i, c)
				}
			}
		})
	}
}

func TestEachVisitsEveryIndex(t *testing.T) {
	const items = 257
	counts := make([]int32, items)
	Each(items, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want exactly once", i, c)
		}
	}
}

func TestChunksWithThresholdRunsSequentiallyBelowThreshold(t *testing.T) {
	var calls int
	ChunksWithThreshold(10, 100, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("sequential call got range [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}
