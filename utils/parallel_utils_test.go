package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	getHisto := func(K, Np int) (histo map[int]int) {
		pm := NewPartitionMap(Np, K)
		histo = make(map[int]int)
		for np := 0; np < pm.ParallelDegree; np++ {
			kMin, kMax := pm.GetBucketRange(np)
			histo[kMax-kMin]++
		}
		return
	}
	getTotal := func(histo map[int]int) (total int) {
		for key, count := range histo {
			total += key * count
		}
		return
	}
	assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
	assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
	assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
	assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
	assert.Equal(t, 287, getTotal(getHisto(287, 32)))
	for n := 64; n < 10000; n++ {
		var (
			keys   [2]float64
			keyNum int
		)
		histo := getHisto(n, 32)
		for key := range histo {
			keys[keyNum] = float64(key)
			keyNum++
		}
		if keyNum == 2 {
			assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
		}
		assert.Equal(t, n, getTotal(histo))
	}
	// Partitions are contiguous and cover the range
	for maxIndex := 10; maxIndex < 200; maxIndex++ {
		pm := NewPartitionMap(7, maxIndex)
		next := 0
		for np := range pm.Partitions {
			kMin, kMax := pm.GetBucketRange(np)
			assert.Equal(t, next, kMin)
			next = kMax
		}
		assert.Equal(t, maxIndex, next)
	}
}

func TestPartitionMapForEach(t *testing.T) {
	var (
		N    = 1001
		pm   = NewPartitionMap(7, N)
		seen = make([]int, N)
	)
	pm.ForEach(func(bn, kMin, kMax int) {
		assert.Equal(t, pm.Partitions[bn], [2]int{kMin, kMax})
		for k := kMin; k < kMax; k++ {
			seen[k]++
		}
	})
	for k := range seen {
		assert.Equal(t, 1, seen[k])
	}
	assert.Equal(t, 1, DefaultPartitionMap(0).ParallelDegree)
	assert.Equal(t, 1, NewPartitionMap(0, 10).ParallelDegree)
}
