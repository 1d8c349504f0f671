package utils

import (
	"runtime"
	"sync"
)

// PartitionMap splits the index range [0,MaxIndex) into ParallelDegree
// contiguous partitions whose sizes differ by at most one
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // [begin,end) of each partition
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	if ParallelDegree < 1 {
		ParallelDegree = 1
	}
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := range pm.Partitions {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

// DefaultPartitionMap uses one partition per CPU, or a single partition when
// there are fewer items than CPUs
func DefaultPartitionMap(maxIndex int) *PartitionMap {
	np := runtime.NumCPU()
	if np > maxIndex {
		np = 1
	}
	return NewPartitionMap(np, maxIndex)
}

// Split1D is the range of partition n. The first MaxIndex%ParallelDegree
// partitions carry one extra item.
func (pm *PartitionMap) Split1D(n int) (bucket [2]int) {
	var (
		size  = pm.MaxIndex / pm.ParallelDegree
		extra = pm.MaxIndex % pm.ParallelDegree
	)
	bucket[0] = n*size + min(n, extra)
	bucket[1] = bucket[0] + size
	if n < extra {
		bucket[1]++
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

// ForEach runs f once per partition in its own goroutine and waits for all
// of them. Partitions cover disjoint index ranges, so f may write to
// per-index storage without locking.
func (pm *PartitionMap) ForEach(f func(bn, kMin, kMax int)) {
	var (
		wg = sync.WaitGroup{}
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			kMin, kMax := pm.GetBucketRange(np)
			f(np, kMin, kMax)
			wg.Done()
		}(np)
	}
	wg.Wait()
}
