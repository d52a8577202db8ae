package lessons

import (
	"context"
	"io"
	"math/rand"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const cacheLineSize = 64

// packedCounters share cache lines.
type packedCounters struct {
	values [4]atomic.Int64
}

// paddedCounter fills a whole cache line on its own.
type paddedCounter struct {
	value atomic.Int64
	_     [cacheLineSize - 8]byte
}

type paddedCounters struct {
	values [4]paddedCounter
}

func hammer(workers, iterations int, counter func(i int) *atomic.Int64) (time.Duration, int64) {
	var wg sync.WaitGroup
	start := time.Now()
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(c *atomic.Int64) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				c.Add(1)
			}
		}(counter(w))
	}
	wg.Wait()

	var total int64
	for w := 0; w < workers; w++ {
		total += counter(w).Load()
	}
	return time.Since(start), total
}

// FalseSharing compares goroutines incrementing counters that share a
// cache line with counters padded onto separate lines.
type FalseSharing struct {
	out        io.Writer
	iterations int
}

func (l *FalseSharing) Run(ctx context.Context) error {
	p := message.NewPrinter(language.English)
	const workers = 4

	var packed packedCounters
	packedTime, packedTotal := hammer(workers, l.iterations, func(i int) *atomic.Int64 {
		return &packed.values[i]
	})

	var padded paddedCounters
	paddedTime, paddedTotal := hammer(workers, l.iterations, func(i int) *atomic.Int64 {
		return &padded.values[i].value
	})

	p.Fprintf(l.out, "packed: %d increments in %v\n", packedTotal, packedTime)
	p.Fprintf(l.out, "padded: %d increments in %v\n", paddedTotal, paddedTime)
	return ctx.Err()
}

// BranchPrediction sums the elements above a threshold in shuffled and
// in sorted data; the sorted pass has a predictable branch.
type BranchPrediction struct {
	out  io.Writer
	size int
}

func sumAbove(data []int, threshold int) int {
	sum := 0
	for _, v := range data {
		if v >= threshold {
			sum += v
		}
	}
	return sum
}

func (l *BranchPrediction) Run(context.Context) error {
	p := message.NewPrinter(language.English)

	rng := rand.New(rand.NewSource(1))
	data := make([]int, l.size)
	for i := range data {
		data[i] = rng.Intn(256)
	}

	start := time.Now()
	unsortedSum := sumAbove(data, 128)
	unsortedTime := time.Since(start)

	slices.Sort(data)
	start = time.Now()
	sortedSum := sumAbove(data, 128)
	sortedTime := time.Since(start)

	p.Fprintf(l.out, "elements: %d\n", len(data))
	p.Fprintf(l.out, "unsorted sum %d in %v\n", unsortedSum, unsortedTime)
	p.Fprintf(l.out, "sorted sum %d in %v\n", sortedSum, sortedTime)
	return nil
}
