package lessons

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

func sequence(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// parallelSum splits data in half until a part is below threshold, summing
// the upper half on its own goroutine like an async future.
func parallelSum(ctx context.Context, data []int, threshold int) (int, error) {
	if len(data) < threshold {
		sum := 0
		for _, v := range data {
			sum += v
		}
		return sum, ctx.Err()
	}

	mid := len(data) / 2
	var upper int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		upper, err = parallelSum(gctx, data[mid:], threshold)
		return err
	})

	lower, err := parallelSum(gctx, data[:mid], threshold)
	if waitErr := g.Wait(); waitErr != nil {
		return 0, waitErr
	}
	if err != nil {
		return 0, err
	}
	return lower + upper, nil
}

// AsyncSequential sums a sequence with a threshold above its length, so
// no goroutine is ever started.
type AsyncSequential struct {
	out  io.Writer
	size int
}

func (l *AsyncSequential) Run(ctx context.Context) error {
	sum, err := parallelSum(ctx, sequence(l.size), l.size+1)
	if err != nil {
		return err
	}
	fmt.Fprintf(l.out, "Sum of array: %d\n", sum)
	return nil
}

// AsyncConcurrent sums the same sequence split across goroutines, then
// collects independent "futures" with an errgroup.
type AsyncConcurrent struct {
	out       io.Writer
	size      int
	threshold int
}

func (l *AsyncConcurrent) Run(ctx context.Context) error {
	sum, err := parallelSum(ctx, sequence(l.size), l.threshold)
	if err != nil {
		return err
	}
	fmt.Fprintf(l.out, "Sum of array: %d\n", sum)

	squares := make([]int, 5)
	g, gctx := errgroup.WithContext(ctx)
	for i := range squares {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			squares[i] = i * i
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Fprintf(l.out, "futures resolved: %v\n", squares)
	return nil
}
