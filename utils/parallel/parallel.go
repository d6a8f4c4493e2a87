package parallel

import (
	"sync"
)

// Parallel calls fn for every index in [0, times) with at most concurrency
// calls in flight and returns the results in index order.
func Parallel[T any](fn func(int) T, times, concurrency int) []T {
	if concurrency <= 0 {
		concurrency = 1
	}
	var wg sync.WaitGroup
	var results = make([]T, times)
	c := make(chan struct{}, concurrency)
	for i := 0; i < times; i++ {
		wg.Add(1)
		c <- struct{}{}
		go func(index int) {
			defer wg.Done()
			defer func() { <-c }()
			results[index] = fn(index)
		}(i)
	}

	wg.Wait()
	close(c)
	return results
}
