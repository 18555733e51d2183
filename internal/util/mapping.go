// Package util provides generic concurrency helpers for slice processing.
package util

import (
	"context"
	"sync"
)

// ConcurrentMapSlice applies mapFunc to every item using up to maxWorkers
// goroutines and returns the results in input order. A canceled context
// abandons the remaining work and returns the context error instead.
func ConcurrentMapSlice[T, R any](ctx context.Context, maxWorkers int, items []T, mapFunc func(T) R) ([]R, error) {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	var wg sync.WaitGroup

	results := make([]R, len(items))
	semaphore := make(chan struct{}, maxWorkers)

loop:
	for i, item := range items {
		select {
		case <-ctx.Done():
			break loop
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			defer func() { <-semaphore }()

			results[i] = mapFunc(item)
		}(i, item)
	}

	wg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return results, nil
}
