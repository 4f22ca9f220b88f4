// Package workerpool runs work items concurrently.
package workerpool

import (
	"context"
	"sync"
)

// Ordered runs process over items on up to workerCount goroutines and passes
// each result to emit strictly in item order. At most workerCount items are in
// flight or waiting to be emitted. The first error from process or emit cancels
// the remaining work and is returned.
func Ordered[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) (R, error),
	emit func(T, R) error,
) error {
	if workerCount < 1 {
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	wg := sync.WaitGroup{}
	defer func() {
		cancel()
		wg.Wait()
	}()

	type result struct {
		value R
		err   error
	}
	results := make([]chan result, len(items))
	for i := range results {
		results[i] = make(chan result, 1)
	}
	slots := make(chan struct{}, workerCount)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i, item := range items {
			select {
			case <-ctx.Done():
				return
			case slots <- struct{}{}:
			}

			wg.Add(1)
			go func(i int, item T) {
				defer wg.Done()
				value, err := process(ctx, item)
				results[i] <- result{value: value, err: err}
			}(i, item)
		}
	}()

	for i, item := range items {
		var res result
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res = <-results[i]:
		}
		if res.err != nil {
			return res.err
		}
		if err := emit(item, res.value); err != nil {
			return err
		}
		<-slots
	}
	return ctx.Err()
}
