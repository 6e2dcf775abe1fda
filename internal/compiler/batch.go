package compiler

import (
	"golang.org/x/sync/errgroup"
)

// Batch compiles every path concurrently, each on its own goroutine
// with its own FileManager, bounded by workers (at least 1) via a
// semaphore channel. It gathers every file's Result, in input order,
// and returns the first hard (non-diagnostic) error encountered, if
// any, per spec.md §5's "each worker owns its own FileManager" rule
// for concurrent batch compilation.
func Batch(paths []string, opts Options, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(paths))
	sem := make(chan struct{}, workers)

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			res, err := File(path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	err := g.Wait()
	return results, err
}
