// SPDX-License-Identifier: MIT

// Package parallel fans per-row work out over a bounded set of goroutines.
//
// Every stage that uses it writes only to rows it owns, so results are
// identical for any worker count.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minRowsPerWorker keeps tiny inputs on the calling goroutine.
const minRowsPerWorker = 32

// Workers resolves a requested worker count: values <= 0 mean GOMAXPROCS.
func Workers(requested int) int {
	if requested <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return requested
}

// ForEach calls fn(i) for every i in [0, n), splitting the range into
// contiguous blocks processed by at most workers goroutines.
// The first non-nil error is returned; remaining blocks may still run.
func ForEach(n, workers int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	workers = Workers(workers)
	if workers == 1 || n < 2*minRowsPerWorker {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	block := (n + workers - 1) / workers
	if block < minRowsPerWorker {
		block = minRowsPerWorker
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += block {
		hi := lo + block
		if hi > n {
			hi = n
		}
		lo := lo
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}
