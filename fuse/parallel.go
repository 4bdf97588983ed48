// SPDX-License-Identifier: MIT
// Package fuse: data-parallel batch dispatch.
//
// The unit of concurrent work is a contiguous index range (graph rows for
// the union and reconciliation kernels, edges for the categorical kernel).
// Every batch writes only to its own output slots, so kernels need no
// locking, and results are independent of scheduling order by construction.

package fuse

import "golang.org/x/sync/errgroup"

// parallelRanges splits [0, n) into fixed-size batches and runs fn over
// each on at most workers goroutines. It returns only after every batch
// has completed, giving callers the barrier that two-pass kernels and
// reductions require between passes.
func parallelRanges(n, workers, batch int, fn func(start, stop int)) {
	if n <= 0 {
		return
	}
	if n <= batch || workers == 1 {
		fn(0, n)

		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += batch {
		start, stop := start, start+batch
		if stop > n {
			stop = n
		}
		g.Go(func() error {
			fn(start, stop)

			return nil
		})
	}
	// Batch bodies never fail; Wait serves purely as the barrier.
	_ = g.Wait()
}
