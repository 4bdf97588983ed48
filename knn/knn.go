// SPDX-License-Identifier: MIT
// Package knn: exact 1-D k-nearest-neighbor search.
//
// Contract:
//   - len(target) ≥ 1 (else ErrEmptyTarget).
//   - 1 ≤ k ≤ len(target) (else ErrBadK).
//   - Output lists are ordered by ascending distance; equal distances break
//     toward the lower point index, including ties that straddle the k-th
//     position (the whole boundary tie run competes on index).
//   - The point itself appears in its own list at distance 0.
//
// Complexity:
//   - Time: O(n·log n) for the value sort + O(n·(k+t)·log(k+t)) for
//     per-point window collection and ordering, t the boundary tie run.
//   - Memory: O(n·k) output + O(n) scratch.
//
// Determinism:
//   - No randomness; fixed tie-break (distance asc, then index asc).

package knn

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptyTarget indicates an empty target vector.
	ErrEmptyTarget = errors.New("knn: target vector must be non-empty")

	// ErrBadK indicates k < 1 or k > len(target).
	ErrBadK = errors.New("knn: k must be in [1, len(target)]")

	// ErrBadValue indicates a NaN or ±Inf target value.
	ErrBadValue = errors.New("knn: target contains NaN or Inf")
)

// Search returns, for each point i, the indices and absolute distances of
// its k nearest neighbors among all target values (self included, at
// distance 0). Each row of indices/dists has exactly k entries ordered by
// ascending distance.
func Search(target []float64, k int) (indices [][]int, dists [][]float64, err error) {
	n := len(target)
	if n == 0 {
		return nil, nil, ErrEmptyTarget
	}
	if k < 1 || k > n {
		return nil, nil, ErrBadK
	}
	for _, v := range target {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, ErrBadValue
		}
	}

	// Value-sorted order of point indices; ties toward the lower index keep
	// the window expansion deterministic.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return target[order[a]] < target[order[b]]
	})

	// pos[i] is point i's position within order.
	pos := make([]int, n)
	for p, idx := range order {
		pos[idx] = p
	}

	indices = make([][]int, n)
	dists = make([][]float64, n)

	type cand struct {
		idx  int
		dist float64
	}
	window := make([]cand, 0, k)

	for i := 0; i < n; i++ {
		window = window[:0]
		// Expand left/right pointers around i's sorted position; in 1-D the
		// k nearest always form a contiguous window of the sorted order.
		// Expansion selects by distance alone; index ties are settled below.
		lo, hi := pos[i]-1, pos[i]+1
		window = append(window, cand{i, 0})
		for len(window) < k {
			dLo, dHi := math.Inf(1), math.Inf(1)
			if lo >= 0 {
				dLo = target[i] - target[order[lo]]
			}
			if hi < n {
				dHi = target[order[hi]] - target[i]
			}
			if dLo <= dHi {
				window = append(window, cand{order[lo], dLo})
				lo--
			} else {
				window = append(window, cand{order[hi], dHi})
				hi++
			}
		}

		// Collect the full tie run at the window boundary: every remaining
		// candidate at exactly the k-th distance competes on point index,
		// so the final (distance, index) trim honors the documented
		// tie-break even when ties straddle the boundary. Distances along
		// each direction are monotone, so the run is contiguous.
		dMax := window[len(window)-1].dist
		for lo >= 0 && target[i]-target[order[lo]] == dMax {
			window = append(window, cand{order[lo], dMax})
			lo--
		}
		for hi < n && target[order[hi]]-target[i] == dMax {
			window = append(window, cand{order[hi], dMax})
			hi++
		}

		sort.Slice(window, func(a, b int) bool {
			if window[a].dist != window[b].dist {
				return window[a].dist < window[b].dist
			}

			return window[a].idx < window[b].idx
		})

		rowIdx := make([]int, k)
		rowDist := make([]float64, k)
		for j := 0; j < k; j++ {
			rowIdx[j] = window[j].idx
			rowDist[j] = window[j].dist
		}
		indices[i] = rowIdx
		dists[i] = rowDist
	}

	return indices, dists, nil
}
