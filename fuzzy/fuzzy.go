// SPDX-License-Identifier: MIT
// Package fuzzy: fuzzy-simplicial-set construction from neighbor lists.
//
// Contract:
//   - n ≥ 1 points; len(indices) == len(dists) == n (else ErrShapeMismatch).
//   - Every neighbor row has exactly k entries, ordered by ascending
//     distance (the layout knn.Search produces); k ≥ 2 (else ErrBadK —
//     log2(1) = 0 makes the bandwidth search degenerate).
//   - Neighbor indices must lie in [0, n) (else ErrShapeMismatch).
//
// Complexity:
//   - Time: O(n·k·iter) for the bandwidth searches (iter ≤ 64) plus
//     O(n·k·log(n·k)) for union symmetrization.
//   - Memory: O(n·k).
//
// Determinism:
//   - Pure function of its inputs; no randomness, no map-order dependence.

package fuzzy

import (
	"errors"
	"math"

	"github.com/katalvlaran/simfuse/coo"
)

var (
	// ErrShapeMismatch indicates neighbor lists whose shape disagrees with
	// n or k, or a neighbor index outside [0, n).
	ErrShapeMismatch = errors.New("fuzzy: neighbor lists do not match n×k")

	// ErrBadK indicates k < 2; the bandwidth search needs at least one
	// neighbor besides the anchor point.
	ErrBadK = errors.New("fuzzy: k must be at least 2")
)

// Bandwidth-search constants for smoothed neighbor distances.
const (
	// smoothIters bounds the binary search for sigma.
	smoothIters = 64
	// smoothTolerance stops the search once the membership sum is close
	// enough to log2(k).
	smoothTolerance = 1e-5
	// minBandwidthScale floors sigma at this fraction of the mean neighbor
	// distance, guarding against zero bandwidth on degenerate rows.
	minBandwidthScale = 1e-3
)

// Build converts n k-nearest-neighbor lists into a symmetric fuzzy
// similarity graph over n points. indices[i][j] is point i's j-th nearest
// neighbor and dists[i][j] the matching distance; rows must be ordered by
// ascending distance.
func Build(n int, indices [][]int, dists [][]float64, k int) (*coo.Matrix, error) {
	if k < 2 {
		return nil, ErrBadK
	}
	if n < 1 || len(indices) != n || len(dists) != n {
		return nil, ErrShapeMismatch
	}
	for i := 0; i < n; i++ {
		if len(indices[i]) != k || len(dists[i]) != k {
			return nil, ErrShapeMismatch
		}
		for _, idx := range indices[i] {
			if idx < 0 || idx >= n {
				return nil, ErrShapeMismatch
			}
		}
	}

	sigmas, rhos := smoothDistances(dists, float64(k))

	directed, err := coo.NewWithCapacity(n, n*k)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			neighbor := indices[i][j]
			if neighbor == i {
				// Self edges carry no information for the union; skip so the
				// diagonal never enters the fused graph.
				continue
			}
			directed.Append(i, neighbor, membership(dists[i][j], rhos[i], sigmas[i]))
		}
	}

	return coo.Symmetrize(directed, func(a, b float64) float64 { return a + b - a*b })
}

// membership converts one neighbor distance into a strength in (0, 1]:
// 1 inside the local-connectivity radius, exponential decay outside.
func membership(d, rho, sigma float64) float64 {
	if d-rho <= 0 || sigma == 0 {
		return 1
	}

	return math.Exp(-(d - rho) / sigma)
}

// smoothDistances computes, per point, the local-connectivity radius rho
// (distance to the nearest distinct neighbor) and the bandwidth sigma such
// that the membership sum over the row reaches log2(k).
func smoothDistances(dists [][]float64, k float64) (sigmas, rhos []float64) {
	n := len(dists)
	sigmas = make([]float64, n)
	rhos = make([]float64, n)
	target := math.Log2(k)

	for i := 0; i < n; i++ {
		row := dists[i]

		// rho: first strictly positive distance (rows are distance-sorted,
		// the anchor itself sits at distance 0).
		for _, d := range row {
			if d > 0 {
				rhos[i] = d
				break
			}
		}

		// Binary search for sigma; the upper bound starts unbounded and the
		// probe doubles until the membership sum brackets the target.
		lo, hi, mid := 0.0, math.Inf(1), 1.0
		for iter := 0; iter < smoothIters; iter++ {
			sum := 0.0
			for _, d := range row {
				if shifted := d - rhos[i]; shifted > 0 {
					sum += math.Exp(-shifted / mid)
				} else {
					sum++
				}
			}

			if math.Abs(sum-target) < smoothTolerance {
				break
			}
			if sum > target {
				hi = mid
			} else {
				lo = mid
			}
			if math.IsInf(hi, 1) {
				mid *= 2
			} else {
				mid = (lo + hi) / 2
			}
		}
		sigmas[i] = mid

		// Floor sigma against degenerate all-equal rows.
		mean := 0.0
		for _, d := range row {
			mean += d
		}
		mean /= float64(len(row))
		if minSigma := minBandwidthScale * mean; sigmas[i] < minSigma {
			sigmas[i] = minSigma
		}
	}

	return sigmas, rhos
}
