// SPDX-License-Identifier: MIT
// Package fuse: general (continuous-target) intersection engine.
//
// Contract:
//   - g row-major sorted (rows non-decreasing, columns ascending within a
//     row — see coo.Sort), NNZ ≥ 1, len(target) == g.NRows.
//   - g is read-only throughout.
//   - The structural union is built in two row-parallel passes with a full
//     barrier between them: pass one counts union positions per row and a
//     prefix sum turns counts into row offsets; pass two populates columns.
//     Merged weights are explicitly initialized to zero, so a position
//     whose both sides sit at their floors carries an explicit 0 and is
//     dropped by the zero-compaction that follows — never an uninitialized
//     value.
//
// Complexity:
//   - Time: O(n·log n + n·k) target kNN, O(NNZ₁ + NNZ₂) union construction,
//     O(Σ_rows deg₁·degᵤ + deg₂·degᵤ) reconciliation (inner scans bounded
//     by local degree).
//   - Memory: O(NNZ₁ + NNZ₂) for offsets and the union graph.

package fuse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simfuse/coo"
	"github.com/katalvlaran/simfuse/fuzzy"
	"github.com/katalvlaran/simfuse/knn"
)

// General fuses a feature graph with continuous per-point target values.
//
// The target vector is turned into its own fuzzy similarity graph
// (TargetNeighbors-nearest-neighbor search in 1-D, then fuzzy-set
// construction), the two graphs' sparsity patterns are unioned, and each
// union edge's weight is reconciled by a power-mean blend under
// opts.TargetWeight: 0 keeps the feature weights, 1 keeps the target
// weights, 0.5 takes their geometric mean. Missing sides fall back to a
// floor of max(min(weights)/2, 1e-8) computed per graph.
//
// The result is zero-compacted and passed through ResetLocalConnectivity.
func General(g *coo.Matrix, target []float64, opts Options) (*coo.Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.NNZ() == 0 {
		return nil, ErrEmptyGraph
	}
	if len(target) != g.NRows {
		return nil, ErrTargetLength
	}
	if opts.TargetWeight < 0 || opts.TargetWeight > 1 {
		return nil, ErrBadMixWeight
	}
	if opts.TargetNeighbors < 2 {
		return nil, ErrBadNeighbors
	}
	if !rowMajorSorted(g) {
		return nil, ErrUnsortedGraph
	}
	opts.normalize()

	// Target kNN graph (1-D search over the raw target values).
	k := opts.TargetNeighbors
	if k > g.NRows {
		k = g.NRows
	}
	indices, dists, err := knn.Search(target, k)
	if err != nil {
		return nil, fmt.Errorf("fuse: general: target knn: %w", err)
	}
	if opts.Verbose {
		fmt.Fprintf(opts.Log, "target knn graph: n=%d k=%d\n", g.NRows, k)
		for i := range indices {
			fmt.Fprintf(opts.Log, "%d: indices=%v dists=%v\n", i, indices[i], dists[i])
		}
	}

	// Target fuzzy simplicial set, compacted.
	ygraph, err := fuzzy.Build(g.NRows, indices, dists, k)
	if err != nil {
		return nil, fmt.Errorf("fuse: general: target fuzzy set: %w", err)
	}
	ygraph, err = coo.RemoveZeros(ygraph)
	if err != nil {
		return nil, fmt.Errorf("fuse: general: %w", err)
	}
	if ygraph.NNZ() == 0 {
		return nil, ErrEmptyGraph
	}
	if opts.Verbose {
		fmt.Fprintf(opts.Log, "target fuzzy graph: nnz=%d\n%s", ygraph.NNZ(), ygraph)
	}

	// Row-offset views of both inputs.
	gInd, err := coo.SortedToRowIndex(g)
	if err != nil {
		return nil, fmt.Errorf("fuse: general: %w", err)
	}
	yInd, err := coo.SortedToRowIndex(ygraph)
	if err != nil {
		return nil, fmt.Errorf("fuse: general: %w", err)
	}

	// Weight floors: global minimum reductions over both graphs.
	gMin, err := coo.MinValue(g)
	if err != nil {
		return nil, fmt.Errorf("fuse: general: %w", err)
	}
	yMin, err := coo.MinValue(ygraph)
	if err != nil {
		return nil, fmt.Errorf("fuse: general: %w", err)
	}
	leftMin := math.Max(gMin/2, weightFloor)
	rightMin := math.Max(yMin/2, weightFloor)

	merged, mergedInd := structuralUnion(g, gInd, ygraph, yInd, opts.Workers, opts.BatchSize)
	reconcileWeights(merged, mergedInd, g, gInd, ygraph, yInd,
		leftMin, rightMin, opts.TargetWeight, opts.Workers, opts.BatchSize)

	out, err := coo.RemoveZeros(merged)
	if err != nil {
		return nil, fmt.Errorf("fuse: general: %w", err)
	}

	return ResetLocalConnectivity(out)
}

// structuralUnion builds the union of a's and b's non-zero positions in two
// row-parallel passes separated by a prefix-sum barrier. The returned graph
// is row-major sorted with all weights explicitly zero; the second return
// value is its row-offset index.
//
// Both inputs must be row-major sorted; aInd/bInd are their NRows+1 offset
// arrays.
func structuralUnion(a *coo.Matrix, aInd []int, b *coo.Matrix, bInd []int, workers, batch int) (*coo.Matrix, []int) {
	n := a.NRows

	// Pass one: union cardinality per row.
	counts := make([]int, n)
	parallelRanges(n, workers, batch, func(start, stop int) {
		for row := start; row < stop; row++ {
			counts[row] = unionCount(
				a.Cols[aInd[row]:aInd[row+1]],
				b.Cols[bInd[row]:bInd[row+1]])
		}
	})

	// Prefix sum: per-row counts become row offsets for the result.
	outInd := make([]int, n+1)
	for row := 0; row < n; row++ {
		outInd[row+1] = outInd[row] + counts[row]
	}
	nnz := outInd[n]

	// Pass two: populate columns; weights stay at their explicit zero
	// initialization until reconciliation overwrites them.
	out := &coo.Matrix{
		Rows:  make([]int, nnz),
		Cols:  make([]int, nnz),
		Vals:  make([]float64, nnz),
		NRows: n,
	}
	parallelRanges(n, workers, batch, func(start, stop int) {
		for row := start; row < stop; row++ {
			mergeColumns(
				a.Cols[aInd[row]:aInd[row+1]],
				b.Cols[bInd[row]:bInd[row+1]],
				out.Rows[outInd[row]:outInd[row+1]],
				out.Cols[outInd[row]:outInd[row+1]],
				row)
		}
	})

	return out, outInd
}

// unionCount returns |a ∪ b| for two ascending column lists.
func unionCount(a, b []int) int {
	count, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			i++
			j++
		}
		count++
	}
	count += len(a) - i
	count += len(b) - j

	return count
}

// mergeColumns writes the ascending union of two ascending column lists
// into outCols, filling outRows with row. len(outCols) must equal the
// union cardinality.
func mergeColumns(a, b []int, outRows, outCols []int, row int) {
	pos, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			outCols[pos] = a[i]
			i++
		case a[i] > b[j]:
			outCols[pos] = b[j]
			j++
		default:
			outCols[pos] = a[i]
			i++
			j++
		}
		outRows[pos] = row
		pos++
	}
	for ; i < len(a); i++ {
		outRows[pos] = row
		outCols[pos] = a[i]
		pos++
	}
	for ; j < len(b); j++ {
		outRows[pos] = row
		outCols[pos] = b[j]
		pos++
	}
}

// reconcileWeights fills the union graph's weights row-parallel. For each
// union position, the feature-side and target-side weights are looked up by
// small linear scans over the row (bounded by local degree); a side with no
// entry falls back to its floor. Positions where neither side exceeds its
// floor keep their explicit zero from the union pass.
func reconcileWeights(merged *coo.Matrix, mergedInd []int, left *coo.Matrix, leftInd []int,
	right *coo.Matrix, rightInd []int, leftMin, rightMin, mix float64, workers, batch int) {
	parallelRanges(merged.NRows, workers, batch, func(start, stop int) {
		for row := start; row < stop; row++ {
			lCols := left.Cols[leftInd[row]:leftInd[row+1]]
			lVals := left.Vals[leftInd[row]:leftInd[row+1]]
			rCols := right.Cols[rightInd[row]:rightInd[row+1]]
			rVals := right.Vals[rightInd[row]:rightInd[row+1]]

			for j := mergedInd[row]; j < mergedInd[row+1]; j++ {
				col := merged.Cols[j]

				leftVal := leftMin
				for t, c := range lCols {
					if c == col {
						leftVal = lVals[t]
					}
				}
				rightVal := rightMin
				for t, c := range rCols {
					if c == col {
						rightVal = rVals[t]
					}
				}

				if leftVal > leftMin || rightVal > rightMin {
					merged.Vals[j] = powerBlend(leftVal, rightVal, mix)
				}
			}
		}
	})
}

// powerBlend interpolates between left and right with a weighted geometric
// blend: mix → 0 is dominated by left, mix → 1 by right, and mix == 0.5 is
// the exact geometric mean. The branch at 0.5 keeps the exponent away from
// the unstable 0/0 form at the boundary; do not collapse the two formulas
// into one.
func powerBlend(left, right, mix float64) float64 {
	if mix < 0.5 {
		return left * math.Pow(right, mix/(1-mix))
	}

	return math.Pow(left, (1-mix)/mix) * right
}

// rowMajorSorted reports whether m's triples are sorted by row, then column.
func rowMajorSorted(m *coo.Matrix) bool {
	for i := 1; i < m.NNZ(); i++ {
		if m.Rows[i-1] > m.Rows[i] ||
			(m.Rows[i-1] == m.Rows[i] && m.Cols[i-1] >= m.Cols[i]) {
			return false
		}
	}

	return true
}
