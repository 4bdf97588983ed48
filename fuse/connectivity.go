// SPDX-License-Identifier: MIT
// Package fuse: local-connectivity reset.

package fuse

import (
	"fmt"

	"github.com/katalvlaran/simfuse/coo"
)

// fuzzyUnion is the probabilistic-OR combine rule a + b − a·b used to merge
// the two orientations of an edge during symmetrization.
func fuzzyUnion(a, b float64) float64 { return a + b - a*b }

// ResetLocalConnectivity normalizes each row of g to unit maximum weight
// (L∞ row normalization; all-zero rows stay zero) and symmetrizes the
// result with the fuzzy-union rule, merging edge (i,j) and (j,i) into one
// symmetric weight. It is the final smoothing step of both fusion paths.
//
// g must be row-sorted; it is not modified. Returns a new graph in
// row-major order.
func ResetLocalConnectivity(g *coo.Matrix) (*coo.Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	norm := g.Clone()
	rowInd, err := coo.SortedToRowIndex(norm)
	if err != nil {
		return nil, fmt.Errorf("fuse: reset local connectivity: %w", err)
	}
	coo.RowNormalizeMax(rowInd, norm.Vals)

	out, err := coo.Symmetrize(norm, fuzzyUnion)
	if err != nil {
		return nil, fmt.Errorf("fuse: reset local connectivity: %w", err)
	}

	return out, nil
}
