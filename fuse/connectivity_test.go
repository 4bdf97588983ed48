package fuse_test

import (
	"testing"

	"github.com/katalvlaran/simfuse/coo"
	"github.com/katalvlaran/simfuse/fuse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResetLocalConnectivity_RowBound verifies each non-empty row of the
// normalized intermediate reaches max weight 1 and that zero rows survive
// untouched, observed through the symmetrized output.
func TestResetLocalConnectivity_RowBound(t *testing.T) {
	g := buildGraph(t, 3,
		[]int{0, 0, 1},
		[]int{1, 2, 2},
		[]float64{0.5, 0.25, 0.4})

	out, err := fuse.ResetLocalConnectivity(g)
	require.NoError(t, err)

	weights := edgeMap(out)
	// Row 0 normalizes to {1, 0.5}; row 1 to {1}. No reverse edges exist in
	// the input, so fuzzy union with 0 keeps the normalized values.
	assert.InDelta(t, 1.0, weights[[2]int{0, 1}], 1e-12)
	assert.InDelta(t, 0.5, weights[[2]int{0, 2}], 1e-12)
	assert.InDelta(t, 1.0, weights[[2]int{1, 2}], 1e-12)
}

// TestResetLocalConnectivity_Symmetry asserts the symmetrize contract:
// after one application, out[i][j] == out[j][i] for every stored edge.
func TestResetLocalConnectivity_Symmetry(t *testing.T) {
	g := buildGraph(t, 4,
		[]int{0, 1, 1, 2, 3},
		[]int{1, 0, 2, 3, 0},
		[]float64{0.9, 0.3, 0.7, 0.2, 0.5})

	out, err := fuse.ResetLocalConnectivity(g)
	require.NoError(t, err)

	weights := edgeMap(out)
	for e, w := range weights {
		back, ok := weights[[2]int{e[1], e[0]}]
		require.True(t, ok, "edge (%d,%d) missing its transpose", e[0], e[1])
		assert.InDelta(t, w, back, 1e-12, "fused graph must be symmetric")
	}
}

// TestResetLocalConnectivity_SymmetricInput verifies a second application
// preserves symmetry: the combine rule is not literally idempotent
// (2w − w² ≠ w), so only the symmetry property is asserted, not equality
// with the first result.
func TestResetLocalConnectivity_SymmetricInput(t *testing.T) {
	g := buildGraph(t, 3,
		[]int{0, 1, 1, 2},
		[]int{1, 0, 2, 1},
		[]float64{0.6, 0.6, 0.8, 0.8})

	once, err := fuse.ResetLocalConnectivity(g)
	require.NoError(t, err)
	twice, err := fuse.ResetLocalConnectivity(once)
	require.NoError(t, err)

	onceW, twiceW := edgeMap(once), edgeMap(twice)
	assert.Equal(t, len(onceW), len(twiceW), "re-running must not change the edge set")
	for e, w := range twiceW {
		assert.InDelta(t, w, twiceW[[2]int{e[1], e[0]}], 1e-12, "still symmetric")
	}
	for e := range onceW {
		assert.Contains(t, twiceW, e)
	}
}

// TestResetLocalConnectivity_NilGraph verifies the nil guard.
func TestResetLocalConnectivity_NilGraph(t *testing.T) {
	_, err := fuse.ResetLocalConnectivity(nil)
	assert.ErrorIs(t, err, fuse.ErrNilGraph)
}

// TestResetLocalConnectivity_Unsorted verifies the row-sorted precondition
// propagates as coo.ErrUnsorted.
func TestResetLocalConnectivity_Unsorted(t *testing.T) {
	g := &coo.Matrix{NRows: 3, Rows: []int{2, 0}, Cols: []int{0, 1}, Vals: []float64{1, 1}}

	_, err := fuse.ResetLocalConnectivity(g)
	assert.ErrorIs(t, err, coo.ErrUnsorted)
}
