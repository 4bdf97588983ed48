// SPDX-License-Identifier: MIT
// Package coo: operations over coordinate-list sparse graphs.
//
// Contract (shared by every operation in this file):
//   - Inputs are read-only unless the operation is documented as in-place.
//   - Every produced Matrix is row-major sorted (rows non-decreasing,
//     columns strictly increasing within a row).
//   - Only sentinel errors from types.go are returned; no panics on
//     user-triggered conditions.
//
// Determinism:
//   - All iteration orders are fixed by the input ordering; none of these
//     operations depend on map iteration order for their output.

package coo

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// SortedToRowIndex converts a row-sorted Matrix into a row-offset index of
// length NRows+1: entry i is the position of the first triple of row i, and
// entry NRows equals NNZ. Rows with no triples collapse to zero-length
// spans, so offsets are monotonically non-decreasing.
//
// Returns ErrNilMatrix for a nil input and ErrUnsorted when the row
// sequence decreases anywhere.
//
// Complexity: O(NNZ + NRows) time, O(NRows) memory.
func SortedToRowIndex(m *Matrix) ([]int, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	offsets := make([]int, m.NRows+1)
	prev := 0
	for i, r := range m.Rows {
		if r < prev {
			return nil, ErrUnsorted
		}
		if r < 0 || r >= m.NRows {
			return nil, ErrOutOfRange
		}
		// Open every row between the previous triple's row and this one.
		for row := prev; row < r; row++ {
			offsets[row+1] = i
		}
		prev = r
	}
	for row := prev; row < m.NRows; row++ {
		offsets[row+1] = m.NNZ()
	}

	return offsets, nil
}

// RowNormalizeMax divides each row's weights by that row's maximum weight
// (L∞ row normalization), in place. Rows whose maximum weight is 0 are left
// untouched, as are empty rows.
//
// rowInd must be the NRows+1 offsets produced by SortedToRowIndex over the
// same vals layout; vals is the Matrix's Vals slice (or any slice with the
// same row structure).
//
// Complexity: O(NNZ) time, O(1) memory.
func RowNormalizeMax(rowInd []int, vals []float64) {
	for row := 0; row+1 < len(rowInd); row++ {
		start, stop := rowInd[row], rowInd[row+1]
		if start == stop {
			continue
		}
		rowVals := vals[start:stop]
		mx := floats.Max(rowVals)
		if mx > 0 {
			floats.Scale(1/mx, rowVals)
		}
	}
}

// Symmetrize merges each unordered edge pair {i,j} of m through combine
// exactly once and emits both orientations of the merged weight, so the
// result satisfies out[i][j] == out[j][i] for every stored pair.
//
// combine receives (w_ij, w_ji); a missing orientation contributes 0.
// Pairs whose combined weight is exactly 0 are not emitted. The output is
// row-major sorted regardless of input ordering.
//
// Complexity: O(NNZ log NNZ) time, O(NNZ) memory.
func Symmetrize(m *Matrix, combine func(a, b float64) float64) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	type key struct{ r, c int }
	lookup := make(map[key]float64, m.NNZ())
	for i := range m.Vals {
		lookup[key{m.Rows[i], m.Cols[i]}] += m.Vals[i]
	}

	// Merge each unordered pair once, keyed by its canonical (min, max) form.
	merged := make(map[key]float64, m.NNZ())
	for i := range m.Vals {
		r, c := m.Rows[i], m.Cols[i]
		canon := key{r, c}
		if c < r {
			canon = key{c, r}
		}
		if _, done := merged[canon]; done {
			continue
		}
		merged[canon] = combine(lookup[key{canon.r, canon.c}], lookup[key{canon.c, canon.r}])
	}

	out, err := NewWithCapacity(m.NRows, 2*len(merged))
	if err != nil {
		return nil, err
	}
	for canon, w := range merged {
		if w == 0 {
			continue
		}
		out.Append(canon.r, canon.c, w)
		if canon.r != canon.c {
			out.Append(canon.c, canon.r, w)
		}
	}
	Sort(out)

	return out, nil
}

// RemoveZeros returns a compacted copy of m with every triple whose weight
// is exactly 0 dropped. Input ordering is preserved.
//
// Complexity: O(NNZ) time, O(NNZ) memory.
func RemoveZeros(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	keep := 0
	for _, v := range m.Vals {
		if v != 0 {
			keep++
		}
	}

	out, err := NewWithCapacity(m.NRows, keep)
	if err != nil {
		return nil, err
	}
	for i, v := range m.Vals {
		if v != 0 {
			out.Append(m.Rows[i], m.Cols[i], v)
		}
	}

	return out, nil
}

// MinValue returns the minimum stored weight of m.
// Returns ErrEmptyMatrix when m has no stored entries: a minimum over an
// empty set is undefined and callers that need a weight floor must fail
// explicitly rather than fabricate one.
func MinValue(m *Matrix) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if m.NNZ() == 0 {
		return 0, ErrEmptyMatrix
	}

	return floats.Min(m.Vals), nil
}

// Sort orders m's triples row-major (rows ascending, columns ascending
// within a row), in place. The sort is deterministic for any input.
func Sort(m *Matrix) {
	if m == nil {
		return
	}
	sort.Sort(byRowCol{m})
}

// Validate checks the cheap structural invariants of a hand-populated
// Matrix: slice lengths agree, indices are in [0, NRows), and weights are
// finite and non-negative. It does not check sortedness; operations that
// need it check it themselves.
func Validate(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.NRows < 1 {
		return ErrBadShape
	}
	if len(m.Rows) != len(m.Cols) || len(m.Cols) != len(m.Vals) {
		return ErrLengthMismatch
	}
	for i, v := range m.Vals {
		if m.Rows[i] < 0 || m.Rows[i] >= m.NRows || m.Cols[i] < 0 || m.Cols[i] >= m.NRows {
			return ErrOutOfRange
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrBadWeight
		}
	}

	return nil
}

// byRowCol adapts Matrix to sort.Interface with row-major ordering.
type byRowCol struct{ m *Matrix }

func (s byRowCol) Len() int { return len(s.m.Vals) }

func (s byRowCol) Less(i, j int) bool {
	if s.m.Rows[i] != s.m.Rows[j] {
		return s.m.Rows[i] < s.m.Rows[j]
	}

	return s.m.Cols[i] < s.m.Cols[j]
}

func (s byRowCol) Swap(i, j int) {
	s.m.Rows[i], s.m.Rows[j] = s.m.Rows[j], s.m.Rows[i]
	s.m.Cols[i], s.m.Cols[j] = s.m.Cols[j], s.m.Cols[i]
	s.m.Vals[i], s.m.Vals[j] = s.m.Vals[j], s.m.Vals[i]
}
