// SPDX-License-Identifier: MIT
// Package coo: core Matrix type and sentinel error set.
// This file defines ONLY the Matrix representation, its constructors, and
// the package-level sentinel errors used across the coo package. All
// operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions.

package coo

import (
	"errors"
	"fmt"
	"strings"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "coo: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil *Matrix was passed to an operation.
	ErrNilMatrix = errors.New("coo: matrix is nil")

	// ErrUnsorted indicates that an operation requiring row-sorted input
	// observed a decreasing row sequence.
	ErrUnsorted = errors.New("coo: matrix is not row-sorted")

	// ErrEmptyMatrix indicates a reduction over a matrix with no stored
	// entries (NNZ == 0), where at least one weight is required.
	ErrEmptyMatrix = errors.New("coo: matrix has no stored entries")

	// ErrOutOfRange indicates a row or column index outside [0, NRows).
	ErrOutOfRange = errors.New("coo: index out of range")

	// ErrBadWeight indicates a NaN, ±Inf, or negative stored weight where
	// finite non-negative similarity scores are required.
	ErrBadWeight = errors.New("coo: invalid edge weight")

	// ErrLengthMismatch indicates the Rows/Cols/Vals slices disagree in length.
	ErrLengthMismatch = errors.New("coo: rows/cols/vals length mismatch")

	// ErrBadShape indicates a non-positive row count at construction.
	ErrBadShape = errors.New("coo: row count must be > 0")
)

// Matrix is a sparse graph in coordinate-list form: parallel slices of
// (row, col, weight) triples plus the square dimension NRows.
//
// Invariants maintained by the constructors and operations in this package:
//   - len(Rows) == len(Cols) == len(Vals) == NNZ()
//   - 0 ≤ Rows[i], Cols[i] < NRows for every stored triple
//   - triples produced by package operations are row-major sorted
//
// A Matrix populated by hand must satisfy the same invariants; Validate
// checks the cheap ones.
type Matrix struct {
	Rows  []int
	Cols  []int
	Vals  []float64
	NRows int
}

// New returns an empty Matrix over n rows.
// Returns ErrBadShape if n < 1.
func New(n int) (*Matrix, error) {
	return NewWithCapacity(n, 0)
}

// NewWithCapacity returns an empty Matrix over n rows with storage
// preallocated for nnz triples. Capacity is a hint only; Append grows
// storage as needed. Returns ErrBadShape if n < 1.
func NewWithCapacity(n, nnz int) (*Matrix, error) {
	if n < 1 {
		return nil, ErrBadShape
	}
	if nnz < 0 {
		nnz = 0
	}

	return &Matrix{
		Rows:  make([]int, 0, nnz),
		Cols:  make([]int, 0, nnz),
		Vals:  make([]float64, 0, nnz),
		NRows: n,
	}, nil
}

// NNZ reports the number of stored triples.
func (m *Matrix) NNZ() int {
	if m == nil {
		return 0
	}

	return len(m.Vals)
}

// Append adds one (row, col, weight) triple. It does not validate indices;
// call Validate once after bulk population.
func (m *Matrix) Append(row, col int, val float64) {
	m.Rows = append(m.Rows, row)
	m.Cols = append(m.Cols, col)
	m.Vals = append(m.Vals, val)
}

// Clone returns a deep copy of m: later mutation of either copy never
// affects the other.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}

	out := &Matrix{
		Rows:  make([]int, len(m.Rows)),
		Cols:  make([]int, len(m.Cols)),
		Vals:  make([]float64, len(m.Vals)),
		NRows: m.NRows,
	}
	copy(out.Rows, m.Rows)
	copy(out.Cols, m.Cols)
	copy(out.Vals, m.Vals)

	return out
}

// String renders the triples one per line as "(row, col) weight", the format
// used by verbose fusion dumps.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}

	var sb strings.Builder
	for i := range m.Vals {
		fmt.Fprintf(&sb, "(%d, %d) %g\n", m.Rows[i], m.Cols[i], m.Vals[i])
	}

	return sb.String()
}
