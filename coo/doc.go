// Package coo provides coordinate-list (COO) sparse graph storage and the
// handful of primitives the fusion engines are built on.
//
// The coo package provides:
//
//   - Matrix, an ordered-by-row coordinate list of (row, col, weight)
//     triples with O(1) append and explicit capacity control.
//   - SortedToRowIndex, a converter from a row-sorted coordinate list to a
//     row-offset (CSR-style) index of length NRows+1.
//   - RowNormalizeMax, in-place per-row L∞ normalization.
//   - Symmetrize, which merges each unordered edge pair through a
//     caller-supplied combine rule exactly once.
//   - RemoveZeros, which compacts away explicit-zero entries.
//   - MinValue, a minimum reduction over all stored weights.
//
// Weights are non-negative similarity scores; a stored weight of exactly 0
// denotes "no edge" and is eligible for removal by RemoveZeros. All
// operations that produce a Matrix emit triples in row-major order (rows
// non-decreasing, columns strictly increasing within a row), the ordering
// downstream consumers rely on.
//
// Matrices are best treated as single-writer values: one stage populates a
// Matrix, later stages only read it.
package coo
