package coo_test

import (
	"fmt"

	"github.com/katalvlaran/simfuse/coo"
)

// ExampleSymmetrize demonstrates fuzzy-union symmetrization: each unordered
// edge pair is merged once with a + b − a·b and both orientations carry the
// merged weight.
func ExampleSymmetrize() {
	m, _ := coo.NewWithCapacity(3, 3)
	m.Append(0, 1, 0.5)
	m.Append(1, 0, 0.5)
	m.Append(1, 2, 0.8)

	out, _ := coo.Symmetrize(m, func(a, b float64) float64 { return a + b - a*b })

	fmt.Print(out)
	// Output:
	// (0, 1) 0.75
	// (1, 0) 0.75
	// (1, 2) 0.8
	// (2, 1) 0.8
}

// ExampleRowNormalizeMax demonstrates L∞ row normalization through the
// row-offset view of a row-sorted coordinate list.
func ExampleRowNormalizeMax() {
	m, _ := coo.NewWithCapacity(2, 3)
	m.Append(0, 0, 0.2)
	m.Append(0, 1, 0.8)
	m.Append(1, 0, 0.4)

	offsets, _ := coo.SortedToRowIndex(m)
	coo.RowNormalizeMax(offsets, m.Vals)

	fmt.Print(m)
	// Output:
	// (0, 0) 0.25
	// (0, 1) 1
	// (1, 0) 1
}
