// Package fuse: re-export private kernels for white-box tests.
// Tests exercise the rescale, union, and blend kernels directly; the public
// pipelines wrap them behind normalization steps that would mask the
// per-edge arithmetic under test.

package fuse

var (
	ApplyCategoricalPenalty = applyCategoricalPenalty
	StructuralUnion         = structuralUnion
	PowerBlend              = powerBlend
	ParallelRanges          = parallelRanges
)
