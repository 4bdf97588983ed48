// SPDX-License-Identifier: MIT
// Package fuse: options, documented defaults, and sentinel error set.
// This file defines ONLY the Options surface and the package-level
// sentinels. All entry points MUST return these sentinels (possibly
// wrapped with fmt.Errorf("...: %w")) and tests MUST check them via
// errors.Is. No entry point panics on user-triggered error conditions.

package fuse

import (
	"errors"
	"io"
	"os"
	"runtime"
)

var (
	// ErrNilGraph indicates a nil feature graph.
	ErrNilGraph = errors.New("fuse: graph is nil")

	// ErrEmptyGraph indicates a graph with no stored entries; the weight
	// floors of the general path require at least one weight, so fusion
	// fails explicitly instead of returning an empty result.
	ErrEmptyGraph = errors.New("fuse: graph has no stored entries")

	// ErrTargetLength indicates a target vector whose length differs from
	// the graph's row count.
	ErrTargetLength = errors.New("fuse: target length does not match graph rows")

	// ErrBadMixWeight indicates TargetWeight outside [0, 1].
	ErrBadMixWeight = errors.New("fuse: target weight must be in [0,1]")

	// ErrBadNeighbors indicates TargetNeighbors < 2 on the general path.
	ErrBadNeighbors = errors.New("fuse: target neighbor count must be at least 2")

	// ErrUnsortedGraph indicates a feature graph that is not row-major
	// sorted where sortedness is a precondition (see coo.Sort).
	ErrUnsortedGraph = errors.New("fuse: feature graph must be row-major sorted")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTargetWeight balances feature and target structure equally.
	DefaultTargetWeight = 0.5

	// DefaultTargetNeighbors is the neighbor count for the continuous-target
	// graph.
	DefaultTargetNeighbors = 15

	// DefaultUnknownDist is the exponent penalizing edges that touch an
	// unlabeled point on the categorical path.
	DefaultUnknownDist = 1.0

	// DefaultUnknown is the categorical sentinel marking an unlabeled point.
	DefaultUnknown = -1.0

	// DefaultBatchSize is the number of rows or edges per parallel unit of
	// work. Batch size affects only throughput, never results.
	DefaultBatchSize = 256

	// farDistCap stands in for infinity when TargetWeight ≥ 1: different-
	// label edges are forced to effectively zero weight.
	farDistCap = 1.0e12

	// farDistScale converts TargetWeight into FarDist: 2.5 / (1 − w).
	farDistScale = 2.5

	// weightFloor bounds the left/right reconciliation floors from below.
	weightFloor = 1e-8
)

// Options configures both fusion paths.
//
// Fields:
//   - TargetWeight    — mix weight in [0,1]. On the categorical path it
//     derives FarDist (2.5/(1−w), capped at 1e12 for w ≥ 1); on the general
//     path it interpolates between feature weights (0) and target weights (1).
//   - TargetNeighbors — neighbor count for the continuous-target graph.
//   - UnknownDist     — categorical penalty exponent for unlabeled points.
//   - FarDist         — categorical penalty exponent for differing labels;
//     0 means "derive from TargetWeight".
//   - Unknown         — label value marking an unlabeled point.
//   - Workers         — parallel unit count; ≤ 0 means GOMAXPROCS.
//   - BatchSize       — rows/edges per unit of work; ≤ 0 means DefaultBatchSize.
//   - Verbose         — emit stage diagnostics to Log.
//   - Log             — diagnostics sink; nil means os.Stdout.
//
// Example:
//
//	opts := fuse.DefaultOptions()
//	opts.TargetWeight = 0.8 // trust the labels more than the features
//	fused, err := fuse.Categorical(g, labels, opts)
type Options struct {
	TargetWeight    float64
	TargetNeighbors int
	UnknownDist     float64
	FarDist         float64
	Unknown         float64
	Workers         int
	BatchSize       int
	Verbose         bool
	Log             io.Writer
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		TargetWeight:    DefaultTargetWeight,
		TargetNeighbors: DefaultTargetNeighbors,
		UnknownDist:     DefaultUnknownDist,
		Unknown:         DefaultUnknown,
		BatchSize:       DefaultBatchSize,
	}
}

// normalize resolves the runtime-dependent zero values. It never touches
// semantic fields; those are validated, not defaulted, by the entry points.
func (o *Options) normalize() {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.Log == nil {
		o.Log = os.Stdout
	}
}

// farDist resolves the effective different-label penalty exponent.
func (o Options) farDist() float64 {
	if o.FarDist > 0 {
		return o.FarDist
	}
	if o.TargetWeight < 1 {
		return farDistScale / (1 - o.TargetWeight)
	}

	return farDistCap
}
