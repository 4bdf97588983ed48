// Package fuse combines a feature-space fuzzy similarity graph with
// supervision — categorical labels or continuous target values — into the
// single fused graph a manifold-learning embedder consumes.
//
// Two fusion paths are exposed:
//
//   - Categorical: every feature edge is rescaled by exp(−FarDist) when its
//     endpoints carry different labels and by exp(−UnknownDist) when either
//     endpoint is unlabeled; same-label edges pass through unchanged.
//   - General: a second fuzzy graph is built from the continuous target
//     values (1-D kNN + fuzzy-set construction), the two sparsity patterns
//     are structurally unioned, and conflicting weights are reconciled by a
//     power-mean blend under TargetWeight.
//
// Both paths finish with the same smoothing step, ResetLocalConnectivity:
// L∞ row normalization followed by fuzzy-union symmetrization.
//
// Pipelines are single-pass with no internal retries: an error at any stage
// aborts the whole call and no partial graph is returned. Row and edge
// kernels run data-parallel over fixed-size batches; results are identical
// for every Workers and BatchSize setting.
package fuse
