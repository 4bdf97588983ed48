// Package simfuse fuses a feature-space fuzzy similarity graph with a
// target-derived similarity graph, producing the combined graph a
// manifold-learning embedder consumes to exploit supervision during
// dimensionality reduction.
//
// 🚀 What is simfuse?
//
//	A deterministic, data-parallel library for supervised graph fusion:
//		• Sparse primitives: coordinate-list graphs, row-offset views,
//		  L∞ row normalization, fuzzy-union symmetrization
//		• Categorical fusion: exponential penalties for edges that cross
//		  label boundaries or touch unlabeled points
//		• General fusion: structural union of two sparsity patterns with
//		  power-mean weight reconciliation under a tunable mix weight
//		• Target graphs: 1-D nearest-neighbor search and fuzzy-simplicial-set
//		  construction over continuous target values
//
// ✨ Why choose simfuse?
//
//   - Deterministic – results are independent of worker count and batch size
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no accelerator runtime required
//   - Composable – every stage is exported and usable on its own
//
// Under the hood, everything is organized under four subpackages:
//
//	coo/   — coordinate-list sparse graphs + row-offset (CSR-style) views
//	knn/   — exact 1-D k-nearest-neighbor search over a scalar target
//	fuzzy/ — fuzzy similarity graphs from nearest-neighbor lists
//	fuse/  — the fusion engines: categorical and general intersection
//
// Quick ASCII sketch of the general path:
//
//	feature graph ──┐
//	                ├─ structural union ─ power-mean blend ─ reset ─ fused
//	target values ─ kNN ─ fuzzy graph ──┘
//
// Dive into the fuse package documentation for the full pipeline contracts.
//
//	go get github.com/katalvlaran/simfuse/fuse
package simfuse
