// Package knn provides exact k-nearest-neighbor search over a 1-D scalar
// vector, the neighbor-search step behind continuous-target graph fusion.
//
// The query set equals the data set: every point's neighbor list includes
// the point itself at distance 0, matching the convention fuzzy-set
// construction expects (the self edge anchors local connectivity).
//
// In one dimension the k nearest neighbors of a point form a contiguous
// window of the value-sorted order, so Search runs in O(n·log n + n·k)
// rather than the O(n²) of a general metric search. Ties are broken toward
// the lower point index, making results fully deterministic.
package knn
