// Package fuzzy builds a fuzzy similarity graph from k-nearest-neighbor
// lists: each directed neighbor edge receives a membership strength in
// (0, 1], and the directed graph is then symmetrized with the fuzzy-union
// rule a + b − a·b.
//
// Membership strengths follow the smoothed-distance construction used by
// manifold-learning pipelines: per point, rho is the distance to the
// nearest distinct neighbor (local connectivity of one) and sigma is found
// by binary search so that the sum of memberships hits log2(k). An edge at
// distance d then carries exp(−(d − rho)/sigma), clamped to 1 for d ≤ rho.
//
// The output is a coo.Matrix in row-major order with symmetric weights,
// ready for structural-union fusion against a feature graph.
package fuzzy
