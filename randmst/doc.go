// SPDX-License-Identifier: MIT

// Package randmst computes minimum spanning trees of random complete Euclidean
// graphs and averages their weight over independent trials.
//
// What & Why
//
//   - N points are drawn uniformly from the unit hypercube [0,1)^D. Every pair is
//     joined by an edge whose weight is the Euclidean distance, giving the complete
//     graph K_N with N·(N−1)/2 edges.
//   - The MST weight of such graphs grows predictably with N and D, which makes it a
//     good subject for empirical study: Run reports the mean over T trials.
//
// Algorithms Provided
//
//   - Kruskal(n, edges): sort edges by weight, scan them, accept an edge iff
//     dsu.Forest.Union merges two components; stop at N−1 accepted edges.
//     Time O(E log E), space O(E).
//   - Prim(points): dense O(N²) Prim that never materializes the edge list.
//     It serves as an independent cross-check and as a memory-light method for
//     large N.
//
// Error Conditions
//
//   - ErrInvalidVertexCount: negative vertex count.
//   - ErrInvalidEdge: an edge endpoint outside [0,n) or a self-loop.
//   - ErrDisconnected: the edge list ran out before N−1 edges were accepted.
//     For a generated complete graph this cannot happen; Run treats it as fatal.
//   - ErrInvalidConfig: Run received a non-positive trial count or dimension,
//     or a negative point count.
//   - ErrUnknownMethod: MSTOptions.Method names no algorithm.
//
// Degenerate inputs: N ≤ 1 yields an empty tree of weight 0 without error.
package randmst
