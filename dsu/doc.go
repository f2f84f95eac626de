// SPDX-License-Identifier: MIT

// Package dsu provides a disjoint-set forest (union-find) over dense integer handles.
//
// What & Why
//
//   - A Forest tracks a partition of elements 0..n-1 into disjoint sets and answers
//     "are x and y in the same set?" in effectively constant amortized time.
//   - It is the cycle check behind Kruskal's algorithm: an edge is accepted only
//     when Union reports that it merged two previously separate sets.
//
// Representation
//
//   - The forest is an arena: parent[i] and rank[i] are flat slices indexed by handle.
//     A handle is a root iff parent[i] == i. No pointers, no per-element allocation.
//
// Optimizations
//
//   - Path compression: Find rewires every node visited on the walk directly to the root.
//   - Union by rank: the lower-rank root is attached under the higher-rank root; on ties
//     the surviving root's rank grows by one. Rank is an upper bound on height, not an
//     exact height once compression has run.
//
// With both, a sequence of m operations on n elements costs O(m·α(n)).
//
// Errors
//
//   - Handles outside [0, Len()) are programmer errors and panic, mirroring slice indexing.
package dsu
