// SPDX-License-Identifier: MIT

package randmst

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvbench/dsu"
	"github.com/katalvlaran/lvbench/geom"
)

// Kruskal computes a minimum spanning tree of the graph with vertices 0..n-1
// and the given edges. The caller's slice is not reordered.
//
// Error Conditions:
//   - ErrInvalidVertexCount : n < 0.
//   - ErrInvalidEdge        : an endpoint outside [0,n) or a self-loop.
//   - ErrDisconnected       : the edges could not connect all n vertices.
//
// Steps:
//  1. Validate n and every edge; n ≤ 1 → empty tree, weight 0.
//  2. Copy the edges, then stable-sort the copy by ascending weight.
//  3. One dsu element per vertex.
//  4. Scan: accept an edge iff Union merges two sets; stop at n-1 accepted.
//  5. Fewer than n-1 accepted → ErrDisconnected.
//
// Complexity: O(E log E + E·α(V)) time, O(E + V) memory.
func Kruskal(n int, edges []Edge) (Result, error) {
	// 1. Validate; degenerate sizes.
	if n < 0 {
		return Result{}, fmt.Errorf("Kruskal(n=%d): %w", n, ErrInvalidVertexCount)
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n || e.U == e.V {
			return Result{}, fmt.Errorf("Kruskal: edge %d %v: %w", i, e, ErrInvalidEdge)
		}
	}
	if n <= 1 {
		return Result{Edges: []Edge{}}, nil
	}

	// 2. Sort a copy.
	sorted := slices.Clone(edges)
	slices.SortStableFunc(sorted, func(a, b Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	// 3. Singleton sets.
	forest := dsu.New(n)

	// 4. Greedy scan.
	res := Result{Edges: make([]Edge, 0, n-1)}
	for _, e := range sorted {
		if !forest.Union(e.U, e.V) {
			continue // both endpoints already connected: would close a cycle
		}
		res.Edges = append(res.Edges, e)
		res.Weight += e.Weight
		if len(res.Edges) == n-1 {
			break
		}
	}

	// 5. Spanning check.
	if len(res.Edges) < n-1 {
		return Result{}, fmt.Errorf("Kruskal: accepted %d of %d edges: %w", len(res.Edges), n-1, ErrDisconnected)
	}

	return res, nil
}

// Compute builds the MST of the complete Euclidean graph on points with the
// method selected in opts.
//
//   - MethodKruskal: CompleteEdges then Kruskal.
//   - MethodPrim:    Prim.
//   - otherwise:     ErrUnknownMethod.
func Compute(points []geom.Point, opts MSTOptions) (Result, error) {
	switch opts.Method {
	case MethodKruskal:
		edges, err := CompleteEdges(points)
		if err != nil {
			return Result{}, err
		}
		return Kruskal(len(points), edges)
	case MethodPrim:
		return Prim(points)
	default:
		return Result{}, fmt.Errorf("Compute(%q): %w", opts.Method, ErrUnknownMethod)
	}
}
