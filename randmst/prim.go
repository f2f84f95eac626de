// SPDX-License-Identifier: MIT

package randmst

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbench/geom"
)

// Prim computes a minimum spanning tree of the complete Euclidean graph on
// points by growing a tree from vertex 0. Edge weights are computed on demand,
// so no N²/2 edge list is ever materialized.
//
// Steps:
//  1. N ≤ 1 → empty tree. Check that all points share one dimension.
//  2. best[v] holds the cheapest known connection of v to the tree, from[v] its tree endpoint.
//  3. Repeat N-1 times: pick the cheapest outside vertex, attach it, relax its neighbours.
//
// Edges are reported with U < V. Ties pick the lowest vertex index.
//
// Complexity: O(N²·D) time, O(N) memory.
func Prim(points []geom.Point) (Result, error) {
	n := len(points)
	if n <= 1 {
		return Result{Edges: []Edge{}}, nil
	}
	d := points[0].Dim()
	for i := 1; i < n; i++ {
		if points[i].Dim() != d {
			return Result{}, fmt.Errorf("Prim: point %d has dim %d, want %d: %w",
				i, points[i].Dim(), d, geom.ErrDimensionMismatch)
		}
	}

	// 2. Seed the frontier from vertex 0.
	inTree := make([]bool, n)
	best := make([]float64, n)
	from := make([]int, n)
	inTree[0] = true
	for v := 1; v < n; v++ {
		best[v] = geom.Distance(points[0], points[v])
		from[v] = 0
	}

	// 3. Grow.
	res := Result{Edges: make([]Edge, 0, n-1)}
	for step := 1; step < n; step++ {
		next, w := -1, math.Inf(1)
		for v := 1; v < n; v++ {
			if !inTree[v] && best[v] < w {
				next, w = v, best[v]
			}
		}
		if next < 0 {
			// Only reachable with NaN coordinates; a finite complete graph always connects.
			return Result{}, fmt.Errorf("Prim: accepted %d of %d edges: %w", len(res.Edges), n-1, ErrDisconnected)
		}

		inTree[next] = true
		u, v := from[next], next
		if u > v {
			u, v = v, u
		}
		res.Edges = append(res.Edges, Edge{U: u, V: v, Weight: w})
		res.Weight += w

		for v := 1; v < n; v++ {
			if inTree[v] {
				continue
			}
			if dv := geom.Distance(points[next], points[v]); dv < best[v] {
				best[v] = dv
				from[v] = next
			}
		}
	}

	return res, nil
}
