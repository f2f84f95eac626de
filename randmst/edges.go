// SPDX-License-Identifier: MIT

package randmst

import (
	"fmt"

	"github.com/katalvlaran/lvbench/geom"
)

// CompleteEdges returns every edge of the complete graph on points:
// each unordered pair {i,j} with i<j exactly once, in lexicographic (i,j) order,
// weighted by Euclidean distance. Coincident points give weight-0 edges.
//
// Errors: geom.ErrDimensionMismatch (wrapped) if the points disagree on dimension.
// Complexity: O(N²·D) time, O(N²) space.
func CompleteEdges(points []geom.Point) ([]Edge, error) {
	n := len(points)
	if n < 2 {
		return []Edge{}, nil
	}

	// All points must share the first point's dimension.
	d := points[0].Dim()
	for i := 1; i < n; i++ {
		if points[i].Dim() != d {
			return nil, fmt.Errorf("CompleteEdges: point %d has dim %d, want %d: %w",
				i, points[i].Dim(), d, geom.ErrDimensionMismatch)
		}
	}

	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{U: i, V: j, Weight: geom.Distance(points[i], points[j])})
		}
	}

	return edges, nil
}
