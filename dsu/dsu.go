// SPDX-License-Identifier: MIT

package dsu

import "fmt"

// Forest is a disjoint-set forest stored as an arena of parent/rank slices.
// The zero value is an empty forest ready for MakeSet.
// Forest is not safe for concurrent use.
type Forest struct {
	parent []int // parent[i] == i marks a root
	rank   []int // upper bound on subtree height, only meaningful at roots
	sets   int   // number of disjoint sets currently in the forest
}

// New returns a forest of n singleton sets with handles 0..n-1.
// A negative n yields an empty forest.
//
// Complexity: O(n) time and memory.
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i // every element starts as its own root
	}

	return f
}

// MakeSet appends a new singleton set (parent = itself, rank 0) and returns its handle.
//
// Complexity: O(1) amortized.
func (f *Forest) MakeSet() int {
	h := len(f.parent)
	f.parent = append(f.parent, h)
	f.rank = append(f.rank, 0)
	f.sets++

	return h
}

// Len returns the number of elements in the forest.
func (f *Forest) Len() int { return len(f.parent) }

// Sets returns the number of disjoint sets.
func (f *Forest) Sets() int { return f.sets }

// Rank returns the current rank of x. Exposed for inspection; Union is the only
// operation that changes it.
func (f *Forest) Rank(x int) int {
	f.mustContain(x)

	return f.rank[x]
}

// Find returns the root of the set containing x.
// Every node on the path from x to the root is rewired to point at the root,
// so a second Find on any of them terminates after one step.
//
// Steps:
//  1. Walk parent links from x until parent[r] == r.
//  2. Walk again from x, pointing each visited node at r.
//
// Complexity: O(α(n)) amortized; iterative, so no recursion depth concerns.
func (f *Forest) Find(x int) int {
	f.mustContain(x)

	// 1. Locate the root.
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}

	// 2. Full path compression.
	for f.parent[x] != root {
		next := f.parent[x]
		f.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y.
// It returns false, leaving the forest untouched apart from path compression,
// when x and y already share a root. Otherwise it links the roots by rank and
// returns true.
//
// Linking policy:
//   - rank[rx] < rank[ry]: rx goes under ry.
//   - rank[rx] > rank[ry]: ry goes under rx.
//   - equal: ry goes under rx and rank[rx]++.
func (f *Forest) Union(x, y int) bool {
	rx, ry := f.Find(x), f.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case f.rank[rx] < f.rank[ry]:
		f.parent[rx] = ry
	case f.rank[rx] > f.rank[ry]:
		f.parent[ry] = rx
	default:
		f.parent[ry] = rx
		f.rank[rx]++
	}
	f.sets--

	return true
}

// Connected reports whether x and y belong to the same set.
func (f *Forest) Connected(x, y int) bool {
	return f.Find(x) == f.Find(y)
}

func (f *Forest) mustContain(x int) {
	if x < 0 || x >= len(f.parent) {
		panic(fmt.Sprintf("dsu: handle %d out of range [0,%d)", x, len(f.parent)))
	}
}
