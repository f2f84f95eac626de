// SPDX-License-Identifier: MIT

package randmst

import (
	"errors"
	"fmt"
)

// ErrInvalidVertexCount indicates a negative vertex count.
var ErrInvalidVertexCount = errors.New("randmst: vertex count must be >= 0")

// ErrInvalidEdge indicates an edge with an endpoint outside [0,n) or with U == V.
var ErrInvalidEdge = errors.New("randmst: invalid edge")

// ErrDisconnected indicates the edge list was exhausted before n-1 edges were accepted.
var ErrDisconnected = errors.New("randmst: graph is disconnected")

// ErrInvalidConfig indicates a trial configuration that cannot run.
var ErrInvalidConfig = errors.New("randmst: invalid configuration")

// ErrUnknownMethod indicates MSTOptions.Method names no algorithm.
var ErrUnknownMethod = errors.New("randmst: unknown MST method")

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects dense Prim over the implicit complete graph.
const MethodPrim = "prim"

// Edge is an undirected weighted edge between vertex indices U and V.
type Edge struct {
	U, V   int
	Weight float64
}

// String renders the edge as "u-v(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%g)", e.U, e.V, e.Weight)
}

// Result is an accepted MST: its edges in acceptance order and their total weight.
type Result struct {
	Edges  []Edge
	Weight float64
}

// MSTOptions configures which MST algorithm Compute runs.
// Use DefaultOptions() for Kruskal.
type MSTOptions struct {
	// Method is MethodKruskal or MethodPrim.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions with Method = MethodKruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}
