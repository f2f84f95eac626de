// SPDX-License-Identifier: MIT

// Package lvbench collects two classic algorithmic kernels for empirical
// performance study.
//
//	dsu/      — disjoint-set forest with path compression and union by rank
//	geom/     — points in the unit hypercube, Euclidean distance, seeded sampling
//	randmst/  — MST of random complete Euclidean graphs (Kruskal, dense Prim) and trial averaging
//	matrix/   — int64 dense matrices: naive and Strassen multiplication, I/O, random inputs
//	cmd/      — randmst, strassen and genmatrix command-line tools
//
// Quick example:
//
//	rep, _ := randmst.Run(randmst.Config{Points: 1024, Trials: 5, Dimension: 2})
//	fmt.Println(rep.Average)
//
//	c, _ := matrix.Strassen(a, b, matrix.WithThreshold(64))
//	fmt.Println(c.Diagonal())
package lvbench
