// SPDX-License-Identifier: MIT

// Package matrix is a dense integer matrix engine with naive and Strassen
// multiplication.
//
// What & Why
//
//   - Dense is a row-major int64 matrix stored in one flat slice (offset = i*cols + j).
//   - Mul is the textbook triple loop, O(n³), ordered i-k-j for cache locality.
//   - Strassen replaces the 8 block products of a 2×2 split with 7, giving
//     O(n^log2(7)) ≈ O(n^2.81). Below a crossover threshold the recursion overhead
//     outweighs the saving, so small blocks fall back to Mul.
//
// Strassen layout
//
//	A = | A11 A12 |   B = | B11 B12 |   h = ceil(n/2), s = floor(n/2)
//	    | A21 A22 |       | B21 B22 |   top/left blocks are h wide, bottom/right s wide
//
//	M1 = (A11+A22)(B11+B22)   C11 = M1 + M4 − M5 + M7
//	M2 = (A21+A22) B11        C12 = M3 + M5
//	M3 = A11 (B12−B22)        C21 = M2 + M4
//	M4 = A22 (B21−B11)        C22 = M1 − M2 + M3 + M6
//	M5 = (A11+A12) B22
//	M6 = (A21−A11)(B11+B12)
//	M7 = (A12−A22)(B21+B22)
//
// For odd n the s-sized blocks are read into h×h zero-filled buffers (implicit
// zero padding); only the in-bounds part of each product is written back.
// Every block read, sum, difference and write-back goes through one primitive,
// accumulate, which adds or subtracts a rectangle of one matrix into a rectangle
// of another. Quadrants are never copied out as standalone submatrices.
//
// Numeric policy
//
//   - Entries are int64 and arithmetic wraps on overflow (two's complement), as Go
//     defines for signed integers. Strassen's identities hold in any ring, so Mul
//     and Strassen return bit-identical results even when intermediate values wrap.
//
// I/O
//
//   - ReadPair loads two dim×dim matrices from a whitespace-separated integer stream.
//   - WriteMatrix / WriteDiagonal render results; Random and WritePair produce test inputs.
//
// Errors
//
//   - All public functions return sentinel errors from errors.go, wrapped with an
//     operation tag; match them with errors.Is.
package matrix
