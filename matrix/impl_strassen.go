// SPDX-License-Identifier: MIT

package matrix

// blockTerm names one quadrant (row block, column block) and its sign in a
// Strassen sum. Block 0 is the ceil(n/2)-sized top/left half, block 1 the
// floor(n/2)-sized bottom/right half.
type blockTerm struct {
	row, col int
	subtract bool
}

// strassenProduct describes one of M1..M7: which A and B quadrants are summed
// into the two operands, and which C quadrants receive the product.
type strassenProduct struct {
	a, b, c []blockTerm
}

var (
	q11 = blockTerm{0, 0, false}
	q12 = blockTerm{0, 1, false}
	q21 = blockTerm{1, 0, false}
	q22 = blockTerm{1, 1, false}
)

// neg flips the sign of a term.
func neg(t blockTerm) blockTerm {
	t.subtract = !t.subtract
	return t
}

// strassenProducts lists M1..M7 in order together with their contributions
// to C11 = M1+M4−M5+M7, C12 = M3+M5, C21 = M2+M4, C22 = M1−M2+M3+M6.
var strassenProducts = [7]strassenProduct{
	{a: []blockTerm{q11, q22}, b: []blockTerm{q11, q22}, c: []blockTerm{q11, q22}}, // M1
	{a: []blockTerm{q21, q22}, b: []blockTerm{q11}, c: []blockTerm{q21, neg(q22)}}, // M2
	{a: []blockTerm{q11}, b: []blockTerm{q12, neg(q22)}, c: []blockTerm{q12, q22}}, // M3
	{a: []blockTerm{q22}, b: []blockTerm{q21, neg(q11)}, c: []blockTerm{q11, q21}}, // M4
	{a: []blockTerm{q11, q12}, b: []blockTerm{q22}, c: []blockTerm{neg(q11), q12}}, // M5
	{a: []blockTerm{q21, neg(q11)}, b: []blockTerm{q11, q12}, c: []blockTerm{q22}}, // M6
	{a: []blockTerm{q12, neg(q22)}, b: []blockTerm{q21, q22}, c: []blockTerm{q11}}, // M7
}

// Strassen returns a·b for square operands of equal dimension using Strassen's
// algorithm, falling back to the naive kernel for blocks of dimension at most
// the threshold (WithThreshold, default DefaultThreshold) or of dimension 1.
//
// Implementation:
//   - Stage 1: ValidateSquarePair(a, b); resolve options.
//   - Stage 2: recurse; see strassen.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (wrapped with "Strassen").
//
// Determinism:
//   - Result is bit-identical to Mul for every threshold, including on overflow.
//
// Complexity:
//   - Time O(n^2.81) above the crossover. Extra space O(n²) overall: each frame
//     holds two operand buffers and one product of dimension ceil(n/2).
func Strassen(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateSquarePair(a, b); err != nil {
		return nil, matrixErrorf(opStrassen, err)
	}
	o := NewOptions(opts...)

	return strassen(a, b, o.threshold), nil
}

// strassen multiplies two n×n matrices.
//
// Steps:
//  1. n <= threshold or n == 1 → naive.
//  2. h = ceil(n/2), s = n−h. Block k spans [off[k], off[k]+ext[k]).
//  3. For each Mi: zero the h×h operand buffers, accumulate the listed A and B
//     quadrants into them (blocks smaller than h stay zero-padded), recurse,
//     then accumulate the in-bounds part of Mi into the listed C quadrants.
//
// Each Mi is folded into C as soon as it is computed, so at most one product
// is live per frame. Nothing allocated here outlives the call except C.
func strassen(a, b *Dense, threshold int) *Dense {
	n := a.r
	if n <= threshold || n == 1 {
		return mul(a, b)
	}

	h := (n + 1) / 2
	off := [2]int{0, h}
	ext := [2]int{h, n - h}

	c := newDense(n, n)
	ta, tb := newDense(h, h), newDense(h, h)
	for _, p := range strassenProducts {
		ta.zero()
		tb.zero()
		for _, t := range p.a {
			accumulate(ta, 0, 0, a, off[t.row], off[t.col], ext[t.row], ext[t.col], t.subtract)
		}
		for _, t := range p.b {
			accumulate(tb, 0, 0, b, off[t.row], off[t.col], ext[t.row], ext[t.col], t.subtract)
		}

		m := strassen(ta, tb, threshold)
		for _, t := range p.c {
			accumulate(c, off[t.row], off[t.col], m, 0, 0, ext[t.row], ext[t.col], t.subtract)
		}
	}

	return c
}
