// SPDX-License-Identifier: MIT

package matrix

// Mul returns the naive product a·b (a is r×k, b is k×c, result r×c).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i-k-j triple loop over the flat buffers, skipping zero a[i][k].
//
// Behavior highlights:
//   - One allocation (the result). Integer arithmetic wraps on overflow.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidDimensions when r·c overflows (wrapped with "Mul").
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateShape(a.r, b.c); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mul(a, b), nil
}

// mul is the unchecked naive kernel shared by Mul and the Strassen base case.
func mul(a, b *Dense) *Dense {
	res := newDense(a.r, b.c)
	for i := 0; i < a.r; i++ {
		rowA := a.data[i*a.c : (i+1)*a.c]
		rowR := res.data[i*b.c : (i+1)*b.c]
		for k, av := range rowA {
			if av == 0 {
				continue
			}
			rowB := b.data[k*b.c : (k+1)*b.c]
			for j, bv := range rowB {
				rowR[j] += av * bv
			}
		}
	}

	return res
}

// accumulate adds (or subtracts, when subtract is true) the rows×cols rectangle
// of src at (sr, sc) into the rectangle of dst at (dr, dc):
//
//	dst[dr+i][dc+j] ±= src[sr+i][sc+j]   for 0 <= i < rows, 0 <= j < cols
//
// It is the single arithmetic primitive behind Strassen: reading a block into a
// zeroed buffer is extraction (and padding when the buffer is larger than the
// block), a second call on the same buffer forms a sum or difference, and a call
// with dst = C folds a product into the result.
//
// Both rectangles must lie inside their matrices; violations panic via slice
// bounds since callers compute the extents.
//
// Complexity: O(rows·cols), no allocation.
func accumulate(dst *Dense, dr, dc int, src *Dense, sr, sc int, rows, cols int, subtract bool) {
	for i := 0; i < rows; i++ {
		d := dst.data[(dr+i)*dst.c+dc : (dr+i)*dst.c+dc+cols]
		s := src.data[(sr+i)*src.c+sc : (sr+i)*src.c+sc+cols]
		if subtract {
			for j, v := range s {
				d[j] -= v
			}
			continue
		}
		for j, v := range s {
			d[j] += v
		}
	}
}
