// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// readPairInitialCap bounds the up-front allocation of ReadPair.
const readPairInitialCap = 1 << 16

// ReadPair reads two dim×dim matrices from r: 2·dim² whitespace-separated
// integers, the first dim² filling A in row-major order, the next dim² filling B.
// Trailing input after the last value is ignored.
//
// Errors (wrapped with "ReadPair"):
//   - ErrInvalidDimensions: dim <= 0, or 2·dim² overflows int.
//   - ErrShortInput: fewer than 2·dim² values.
//   - ErrBadToken: a token that does not parse as a 64-bit integer.
//   - any read error from r.
func ReadPair(r io.Reader, dim int) (*Dense, *Dense, error) {
	if err := validateShape(dim, dim); err != nil {
		return nil, nil, matrixErrorf(opReadPair, err)
	}
	area := dim * dim
	if area > math.MaxInt/2 {
		return nil, nil, matrixErrorf(opReadPair,
			fmt.Errorf("2×%d×%d overflows int: %w", dim, dim, ErrInvalidDimensions))
	}
	total := 2 * area

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// Grow with the input instead of trusting dim, so a huge dim over a short
	// stream fails with ErrShortInput rather than a giant allocation.
	vals := make([]int64, 0, min(total, readPairInitialCap))
	for len(vals) < total {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, nil, matrixErrorf(opReadPair, err)
			}
			return nil, nil, matrixErrorf(opReadPair,
				fmt.Errorf("read %d of %d values: %w", len(vals), total, ErrShortInput))
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, nil, matrixErrorf(opReadPair,
				fmt.Errorf("value %d %q: %w", len(vals), sc.Text(), ErrBadToken))
		}
		vals = append(vals, v)
	}

	a := &Dense{r: dim, c: dim, data: vals[:area:area]}
	b := &Dense{r: dim, c: dim, data: vals[area:]}

	return a, b, nil
}

// WriteDiagonal writes m's main diagonal to w, one value per line.
func WriteDiagonal(w io.Writer, m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opWriteDiag, err)
	}
	bw := bufio.NewWriter(w)
	for _, v := range m.Diagonal() {
		bw.WriteString(strconv.FormatInt(v, 10))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf(opWriteDiag, err)
	}

	return nil
}

// WriteMatrix writes m to w, one row per line, values separated by single spaces.
func WriteMatrix(w io.Writer, m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opWriteMat, err)
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatInt(m.data[i*m.c+j], 10))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf(opWriteMat, err)
	}

	return nil
}
