// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"io"
	"math/rand"
	"strconv"
)

// Entry distribution of Random: P(0)=0.33, P(1)=0.34, P(2)=0.33.
const (
	randomCutZero = 0.33
	randomCutOne  = 0.67
)

// Random returns a rows×cols matrix whose entries are 0, 1 or 2, drawn from rng
// with probabilities 0.33 / 0.34 / 0.33. Small entries keep products of large
// matrices far from int64 overflow.
//
// Errors: ErrInvalidDimensions for a non-positive shape.
func Random(rows, cols int, rng *rand.Rand) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	for i := range m.data {
		switch p := rng.Float64(); {
		case p < randomCutZero:
			m.data[i] = 0
		case p < randomCutOne:
			m.data[i] = 1
		default:
			m.data[i] = 2
		}
	}

	return m, nil
}

// WritePair writes a then b to w, one value per line, in the format ReadPair consumes.
func WritePair(w io.Writer, a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, m := range [2]*Dense{a, b} {
		for _, v := range m.data {
			bw.WriteString(strconv.FormatInt(v, 10))
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}
