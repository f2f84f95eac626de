// SPDX-License-Identifier: MIT

// Package report renders kernel results for the command-line tools.
// Results go to the provided writer (stdout in the binaries); timings and
// diagnostics are logged separately.
package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvbench/matrix"
	"github.com/katalvlaran/lvbench/randmst"
)

// MST writes "average numpoints numtrials dimension" on one line.
func MST(w io.Writer, rep randmst.Report) error {
	_, err := fmt.Fprintf(w, "%f %d %d %d\n", rep.Average, rep.Points, rep.Trials, rep.Dimension)
	return err
}

// Product writes the full product when full is set, then its diagonal.
func Product(w io.Writer, c *matrix.Dense, full bool) error {
	if full {
		if err := matrix.WriteMatrix(w, c); err != nil {
			return err
		}
	}

	return matrix.WriteDiagonal(w, c)
}
