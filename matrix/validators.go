// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible checks a, b are non-nil and a.Cols() == b.Rows().
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquarePair checks a, b are non-nil, square, and of equal dimension.
// Order: nil → square → same dimension.
func ValidateSquarePair(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != a.c || b.r != b.c {
		return validatorErrorf("ValidateSquarePair", ErrNonSquare)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSquarePair", fmt.Errorf("%d vs %d: %w", a.r, b.r, ErrDimensionMismatch))
	}

	return nil
}
