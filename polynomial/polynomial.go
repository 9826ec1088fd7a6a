// Package polynomial provides the coefficient-vector utilities needed by the
// KZG commitment scheme: degree computation, Horner evaluation, synthetic
// division by a linear factor and leading-zero trimming.
// A polynomial is an ordered slice of scalars where index i holds the
// coefficient of X^i. The slice is owned by the caller and never mutated.
package polynomial

import (
	"go.dedis.ch/kyber/v3"
	"golang.org/x/xerrors"
)

// ErrDegreeZeroDivision is returned by DivByLinear for inputs with fewer than
// two coefficients; dividing a constant by (X - d) is undefined.
var ErrDegreeZeroDivision = xerrors.New("polynomial: division needs degree >= 1")

// Degree returns the index of the highest nonzero coefficient. Trailing zero
// coefficients are skipped. The degree of the all-zero (or empty) polynomial
// is 0 by convention.
func Degree(coeffs []kyber.Scalar) int {
	for i := len(coeffs) - 1; i > 0; i-- {
		if !isZero(coeffs[i]) {
			return i
		}
	}
	return 0
}

// Eval evaluates the polynomial at x using Horner's rule. The empty
// polynomial evaluates to zero.
func Eval(g kyber.Group, coeffs []kyber.Scalar, x kyber.Scalar) kyber.Scalar {
	ret := g.Scalar().Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		ret.Mul(ret, x)
		ret.Add(ret, coeffs[i])
	}
	return ret
}

// DivByLinear divides the polynomial by (X - d) using synthetic division,
// scanning coefficients from the highest degree down. It returns the quotient
// (one degree lower) and the remainder, which always equals the evaluation of
// the input at d.
func DivByLinear(g kyber.Group, coeffs []kyber.Scalar, d kyber.Scalar) ([]kyber.Scalar, kyber.Scalar, error) {
	if len(coeffs) < 2 {
		return nil, nil, ErrDegreeZeroDivision
	}
	quotient := make([]kyber.Scalar, len(coeffs)-1)
	remainder := g.Scalar().Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		quotient[i] = remainder.Clone()
		remainder.Mul(remainder, d)
		remainder.Add(remainder, coeffs[i])
	}
	return quotient, remainder, nil
}

// SkipLeadingZeros counts the zero coefficients preceding the first nonzero
// one and returns that count together with the remaining slice. Aligning an
// MSM with a correspondingly offset SRS slice avoids multiplications that are
// known to vanish.
func SkipLeadingZeros(coeffs []kyber.Scalar) (int, []kyber.Scalar) {
	n := 0
	for n < len(coeffs) && isZero(coeffs[n]) {
		n++
	}
	return n, coeffs[n:]
}

func isZero(s kyber.Scalar) bool {
	return s.Equal(s.Clone().Zero())
}
