package kzg10

import (
	"go.dedis.ch/kyber/v3"
	"golang.org/x/xerrors"

	"github.com/polycommit/kzg/msm"
	"github.com/polycommit/kzg/polynomial"
)

// ComputeWitnessPolynomial divides p(X) - p(z) by (X - z), yielding the
// witness polynomial whose commitment proves the evaluation claim. The
// division remainder is exactly p(z); that identity is what the pairing check
// certifies. With hiding enabled the blinding polynomial is divided the same
// way and must have strictly positive degree.
func (sc *Scheme) ComputeWitnessPolynomial(coeffs []kyber.Scalar, point kyber.Scalar, blinding HidingRandomness) (witness, hidingWitness []kyber.Scalar, err error) {
	g1 := sc.suite.G1()
	witness, _, err = polynomial.DivByLinear(g1, coeffs, point)
	if err != nil {
		return nil, nil, err
	}
	if sc.Hiding() {
		if polynomial.Degree(blinding) == 0 {
			return nil, nil, ErrMissingHidingRandomness
		}
		hidingWitness, _, err = polynomial.DivByLinear(g1, blinding, point)
		if err != nil {
			return nil, nil, err
		}
	}
	return witness, hidingWitness, nil
}

// OpenWithWitnessPolynomial commits to an already-computed witness
// polynomial. With a hiding witness it also evaluates the blinding polynomial
// at the opening point and folds the hiding witness commitment into the
// proof.
func (sc *Scheme) OpenWithWitnessPolynomial(point kyber.Scalar, blinding HidingRandomness, witness, hidingWitness []kyber.Scalar) (*Proof, error) {
	g1 := sc.suite.G1()
	if polynomial.Degree(witness)+1 >= len(sc.srs.PowersOfG) {
		return nil, xerrors.Errorf("witness degree %d, SRS supports %d: %w",
			polynomial.Degree(witness), sc.srs.MaxDegree(), ErrTooManyCoefficients)
	}
	numLeadingZeros, plain := polynomial.SkipLeadingZeros(witness)
	w := msm.Combine(g1,
		sc.srs.PowersOfG[numLeadingZeros:numLeadingZeros+len(plain)],
		toBigInts(plain), sc.negationIsCheap)

	var randomV kyber.Scalar
	if hidingWitness != nil {
		randomV = polynomial.Eval(g1, blinding, point)
		w.Add(w, msm.Combine(g1,
			sc.srs.PowersOfGammaG[:len(hidingWitness)],
			toBigInts(hidingWitness), sc.negationIsCheap))
	}
	return &Proof{W: w, RandomV: randomV}, nil
}

// Open proves the polynomial's evaluation at point. blinding must be the
// randomness returned by the Commit call that produced the commitment being
// opened.
func (sc *Scheme) Open(coeffs []kyber.Scalar, point kyber.Scalar, blinding HidingRandomness) (*Proof, error) {
	if polynomial.Degree(coeffs)+1 >= len(sc.srs.PowersOfG) {
		return nil, xerrors.Errorf("degree %d, SRS supports %d: %w",
			polynomial.Degree(coeffs), sc.srs.MaxDegree(), ErrTooManyCoefficients)
	}
	witness, hidingWitness, err := sc.ComputeWitnessPolynomial(coeffs, point, blinding)
	if err != nil {
		return nil, err
	}
	return sc.OpenWithWitnessPolynomial(point, blinding, witness, hidingWitness)
}
