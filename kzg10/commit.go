package kzg10

import (
	"go.dedis.ch/kyber/v3"
	"golang.org/x/xerrors"

	"github.com/polycommit/kzg/msm"
	"github.com/polycommit/kzg/polynomial"
)

// Commit commits to the polynomial. The returned commitment is a single G1
// element; when hiding is enabled it also carries a blinding polynomial
// commitment over the gamma generator, and the blinding coefficients are
// returned so the matching Open call can reproduce them. The HidingRandomness
// is empty when hiding is disabled.
// Commitments are additively homomorphic: blinding aside, the sum of two
// commitments equals the commitment to the coefficient-wise sum.
func (sc *Scheme) Commit(coeffs []kyber.Scalar) (*Commitment, HidingRandomness, error) {
	g1 := sc.suite.G1()
	degree := polynomial.Degree(coeffs)
	if degree+1 > len(sc.srs.PowersOfG) {
		return nil, nil, xerrors.Errorf("degree %d, SRS supports %d: %w",
			degree, sc.srs.MaxDegree(), ErrTooManyCoefficients)
	}
	if len(coeffs) > degree+1 {
		coeffs = coeffs[:degree+1]
	}
	numLeadingZeros, plain := polynomial.SkipLeadingZeros(coeffs)
	c := msm.Combine(g1,
		sc.srs.PowersOfG[numLeadingZeros:numLeadingZeros+len(plain)],
		toBigInts(plain), sc.negationIsCheap)

	var blinding HidingRandomness
	if sc.Hiding() {
		blinding = sc.sampleBlinding()
		randomCommitment := msm.Combine(g1,
			sc.srs.PowersOfGammaG[:len(blinding)],
			toBigInts(blinding), sc.negationIsCheap)
		c.Add(c, randomCommitment)
	}
	return NewCommitment(g1, c), blinding, nil
}

// sampleBlinding draws the blinding polynomial of degree exactly hidingBound.
// The leading coefficient is forced nonzero directly, so the polynomial never
// degenerates to a constant; degree-0 blinding provides no hiding.
func (sc *Scheme) sampleBlinding() HidingRandomness {
	g1 := sc.suite.G1()
	coeffs := make(HidingRandomness, sc.hidingBound+1)
	for i := range coeffs {
		coeffs[i] = g1.Scalar().Pick(sc.rand)
	}
	lead := coeffs[sc.hidingBound]
	if lead.Equal(g1.Scalar().Zero()) {
		lead.One()
	}
	return coeffs
}
