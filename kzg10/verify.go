package kzg10

import (
	"math/big"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/util/random"
)

// randomizerBound is the per-claim randomizer range for BatchCheck. Soundness
// of the random linear combination follows the Schwartz-Zippel argument: a
// forged batch passes with probability at most k/2^128 for k claims.
var randomizerBound = new(big.Int).Lsh(big.NewInt(1), 128)

// Check verifies that the committed polynomial evaluates to value at point.
// It computes inner = C - [value]1 (minus [RandomV] over the gamma generator
// when hiding) and accepts iff
//
//	e(inner, h) == e(W, [s]2 - [point]2),
//
// which certifies C - [value]1 = [W]*(s - point) in the exponent without
// revealing s. An invalid or tampered proof returns false, never an error.
func (sc *Scheme) Check(c *Commitment, point, value kyber.Scalar, proof *Proof) bool {
	g1 := sc.suite.G1()
	if c.group != g1.String() {
		return false
	}
	inner := g1.Point().Mul(value, sc.srs.PowersOfG[0])
	inner.Sub(c.point, inner)
	if sc.Hiding() {
		if proof.RandomV == nil {
			return false
		}
		gammaTerm := g1.Point().Mul(proof.RandomV, sc.srs.PowersOfGammaG[0])
		inner.Sub(inner, gammaTerm)
	}
	lhs := sc.suite.Pair(inner, sc.srs.H)

	sMinusPoint := sc.suite.G2().Point().Mul(point, sc.srs.H)
	sMinusPoint.Sub(sc.srs.BetaH, sMinusPoint)
	rhs := sc.suite.Pair(proof.W, sMinusPoint)
	return lhs.Equal(rhs)
}

// BatchCheck verifies k independent opening claims with a single pairing
// check by combining them with fresh random weights r_i (r_0 = 1).
//
// From the single-claim identity e(C'_i, h) == e(W_i, [s]2 - [z_i]2), where
// C'_i = C_i - [v_i]1 - [RandomV_i]gamma, bilinearity gives
//
//	e(C'_i + z_i*W_i, h) == e(W_i, [s]2),
//
// so accumulating totalC = sum r_i*(C'_i + z_i*W_i) and totalW = sum r_i*W_i
// reduces the batch to e(totalW, [s]2) == e(totalC, h). A single claim checked
// this way accepts exactly when Check does.
// The only error condition is mismatched input lengths; invalid proofs return
// false.
func (sc *Scheme) BatchCheck(commitments []*Commitment, points, values []kyber.Scalar, proofs []*Proof) (bool, error) {
	k := len(commitments)
	if len(points) != k || len(values) != k || len(proofs) != k {
		return false, errLengthMismatch
	}
	g1 := sc.suite.G1()
	totalC := g1.Point().Null()
	totalW := g1.Point().Null()
	gMultiplier := g1.Scalar().Zero()
	gammaGMultiplier := g1.Scalar().Zero()

	r := g1.Scalar().One()
	weighted := g1.Scalar()
	tmp := g1.Point()
	for i := 0; i < k; i++ {
		if commitments[i].group != g1.String() {
			return false, nil
		}
		if sc.Hiding() {
			if proofs[i].RandomV == nil {
				return false, nil
			}
			gammaGMultiplier.Add(gammaGMultiplier, weighted.Mul(r, proofs[i].RandomV))
		}
		gMultiplier.Add(gMultiplier, weighted.Mul(r, values[i]))

		// fold z_i*W_i into the commitment term so the witness side can
		// pair against [s]2 alone
		ci := g1.Point().Mul(points[i], proofs[i].W)
		ci.Add(ci, commitments[i].point)
		totalC.Add(totalC, tmp.Mul(r, ci))
		totalW.Add(totalW, tmp.Mul(r, proofs[i].W))

		r = sc.pickRandomizer()
	}
	totalC.Sub(totalC, tmp.Mul(gMultiplier, sc.srs.PowersOfG[0]))
	if sc.Hiding() {
		totalC.Sub(totalC, tmp.Mul(gammaGMultiplier, sc.srs.PowersOfGammaG[0]))
	}
	lhs := sc.suite.Pair(totalW, sc.srs.BetaH)
	rhs := sc.suite.Pair(totalC, sc.srs.H)
	return lhs.Equal(rhs), nil
}

// pickRandomizer draws a fresh uniform 128-bit claim weight.
func (sc *Scheme) pickRandomizer() kyber.Scalar {
	v := random.Int(randomizerBound, sc.rand)
	return sc.suite.G1().Scalar().SetBytes(v.Bytes())
}
