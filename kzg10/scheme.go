package kzg10

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/pairing"
	"go.dedis.ch/kyber/v3/util/random"
)

// Scheme binds a pairing suite, an SRS and a hiding bound into one commitment
// scheme instance. Several instances with different degree bounds can coexist;
// nothing is shared between them. A Scheme is safe for concurrent use except
// for SetNegationIsCheap, which is meant to be called once after construction.
type Scheme struct {
	suite           pairing.Suite
	srs             *SRS
	hidingBound     int
	negationIsCheap bool
	rand            cipher.Stream
}

// Setup draws a fresh secret scalar, random generators for both groups and a
// random blinding generator, derives the SRS and destroys the secret before
// returning. hidingBound is the degree of the blinding polynomial added to
// every commitment; zero disables hiding. produceG2Powers additionally
// populates the negative G2 powers used by variable-base verification
// schemes.
func Setup(suite pairing.Suite, maxDegree, hidingBound int, produceG2Powers bool) (*Scheme, error) {
	rnd := random.New()
	secret := suite.G1().Scalar().Pick(rnd)
	for secret.Equal(suite.G1().Scalar().Zero()) {
		secret.Pick(rnd)
	}
	sc, err := SetupWithGenerators(suite, maxDegree, hidingBound, produceG2Powers, secret, nil, nil)
	secret.Zero() // toxic waste
	return sc, err
}

// SetupWithGenerators derives the SRS from a caller-supplied secret and
// generators; nil generators are drawn at random. The caller must destroy the
// secret after this returns. Intended for deterministic fixtures and for
// ceremonies that source the secret externally.
func SetupWithGenerators(suite pairing.Suite, maxDegree, hidingBound int, produceG2Powers bool, secret kyber.Scalar, g1Gen, g2Gen kyber.Point) (*Scheme, error) {
	if maxDegree < 0 {
		return nil, errNegativeDegree
	}
	if secret.Equal(suite.G1().Scalar().Zero()) {
		return nil, errZeroSecret
	}
	rnd := random.New()
	g := g1Gen
	if g == nil {
		g = suite.G1().Point().Pick(rnd)
	}
	h := g2Gen
	if h == nil {
		h = suite.G2().Point().Pick(rnd)
	}
	srs := generateSRS(suite, maxDegree, produceG2Powers, secret, g, h, rnd)
	return NewScheme(suite, srs, hidingBound)
}

// NewScheme wraps an existing SRS, typically one restored with SRSFromFile.
func NewScheme(suite pairing.Suite, srs *SRS, hidingBound int) (*Scheme, error) {
	if len(srs.PowersOfG) == 0 || len(srs.PowersOfGammaG) != len(srs.PowersOfG)+1 {
		return nil, errMalformedSRS
	}
	if hidingBound < 0 || hidingBound+1 > len(srs.PowersOfGammaG) {
		return nil, errBadHidingBound
	}
	return &Scheme{
		suite:       suite,
		srs:         srs,
		hidingBound: hidingBound,
		rand:        random.New(),
	}, nil
}

// SRS returns the shared public parameters. Callers must treat them as
// read-only.
func (sc *Scheme) SRS() *SRS {
	return sc.srs
}

// MaxDegree returns the largest polynomial degree the scheme supports.
func (sc *Scheme) MaxDegree() int {
	return sc.srs.MaxDegree()
}

// HidingBound returns the blinding polynomial degree; zero means hiding is
// disabled.
func (sc *Scheme) HidingBound() int {
	return sc.hidingBound
}

// Hiding reports whether commitments are blinded.
func (sc *Scheme) Hiding() bool {
	return sc.hidingBound > 0
}

// SetNegationIsCheap selects the windowed-NAF MSM path, which exploits cheap
// group negation. Off by default; elliptic-curve groups such as BN256 can
// enable it safely.
func (sc *Scheme) SetNegationIsCheap(v bool) {
	sc.negationIsCheap = v
}

// toBigInts converts field coefficients to their canonical non-negative
// integer representation for the MSM layer.
func toBigInts(coeffs []kyber.Scalar) []*big.Int {
	ret := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		b, err := c.MarshalBinary()
		if err != nil {
			panic(err)
		}
		ret[i] = new(big.Int).SetBytes(b)
	}
	return ret
}
