package kzg10

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/kyber/v3/pairing/bn256"
	"go.dedis.ch/kyber/v3/util/random"

	"github.com/polycommit/kzg/polynomial"
)

func TestSetupShape(t *testing.T) {
	suite := bn256.NewSuite()
	sc, err := Setup(suite, 8, 3, true)
	require.NoError(t, err)
	srs := sc.SRS()
	require.Len(t, srs.PowersOfG, 9)
	require.Len(t, srs.PowersOfGammaG, 10)
	require.Len(t, srs.NegPowersOfH, 9)
	require.Equal(t, 8, sc.MaxDegree())
	require.True(t, srs.NegPowersOfH[0].Equal(srs.H))
	require.NoError(t, srs.check(suite))
}

func TestSetupDeterministicSecret(t *testing.T) {
	suite := bn256.NewSuite()
	secret := suite.G1().Scalar().SetInt64(1234567891)
	g := suite.G1().Point().Base()
	h := suite.G2().Point().Base()
	sc, err := SetupWithGenerators(suite, 6, 0, true, secret, g, h)
	require.NoError(t, err)

	srs := sc.SRS()
	require.True(t, srs.PowersOfG[0].Equal(g))
	require.True(t, srs.PowersOfG[1].Equal(suite.G1().Point().Mul(secret, g)))
	require.True(t, srs.BetaH.Equal(suite.G2().Point().Mul(secret, h)))
}

func TestSetupValidation(t *testing.T) {
	suite := bn256.NewSuite()
	_, err := Setup(suite, -1, 0, false)
	require.ErrorIs(t, err, errNegativeDegree)

	_, err = SetupWithGenerators(suite, 4, 0, false, suite.G1().Scalar().Zero(), nil, nil)
	require.ErrorIs(t, err, errZeroSecret)

	_, err = Setup(suite, 4, -1, false)
	require.ErrorIs(t, err, errBadHidingBound)
	// blinding degree may exceed maxDegree by one but no more
	_, err = Setup(suite, 4, 5, false)
	require.NoError(t, err)
	_, err = Setup(suite, 4, 6, false)
	require.ErrorIs(t, err, errBadHidingBound)
}

func TestSRSBytesRoundtrip(t *testing.T) {
	suite := bn256.NewSuite()
	sc, err := Setup(suite, 6, 0, true)
	require.NoError(t, err)
	data := sc.SRS().Bytes()

	back, err := SRSFromBytes(suite, data)
	require.NoError(t, err)
	require.EqualValues(t, data, back.Bytes())

	reloaded, err := NewScheme(suite, back, 3)
	require.NoError(t, err)
	require.Equal(t, 6, reloaded.MaxDegree())
}

func TestSRSFileRoundtrip(t *testing.T) {
	suite := bn256.NewSuite()
	sc, err := Setup(suite, 5, 0, false)
	require.NoError(t, err)
	fname := filepath.Join(t.TempDir(), "test.setup")
	require.NoError(t, sc.SRS().WriteFile(fname))

	back, err := SRSFromFile(suite, fname)
	require.NoError(t, err)
	require.EqualValues(t, sc.SRS().Bytes(), back.Bytes())
}

func TestSRSCheckDetectsTamper(t *testing.T) {
	suite := bn256.NewSuite()
	sc, err := Setup(suite, 5, 0, false)
	require.NoError(t, err)
	srs := sc.SRS()
	srs.PowersOfG[2] = suite.G1().Point().Pick(random.New())
	_, err = SRSFromBytes(suite, srs.Bytes())
	require.Error(t, err)
}

func TestSRSFromBytesRejectsGarbage(t *testing.T) {
	suite := bn256.NewSuite()
	_, err := SRSFromBytes(suite, []byte{0, 0, 0, 0})
	require.Error(t, err)
	_, err = SRSFromBytes(suite, []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0})
	require.Error(t, err)
}

// opening proofs must survive an SRS serialization roundtrip
func TestReloadedSchemeVerifies(t *testing.T) {
	suite := bn256.NewSuite()
	sc, err := Setup(suite, 8, 2, false)
	require.NoError(t, err)
	g1 := suite.G1()
	p := randPoly(g1, 5)
	z := g1.Scalar().SetInt64(77)
	c, blinding, err := sc.Commit(p)
	require.NoError(t, err)
	proof, err := sc.Open(p, z, blinding)
	require.NoError(t, err)

	back, err := SRSFromBytes(suite, sc.SRS().Bytes())
	require.NoError(t, err)
	verifier, err := NewScheme(suite, back, 2)
	require.NoError(t, err)
	require.True(t, verifier.Check(c, z, polynomial.Eval(g1, p, z), proof))
}
