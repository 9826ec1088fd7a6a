package kzg10

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/util/random"

	"github.com/polycommit/kzg/polynomial"
)

// makeClaims commits to k random polynomials and opens each at its own random
// point.
func makeClaims(t *testing.T, sc *Scheme, k int) ([]*Commitment, []kyber.Scalar, []kyber.Scalar, []*Proof, [][]kyber.Scalar, []HidingRandomness) {
	t.Helper()
	g1 := sc.suite.G1()
	rnd := random.New()
	commitments := make([]*Commitment, k)
	points := make([]kyber.Scalar, k)
	values := make([]kyber.Scalar, k)
	proofs := make([]*Proof, k)
	polys := make([][]kyber.Scalar, k)
	blindings := make([]HidingRandomness, k)
	for i := 0; i < k; i++ {
		polys[i] = randPoly(g1, 4+i)
		points[i] = g1.Scalar().Pick(rnd)
		values[i] = polynomial.Eval(g1, polys[i], points[i])

		var err error
		commitments[i], blindings[i], err = sc.Commit(polys[i])
		require.NoError(t, err)
		proofs[i], err = sc.Open(polys[i], points[i], blindings[i])
		require.NoError(t, err)
	}
	return commitments, points, values, proofs, polys, blindings
}

func TestBatchCompleteness(t *testing.T) {
	for _, hidingBound := range []int{0, 3} {
		sc := newTestScheme(t, 12, hidingBound)
		commitments, points, values, proofs, _, _ := makeClaims(t, sc, 5)
		ok, err := sc.BatchCheck(commitments, points, values, proofs)
		require.NoError(t, err)
		require.True(t, ok, "hidingBound=%d", hidingBound)
	}
}

func TestBatchSoundness(t *testing.T) {
	sc := newTestScheme(t, 12, 3)
	g1 := sc.suite.G1()
	commitments, points, values, proofs, polys, blindings := makeClaims(t, sc, 5)

	// replace one proof with an opening at a shifted point
	shifted := g1.Scalar().Add(points[2], g1.Scalar().One())
	tampered, err := sc.Open(polys[2], shifted, blindings[2])
	require.NoError(t, err)
	proofs[2] = tampered

	ok, err := sc.BatchCheck(commitments, points, values, proofs)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBatchSoundnessWrongValue(t *testing.T) {
	sc := newTestScheme(t, 12, 0)
	g1 := sc.suite.G1()
	commitments, points, values, proofs, _, _ := makeClaims(t, sc, 4)
	values[1] = g1.Scalar().Add(values[1], g1.Scalar().One())
	ok, err := sc.BatchCheck(commitments, points, values, proofs)
	require.NoError(t, err)
	require.False(t, ok)
}

// A single-claim batch must agree with Check: the batched equation is the
// weighted sum of the single-claim pairing identity.
func TestBatchSingleClaimMatchesCheck(t *testing.T) {
	for _, hidingBound := range []int{0, 2} {
		sc := newTestScheme(t, 10, hidingBound)
		g1 := sc.suite.G1()
		commitments, points, values, proofs, _, _ := makeClaims(t, sc, 1)

		require.True(t, sc.Check(commitments[0], points[0], values[0], proofs[0]))
		ok, err := sc.BatchCheck(commitments, points, values, proofs)
		require.NoError(t, err)
		require.True(t, ok)

		wrong := g1.Scalar().Add(values[0], g1.Scalar().One())
		require.False(t, sc.Check(commitments[0], points[0], wrong, proofs[0]))
		ok, err = sc.BatchCheck(commitments, points, []kyber.Scalar{wrong}, proofs)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestBatchLengthMismatch(t *testing.T) {
	sc := newTestScheme(t, 12, 0)
	commitments, points, values, proofs, _, _ := makeClaims(t, sc, 3)
	_, err := sc.BatchCheck(commitments, points[:2], values, proofs)
	require.Error(t, err)
	_, err = sc.BatchCheck(commitments[:2], points[:2], values[:2], proofs)
	require.Error(t, err)
}

func TestBatchMissingBlindingValue(t *testing.T) {
	sc := newTestScheme(t, 12, 3)
	commitments, points, values, proofs, _, _ := makeClaims(t, sc, 3)
	proofs[1] = &Proof{W: proofs[1].W}
	ok, err := sc.BatchCheck(commitments, points, values, proofs)
	require.NoError(t, err)
	require.False(t, ok)
}
