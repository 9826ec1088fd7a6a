package kzg10

import (
	"bytes"
	"crypto/cipher"
	"encoding/binary"
	"io"
	"os"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/pairing"
	"golang.org/x/xerrors"
)

// maxSerializedPowers caps the power counts accepted when deserializing an
// SRS, so a corrupt header cannot drive huge allocations.
const maxSerializedPowers = 1 << 20

// SRS is the structured reference string: public parameters derived once from
// a secret scalar s. It is a public value, immutable after generation, and
// safe to share across concurrent callers for reads. The secret cannot be
// recovered from it.
// [x]1 denotes the projection of scalar x onto G1, [x]2 onto G2.
type SRS struct {
	PowersOfG      []kyber.Point // [s^i]1 for i = 0..maxDegree, over the generator g
	PowersOfGammaG []kyber.Point // [s^i]1 for i = 0..maxDegree+1, over the blinding generator gamma*g
	H              kyber.Point   // the G2 generator h
	BetaH          kyber.Point   // [s]2
	NegPowersOfH   []kyber.Point // [s^-i]2 for i = 0..maxDegree; empty unless requested
}

// MaxDegree returns the largest polynomial degree the SRS supports.
func (srs *SRS) MaxDegree() int {
	return len(srs.PowersOfG) - 1
}

// generateSRS computes the SRS from the secret and the chosen generators.
// The caller owns the secret and is responsible for destroying it.
func generateSRS(suite pairing.Suite, maxDegree int, produceG2Powers bool, secret kyber.Scalar, g, h kyber.Point, rnd cipher.Stream) *SRS {
	g1 := suite.G1()
	g2 := suite.G2()
	gammaG := g1.Point().Pick(rnd)

	powersOfS := make([]kyber.Scalar, maxDegree+2)
	cur := g1.Scalar().One()
	for i := range powersOfS {
		powersOfS[i] = cur.Clone()
		cur.Mul(cur, secret)
	}

	srs := &SRS{
		PowersOfG:      make([]kyber.Point, maxDegree+1),
		PowersOfGammaG: make([]kyber.Point, maxDegree+2),
		H:              h.Clone(),
		BetaH:          g2.Point().Mul(secret, h),
	}
	for i := range srs.PowersOfG {
		srs.PowersOfG[i] = g1.Point().Mul(powersOfS[i], g)
	}
	for i := range srs.PowersOfGammaG {
		srs.PowersOfGammaG[i] = g1.Point().Mul(powersOfS[i], gammaG)
	}

	if produceG2Powers {
		sInv := g2.Scalar().Inv(secret)
		curInv := g2.Scalar().One()
		srs.NegPowersOfH = make([]kyber.Point, maxDegree+1)
		for i := range srs.NegPowersOfH {
			srs.NegPowersOfH[i] = g2.Point().Mul(curInv, h)
			curInv.Mul(curInv, sInv)
		}
	}
	return srs
}

// check verifies the power-chain structure of the SRS with pairings:
// e([s^(i+1)]1, h) == e([s^i]1, [s]2) for both G1 chains, and
// e([s^i]1, [s^-i]2) == e(g, h) for the negative G2 powers.
func (srs *SRS) check(suite pairing.Suite) error {
	if len(srs.PowersOfG) == 0 || len(srs.PowersOfGammaG) != len(srs.PowersOfG)+1 {
		return errMalformedSRS
	}
	for i := 0; i+1 < len(srs.PowersOfG); i++ {
		left := suite.Pair(srs.PowersOfG[i+1], srs.H)
		right := suite.Pair(srs.PowersOfG[i], srs.BetaH)
		if !left.Equal(right) {
			return xerrors.Errorf("powers_of_g[%d]: %w", i+1, errInconsistentSRS)
		}
	}
	for i := 0; i+1 < len(srs.PowersOfGammaG); i++ {
		left := suite.Pair(srs.PowersOfGammaG[i+1], srs.H)
		right := suite.Pair(srs.PowersOfGammaG[i], srs.BetaH)
		if !left.Equal(right) {
			return xerrors.Errorf("powers_of_gamma_g[%d]: %w", i+1, errInconsistentSRS)
		}
	}
	if len(srs.NegPowersOfH) > 0 {
		if len(srs.NegPowersOfH) != len(srs.PowersOfG) {
			return errMalformedSRS
		}
		if !srs.NegPowersOfH[0].Equal(srs.H) {
			return xerrors.Errorf("neg_powers_of_h[0]: %w", errInconsistentSRS)
		}
		base := suite.Pair(srs.PowersOfG[0], srs.H)
		for i := 1; i < len(srs.NegPowersOfH); i++ {
			if !suite.Pair(srs.PowersOfG[i], srs.NegPowersOfH[i]).Equal(base) {
				return xerrors.Errorf("neg_powers_of_h[%d]: %w", i, errInconsistentSRS)
			}
		}
	}
	return nil
}

// SRSFromBytes unmarshals an SRS and verifies its pairing consistency.
func SRSFromBytes(suite pairing.Suite, data []byte) (*SRS, error) {
	srs := &SRS{}
	if err := srs.read(suite, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	if err := srs.check(suite); err != nil {
		return nil, err
	}
	return srs, nil
}

// SRSFromFile restores an SRS from a file written with WriteFile.
func SRSFromFile(suite pairing.Suite, fname string) (*SRS, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return SRSFromBytes(suite, data)
}

// Bytes marshals the SRS.
func (srs *SRS) Bytes() []byte {
	var buf bytes.Buffer
	if err := srs.write(&buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// WriteFile saves the SRS to a file readable by SRSFromFile.
func (srs *SRS) WriteFile(fname string) error {
	return os.WriteFile(fname, srs.Bytes(), 0o600)
}

func (srs *SRS) write(w io.Writer) error {
	header := []uint32{uint32(len(srs.PowersOfG)), uint32(len(srs.NegPowersOfH))}
	if err := binary.Write(w, binary.BigEndian, header); err != nil {
		return err
	}
	for _, p := range srs.PowersOfG {
		if _, err := p.MarshalTo(w); err != nil {
			return err
		}
	}
	for _, p := range srs.PowersOfGammaG {
		if _, err := p.MarshalTo(w); err != nil {
			return err
		}
	}
	if _, err := srs.H.MarshalTo(w); err != nil {
		return err
	}
	if _, err := srs.BetaH.MarshalTo(w); err != nil {
		return err
	}
	for _, p := range srs.NegPowersOfH {
		if _, err := p.MarshalTo(w); err != nil {
			return err
		}
	}
	return nil
}

func (srs *SRS) read(suite pairing.Suite, r io.Reader) error {
	header := make([]uint32, 2)
	if err := binary.Read(r, binary.BigEndian, header); err != nil {
		return err
	}
	nG, nNegH := int(header[0]), int(header[1])
	if nG == 0 || nG > maxSerializedPowers || nNegH > maxSerializedPowers {
		return errMalformedSRS
	}
	g1 := suite.G1()
	g2 := suite.G2()
	srs.PowersOfG = make([]kyber.Point, nG)
	for i := range srs.PowersOfG {
		srs.PowersOfG[i] = g1.Point()
		if _, err := srs.PowersOfG[i].UnmarshalFrom(r); err != nil {
			return err
		}
	}
	srs.PowersOfGammaG = make([]kyber.Point, nG+1)
	for i := range srs.PowersOfGammaG {
		srs.PowersOfGammaG[i] = g1.Point()
		if _, err := srs.PowersOfGammaG[i].UnmarshalFrom(r); err != nil {
			return err
		}
	}
	srs.H = g2.Point()
	if _, err := srs.H.UnmarshalFrom(r); err != nil {
		return err
	}
	srs.BetaH = g2.Point()
	if _, err := srs.BetaH.UnmarshalFrom(r); err != nil {
		return err
	}
	if nNegH > 0 {
		srs.NegPowersOfH = make([]kyber.Point, nNegH)
		for i := range srs.NegPowersOfH {
			srs.NegPowersOfH[i] = g2.Point()
			if _, err := srs.NegPowersOfH[i].UnmarshalFrom(r); err != nil {
				return err
			}
		}
	}
	return nil
}
