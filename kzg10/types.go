package kzg10

import (
	"go.dedis.ch/kyber/v3"
	"golang.org/x/xerrors"
)

var (
	// ErrTooManyCoefficients reports a polynomial whose degree exceeds what
	// the SRS supports. This is a caller bug, not a runtime condition.
	ErrTooManyCoefficients = xerrors.New("kzg10: polynomial degree exceeds SRS")
	// ErrGroupMismatch reports arithmetic between commitments carrying
	// different group tags.
	ErrGroupMismatch = xerrors.New("kzg10: commitments from different groups")
	// ErrMissingHidingRandomness reports an Open call on a hiding scheme
	// without the blinding polynomial returned by the matching Commit.
	ErrMissingHidingRandomness = xerrors.New("kzg10: hiding randomness missing or degenerate")

	errZeroSecret      = xerrors.New("kzg10: secret scalar must be nonzero")
	errNegativeDegree  = xerrors.New("kzg10: max degree must be non-negative")
	errBadHidingBound  = xerrors.New("kzg10: hiding bound out of range for SRS")
	errLengthMismatch  = xerrors.New("kzg10: claims have mismatched lengths")
	errMalformedSRS    = xerrors.New("kzg10: malformed SRS")
	errInconsistentSRS = xerrors.New("kzg10: SRS failed pairing consistency check")
)

// Commitment is a group element tagged with the group it lives in. Arithmetic
// between commitments requires identical tags. Commitments are value objects;
// every operation returns a fresh one.
type Commitment struct {
	group string
	point kyber.Point
}

// NewCommitment tags a group element as a commitment in g.
func NewCommitment(g kyber.Group, p kyber.Point) *Commitment {
	return &Commitment{group: g.String(), point: p}
}

// Point returns the underlying group element.
func (c *Commitment) Point() kyber.Point {
	return c.point
}

// Add returns the commitment to the coefficient-wise sum of the committed
// polynomials (the scheme is additively homomorphic, blinding aside).
func (c *Commitment) Add(other *Commitment) (*Commitment, error) {
	if c.group != other.group {
		return nil, ErrGroupMismatch
	}
	p := c.point.Clone()
	p.Add(c.point, other.point)
	return &Commitment{group: c.group, point: p}, nil
}

// Sub returns the commitment to the coefficient-wise difference.
func (c *Commitment) Sub(other *Commitment) (*Commitment, error) {
	if c.group != other.group {
		return nil, ErrGroupMismatch
	}
	p := c.point.Clone()
	p.Sub(c.point, other.point)
	return &Commitment{group: c.group, point: p}, nil
}

// Scale returns the commitment multiplied by the scalar s.
func (c *Commitment) Scale(s kyber.Scalar) *Commitment {
	p := c.point.Clone()
	p.Mul(s, c.point)
	return &Commitment{group: c.group, point: p}
}

// Equal reports whether two commitments carry the same tag and element.
func (c *Commitment) Equal(other *Commitment) bool {
	return c.group == other.group && c.point.Equal(other.point)
}

// Proof certifies one claimed evaluation. W commits to the witness (quotient)
// polynomial; RandomV is the blinding polynomial evaluated at the opening
// point and is nil unless hiding is enabled.
type Proof struct {
	W       kyber.Point
	RandomV kyber.Scalar
}

// HidingRandomness holds the coefficients of the blinding polynomial drawn by
// Commit. It must be passed unmodified to the matching Open call and must not
// be reused for a different polynomial/commitment pair; reuse breaks hiding.
// It is empty when hiding is disabled.
type HidingRandomness []kyber.Scalar
