// Package kzg10 implements the Kate-Zaverucha-Goldberg polynomial commitment
// scheme, also known as KZG, KZG10 and Kate commitments, with optional
// degree-bounded blinding for hiding.
// A prover commits to a univariate polynomial with a single group element,
// later proves the polynomial's value at a chosen point, and a verifier checks
// that proof against the commitment with one pairing equation, never learning
// the polynomial itself. The scheme underlies succinct argument systems as the
// primitive for binding and opening committed data.
// See:
// - https://www.iacr.org/archive/asiacrypt2010/6477178/6477178.pdf
// - https://dankradfeist.de/ethereum/2020/06/16/kate-polynomial-commitments.html
// The implementation uses DEDIS Advanced Crypto Library for Go Kyber v3 as the
// field/group/pairing primitive; any of its bilinear pairing suites works, and
// tests use BN256.
// Polynomials live in coefficient form: index i of the slice holds the
// coefficient of X^i. The structured reference string is generated once from a
// secret scalar which must be destroyed immediately afterwards; the SRS itself
// is public, immutable and safe for concurrent readers.
package kzg10
