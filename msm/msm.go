// Package msm implements multi-scalar multiplication, the dominant cost of
// committing and opening in the KZG scheme: given bases B_i and non-negative
// integer scalars k_i it computes sum_i k_i*B_i.
// Two interchangeable algorithms are provided. Basic is the linear scan
// baseline. WNAF is a windowed non-adjacent-form scan that trades 2^(w-2)
// precomputed odd multiples per base for fewer group additions; it relies on
// negation being cheap in the group.
package msm

import (
	"math/big"

	"go.dedis.ch/kyber/v3"
)

// WindowSize is the signed-digit window width used by WNAF. Digits lie in
// (-2^(WindowSize-1), 2^(WindowSize-1)) and are odd when nonzero.
const WindowSize = 5

// Combine dispatches to WNAF when negation is cheap in the group and to Basic
// otherwise. Both produce identical results for identical inputs.
func Combine(g kyber.Group, bases []kyber.Point, scalars []*big.Int, negationIsCheap bool) kyber.Point {
	if negationIsCheap {
		return WNAF(g, bases, scalars)
	}
	return Basic(g, bases, scalars)
}

// Basic computes the sum with one scalar multiplication per nonzero scalar.
// bases and scalars must have equal length and scalars must be non-negative;
// violations are programming errors and panic.
func Basic(g kyber.Group, bases []kyber.Point, scalars []*big.Int) kyber.Point {
	checkInput(bases, scalars)
	acc := g.Point().Null()
	tmp := g.Point()
	s := g.Scalar()
	for i := range bases {
		if scalars[i].Sign() == 0 {
			continue
		}
		s.SetBytes(scalars[i].Bytes())
		tmp.Mul(s, bases[i])
		acc.Add(acc, tmp)
	}
	return acc
}

// WNAF computes the sum with one doubling per digit position and one addition
// (or subtraction) per nonzero signed digit. Each scalar is recoded into
// width-WindowSize non-adjacent form; each base gets a table of its odd
// multiples 1*B, 3*B, ..., (2^(WindowSize-1)-1)*B.
func WNAF(g kyber.Group, bases []kyber.Point, scalars []*big.Int) kyber.Point {
	checkInput(bases, scalars)

	tables := make([][]kyber.Point, len(bases))
	digits := make([][]int8, len(bases))
	maxLen := 0
	for i := range bases {
		if scalars[i].Sign() == 0 {
			continue
		}
		tables[i] = oddMultiples(g, bases[i])
		digits[i] = wnafDigits(scalars[i])
		if len(digits[i]) > maxLen {
			maxLen = len(digits[i])
		}
	}

	acc := g.Point().Null()
	neg := g.Point()
	for pos := maxLen - 1; pos >= 0; pos-- {
		acc.Add(acc, acc)
		for i := range digits {
			if pos >= len(digits[i]) {
				continue
			}
			d := digits[i][pos]
			switch {
			case d > 0:
				acc.Add(acc, tables[i][(d-1)/2])
			case d < 0:
				acc.Add(acc, neg.Neg(tables[i][(-d-1)/2]))
			}
		}
	}
	return acc
}

// oddMultiples returns [1*b, 3*b, ..., (2^(WindowSize-1)-1)*b].
func oddMultiples(g kyber.Group, b kyber.Point) []kyber.Point {
	table := make([]kyber.Point, 1<<(WindowSize-2))
	twice := g.Point().Add(b, b)
	table[0] = b.Clone()
	for i := 1; i < len(table); i++ {
		table[i] = g.Point().Add(table[i-1], twice)
	}
	return table
}

// wnafDigits recodes a non-negative scalar into width-WindowSize NAF: every
// nonzero digit is odd and within (-2^(WindowSize-1), 2^(WindowSize-1)), and
// the value is recovered as sum_i digits[i]*2^i.
func wnafDigits(k *big.Int) []int8 {
	var digits []int8
	d := new(big.Int).Set(k)
	window := int64(1) << WindowSize
	half := window >> 1
	mask := big.NewInt(window - 1)
	r := new(big.Int)
	for d.Sign() > 0 {
		if d.Bit(0) == 1 {
			v := r.And(d, mask).Int64()
			if v >= half {
				v -= window
			}
			digits = append(digits, int8(v))
			if v > 0 {
				d.Sub(d, r.SetInt64(v))
			} else {
				d.Add(d, r.SetInt64(-v))
			}
		} else {
			digits = append(digits, 0)
		}
		d.Rsh(d, 1)
	}
	return digits
}

func checkInput(bases []kyber.Point, scalars []*big.Int) {
	if len(bases) != len(scalars) {
		panic("msm: bases and scalars length mismatch")
	}
	for _, s := range scalars {
		if s.Sign() < 0 {
			panic("msm: negative scalar")
		}
	}
}
