// Package storage provides signed two's complement integers of a fixed bit width.
// Widths up to 64 bits are kept in an int64, wider ones in a math/big integer.
package storage

import "math/big"

// Int is a raw scaled integer. The zero Int is 0 for every backend.
// Values produced by a Backend must only be passed back to a Backend of the same width.
type Int struct {
	n int64
	// b is used by the wide backend only. Zero is always stored as nil,
	// and a non-nil b is never modified after creation.
	b *big.Int
}

// Overflow tells if an operation left the representable range, and in which direction.
type Overflow int8

const (
	// Below means the exact result was less than the lowest representable value.
	Below Overflow = -1
	// InRange means the result is exact with respect to the width.
	InRange Overflow = 0
	// Above means the exact result was greater than the maximum representable value.
	Above Overflow = 1
)

// Backend implements integer operations for a given width.
// The representable range is symmetric: [-Max, Max].
// Every operation that can leave this range returns the result wrapped
// modulo 2^width along with the overflow direction.
type Backend interface {
	Width() uint

	FromInt64(v int64) (Int, Overflow)
	FromBig(v *big.Int) (Int, Overflow)
	// Big returns a new big.Int holding a.
	Big(a Int) *big.Int
	// Int64 returns a as int64, and false if it does not fit.
	Int64(a Int) (int64, bool)

	Sign(a Int) int
	Cmp(a, b Int) int

	Add(a, b Int) (Int, Overflow)
	Sub(a, b Int) (Int, Overflow)
	Neg(a Int) (Int, Overflow)
	// Mul returns (a*b) >> shift, rounded toward negative infinity,
	// or to the nearest value with ties away from zero.
	Mul(a, b Int, shift uint, nearest bool) (Int, Overflow)
	// Div returns (a << shift) / b, rounded like Mul. b must not be zero.
	Div(a, b Int, shift uint, nearest bool) (Int, Overflow)
	MulInt64(a Int, n int64) (Int, Overflow)
	// DivInt64 returns a/n rounded like Div. n must not be zero.
	DivInt64(a Int, n int64, nearest bool) (Int, Overflow)

	// Scale returns v << shift.
	Scale(v int64, shift uint) (Int, Overflow)
	Lsh(a Int, n uint) (Int, Overflow)
	// Rsh is an arithmetic shift.
	Rsh(a Int, n uint) Int
	// AndMask keeps count bits of a starting at bit pos. a must not be negative.
	AndMask(a Int, pos, count uint) Int
	// Msb returns the index of the most significant bit of |a|, or -1 for zero.
	Msb(a Int) int

	Max() Int
	Lowest() Int
	// Bits returns width binary digits of a, most significant first.
	Bits(a Int) string
}

// New returns a backend for width-bit integers.
// width must be at least 2.
func New(width uint) Backend {
	if width <= 64 {
		return newNative(width)
	}
	return newWide(width)
}
