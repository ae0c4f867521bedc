package storage

import (
	"math/big"
	"strings"

	"github.com/avdva/negatable/internal/mathutil"
)

// zeroBig is the value of a nil Int.b. It must never be used as a receiver.
var zeroBig = new(big.Int)

// wide keeps values in big.Int, for widths beyond 64 bits.
type wide struct {
	width   uint
	max     *big.Int
	lowest  *big.Int
	modulus *big.Int
	half    *big.Int
	mask    *big.Int
}

func newWide(width uint) *wide {
	one := big.NewInt(1)
	be := &wide{
		width:   width,
		modulus: new(big.Int).Lsh(one, width),
		half:    new(big.Int).Lsh(one, width-1),
	}
	be.max = new(big.Int).Sub(be.half, one)
	be.lowest = new(big.Int).Neg(be.max)
	be.mask = new(big.Int).Sub(be.modulus, one)
	return be
}

func val(a Int) *big.Int {
	if a.b == nil {
		return zeroBig
	}
	return a.b
}

// own wraps a freshly allocated r, keeping zero canonical.
func own(r *big.Int) Int {
	if r.Sign() == 0 {
		return Int{}
	}
	return Int{b: r}
}

// settle takes ownership of r, and wraps it if it is out of range.
func (be *wide) settle(r *big.Int) (Int, Overflow) {
	switch {
	case r.Cmp(be.max) > 0:
		return be.wrap(r), Above
	case r.Cmp(be.lowest) < 0:
		return be.wrap(r), Below
	}
	return own(r), InRange
}

func (be *wide) wrap(r *big.Int) Int {
	r.Mod(r, be.modulus)
	if r.Cmp(be.half) >= 0 {
		r.Sub(r, be.modulus)
	}
	return own(r)
}

func (be *wide) Width() uint {
	return be.width
}

func (be *wide) FromInt64(v int64) (Int, Overflow) {
	return be.settle(big.NewInt(v))
}

func (be *wide) FromBig(v *big.Int) (Int, Overflow) {
	return be.settle(new(big.Int).Set(v))
}

func (be *wide) Big(a Int) *big.Int {
	return new(big.Int).Set(val(a))
}

func (be *wide) Int64(a Int) (int64, bool) {
	v := val(a)
	if !v.IsInt64() {
		return 0, false
	}
	return v.Int64(), true
}

func (be *wide) Sign(a Int) int {
	return val(a).Sign()
}

func (be *wide) Cmp(a, b Int) int {
	return val(a).Cmp(val(b))
}

func (be *wide) Add(a, b Int) (Int, Overflow) {
	return be.settle(new(big.Int).Add(val(a), val(b)))
}

func (be *wide) Sub(a, b Int) (Int, Overflow) {
	return be.settle(new(big.Int).Sub(val(a), val(b)))
}

func (be *wide) Neg(a Int) (Int, Overflow) {
	return be.settle(new(big.Int).Neg(val(a)))
}

func (be *wide) Mul(a, b Int, shift uint, nearest bool) (Int, Overflow) {
	p := new(big.Int).Mul(val(a), val(b))
	return be.settle(mathutil.RshRound(p, shift, nearest))
}

func (be *wide) Div(a, b Int, shift uint, nearest bool) (Int, Overflow) {
	n := new(big.Int).Lsh(val(a), shift)
	return be.settle(mathutil.QuoRound(n, val(b), nearest))
}

func (be *wide) MulInt64(a Int, n int64) (Int, Overflow) {
	return be.settle(new(big.Int).Mul(val(a), big.NewInt(n)))
}

func (be *wide) DivInt64(a Int, n int64, nearest bool) (Int, Overflow) {
	return be.settle(mathutil.QuoRound(val(a), big.NewInt(n), nearest))
}

func (be *wide) Scale(v int64, shift uint) (Int, Overflow) {
	return be.Lsh(Int{b: big.NewInt(v)}, shift)
}

func (be *wide) Lsh(a Int, n uint) (Int, Overflow) {
	v := val(a)
	if n >= be.width {
		// every bit leaves the width.
		switch v.Sign() {
		case 1:
			return Int{}, Above
		case -1:
			return Int{}, Below
		}
		return Int{}, InRange
	}
	return be.settle(new(big.Int).Lsh(v, n))
}

func (be *wide) Rsh(a Int, n uint) Int {
	return own(new(big.Int).Rsh(val(a), n))
}

func (be *wide) AndMask(a Int, pos, count uint) Int {
	return own(new(big.Int).And(val(a), mathutil.MaskBig(pos, count)))
}

func (be *wide) Msb(a Int) int {
	return mathutil.MsbBig(val(a))
}

func (be *wide) Max() Int {
	return Int{b: be.max}
}

func (be *wide) Lowest() Int {
	return Int{b: be.lowest}
}

func (be *wide) Bits(a Int) string {
	s := new(big.Int).And(val(a), be.mask).Text(2)
	return strings.Repeat("0", int(be.width)-len(s)) + s
}
