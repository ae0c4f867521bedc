package storage

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/avdva/negatable/internal/mathutil"
)

var mask64 = new(big.Int).SetUint64(^uint64(0))

// native keeps values of up to 64 bits in an int64.
// Intermediate results are computed in 128 bits, so they are never lost before the range check.
type native struct {
	width uint
	max   int64
}

func newNative(width uint) *native {
	return &native{width: width, max: int64(uint64(1)<<(width-1) - 1)}
}

// settle truncates q to the backend's width and reports if it was out of range.
func (be *native) settle(q mathutil.Int128) (Int, Overflow) {
	v := q.Truncate(be.width)
	switch {
	case !q.FitsSigned(be.width):
		if q.Sign() < 0 {
			return Int{n: v}, Below
		}
		return Int{n: v}, Above
	case v < -be.max:
		return Int{n: v}, Below
	}
	return Int{n: v}, InRange
}

func (be *native) Width() uint {
	return be.width
}

func (be *native) FromInt64(v int64) (Int, Overflow) {
	return be.settle(mathutil.Int128From64(v))
}

func (be *native) FromBig(v *big.Int) (Int, Overflow) {
	if v.IsInt64() {
		return be.FromInt64(v.Int64())
	}
	low := new(big.Int).And(v, mask64).Uint64()
	s := 64 - be.width
	r := Int{n: int64(low<<s) >> s}
	if v.Sign() < 0 {
		return r, Below
	}
	return r, Above
}

func (be *native) Big(a Int) *big.Int {
	return big.NewInt(a.n)
}

func (be *native) Int64(a Int) (int64, bool) {
	return a.n, true
}

func (be *native) Sign(a Int) int {
	return mathutil.Int64Sign(a.n)
}

func (be *native) Cmp(a, b Int) int {
	switch {
	case a.n < b.n:
		return -1
	case a.n > b.n:
		return 1
	}
	return 0
}

func (be *native) Add(a, b Int) (Int, Overflow) {
	return be.settle(mathutil.Int128From64(a.n).Add(mathutil.Int128From64(b.n)))
}

func (be *native) Sub(a, b Int) (Int, Overflow) {
	return be.settle(mathutil.Int128From64(a.n).Sub(mathutil.Int128From64(b.n)))
}

func (be *native) Neg(a Int) (Int, Overflow) {
	return be.settle(mathutil.Int128From64(a.n).Neg())
}

func (be *native) Mul(a, b Int, shift uint, nearest bool) (Int, Overflow) {
	q, rem := mathutil.MulShift64(mathutil.UAbs64(a.n), mathutil.UAbs64(b.n), shift)
	neg := !mathutil.SameSign(a.n, b.n)
	if rem != 0 && (nearest && rem >= 1<<(shift-1) || !nearest && neg) {
		q = q.Inc()
	}
	if neg {
		q = q.Neg()
	}
	return be.settle(q)
}

func (be *native) Div(a, b Int, shift uint, nearest bool) (Int, Overflow) {
	ub := mathutil.UAbs64(b.n)
	q, rem := mathutil.ShiftDiv64(mathutil.UAbs64(a.n), ub, shift)
	neg := !mathutil.SameSign(a.n, b.n)
	if rem != 0 && (nearest && rem >= ub-rem || !nearest && neg) {
		q = q.Inc()
	}
	if neg {
		q = q.Neg()
	}
	return be.settle(q)
}

func (be *native) MulInt64(a Int, n int64) (Int, Overflow) {
	return be.Mul(a, Int{n: n}, 0, false)
}

func (be *native) DivInt64(a Int, n int64, nearest bool) (Int, Overflow) {
	return be.Div(a, Int{n: n}, 0, nearest)
}

func (be *native) Scale(v int64, shift uint) (Int, Overflow) {
	if shift >= 64 {
		switch {
		case v > 0:
			return Int{}, Above
		case v < 0:
			return Int{}, Below
		}
		return Int{}, InRange
	}
	return be.settle(mathutil.Int128From64(v).Lsh(shift))
}

func (be *native) Lsh(a Int, n uint) (Int, Overflow) {
	return be.Scale(a.n, n)
}

func (be *native) Rsh(a Int, n uint) Int {
	if n > be.width {
		n = be.width
	}
	if a.n < 0 {
		// ^a is not negative, and shifting it in zeros is the same as shifting ones into a.
		return Int{n: ^int64(mathutil.RightShift64(uint64(^a.n), int(n)))}
	}
	return Int{n: int64(mathutil.RightShift64(uint64(a.n), int(n)))}
}

func (be *native) AndMask(a Int, pos, count uint) Int {
	return Int{n: a.n & int64(mathutil.Mask64(pos, count))}
}

func (be *native) Msb(a Int) int {
	return mathutil.Msb64(mathutil.UAbs64(a.n))
}

func (be *native) Max() Int {
	return Int{n: be.max}
}

func (be *native) Lowest() Int {
	return Int{n: -be.max}
}

func (be *native) Bits(a Int) string {
	s := strconv.FormatUint(uint64(a.n)&mathutil.Mask64(0, be.width), 2)
	return strings.Repeat("0", int(be.width)-len(s)) + s
}
