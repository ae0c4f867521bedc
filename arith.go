// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

import "github.com/avdva/negatable/internal/storage"

func (v Value[F]) with(l *layout, r storage.Int, o storage.Overflow) Value[F] {
	return Value[F]{data: l.settle(r, o)}
}

// Add returns v + other.
func (v Value[F]) Add(other Value[F]) Value[F] {
	l := layoutOf[F]()
	r, o := l.be.Add(v.data, other.data)
	return v.with(l, r, o)
}

// Sub returns v - other.
func (v Value[F]) Sub(other Value[F]) Value[F] {
	l := layoutOf[F]()
	r, o := l.be.Sub(v.data, other.data)
	return v.with(l, r, o)
}

// Mul returns v * other. The low bits of the product are rounded according to the round mode.
func (v Value[F]) Mul(other Value[F]) Value[F] {
	l := layoutOf[F]()
	r, o := l.be.Mul(v.data, other.data, l.frac, l.nearest)
	return v.with(l, r, o)
}

// Div returns v / other.
// Division by zero returns Max for non-negative v, and Lowest otherwise.
func (v Value[F]) Div(other Value[F]) Value[F] {
	l := layoutOf[F]()
	if other.IsZero() {
		return divByZero(l, v)
	}
	r, o := l.be.Div(v.data, other.data, l.frac, l.nearest)
	return v.with(l, r, o)
}

func divByZero[F Format](l *layout, v Value[F]) Value[F] {
	if v.Sign() >= 0 {
		return Value[F]{data: l.be.Max()}
	}
	return Value[F]{data: l.be.Lowest()}
}

// MulInt returns v * n.
func (v Value[F]) MulInt(n int64) Value[F] {
	l := layoutOf[F]()
	r, o := l.be.MulInt64(v.data, n)
	return v.with(l, r, o)
}

// DivInt returns v / n. Division by zero behaves like in Div.
func (v Value[F]) DivInt(n int64) Value[F] {
	l := layoutOf[F]()
	if n == 0 {
		return divByZero(l, v)
	}
	r, o := l.be.DivInt64(v.data, n, l.nearest)
	return v.with(l, r, o)
}

// Neg returns -v.
func (v Value[F]) Neg() Value[F] {
	l := layoutOf[F]()
	r, o := l.be.Neg(v.data)
	return v.with(l, r, o)
}

// Abs returns |v|.
func (v Value[F]) Abs() Value[F] {
	if v.Sign() < 0 {
		return v.Neg()
	}
	return v
}

// Inc returns v + 1.
func (v Value[F]) Inc() Value[F] {
	return v.Add(one[F]())
}

// Dec returns v - 1.
func (v Value[F]) Dec() Value[F] {
	return v.Sub(one[F]())
}

// Lsh returns v * 2^n.
func (v Value[F]) Lsh(n uint) Value[F] {
	l := layoutOf[F]()
	r, o := l.be.Lsh(v.data, n)
	return v.with(l, r, o)
}

// Rsh returns v / 2^n, rounded according to the round mode.
func (v Value[F]) Rsh(n uint) Value[F] {
	l := layoutOf[F]()
	switch {
	case !l.nearest || n == 0:
		return Value[F]{data: l.be.Rsh(v.data, n)}
	case n >= l.width:
		return Value[F]{}
	}
	r, o := l.be.Mul(v.data, l.rawOne, n, true)
	return v.with(l, r, o)
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Value[F]) Sign() int {
	return layoutOf[F]().be.Sign(v.data)
}

// IsZero returns true if v == 0.
func (v Value[F]) IsZero() bool {
	return v.Sign() == 0
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other
func (v Value[F]) Cmp(other Value[F]) int {
	return layoutOf[F]().be.Cmp(v.data, other.data)
}

// Eq returns true, if both values have the same bits.
func (v Value[F]) Eq(other Value[F]) bool {
	return v.Cmp(other) == 0
}

func (v Value[F]) Lt(other Value[F]) bool {
	return v.Cmp(other) < 0
}

func (v Value[F]) Le(other Value[F]) bool {
	return v.Cmp(other) <= 0
}

func (v Value[F]) Gt(other Value[F]) bool {
	return v.Cmp(other) > 0
}

func (v Value[F]) Ge(other Value[F]) bool {
	return v.Cmp(other) >= 0
}

// cmpInt compares v with an integer.
func (v Value[F]) cmpInt(n int64) int {
	l := layoutOf[F]()
	s, o := l.be.Scale(n, l.frac)
	if o != storage.InRange {
		// n is beyond the range, so it is greater than v if it overflowed upward.
		return -int(o)
	}
	return l.be.Cmp(v.data, s)
}

func (v Value[F]) isOne() bool {
	return v.Eq(one[F]())
}

func one[F Format]() Value[F] {
	return Value[F]{data: layoutOf[F]().one}
}

func half[F Format]() Value[F] {
	return Value[F]{data: layoutOf[F]().half}
}

// fraction returns 1/2^n.
func fraction[F Format](n uint) Value[F] {
	return one[F]().Rsh(n)
}

func integer[F Format](n int64) Value[F] {
	return FromInt[F](n)
}

// coef returns c * 2^-q. Coefficients keep their sign while the magnitude is shifted,
// so a negative coefficient is truncated toward zero.
func coef[F Format](q uint, c int64) Value[F] {
	l := layoutOf[F]()
	neg := c < 0
	if neg {
		c = -c
	}
	var r storage.Int
	if q >= l.frac {
		if q-l.frac < 63 {
			r, _ = l.be.FromInt64(c >> (q - l.frac))
		}
	} else {
		var o storage.Overflow
		r, o = l.be.Scale(c, l.frac-q)
		r = l.settle(r, o)
	}
	if neg {
		r, _ = l.be.Neg(r)
	}
	return Value[F]{data: r}
}

// poly evaluates a polynomial at x with Horner's scheme.
// Coefficients are scaled by 2^q, the highest power goes first.
func poly[F Format](x Value[F], q uint, cs ...int64) Value[F] {
	r := coef[F](q, cs[0])
	for _, c := range cs[1:] {
		r = r.Mul(x).Add(coef[F](q, c))
	}
	return r
}
