// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

// integral clears the fractional bits of a non-negative v.
func integral[F Format](v Value[F]) Value[F] {
	l := layoutOf[F]()
	return Value[F]{data: l.be.AndMask(v.data, l.frac, uint(l.params.Range)+1)}
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[F Format](x Value[F]) Value[F] {
	if x.Sign() >= 0 {
		return integral(x)
	}
	ax := x.Neg()
	m := integral(ax)
	if m.Eq(ax) {
		return x
	}
	return m.Neg().Dec()
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil[F Format](x Value[F]) Value[F] {
	if x.Sign() < 0 {
		return integral(x.Neg()).Neg()
	}
	m := integral(x)
	if m.Eq(x) {
		return x
	}
	return m.Inc()
}

// Trunc returns the integer part of x.
func Trunc[F Format](x Value[F]) Value[F] {
	if x.Sign() < 0 {
		return integral(x.Neg()).Neg()
	}
	return integral(x)
}

// Round returns the nearest integer, rounding half away from zero.
func Round[F Format](x Value[F]) Value[F] {
	if x.Sign() < 0 {
		return Round(x.Neg()).Neg()
	}
	return integral(x.Add(half[F]()))
}

// Abs returns the absolute value of x.
func Abs[F Format](x Value[F]) Value[F] {
	return x.Abs()
}

// Frexp breaks x into a mantissa m and an exponent, so that x = m * 2^exp, and 1/2 <= |m| < 1.
// The low bits of m are truncated, if x is too large to keep them. Frexp(0) = (0, 0).
func Frexp[F Format](x Value[F]) (m Value[F], exp int) {
	if x.IsZero() {
		return x, 0
	}
	l := layoutOf[F]()
	exp = l.be.Msb(x.data) - int(l.frac) + 1
	m = x.Abs()
	if exp > 0 {
		m = Value[F]{data: l.be.Rsh(m.data, uint(exp))}
	} else {
		m = m.Lsh(uint(-exp))
	}
	if x.Sign() < 0 {
		m = m.Neg()
	}
	return m, exp
}

// Ldexp returns x * 2^exp. Bits shifted beyond the resolution are truncated toward zero.
func Ldexp[F Format](x Value[F], exp int) Value[F] {
	if exp >= 0 {
		return x.Lsh(uint(exp))
	}
	l := layoutOf[F]()
	m := Value[F]{data: l.be.Rsh(x.Abs().data, uint(-exp))}
	if x.Sign() < 0 {
		return m.Neg()
	}
	return m
}

// Fmod returns the remainder of x/y, which has the sign of x. Fmod(x, 0) = 0.
func Fmod[F Format](x, y Value[F]) Value[F] {
	if y.IsZero() {
		return Value[F]{}
	}
	r := x.Sub(Floor(x.Div(y)).Mul(y))
	if !r.IsZero() && x.Sign()*y.Sign() < 0 {
		r = r.Sub(y)
	}
	return r
}
