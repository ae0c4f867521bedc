// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

import "math/big"

// Exp returns e^x.
func Exp[F Format](x Value[F]) Value[F] {
	switch {
	case x.IsZero():
		return one[F]()
	case x.isOne():
		return E[F]()
	}
	// e^x = 2^n * e^(x - n*ln2), n = floor(x/ln2).
	l := layoutOf[F]()
	n, r := new(big.Int).DivMod(l.be.Big(x.data), l.be.Big(Ln2[F]().data), new(big.Int))
	rd, _ := l.be.FromBig(r)
	y := variants[F]{expLow[F], expMid[F], Hypergeometric0F0[F]}.evaluate(Value[F]{data: rd})
	w := int64(l.width)
	switch {
	case n.Cmp(big.NewInt(w)) > 0:
		return y.Lsh(uint(w))
	case n.Sign() >= 0:
		return y.Lsh(uint(n.Int64()))
	case n.Cmp(big.NewInt(-w)) < 0:
		return Value[F]{}
	}
	return y.Rsh(uint(-n.Int64()))
}

func expLow[F Format](x Value[F]) Value[F] {
	return poly(x, 11, 0x59, 0x168, 0x3FE, 0x7FB).Mul(x).Add(one[F]())
}

func expMid[F Format](x Value[F]) Value[F] {
	return poly(x, 24, 0xD64, 0x5E03, 0x221DB, 0xAA908, 0x2AAABD, 0x80003F, 0xFFFFFE).Mul(x).Add(one[F]())
}

// Log returns the natural logarithm of x.
// Non-positive x give 0.
func Log[F Format](x Value[F]) Value[F] {
	switch {
	case x.isOne():
		return Value[F]{}
	case x.Sign() <= 0:
		return Value[F]{}
	case x.cmpInt(1) < 0:
		// 1/x fits the range, if x > 2^-(range-1).
		m, exp := Frexp(x)
		if exp > 1-layoutOf[F]().params.Range {
			return Log(one[F]().Div(x)).Neg()
		}
		return Log(m.Lsh(1)).Add(Ln2[F]().MulInt(int64(exp - 1)))
	}
	// log(x) = log(x / 2^n) + n*ln2
	var n int
	if x.cmpInt(2) > 0 {
		l := layoutOf[F]()
		n = l.be.Msb(x.data) - int(l.frac)
		x = Value[F]{data: l.be.Rsh(x.data, uint(n))}
	}
	r := variants[F]{logLow[F], logMid[F], logNewton[F]}.evaluate(x)
	if n > 0 {
		r = r.Add(Ln2[F]().MulInt(int64(n)))
	}
	return r
}

func logLow[F Format](x Value[F]) Value[F] {
	z := x.Sub(one[F]())
	return poly(z, 11, -0xAB, 0x295, -0x56C, 0xB82).Mul(z).Mul(Ln2[F]())
}

func logMid[F Format](x Value[F]) Value[F] {
	z := x.Sub(one[F]())
	return poly(z, 24, 0x3DFD5, -0x13F6AA, 0x311C55, -0x52F211, 0x79099E, -0xB86F18, 0x1715212).Mul(z).Mul(Ln2[F]())
}

// logNewton solves e^y = x for y. x is in [1, 2].
func logNewton[F Format](x Value[F]) Value[F] {
	o := one[F]()
	z := x.Sub(o)
	y := z.Mul(o.Sub(z.Rsh(1)))
	for i := newtonSteps(layoutOf[F]()); i > 0; i-- {
		y = y.Add(x.Mul(Hypergeometric0F0(y.Neg())).Sub(o))
	}
	return y
}

// Log2 returns the binary logarithm of x.
func Log2[F Format](x Value[F]) Value[F] {
	return Log(x).Div(Ln2[F]())
}

// Log10 returns the decimal logarithm of x.
func Log10[F Format](x Value[F]) Value[F] {
	return Log(x).Div(Ln10[F]())
}

// Pow returns x^a. It is only defined for positive x, and 0^a = 0.
func Pow[F Format](x, a Value[F]) Value[F] {
	switch {
	case x.IsZero():
		return Value[F]{}
	case a.IsZero():
		return one[F]()
	}
	return Exp(a.Mul(Log(x)))
}

// PowInt returns x^n.
func PowInt[F Format](x Value[F], n int) Value[F] {
	if n < 0 {
		return one[F]().Div(PowInt(x, -n))
	}
	r := one[F]()
	for n > 0 {
		if n&1 != 0 {
			r = r.Mul(x)
		}
		n >>= 1
		if n > 0 {
			x = x.Mul(x)
		}
	}
	return r
}

const cbrtNewtonSteps = 2

// Cbrt returns the cube root of x.
func Cbrt[F Format](x Value[F]) Value[F] {
	if x.IsZero() {
		return x
	}
	ax := x.Abs()
	y := Exp(Log(ax).DivInt(3))
	for i := 0; i < cbrtNewtonSteps; i++ {
		y2 := y.Mul(y)
		y = y.Sub(y2.Mul(y).Sub(ax).Div(y2.MulInt(3)))
	}
	if x.Sign() < 0 {
		return y.Neg()
	}
	return y
}
